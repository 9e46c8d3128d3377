// Package scoring holds the pure computational core of the hydration
// tracker: unit conversion, daily aggregation, the nocturia risk model and
// the weather advice heuristics. Every function takes its reference day and
// inputs explicitly and performs no I/O, so results are deterministic and
// reproducible.
package scoring

import "github.com/hydrolog/hydration-tracker/internal/domain"

// MlPerFluidOunce is the exact conversion factor for US fluid ounces.
const MlPerFluidOunce = 29.5735

// ToMilliliters converts an amount in the given unit to milliliters, the
// canonical storage unit.
func ToMilliliters(amount float64, unit domain.VolumeUnit) float64 {
	if unit == domain.UnitFluidOunces {
		return amount * MlPerFluidOunce
	}
	return amount
}

// FromMilliliters converts a milliliter volume back to the given display
// unit. Round-trips with ToMilliliters within floating-point tolerance.
func FromMilliliters(ml float64, unit domain.VolumeUnit) float64 {
	if unit == domain.UnitFluidOunces {
		return ml / MlPerFluidOunce
	}
	return ml
}
