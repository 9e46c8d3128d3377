package domain

import "testing"

func TestCatalogEntry_AllVariantsDefined(t *testing.T) {
	for _, v := range AllVariants() {
		info, ok := CatalogEntry(v)
		if !ok {
			t.Errorf("variant %s missing from catalog", v)
			continue
		}
		if info.HydrationFactor < -1 || info.HydrationFactor > 1 {
			t.Errorf("variant %s has hydration factor %v outside [-1, 1]", v, info.HydrationFactor)
		}
		// Negative factors and the dehydrating category must agree.
		if (info.HydrationFactor < 0) != (info.Category == CategoryDehydrating) {
			t.Errorf("variant %s: factor %v inconsistent with category %s", v, info.HydrationFactor, info.Category)
		}
		// Every dehydrating drink in the catalog is alcoholic.
		if info.Category == CategoryDehydrating && !info.ContainsAlcohol {
			t.Errorf("variant %s is dehydrating but not flagged alcoholic", v)
		}
	}
}

func TestCatalogEntry_KnownValues(t *testing.T) {
	tests := []struct {
		variant    DrinkVariant
		factor     float64
		caffeinated bool
		alcoholic  bool
	}{
		{DrinkWater, 1.0, false, false},
		{DrinkTea, 0.9, true, false},
		{DrinkCoffee, 0.85, true, false},
		{DrinkSoda, 0.6, true, false},
		{DrinkBeer, -0.3, false, true},
		{DrinkWine, -0.6, false, true},
		{DrinkSpirits, -1.0, false, true},
	}

	for _, tt := range tests {
		info, ok := CatalogEntry(tt.variant)
		if !ok {
			t.Errorf("CatalogEntry(%s) not found", tt.variant)
			continue
		}
		if info.HydrationFactor != tt.factor {
			t.Errorf("%s hydration factor = %v, want %v", tt.variant, info.HydrationFactor, tt.factor)
		}
		if info.ContainsCaffeine != tt.caffeinated {
			t.Errorf("%s caffeine flag = %v, want %v", tt.variant, info.ContainsCaffeine, tt.caffeinated)
		}
		if info.ContainsAlcohol != tt.alcoholic {
			t.Errorf("%s alcohol flag = %v, want %v", tt.variant, info.ContainsAlcohol, tt.alcoholic)
		}
	}
}

func TestDrinkVariant_Valid(t *testing.T) {
	if !DrinkCoffee.Valid() {
		t.Error("COFFEE should be valid")
	}
	if DrinkVariant("KOMBUCHA").Valid() {
		t.Error("unknown variant reported valid")
	}
	if DrinkVariant("coffee").Valid() {
		t.Error("variant matching is case sensitive, lowercase should be invalid")
	}
}

func TestAllVariants_CopyIsIsolated(t *testing.T) {
	first := AllVariants()
	first[0] = DrinkVariant("MUTATED")

	second := AllVariants()
	if second[0] == DrinkVariant("MUTATED") {
		t.Error("AllVariants returns a shared slice")
	}
}
