package domain

// DrinkVariant identifies a beverage type from the fixed catalog.
// @Description Beverage type. Determines hydration factor, caffeine/alcohol flags and nutrition.
type DrinkVariant string

const (
	DrinkWater          DrinkVariant = "WATER"
	DrinkSparklingWater DrinkVariant = "SPARKLING_WATER"
	DrinkTea            DrinkVariant = "TEA"
	DrinkCoffee         DrinkVariant = "COFFEE"
	DrinkJuice          DrinkVariant = "JUICE"
	DrinkMilk           DrinkVariant = "MILK"
	DrinkSoda           DrinkVariant = "SODA"
	DrinkEnergyDrink    DrinkVariant = "ENERGY_DRINK"
	DrinkBeer           DrinkVariant = "BEER"
	DrinkWine           DrinkVariant = "WINE"
	DrinkSpirits        DrinkVariant = "SPIRITS"
)

// DrinkCategory groups variants for the daily breakdown.
// @Description Hydration category used in the per-day breakdown.
type DrinkCategory string

const (
	CategoryFullyHydrating     DrinkCategory = "fully_hydrating"
	CategoryPartiallyHydrating DrinkCategory = "partially_hydrating"
	CategoryMildDiuretic       DrinkCategory = "mild_diuretic"
	CategoryDehydrating        DrinkCategory = "dehydrating"
)

// DrinkInfo is the static catalog entry for a variant. Entries are defined
// once and never instantiated per record.
type DrinkInfo struct {
	// Signed multiplier applied to volume to estimate net hydration (-1..1)
	HydrationFactor float64 `json:"hydration_factor" example:"0.85"`
	// True if the drink contains caffeine
	ContainsCaffeine bool `json:"contains_caffeine" example:"true"`
	// True if the drink contains alcohol
	ContainsAlcohol bool `json:"contains_alcohol" example:"false"`
	// Energy density
	CaloriesPer100ml float64 `json:"calories_per_100ml" example:"2"`
	// Sugar density
	SugarGramsPer100ml float64 `json:"sugar_grams_per_100ml" example:"0"`
	// Fixed breakdown category
	Category DrinkCategory `json:"category" example:"mild_diuretic"`
}

var drinkCatalog = map[DrinkVariant]DrinkInfo{
	DrinkWater:          {HydrationFactor: 1.0, Category: CategoryFullyHydrating},
	DrinkSparklingWater: {HydrationFactor: 1.0, Category: CategoryFullyHydrating},
	DrinkTea:            {HydrationFactor: 0.9, ContainsCaffeine: true, CaloriesPer100ml: 1, Category: CategoryMildDiuretic},
	DrinkCoffee:         {HydrationFactor: 0.85, ContainsCaffeine: true, CaloriesPer100ml: 2, Category: CategoryMildDiuretic},
	DrinkJuice:          {HydrationFactor: 0.85, CaloriesPer100ml: 45, SugarGramsPer100ml: 10.0, Category: CategoryPartiallyHydrating},
	DrinkMilk:           {HydrationFactor: 0.9, CaloriesPer100ml: 64, SugarGramsPer100ml: 4.8, Category: CategoryPartiallyHydrating},
	DrinkSoda:           {HydrationFactor: 0.6, ContainsCaffeine: true, CaloriesPer100ml: 42, SugarGramsPer100ml: 10.6, Category: CategoryMildDiuretic},
	DrinkEnergyDrink:    {HydrationFactor: 0.5, ContainsCaffeine: true, CaloriesPer100ml: 45, SugarGramsPer100ml: 11.0, Category: CategoryMildDiuretic},
	DrinkBeer:           {HydrationFactor: -0.3, ContainsAlcohol: true, CaloriesPer100ml: 43, SugarGramsPer100ml: 3.6, Category: CategoryDehydrating},
	DrinkWine:           {HydrationFactor: -0.6, ContainsAlcohol: true, CaloriesPer100ml: 83, SugarGramsPer100ml: 0.8, Category: CategoryDehydrating},
	DrinkSpirits:        {HydrationFactor: -1.0, ContainsAlcohol: true, CaloriesPer100ml: 231, Category: CategoryDehydrating},
}

// allVariants fixes a stable display order for catalog listings.
var allVariants = []DrinkVariant{
	DrinkWater,
	DrinkSparklingWater,
	DrinkTea,
	DrinkCoffee,
	DrinkJuice,
	DrinkMilk,
	DrinkSoda,
	DrinkEnergyDrink,
	DrinkBeer,
	DrinkWine,
	DrinkSpirits,
}

// CatalogEntry returns the static info for a variant.
func CatalogEntry(v DrinkVariant) (DrinkInfo, bool) {
	info, ok := drinkCatalog[v]
	return info, ok
}

// AllVariants returns every catalog variant in display order.
func AllVariants() []DrinkVariant {
	out := make([]DrinkVariant, len(allVariants))
	copy(out, allVariants)
	return out
}

// Valid reports whether the variant exists in the catalog.
func (v DrinkVariant) Valid() bool {
	_, ok := drinkCatalog[v]
	return ok
}

// CatalogEntryResponse is a single catalog listing item.
// @Description Drink catalog entry.
type CatalogEntryResponse struct {
	Variant DrinkVariant `json:"variant" example:"COFFEE"`
	DrinkInfo
}

// CatalogResponse is the response body for the drink catalog endpoint.
// @Description Full drink catalog.
type CatalogResponse struct {
	Drinks []CatalogEntryResponse `json:"drinks"`
}
