package scoring

import (
	"sort"

	"github.com/hydrolog/hydration-tracker/internal/domain"
)

// Aggregate computes the daily totals for a set of drink events. The caller
// supplies only the events belonging to the day; order is irrelevant. An
// empty slice yields an all-zero aggregate with an empty breakdown.
func Aggregate(events []domain.DrinkEvent) domain.DailyAggregate {
	agg := domain.DailyAggregate{}

	byCategory := make(map[domain.DrinkCategory]float64)
	for _, ev := range events {
		agg.TotalVolumeMl += ev.VolumeMl

		info, ok := domain.CatalogEntry(ev.Variant)
		if !ok {
			continue
		}

		agg.NetHydrationMl += ev.VolumeMl * info.HydrationFactor
		if info.HydrationFactor < 0 {
			agg.DehydrationMl += ev.VolumeMl * -info.HydrationFactor
		}
		byCategory[info.Category] += ev.VolumeMl
	}

	for category, volume := range byCategory {
		agg.CategoryBreakdown = append(agg.CategoryBreakdown, domain.CategoryVolume{
			Category: category,
			VolumeMl: volume,
		})
	}

	// Descending by volume for display; category name breaks ties so the
	// output is stable across runs.
	sort.Slice(agg.CategoryBreakdown, func(i, j int) bool {
		a, b := agg.CategoryBreakdown[i], agg.CategoryBreakdown[j]
		if a.VolumeMl != b.VolumeMl {
			return a.VolumeMl > b.VolumeMl
		}
		return a.Category < b.Category
	})

	return agg
}
