package scoring

import (
	"math"
	"time"

	"github.com/hydrolog/hydration-tracker/internal/domain"
)

const (
	// DefaultDailyTargetMl is used when the user has no personalized target.
	DefaultDailyTargetMl = 2000.0

	// EveningWindow is the interval before bedtime assessed for late intake.
	EveningWindow = 3 * time.Hour

	// DefaultBedtimeHour is assumed when no sleep data exists (22:00 local).
	DefaultBedtimeHour = 22

	// CaffeineCutoffHour is the afternoon cutoff for caffeine scoring (15:00 local).
	CaffeineCutoffHour = 15

	// AlcoholWindow is the pre-bedtime interval checked for alcohol.
	AlcoholWindow = 4 * time.Hour
)

// Nocturia risk point thresholds. The composite score is additive and
// bucketed; see bucketRisk.
const (
	eveningRatioHigh   = 0.35
	eveningRatioMid    = 0.25
	eveningRatioLow    = 0.20
	volumeHighMl       = 3000.0
	volumeMidMl        = 2500.0
	caffeineHighMl     = 500.0
	caffeineMidMl      = 250.0
	riskHighThreshold  = 35
	riskModerateThresh = 20
)

// RiskInput bundles everything the nocturia model needs. DayStart is local
// midnight of the query day and carries the user's location; the model never
// reads the wall clock.
type RiskInput struct {
	// Totals for the query day
	Aggregate domain.DailyAggregate
	// Events for the query day plus the adjacent prior day, so the evening
	// window never silently drops volume at a midnight boundary.
	Events []domain.DrinkEvent
	// Optional sleep record; nil falls back to the default bedtime
	Sleep *domain.SleepSummary
	// Personalized daily target in ml (<= 0 means use the default)
	TargetMl float64
	// Local midnight of the query day
	DayStart time.Time
	// Distinct days with logged drinks in the trailing confidence window
	LoggedDays int
}

// ComputeRisk runs the hydration/sleep risk model. It is a pure function:
// identical inputs always produce identical results.
func ComputeRisk(in RiskInput) domain.HydrationRiskResult {
	target := in.TargetMl
	if target <= 0 {
		target = DefaultDailyTargetMl
	}

	bedtime, assumed := resolveBedtime(in.DayStart, in.Sleep)
	windowStart := bedtime.Add(-EveningWindow)
	dayEnd := in.DayStart.AddDate(0, 0, 1)
	caffeineCutoff := time.Date(
		in.DayStart.Year(), in.DayStart.Month(), in.DayStart.Day(),
		CaffeineCutoffHour, 0, 0, 0, in.DayStart.Location(),
	)

	var eveningMl, caffeineMl float64
	alcoholNearBed := false
	for _, ev := range in.Events {
		occurred := ev.OccurredAt.In(in.DayStart.Location())

		if !occurred.Before(windowStart) && occurred.Before(bedtime) {
			eveningMl += ev.VolumeMl
		}

		info, ok := domain.CatalogEntry(ev.Variant)
		if !ok {
			continue
		}
		if info.ContainsCaffeine && !occurred.Before(caffeineCutoff) && occurred.Before(dayEnd) {
			caffeineMl += ev.VolumeMl
		}
		if info.ContainsAlcohol && !occurred.Before(bedtime.Add(-AlcoholWindow)) && !occurred.After(bedtime) {
			alcoholNearBed = true
		}
	}

	eveningRatio := 0.0
	if in.Aggregate.TotalVolumeMl > 0 {
		eveningRatio = math.Min(1.0, eveningMl/in.Aggregate.TotalVolumeMl)
	}

	scoreRatio := 0.0
	if in.Aggregate.TotalVolumeMl > 0 {
		scoreRatio = math.Min(1.0, in.Aggregate.TotalVolumeMl/target)
	}

	caffPoints := caffeinePoints(caffeineMl)
	score := eveningRatioPoints(eveningRatio) + totalVolumePoints(in.Aggregate.TotalVolumeMl) + caffPoints
	if alcoholNearBed {
		score += 5
	}
	bucket := bucketRisk(score)

	confidence := ClassifyConfidence(in.LoggedDays)

	insights := buildInsights(insightInput{
		EveningRatio:   eveningRatio,
		EveningMl:      eveningMl,
		ScoreRatio:     scoreRatio,
		TotalMl:        in.Aggregate.TotalVolumeMl,
		TargetMl:       target,
		CaffeineMl:     caffeineMl,
		CaffeinePoints: caffPoints,
		Bucket:         bucket,
		Confidence:     confidence,
		LoggedDays:     in.LoggedDays,
	})
	if len(insights) > MaxSurfacedInsights {
		insights = insights[:MaxSurfacedInsights]
	}

	return domain.HydrationRiskResult{
		EveningIntakeRatio:    eveningRatio,
		EveningVolumeMl:       eveningMl,
		HydrationScoreRatio:   scoreRatio,
		RiskScore:             score,
		NocturiaRiskBucket:    bucket,
		CaffeineAfterCutoffMl: caffeineMl,
		AlcoholNearBedtime:    alcoholNearBed,
		BedTime:               bedtime,
		BedTimeAssumed:        assumed,
		Insights:              insights,
		Confidence:            confidence,
	}
}

// resolveBedtime anchors the bedtime clock time onto the query day. A
// bedtime after midnight (e.g. 00:30) resolves to the early hours of the
// query day itself, so its evening window reaches into the prior day.
func resolveBedtime(dayStart time.Time, sleep *domain.SleepSummary) (bedtime time.Time, assumed bool) {
	loc := dayStart.Location()
	if sleep != nil && !sleep.BedTime.IsZero() {
		local := sleep.BedTime.In(loc)
		return time.Date(
			dayStart.Year(), dayStart.Month(), dayStart.Day(),
			local.Hour(), local.Minute(), 0, 0, loc,
		), false
	}
	return time.Date(
		dayStart.Year(), dayStart.Month(), dayStart.Day(),
		DefaultBedtimeHour, 0, 0, 0, loc,
	), true
}

// eveningRatioPoints is a monotonic non-decreasing step function of the
// evening intake ratio.
func eveningRatioPoints(ratio float64) int {
	switch {
	case ratio >= eveningRatioHigh:
		return 40
	case ratio >= eveningRatioMid:
		return 25
	case ratio >= eveningRatioLow:
		return 15
	default:
		return 5
	}
}

func totalVolumePoints(totalMl float64) int {
	switch {
	case totalMl > volumeHighMl:
		return 20
	case totalMl > volumeMidMl:
		return 10
	default:
		return 0
	}
}

func caffeinePoints(caffeineMl float64) int {
	switch {
	case caffeineMl >= caffeineHighMl:
		return 15
	case caffeineMl >= caffeineMidMl:
		return 10
	case caffeineMl > 0:
		return 5
	default:
		return 0
	}
}

func bucketRisk(score int) domain.RiskBucket {
	switch {
	case score >= riskHighThreshold:
		return domain.RiskHigh
	case score >= riskModerateThresh:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}
