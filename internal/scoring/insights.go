package scoring

import (
	"fmt"

	"github.com/hydrolog/hydration-tracker/internal/domain"
)

// MaxSurfacedInsights caps how many insight strings callers receive.
const MaxSurfacedInsights = 2

type insightInput struct {
	EveningRatio   float64
	EveningMl      float64
	ScoreRatio     float64
	TotalMl        float64
	TargetMl       float64
	CaffeineMl     float64
	CaffeinePoints int
	Bucket         domain.RiskBucket
	Confidence     domain.ConfidenceLevel
	LoggedDays     int
}

// buildInsights evaluates a fixed, ordered decision list and returns every
// insight that fired, highest priority first. No randomness: identical
// inputs produce the identical ordered list. Callers truncate to
// MaxSurfacedInsights.
func buildInsights(in insightInput) []string {
	var insights []string

	// 1. Evening timing
	if in.EveningRatio >= eveningRatioMid {
		insights = append(insights, fmt.Sprintf(
			"%.0f%% of today's fluids (%.0f ml) landed in the 3 hours before bed. Shifting intake earlier can mean fewer nighttime wake-ups.",
			in.EveningRatio*100, in.EveningMl,
		))
	} else if in.EveningRatio > 0 && in.EveningRatio < eveningRatioLow {
		insights = append(insights, fmt.Sprintf(
			"Good timing: only %.0f%% of today's fluids came in the 3 hours before bed.",
			in.EveningRatio*100,
		))
	}

	// 2. Hydration level
	if in.ScoreRatio >= 1.0 {
		insights = append(insights, fmt.Sprintf(
			"Daily target met: %.0f ml against a %.0f ml goal.",
			in.TotalMl, in.TargetMl,
		))
	} else if in.ScoreRatio < 0.5 {
		insights = append(insights, fmt.Sprintf(
			"You reached %.0f%% of your %.0f ml target. An extra glass earlier in the day helps without loading the evening.",
			in.ScoreRatio*100, in.TargetMl,
		))
	}

	// 3. Nocturia risk, with caffeine timing folded in when it contributed
	if in.Bucket != domain.RiskLow {
		text := fmt.Sprintf("Tonight's sleep-interruption risk is %s.", in.Bucket)
		if in.CaffeinePoints >= 10 {
			text += fmt.Sprintf(" Caffeine after 15:00 (%.0f ml) is a contributor.", in.CaffeineMl)
		}
		insights = append(insights, text)
	}

	// 4. Data-completeness disclaimer
	if in.Confidence == domain.ConfidenceMinimal {
		insights = append(insights, fmt.Sprintf(
			"Based on %d logged days in the last %d. Estimates sharpen as you log more.",
			in.LoggedDays, ConfidenceWindowDays,
		))
	}

	return insights
}
