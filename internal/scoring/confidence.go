package scoring

import "github.com/hydrolog/hydration-tracker/internal/domain"

// ConfidenceWindowDays is the trailing window over which logging history is
// counted for the data-completeness label.
const ConfidenceWindowDays = 60

// ClassifyConfidence buckets the number of distinct logged days in the
// trailing window. The label is advisory only; it never feeds back into
// risk scoring.
func ClassifyConfidence(loggedDays int) domain.ConfidenceLevel {
	switch {
	case loggedDays < 7:
		return domain.ConfidenceMinimal
	case loggedDays < 21:
		return domain.ConfidenceModerate
	case loggedDays < 45:
		return domain.ConfidenceGood
	default:
		return domain.ConfidenceRobust
	}
}
