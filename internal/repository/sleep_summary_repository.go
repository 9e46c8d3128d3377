package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// staleSummaryLookback bounds how old a substituted sleep summary may be
// when no record exists for the requested day.
const staleSummaryLookback = 7

type SleepSummaryRepository interface {
	Upsert(ctx context.Context, summary *domain.SleepSummary) error
	// FindForDay returns the summary stored for the day, or the most recent
	// one within the lookback window when the day itself has none. Returns
	// (nil, nil) when nothing usable exists.
	FindForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.SleepSummary, error)
}

type sleepSummaryRepository struct {
	db *gorm.DB
}

func NewSleepSummaryRepository(db *gorm.DB) SleepSummaryRepository {
	return &sleepSummaryRepository{db: db}
}

func (r *sleepSummaryRepository) Upsert(ctx context.Context, summary *domain.SleepSummary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"duration_hours", "quality_score", "bed_time", "wake_time",
				"deep_sleep_minutes", "rem_sleep_minutes", "actual_date",
			}),
		}).
		Create(summary).Error
}

func (r *sleepSummaryRepository) FindForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.SleepSummary, error) {
	var summary domain.SleepSummary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&summary).Error
	if err == nil {
		return &summary, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	// No record for the day itself; substitute the freshest recent one.
	earliest := day.AddDate(0, 0, -staleSummaryLookback)
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND day < ? AND day >= ?", userID, day, earliest).
		Order("day DESC").
		First(&summary).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}
