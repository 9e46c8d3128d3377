package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"gorm.io/gorm"
)

type SnapshotRepository interface {
	// ReplaceForDay atomically enforces the retention policy: every snapshot
	// of the same (user, kind) is deleted, then the new record is inserted.
	// After it returns, exactly one snapshot exists for the kind, and its
	// day is the new record's day.
	ReplaceForDay(ctx context.Context, snapshot *domain.AnalysisSnapshot) error
	GetByDay(ctx context.Context, userID uuid.UUID, kind domain.AnalysisKind, day time.Time) (*domain.AnalysisSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) ReplaceForDay(ctx context.Context, snapshot *domain.AnalysisSnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND kind = ?", snapshot.UserID, snapshot.Kind).
			Delete(&domain.AnalysisSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Create(snapshot).Error
	})
}

func (r *snapshotRepository) GetByDay(ctx context.Context, userID uuid.UUID, kind domain.AnalysisKind, day time.Time) (*domain.AnalysisSnapshot, error) {
	var snapshot domain.AnalysisSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND day = ?", userID, kind, day).
		First(&snapshot).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNoSnapshot
		}
		return nil, err
	}
	return &snapshot, nil
}
