package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/repository"
)

type SleepSummaryService interface {
	// Upsert stores the device sleep record for a day, replacing any
	// existing record for that day.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepSummaryRequest) (*domain.SleepSummary, error)
}

type sleepSummaryService struct {
	repo     repository.SleepSummaryRepository
	userRepo repository.UserRepository
}

func NewSleepSummaryService(repo repository.SleepSummaryRepository, userRepo repository.UserRepository) SleepSummaryService {
	return &sleepSummaryService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *sleepSummaryService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepSummaryRequest) (*domain.SleepSummary, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	actualDate := day
	if req.ActualDate != nil && *req.ActualDate != "" {
		actualDate, err = time.Parse("2006-01-02", *req.ActualDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	summary := &domain.SleepSummary{
		ID:               uuid.New(),
		UserID:           userID,
		Day:              day,
		DurationHours:    req.DurationHours,
		QualityScore:     req.QualityScore,
		BedTime:          req.BedTime.UTC(),
		WakeTime:         req.WakeTime.UTC(),
		DeepSleepMinutes: req.DeepSleepMinutes,
		RemSleepMinutes:  req.RemSleepMinutes,
		ActualDate:       actualDate,
	}

	if err := s.repo.Upsert(ctx, summary); err != nil {
		return nil, err
	}

	return summary, nil
}
