package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/repository"
	"github.com/hydrolog/hydration-tracker/internal/scoring"
	"github.com/hydrolog/hydration-tracker/pkg/pagination"
)

type DrinkLogService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDrinkRequest) (*domain.DrinkEvent, bool, error)
	Update(ctx context.Context, userID uuid.UUID, drinkID uuid.UUID, req *domain.UpdateDrinkRequest) (*domain.DrinkEvent, error)
	Delete(ctx context.Context, userID uuid.UUID, drinkID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.DrinkFilter) (*domain.DrinkListResponse, error)
	DailySummary(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error)
}

type drinkLogService struct {
	repo     repository.DrinkEventRepository
	userRepo repository.UserRepository
}

func NewDrinkLogService(repo repository.DrinkEventRepository, userRepo repository.UserRepository) DrinkLogService {
	return &drinkLogService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create logs a new drink event
// Returns (event, isExisting, error) - isExisting is true if returning an existing event due to idempotency
func (s *drinkLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDrinkRequest) (*domain.DrinkEvent, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	if !req.Variant.Valid() {
		return nil, false, domain.ErrUnknownVariant
	}

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil // Return existing event
		}
	}

	event := &domain.DrinkEvent{
		UserID:          userID,
		VolumeMl:        scoring.ToMilliliters(req.Amount, req.Unit),
		Variant:         req.Variant,
		OccurredAt:      req.OccurredAt.UTC(),
		ClientRequestID: req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, false, err
	}

	return event, false, nil
}

// Update edits a logged drink in place (amount, variant, time)
func (s *drinkLogService) Update(ctx context.Context, userID uuid.UUID, drinkID uuid.UUID, req *domain.UpdateDrinkRequest) (*domain.DrinkEvent, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	event, err := s.repo.GetByID(ctx, drinkID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if event.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if req.Amount != nil {
		unit := domain.UnitMilliliters
		if req.Unit != nil {
			unit = *req.Unit
		}
		event.VolumeMl = scoring.ToMilliliters(*req.Amount, unit)
	}
	if req.Variant != nil {
		if !req.Variant.Valid() {
			return nil, domain.ErrUnknownVariant
		}
		event.Variant = *req.Variant
	}
	if req.OccurredAt != nil {
		event.OccurredAt = req.OccurredAt.UTC()
	}

	if event.VolumeMl <= 0 {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *drinkLogService) Delete(ctx context.Context, userID uuid.UUID, drinkID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	event, err := s.repo.GetByID(ctx, drinkID)
	if err != nil {
		return err
	}
	if event.UserID != userID {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, drinkID)
}

func (s *drinkLogService) List(ctx context.Context, userID uuid.UUID, filter domain.DrinkFilter) (*domain.DrinkListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	events, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(events) > limit

	// Trim to actual limit
	if hasMore {
		events = events[:limit]
	}

	response := &domain.DrinkListResponse{
		Data: make([]domain.DrinkResponse, len(events)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, event := range events {
		response.Data[i] = event.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(events) > 0 {
		last := events[len(events)-1]
		cursor := &pagination.Cursor{
			ID:         last.ID,
			OccurredAt: last.OccurredAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// DailySummary aggregates the drink events of one calendar day in the
// user's timezone. An empty date means today.
func (s *drinkLogService) DailySummary(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart, err := localDayStart(date, user.Timezone, time.Now())
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.repo.ListByOccurredRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &domain.DailySummaryResponse{
		Date:       dayStart.Format("2006-01-02"),
		EventCount: len(events),
		Aggregate:  scoring.Aggregate(events),
	}, nil
}

// localDayStart resolves a YYYY-MM-DD date to local midnight in the user's
// timezone. Empty date means the current day relative to now.
func localDayStart(date, timezone string, now time.Time) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}

	if date == "" {
		n := now.In(loc)
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc), nil
	}

	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return dayStart, nil
}

// utcDayKey normalizes a local day start to the UTC date value used for
// date-typed database columns.
func utcDayKey(dayStart time.Time) time.Time {
	return time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, time.UTC)
}
