package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/pkg/pagination"
	"gorm.io/gorm"
)

type DrinkEventRepository interface {
	Create(ctx context.Context, event *domain.DrinkEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DrinkEvent, error)
	Update(ctx context.Context, event *domain.DrinkEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.DrinkFilter) ([]domain.DrinkEvent, error)
	ListByOccurredRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DrinkEvent, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.DrinkEvent, error)
	CountLoggedDays(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
}

type drinkEventRepository struct {
	db *gorm.DB
}

func NewDrinkEventRepository(db *gorm.DB) DrinkEventRepository {
	return &drinkEventRepository{db: db}
}

func (r *drinkEventRepository) Create(ctx context.Context, event *domain.DrinkEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *drinkEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DrinkEvent, error) {
	var event domain.DrinkEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *drinkEventRepository) Update(ctx context.Context, event *domain.DrinkEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *drinkEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.DrinkEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *drinkEventRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DrinkFilter) ([]domain.DrinkEvent, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with occurred_at < cursor.OccurredAt
			// or same occurred_at but id < cursor.ID
			query = query.Where(
				"(occurred_at < ?) OR (occurred_at = ? AND id < ?)",
				cursor.OccurredAt, cursor.OccurredAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var events []domain.DrinkEvent
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *drinkEventRepository) ListByOccurredRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DrinkEvent, error) {
	var events []domain.DrinkEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *drinkEventRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.DrinkEvent, error) {
	var event domain.DrinkEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &event, nil
}

// CountLoggedDays counts distinct calendar days with at least one drink
// event in the range. Backs the advisory confidence label only, so the
// UTC date truncation is acceptable.
func (r *drinkEventRepository) CountLoggedDays(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.DrinkEvent{}).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, from, to).
		Distinct("DATE(occurred_at)").
		Count(&count).Error
	return int(count), err
}
