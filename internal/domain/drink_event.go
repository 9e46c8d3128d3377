package domain

import (
	"time"

	"github.com/google/uuid"
)

// VolumeUnit is the unit a drink volume was entered in. Storage is always
// milliliters regardless of the entry unit.
// @Description Volume unit: ML for milliliters, FL_OZ for US fluid ounces.
type VolumeUnit string

const (
	UnitMilliliters VolumeUnit = "ML"
	UnitFluidOunces VolumeUnit = "FL_OZ"
)

type DrinkEvent struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index:idx_drink_events_user_occurred" json:"user_id"`
	VolumeMl        float64      `gorm:"not null" json:"volume_ml"`
	Variant         DrinkVariant `gorm:"type:varchar(32);not null" json:"variant"`
	OccurredAt      time.Time    `gorm:"not null;index:idx_drink_events_user_occurred,sort:desc" json:"occurred_at"`
	ClientRequestID *string      `gorm:"type:varchar(255);uniqueIndex:idx_user_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DrinkEvent) TableName() string {
	return "drink_events"
}

// CreateDrinkRequest is the request body for logging a drink.
// @Description Request payload for recording a consumed drink.
type CreateDrinkRequest struct {
	// Consumed amount in the given unit (must be positive)
	Amount float64 `json:"amount" validate:"required,gt=0" example:"12"`
	// Unit the amount was entered in
	Unit VolumeUnit `json:"unit" validate:"required,oneof=ML FL_OZ" example:"FL_OZ" enums:"ML,FL_OZ"`
	// Beverage type from the catalog
	Variant DrinkVariant `json:"variant" validate:"required,drinkvariant" example:"COFFEE"`
	// Consumption time in RFC3339 format
	OccurredAt time.Time `json:"occurred_at" validate:"required" example:"2024-01-15T14:00:00Z"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// UpdateDrinkRequest is the request body for editing a logged drink in place.
// @Description Partial update of a drink record. Omitted fields are unchanged.
type UpdateDrinkRequest struct {
	// New amount (interpreted in Unit, default ML)
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gt=0" example:"350"`
	// Unit for Amount
	Unit *VolumeUnit `json:"unit,omitempty" validate:"omitempty,oneof=ML FL_OZ" example:"ML" enums:"ML,FL_OZ"`
	// New beverage type
	Variant *DrinkVariant `json:"variant,omitempty" validate:"omitempty,drinkvariant" example:"TEA"`
	// New consumption time
	OccurredAt *time.Time `json:"occurred_at,omitempty" example:"2024-01-15T15:30:00Z"`
}

// DrinkResponse is the response body for drink endpoints.
// @Description Logged drink record with canonical milliliter volume.
type DrinkResponse struct {
	// Unique drink record identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Owner user ID
	UserID uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Volume in milliliters
	VolumeMl float64 `json:"volume_ml" example:"354.882"`
	// Beverage type
	Variant DrinkVariant `json:"variant" example:"COFFEE"`
	// Consumption time (UTC)
	OccurredAt time.Time `json:"occurred_at" example:"2024-01-15T14:00:00Z"`
	// Client-provided request ID (if any)
	ClientRequestID *string `json:"client_request_id,omitempty" example:"client-uuid-12345"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T14:00:05Z"`
}

func (d *DrinkEvent) ToResponse() DrinkResponse {
	return DrinkResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		VolumeMl:        d.VolumeMl,
		Variant:         d.Variant,
		OccurredAt:      d.OccurredAt,
		ClientRequestID: d.ClientRequestID,
		CreatedAt:       d.CreatedAt,
	}
}

// DrinkListResponse is the response body for listing drinks.
// @Description Paginated list of drink records.
type DrinkListResponse struct {
	// Array of drink records
	Data []DrinkResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DrinkFilter contains filter parameters for listing drinks
type DrinkFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
