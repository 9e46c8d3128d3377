package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone      string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	DailyTargetMl float64   `gorm:"not null;default:0" json:"daily_target_ml"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone string `json:"timezone" validate:"required,timezone"`
	// Personalized daily hydration target in ml (omit to use the default)
	DailyTargetMl *float64 `json:"daily_target_ml,omitempty" validate:"omitempty,gt=0"`
}

// UpdateUserRequest is the request body for updating a user
type UpdateUserRequest struct {
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone"`
	// Set to 0 to fall back to the default target
	DailyTargetMl *float64 `json:"daily_target_ml,omitempty" validate:"omitempty,gte=0"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Timezone      string    `json:"timezone"`
	DailyTargetMl float64   `json:"daily_target_ml"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Timezone:      u.Timezone,
		DailyTargetMl: u.DailyTargetMl,
		CreatedAt:     u.CreatedAt,
	}
}
