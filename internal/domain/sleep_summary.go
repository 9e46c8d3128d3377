package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepSummary is a device-provided sleep record for one calendar day.
// It is pushed by the client (the app's sleep provider integration) and
// consumed by the hydration risk analysis.
type SleepSummary struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_summaries_user_day" json:"user_id"`
	// Calendar day the record is stored under (midnight UTC date value)
	Day              time.Time `gorm:"type:date;not null;uniqueIndex:idx_sleep_summaries_user_day" json:"day"`
	DurationHours    float64   `gorm:"not null" json:"duration_hours"`
	QualityScore     float64   `gorm:"not null" json:"quality_score"`
	BedTime          time.Time `gorm:"not null" json:"bed_time"`
	WakeTime         time.Time `gorm:"not null" json:"wake_time"`
	DeepSleepMinutes int       `gorm:"not null;default:0" json:"deep_sleep_minutes"`
	RemSleepMinutes  int       `gorm:"not null;default:0" json:"rem_sleep_minutes"`
	// The day the data nominally belongs to; differs from Day when the
	// provider substituted stale data.
	ActualDate time.Time `gorm:"type:date;not null" json:"actual_date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSummary) TableName() string {
	return "sleep_summaries"
}

// UpsertSleepSummaryRequest is the request body for pushing a sleep summary.
// @Description Device sleep record for a calendar day. Replaces any existing record for that day.
type UpsertSleepSummaryRequest struct {
	// Calendar day in YYYY-MM-DD format
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-01-16"`
	// Total sleep duration in hours
	DurationHours float64 `json:"duration_hours" validate:"gte=0,lte=24" example:"7.5"`
	// Sleep quality score from 0 to 1
	QualityScore float64 `json:"quality_score" validate:"gte=0,lte=1" example:"0.82"`
	// Bedtime in RFC3339 format
	BedTime time.Time `json:"bed_time" validate:"required" example:"2024-01-15T22:30:00Z"`
	// Wake time in RFC3339 format (must be after bed_time)
	WakeTime time.Time `json:"wake_time" validate:"required,gtfield=BedTime" example:"2024-01-16T06:00:00Z"`
	// Deep sleep minutes
	DeepSleepMinutes int `json:"deep_sleep_minutes" validate:"gte=0" example:"95"`
	// REM sleep minutes
	RemSleepMinutes int `json:"rem_sleep_minutes" validate:"gte=0" example:"110"`
	// Day the data nominally belongs to, if stale data is substituted (YYYY-MM-DD)
	ActualDate *string `json:"actual_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
}

// SleepSummaryResponse is the response body for sleep summary endpoints.
// @Description Stored sleep summary.
type SleepSummaryResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Date             string    `json:"date" example:"2024-01-16"`
	DurationHours    float64   `json:"duration_hours"`
	QualityScore     float64   `json:"quality_score"`
	BedTime          time.Time `json:"bed_time"`
	WakeTime         time.Time `json:"wake_time"`
	DeepSleepMinutes int       `json:"deep_sleep_minutes"`
	RemSleepMinutes  int       `json:"rem_sleep_minutes"`
	ActualDate       string    `json:"actual_date" example:"2024-01-16"`
	CreatedAt        time.Time `json:"created_at"`
}

func (s *SleepSummary) ToResponse() SleepSummaryResponse {
	return SleepSummaryResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		Date:             s.Day.Format("2006-01-02"),
		DurationHours:    s.DurationHours,
		QualityScore:     s.QualityScore,
		BedTime:          s.BedTime,
		WakeTime:         s.WakeTime,
		DeepSleepMinutes: s.DeepSleepMinutes,
		RemSleepMinutes:  s.RemSleepMinutes,
		ActualDate:       s.ActualDate.Format("2006-01-02"),
		CreatedAt:        s.CreatedAt,
	}
}
