package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskBucket is the bucketed outcome of an additive threshold score.
// @Description Bucketed risk level.
type RiskBucket string

const (
	RiskLow      RiskBucket = "low"
	RiskModerate RiskBucket = "moderate"
	RiskHigh     RiskBucket = "high"
)

// ConfidenceLevel labels how much logging history backs an analysis.
// It is advisory only and never changes the risk score.
// @Description Data-completeness label based on trailing logging history.
type ConfidenceLevel string

const (
	ConfidenceMinimal  ConfidenceLevel = "minimal"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceGood     ConfidenceLevel = "good"
	ConfidenceRobust   ConfidenceLevel = "robust"
)

// AnalysisKind distinguishes the cached analysis families.
// @Description Analysis kind: sleep or weather.
type AnalysisKind string

const (
	AnalysisSleep   AnalysisKind = "sleep"
	AnalysisWeather AnalysisKind = "weather"
)

// CategoryVolume is one entry of the per-category breakdown, sorted
// descending by volume for display.
type CategoryVolume struct {
	Category DrinkCategory `json:"category" example:"fully_hydrating"`
	VolumeMl float64       `json:"volume_ml" example:"1200"`
}

// DailyAggregate holds the derived totals for one day's drink events.
// Recomputed on demand, never persisted on its own.
// @Description Derived totals for a single day.
type DailyAggregate struct {
	// Sum of all volumes regardless of variant
	TotalVolumeMl float64 `json:"total_volume_ml" example:"1850"`
	// Sum of volume times hydration factor (may be negative)
	NetHydrationMl float64 `json:"net_hydration_ml" example:"1645"`
	// Magnitude of the dehydrating contribution (always >= 0)
	DehydrationMl float64 `json:"dehydration_ml" example:"90"`
	// Per-category volumes, descending
	CategoryBreakdown []CategoryVolume `json:"category_breakdown"`
}

// HydrationRiskResult is the output of the hydration/sleep risk model.
// @Description Nocturia risk analysis for one day.
type HydrationRiskResult struct {
	// Share of the day's volume consumed in the evening window (0..1)
	EveningIntakeRatio float64 `json:"evening_intake_ratio" example:"0.31"`
	// Volume consumed in the evening window
	EveningVolumeMl float64 `json:"evening_volume_ml" example:"575"`
	// Progress toward the daily target, clamped at 1.0
	HydrationScoreRatio float64 `json:"hydration_score_ratio" example:"0.93"`
	// Composite additive risk points
	RiskScore int `json:"risk_score" example:"30"`
	// Bucketed nocturia risk
	NocturiaRiskBucket RiskBucket `json:"nocturia_risk_bucket" example:"moderate"`
	// Caffeinated volume consumed after the afternoon cutoff
	CaffeineAfterCutoffMl float64 `json:"caffeine_after_cutoff_ml" example:"250"`
	// True if an alcoholic drink fell within 4 hours of bedtime
	AlcoholNearBedtime bool `json:"alcohol_near_bedtime" example:"false"`
	// Bedtime the evening window was anchored to
	BedTime time.Time `json:"bed_time" example:"2024-01-15T22:00:00+01:00"`
	// True when no sleep data was available and the default bedtime was used
	BedTimeAssumed bool `json:"bed_time_assumed" example:"true"`
	// Up to two templated insight strings, highest priority first
	Insights []string `json:"insights"`
	// Data-completeness label (advisory only)
	Confidence ConfidenceLevel `json:"confidence" example:"good"`
}

// WeatherReport is the external weather provider input.
// @Description Weather conditions used for the extra-water recommendation.
type WeatherReport struct {
	TemperatureC float64 `json:"temperature_c" validate:"gte=-60,lte=60" example:"31.5"`
	// Relative humidity percent (0-100)
	Humidity float64 `json:"humidity" validate:"gte=0,lte=100" example:"64"`
	UVIndex  float64 `json:"uv_index" validate:"gte=0,lte=15" example:"7"`
}

// WeatherAdviceResult is the weather analogue of the risk model.
// @Description Weather-driven additional-water recommendation.
type WeatherAdviceResult struct {
	// Recommended additional water on top of the daily target
	ExtraWaterMl float64 `json:"extra_water_ml" example:"650"`
	// Bucketed heat stress level
	HeatStressBucket RiskBucket `json:"heat_stress_bucket" example:"moderate"`
	// Up to two templated insight strings
	Insights []string `json:"insights"`
	// Conditions the advice was derived from
	Report WeatherReport `json:"report"`
}

// AnalysisSnapshot caches one analysis result per calendar day and kind.
// The store holds at most one live snapshot per (user, kind); refreshes
// replace rather than accumulate.
type AnalysisSnapshot struct {
	ID     uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID    `gorm:"type:uuid;not null;index:idx_snapshots_user_kind" json:"user_id"`
	Kind   AnalysisKind `gorm:"type:varchar(16);not null;index:idx_snapshots_user_kind" json:"kind"`
	// Calendar day the snapshot belongs to (midnight UTC date value)
	Day time.Time `gorm:"type:date;not null" json:"day"`
	// Serialized analysis result (SleepAnalysisResponse or WeatherAnalysisResponse payload)
	Result string `gorm:"type:jsonb;not null" json:"result"`
	// Externally generated comment, carried opaquely (may be empty)
	Comment   string    `gorm:"type:text;not null;default:''" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AnalysisSnapshot) TableName() string {
	return "analysis_snapshots"
}

// DailySummaryResponse is the response for the daily summary endpoint.
// @Description Daily drink aggregate.
type DailySummaryResponse struct {
	// Day in YYYY-MM-DD format
	Date string `json:"date" example:"2024-01-16"`
	// Number of drink events that day
	EventCount int `json:"event_count" example:"6"`
	// Derived totals
	Aggregate DailyAggregate `json:"aggregate"`
}

// SleepAnalysisResponse is the response for sleep analysis endpoints.
// @Description Cached hydration/sleep risk analysis for one day.
type SleepAnalysisResponse struct {
	Date      string              `json:"date" example:"2024-01-16"`
	Aggregate DailyAggregate      `json:"aggregate"`
	Risk      HydrationRiskResult `json:"risk"`
	// Generated coach comment (empty when generation failed or is disabled)
	Comment string `json:"comment,omitempty"`
	// Langfuse trace ID of the comment, for feedback linking (only present
	// when Langfuse is enabled)
	CommentTraceID string    `json:"comment_trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	GeneratedAt    time.Time `json:"generated_at" example:"2024-01-16T08:12:00Z"`
}

// WeatherAnalysisResponse is the response for weather analysis endpoints.
// @Description Cached weather-driven hydration advice for one day.
type WeatherAnalysisResponse struct {
	Date    string              `json:"date" example:"2024-01-16"`
	Advice  WeatherAdviceResult `json:"advice"`
	Comment string              `json:"comment,omitempty"`
	// Langfuse trace ID of the comment, for feedback linking
	CommentTraceID string    `json:"comment_trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	GeneratedAt    time.Time `json:"generated_at" example:"2024-01-16T08:12:00Z"`
}
