package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/langfuse"
	"github.com/hydrolog/hydration-tracker/internal/llm"
	"github.com/hydrolog/hydration-tracker/internal/repository"
	"github.com/hydrolog/hydration-tracker/internal/scoring"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnalysisService computes and caches the per-day analyses. Refresh
// operations replace the cached snapshot under the one-per-day retention
// policy; reads never recompute.
type AnalysisService interface {
	RefreshSleep(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error)
	GetSleep(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error)
	RefreshWeather(ctx context.Context, userID uuid.UUID, date string, report *domain.WeatherReport) (*domain.WeatherAnalysisResponse, error)
	GetWeather(ctx context.Context, userID uuid.UUID, date string) (*domain.WeatherAnalysisResponse, error)
}

type analysisService struct {
	drinkRepo    repository.DrinkEventRepository
	sleepRepo    repository.SleepSummaryRepository
	snapshotRepo repository.SnapshotRepository
	userRepo     repository.UserRepository
	llmClient    llm.CommentLLM
	lfClient     langfuse.Client
}

// NewAnalysisService creates a new AnalysisService. llmClient may be nil;
// refreshes then store an empty comment. lfClient may be nil to skip
// Langfuse trace recording.
func NewAnalysisService(
	drinkRepo repository.DrinkEventRepository,
	sleepRepo repository.SleepSummaryRepository,
	snapshotRepo repository.SnapshotRepository,
	userRepo repository.UserRepository,
	llmClient llm.CommentLLM,
	lfClient langfuse.Client,
) AnalysisService {
	return &analysisService{
		drinkRepo:    drinkRepo,
		sleepRepo:    sleepRepo,
		snapshotRepo: snapshotRepo,
		userRepo:     userRepo,
		llmClient:    llmClient,
		lfClient:     lfClient,
	}
}

func (s *analysisService) RefreshSleep(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart, err := localDayStart(date, user.Timezone, time.Now())
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)
	dayKey := utcDayKey(dayStart)

	// Fetch the prior day too so the evening window can cross midnight.
	events, err := s.drinkRepo.ListByOccurredRange(ctx, userID, dayStart.AddDate(0, 0, -1), dayEnd)
	if err != nil {
		return nil, err
	}

	var dayEvents []domain.DrinkEvent
	for _, ev := range events {
		if !ev.OccurredAt.Before(dayStart) && ev.OccurredAt.Before(dayEnd) {
			dayEvents = append(dayEvents, ev)
		}
	}

	sleep, err := s.sleepRepo.FindForDay(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}

	loggedDays, err := s.drinkRepo.CountLoggedDays(ctx, userID, dayEnd.AddDate(0, 0, -scoring.ConfidenceWindowDays), dayEnd)
	if err != nil {
		return nil, err
	}

	aggregate, risk := computeSleepRisk(ctx, userID, scoring.RiskInput{
		Events:     events,
		Sleep:      sleep,
		TargetMl:   user.DailyTargetMl,
		DayStart:   dayStart,
		LoggedDays: loggedDays,
	}, dayEvents)

	comment, traceID := s.generateComment(ctx, userID, "hydration-sleep-analysis", &llm.CommentContext{Date: dayStart.Format("2006-01-02"), Aggregate: aggregate, Risk: &risk})
	response := &domain.SleepAnalysisResponse{
		Date:           dayStart.Format("2006-01-02"),
		Aggregate:      aggregate,
		Risk:           risk,
		Comment:        comment,
		CommentTraceID: traceID,
		GeneratedAt:    time.Now().UTC(),
	}

	if err := s.storeSnapshot(ctx, userID, domain.AnalysisSleep, dayKey, response, response.Comment); err != nil {
		return nil, err
	}

	return response, nil
}

func (s *analysisService) GetSleep(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, userID, domain.AnalysisSleep, date)
	if err != nil {
		return nil, err
	}

	var response domain.SleepAnalysisResponse
	if err := json.Unmarshal([]byte(snapshot.Result), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (s *analysisService) RefreshWeather(ctx context.Context, userID uuid.UUID, date string, report *domain.WeatherReport) (*domain.WeatherAnalysisResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart, err := localDayStart(date, user.Timezone, time.Now())
	if err != nil {
		return nil, err
	}
	dayKey := utcDayKey(dayStart)

	events, err := s.drinkRepo.ListByOccurredRange(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	aggregate := scoring.Aggregate(events)

	advice := scoring.ComputeWeatherAdvice(*report)

	comment, traceID := s.generateComment(ctx, userID, "hydration-weather-advice", &llm.CommentContext{Date: dayStart.Format("2006-01-02"), Aggregate: aggregate, Weather: &advice})
	response := &domain.WeatherAnalysisResponse{
		Date:           dayStart.Format("2006-01-02"),
		Advice:         advice,
		Comment:        comment,
		CommentTraceID: traceID,
		GeneratedAt:    time.Now().UTC(),
	}

	if err := s.storeSnapshot(ctx, userID, domain.AnalysisWeather, dayKey, response, response.Comment); err != nil {
		return nil, err
	}

	return response, nil
}

func (s *analysisService) GetWeather(ctx context.Context, userID uuid.UUID, date string) (*domain.WeatherAnalysisResponse, error) {
	snapshot, err := s.loadSnapshot(ctx, userID, domain.AnalysisWeather, date)
	if err != nil {
		return nil, err
	}

	var response domain.WeatherAnalysisResponse
	if err := json.Unmarshal([]byte(snapshot.Result), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// computeSleepRisk runs the pure model inside a traced span so the inputs
// and outputs land in Langfuse alongside the comment generation.
func computeSleepRisk(ctx context.Context, userID uuid.UUID, in scoring.RiskInput, dayEvents []domain.DrinkEvent) (domain.DailyAggregate, domain.HydrationRiskResult) {
	tracer := otel.Tracer("hydration-tracker-api/analysis")
	_, span := tracer.Start(ctx, "AnalysisService.ComputeSleepRisk",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("analysis.day", in.DayStart.Format("2006-01-02")),
		),
	)
	defer span.End()

	aggregate := scoring.Aggregate(dayEvents)
	in.Aggregate = aggregate

	inputPayload := map[string]any{
		"user_id":     userID.String(),
		"day":         in.DayStart.Format("2006-01-02"),
		"event_count": len(dayEvents),
		"target_ml":   in.TargetMl,
		"has_sleep":   in.Sleep != nil,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	risk := scoring.ComputeRisk(in)

	span.SetAttributes(
		attribute.Int("risk.score", risk.RiskScore),
		attribute.String("risk.bucket", string(risk.NocturiaRiskBucket)),
	)
	if outputJSON, err := json.Marshal(risk); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return aggregate, risk
}

// generateComment asks the LLM for a coach comment and records a Langfuse
// trace for it. The trace ID is returned so responses can carry it for
// feedback linking. Failures degrade to an empty comment; the analysis
// itself always succeeds.
func (s *analysisService) generateComment(ctx context.Context, userID uuid.UUID, name string, commentCtx *llm.CommentContext) (comment, traceID string) {
	if s.llmClient == nil {
		return "", ""
	}

	comment, err := s.llmClient.GenerateComment(ctx, commentCtx)
	if err != nil {
		log.Printf("comment generation failed, storing empty comment: %v", err)
		return "", ""
	}

	if s.lfClient != nil && s.lfClient.IsEnabled() {
		traceID, err = s.lfClient.CreateTrace(ctx, langfuse.TraceInput{
			UserID: userID.String(),
			Name:   name,
			Input:  commentCtx,
			Output: map[string]any{"comment": comment},
			Tags:   []string{"hydration-comment"},
		})
		if err != nil {
			log.Printf("langfuse trace failed: %v", err)
			traceID = ""
		}
	}

	return comment, traceID
}

func (s *analysisService) storeSnapshot(ctx context.Context, userID uuid.UUID, kind domain.AnalysisKind, dayKey time.Time, result any, comment string) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return s.snapshotRepo.ReplaceForDay(ctx, &domain.AnalysisSnapshot{
		UserID:  userID,
		Kind:    kind,
		Day:     dayKey,
		Result:  string(payload),
		Comment: comment,
	})
}

func (s *analysisService) loadSnapshot(ctx context.Context, userID uuid.UUID, kind domain.AnalysisKind, date string) (*domain.AnalysisSnapshot, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart, err := localDayStart(date, user.Timezone, time.Now())
	if err != nil {
		return nil, err
	}

	return s.snapshotRepo.GetByDay(ctx, userID, kind, utcDayKey(dayStart))
}
