package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
)

type analysisFixture struct {
	userID       uuid.UUID
	userRepo     *MockUserRepository
	drinkRepo    *MockDrinkEventRepository
	sleepRepo    *MockSleepSummaryRepository
	snapshotRepo *MockSnapshotRepository
	llm          *MockCommentLLM
	svc          AnalysisService
}

func newAnalysisFixture(timezone string) *analysisFixture {
	f := &analysisFixture{
		userID:       uuid.New(),
		userRepo:     NewMockUserRepository(),
		drinkRepo:    NewMockDrinkEventRepository(),
		sleepRepo:    NewMockSleepSummaryRepository(),
		snapshotRepo: NewMockSnapshotRepository(),
		llm:          &MockCommentLLM{comment: "Keep the evening light."},
	}
	f.userRepo.users[f.userID] = &domain.User{ID: f.userID, Timezone: timezone}
	f.svc = NewAnalysisService(f.drinkRepo, f.sleepRepo, f.snapshotRepo, f.userRepo, f.llm, nil)
	return f
}

func (f *analysisFixture) addDrink(variant domain.DrinkVariant, volumeMl float64, at time.Time) {
	f.drinkRepo.add(&domain.DrinkEvent{
		ID:         uuid.New(),
		UserID:     f.userID,
		VolumeMl:   volumeMl,
		Variant:    variant,
		OccurredAt: at,
	})
}

func TestAnalysisService_RefreshSleep(t *testing.T) {
	f := newAnalysisFixture("UTC")
	day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 500, day.Add(9*time.Hour))
	f.addDrink(domain.DrinkWater, 750, day.Add(20*time.Hour))

	resp, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("RefreshSleep() error = %v", err)
	}

	if resp.Date != "2024-01-16" {
		t.Errorf("Date = %s, want 2024-01-16", resp.Date)
	}
	if resp.Aggregate.TotalVolumeMl != 1250 {
		t.Errorf("TotalVolumeMl = %v, want 1250", resp.Aggregate.TotalVolumeMl)
	}
	// 750/1250 = 0.6 evening ratio against the assumed 22:00 bedtime.
	if resp.Risk.NocturiaRiskBucket != domain.RiskHigh {
		t.Errorf("bucket = %s, want high", resp.Risk.NocturiaRiskBucket)
	}
	if !resp.Risk.BedTimeAssumed {
		t.Error("BedTimeAssumed = false without sleep data")
	}
	if resp.Comment != "Keep the evening light." {
		t.Errorf("Comment = %q, want the generated comment", resp.Comment)
	}
	if f.llm.calls != 1 {
		t.Errorf("LLM called %d times, want 1", f.llm.calls)
	}

	// The refresh persisted exactly one snapshot.
	if got := f.snapshotRepo.countFor(f.userID, domain.AnalysisSleep); got != 1 {
		t.Errorf("stored %d sleep snapshots, want 1", got)
	}
}

func TestAnalysisService_RefreshSleep_UsesSleepRecord(t *testing.T) {
	f := newAnalysisFixture("UTC")
	day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 1000, day.Add(10*time.Hour))

	f.sleepRepo.Upsert(context.Background(), &domain.SleepSummary{
		ID:       uuid.New(),
		UserID:   f.userID,
		Day:      day,
		BedTime:  time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC),
		WakeTime: time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
	})

	resp, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("RefreshSleep() error = %v", err)
	}

	if resp.Risk.BedTimeAssumed {
		t.Error("BedTimeAssumed = true with a sleep record present")
	}
	if resp.Risk.BedTime.Hour() != 23 || resp.Risk.BedTime.Minute() != 30 {
		t.Errorf("BedTime = %v, want 23:30 anchored on the query day", resp.Risk.BedTime)
	}
}

func TestAnalysisService_RetentionReplacesOlderDay(t *testing.T) {
	f := newAnalysisFixture("UTC")
	day1 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 500, day1.Add(9*time.Hour))
	f.addDrink(domain.DrinkWater, 600, day2.Add(9*time.Hour))

	if _, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-15"); err != nil {
		t.Fatalf("first refresh error = %v", err)
	}
	if _, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-16"); err != nil {
		t.Fatalf("second refresh error = %v", err)
	}

	if got := f.snapshotRepo.countFor(f.userID, domain.AnalysisSleep); got != 1 {
		t.Fatalf("stored %d sleep snapshots after two refreshes, want 1", got)
	}

	// Only the latest day survives; the older snapshot was purged.
	if _, err := f.svc.GetSleep(context.Background(), f.userID, "2024-01-15"); !errors.Is(err, domain.ErrNoSnapshot) {
		t.Errorf("GetSleep(old day) error = %v, want ErrNoSnapshot", err)
	}
	resp, err := f.svc.GetSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("GetSleep(current day) error = %v", err)
	}
	if resp.Aggregate.TotalVolumeMl != 600 {
		t.Errorf("cached TotalVolumeMl = %v, want 600", resp.Aggregate.TotalVolumeMl)
	}
}

func TestAnalysisService_GetSleep_ReadsCacheOnly(t *testing.T) {
	f := newAnalysisFixture("UTC")
	day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 500, day.Add(9*time.Hour))

	if _, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-16"); err != nil {
		t.Fatalf("refresh error = %v", err)
	}

	// Add another drink after the refresh; the cached read must not see it.
	f.addDrink(domain.DrinkWater, 9000, day.Add(10*time.Hour))

	resp, err := f.svc.GetSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("GetSleep() error = %v", err)
	}
	if resp.Aggregate.TotalVolumeMl != 500 {
		t.Errorf("cached TotalVolumeMl = %v, want stale 500", resp.Aggregate.TotalVolumeMl)
	}
	if f.llm.calls != 1 {
		t.Errorf("LLM called %d times, want 1 (reads never regenerate)", f.llm.calls)
	}
}

func TestAnalysisService_RefreshRecordsCommentTrace(t *testing.T) {
	f := newAnalysisFixture("UTC")
	lf := &MockLangfuseClient{enabled: true}
	f.svc = NewAnalysisService(f.drinkRepo, f.sleepRepo, f.snapshotRepo, f.userRepo, f.llm, lf)
	day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 500, day.Add(9*time.Hour))

	resp, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("RefreshSleep() error = %v", err)
	}

	if resp.CommentTraceID != "trace-1" {
		t.Errorf("CommentTraceID = %q, want trace-1", resp.CommentTraceID)
	}
	if len(lf.traces) != 1 {
		t.Fatalf("recorded %d traces, want 1", len(lf.traces))
	}
	if lf.traces[0].Name != "hydration-sleep-analysis" || lf.traces[0].UserID != f.userID.String() {
		t.Errorf("trace = %+v, want hydration-sleep-analysis for the user", lf.traces[0])
	}

	// The cached read carries the same trace ID for feedback linking.
	cached, err := f.svc.GetSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("GetSleep() error = %v", err)
	}
	if cached.CommentTraceID != resp.CommentTraceID {
		t.Errorf("cached CommentTraceID = %q, want %q", cached.CommentTraceID, resp.CommentTraceID)
	}

	// Weather refreshes trace under their own name.
	weather, err := f.svc.RefreshWeather(context.Background(), f.userID, "2024-01-16", &domain.WeatherReport{TemperatureC: 31, Humidity: 60, UVIndex: 7})
	if err != nil {
		t.Fatalf("RefreshWeather() error = %v", err)
	}
	if weather.CommentTraceID != "trace-2" {
		t.Errorf("weather CommentTraceID = %q, want trace-2", weather.CommentTraceID)
	}
	if lf.traces[1].Name != "hydration-weather-advice" {
		t.Errorf("weather trace name = %q", lf.traces[1].Name)
	}
}

func TestAnalysisService_CommentFailureDegrades(t *testing.T) {
	f := newAnalysisFixture("UTC")
	f.llm.err = errors.New("model overloaded")
	day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 500, day.Add(9*time.Hour))

	resp, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("RefreshSleep() error = %v, analysis must survive LLM failure", err)
	}
	if resp.Comment != "" {
		t.Errorf("Comment = %q, want empty on LLM failure", resp.Comment)
	}
	if resp.CommentTraceID != "" {
		t.Errorf("CommentTraceID = %q, want empty on LLM failure", resp.CommentTraceID)
	}
	if got := f.snapshotRepo.countFor(f.userID, domain.AnalysisSleep); got != 1 {
		t.Errorf("snapshot not stored despite LLM failure")
	}
}

func TestAnalysisService_NilLLMClient(t *testing.T) {
	f := newAnalysisFixture("UTC")
	f.svc = NewAnalysisService(f.drinkRepo, f.sleepRepo, f.snapshotRepo, f.userRepo, nil, nil)
	day := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 500, day.Add(9*time.Hour))

	resp, err := f.svc.RefreshSleep(context.Background(), f.userID, "2024-01-16")
	if err != nil {
		t.Fatalf("RefreshSleep() error = %v", err)
	}
	if resp.Comment != "" {
		t.Errorf("Comment = %q, want empty without an LLM client", resp.Comment)
	}
}

func TestAnalysisService_RefreshWeather(t *testing.T) {
	f := newAnalysisFixture("UTC")
	day := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	f.addDrink(domain.DrinkWater, 1500, day.Add(11*time.Hour))

	report := &domain.WeatherReport{TemperatureC: 31, Humidity: 45, UVIndex: 7}
	resp, err := f.svc.RefreshWeather(context.Background(), f.userID, "2024-07-10", report)
	if err != nil {
		t.Fatalf("RefreshWeather() error = %v", err)
	}

	// 500 for the heat, 150 for the UV.
	if resp.Advice.ExtraWaterMl != 650 {
		t.Errorf("ExtraWaterMl = %v, want 650", resp.Advice.ExtraWaterMl)
	}
	if resp.Advice.HeatStressBucket != domain.RiskHigh {
		t.Errorf("HeatStressBucket = %s, want high", resp.Advice.HeatStressBucket)
	}

	cached, err := f.svc.GetWeather(context.Background(), f.userID, "2024-07-10")
	if err != nil {
		t.Fatalf("GetWeather() error = %v", err)
	}
	if cached.Advice.ExtraWaterMl != 650 {
		t.Errorf("cached ExtraWaterMl = %v, want 650", cached.Advice.ExtraWaterMl)
	}

	// Weather and sleep snapshots are retained independently.
	if got := f.snapshotRepo.countFor(f.userID, domain.AnalysisWeather); got != 1 {
		t.Errorf("stored %d weather snapshots, want 1", got)
	}
}

func TestAnalysisService_GetWeather_NoSnapshot(t *testing.T) {
	f := newAnalysisFixture("UTC")

	if _, err := f.svc.GetWeather(context.Background(), f.userID, "2024-07-10"); !errors.Is(err, domain.ErrNoSnapshot) {
		t.Fatalf("GetWeather() error = %v, want ErrNoSnapshot", err)
	}
}

func TestAnalysisService_UnknownUser(t *testing.T) {
	f := newAnalysisFixture("UTC")

	if _, err := f.svc.RefreshSleep(context.Background(), uuid.New(), "2024-01-16"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("RefreshSleep() error = %v, want ErrNotFound", err)
	}
}

func TestAnalysisService_InvalidDate(t *testing.T) {
	f := newAnalysisFixture("UTC")

	if _, err := f.svc.RefreshSleep(context.Background(), f.userID, "not-a-date"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("RefreshSleep() error = %v, want ErrInvalidInput", err)
	}
}
