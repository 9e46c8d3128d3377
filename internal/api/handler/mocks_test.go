package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/langfuse"
)

// MockDrinkLogService is a mock implementation of service.DrinkLogService
type MockDrinkLogService struct {
	createFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateDrinkRequest) (*domain.DrinkEvent, bool, error)
	updateFunc  func(ctx context.Context, userID, drinkID uuid.UUID, req *domain.UpdateDrinkRequest) (*domain.DrinkEvent, error)
	deleteFunc  func(ctx context.Context, userID, drinkID uuid.UUID) error
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.DrinkFilter) (*domain.DrinkListResponse, error)
	summaryFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error)
}

func (m *MockDrinkLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDrinkRequest) (*domain.DrinkEvent, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.DrinkEvent{ID: uuid.New(), UserID: userID}, false, nil
}

func (m *MockDrinkLogService) Update(ctx context.Context, userID, drinkID uuid.UUID, req *domain.UpdateDrinkRequest) (*domain.DrinkEvent, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, drinkID, req)
	}
	return &domain.DrinkEvent{ID: drinkID, UserID: userID}, nil
}

func (m *MockDrinkLogService) Delete(ctx context.Context, userID, drinkID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, drinkID)
	}
	return nil
}

func (m *MockDrinkLogService) List(ctx context.Context, userID uuid.UUID, filter domain.DrinkFilter) (*domain.DrinkListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DrinkListResponse{Data: []domain.DrinkResponse{}}, nil
}

func (m *MockDrinkLogService) DailySummary(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID, date)
	}
	return &domain.DailySummaryResponse{Date: date}, nil
}

// MockAnalysisService is a mock implementation of service.AnalysisService
type MockAnalysisService struct {
	refreshSleepFunc   func(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error)
	getSleepFunc       func(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error)
	refreshWeatherFunc func(ctx context.Context, userID uuid.UUID, date string, report *domain.WeatherReport) (*domain.WeatherAnalysisResponse, error)
	getWeatherFunc     func(ctx context.Context, userID uuid.UUID, date string) (*domain.WeatherAnalysisResponse, error)
}

func (m *MockAnalysisService) RefreshSleep(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error) {
	if m.refreshSleepFunc != nil {
		return m.refreshSleepFunc(ctx, userID, date)
	}
	return &domain.SleepAnalysisResponse{Date: date}, nil
}

func (m *MockAnalysisService) GetSleep(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepAnalysisResponse, error) {
	if m.getSleepFunc != nil {
		return m.getSleepFunc(ctx, userID, date)
	}
	return nil, domain.ErrNoSnapshot
}

func (m *MockAnalysisService) RefreshWeather(ctx context.Context, userID uuid.UUID, date string, report *domain.WeatherReport) (*domain.WeatherAnalysisResponse, error) {
	if m.refreshWeatherFunc != nil {
		return m.refreshWeatherFunc(ctx, userID, date, report)
	}
	return &domain.WeatherAnalysisResponse{Date: date}, nil
}

func (m *MockAnalysisService) GetWeather(ctx context.Context, userID uuid.UUID, date string) (*domain.WeatherAnalysisResponse, error) {
	if m.getWeatherFunc != nil {
		return m.getWeatherFunc(ctx, userID, date)
	}
	return nil, domain.ErrNoSnapshot
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

// MockSleepSummaryService is a mock implementation of service.SleepSummaryService
type MockSleepSummaryService struct {
	upsertFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepSummaryRequest) (*domain.SleepSummary, error)
}

func (m *MockSleepSummaryService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertSleepSummaryRequest) (*domain.SleepSummary, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	return &domain.SleepSummary{ID: uuid.New(), UserID: userID}, nil
}
