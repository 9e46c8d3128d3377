package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
)

func TestAnalysisHandler_RefreshSleep(t *testing.T) {
	userID := uuid.New()

	mockService := &MockAnalysisService{
		refreshSleepFunc: func(ctx context.Context, id uuid.UUID, date string) (*domain.SleepAnalysisResponse, error) {
			return &domain.SleepAnalysisResponse{
				Date: date,
				Risk: domain.HydrationRiskResult{
					RiskScore:          40,
					NocturiaRiskBucket: domain.RiskHigh,
				},
			}, nil
		},
	}
	handler := NewAnalysisHandler(mockService, &MockLangfuseClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/analysis/sleep/refresh?date=2024-01-16", nil)
	req = withURLParam(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.RefreshSleep(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("RefreshSleep() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp domain.SleepAnalysisResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Date != "2024-01-16" || resp.Risk.NocturiaRiskBucket != domain.RiskHigh {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestAnalysisHandler_GetSleep_NoSnapshot(t *testing.T) {
	userID := uuid.New()
	handler := NewAnalysisHandler(&MockAnalysisService{}, &MockLangfuseClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/analysis/sleep?date=2024-01-16", nil)
	req = withURLParam(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.GetSleep(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GetSleep() status = %d, want 404 without a snapshot", rec.Code)
	}
}

func TestAnalysisHandler_InvalidUserID(t *testing.T) {
	handler := NewAnalysisHandler(&MockAnalysisService{}, &MockLangfuseClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/oops/analysis/sleep", nil)
	req = withURLParam(req, "userId", "oops")
	rec := httptest.NewRecorder()

	handler.GetSleep(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("GetSleep() status = %d, want 400 for a bad UUID", rec.Code)
	}
}

func TestAnalysisHandler_InvalidDate(t *testing.T) {
	userID := uuid.New()
	mockService := &MockAnalysisService{
		refreshSleepFunc: func(ctx context.Context, id uuid.UUID, date string) (*domain.SleepAnalysisResponse, error) {
			return nil, domain.ErrInvalidInput
		},
	}
	handler := NewAnalysisHandler(mockService, &MockLangfuseClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/analysis/sleep/refresh?date=junk", nil)
	req = withURLParam(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.RefreshSleep(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("RefreshSleep() status = %d, want 400 for a bad date", rec.Code)
	}
}

func TestAnalysisHandler_RefreshWeather(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockAnalysisService
		wantStatusCode int
	}{
		{
			name: "valid report",
			body: `{"temperature_c": 31.5, "humidity": 64, "uv_index": 7}`,
			mockService: &MockAnalysisService{
				refreshWeatherFunc: func(ctx context.Context, id uuid.UUID, date string, report *domain.WeatherReport) (*domain.WeatherAnalysisResponse, error) {
					return &domain.WeatherAnalysisResponse{
						Date: date,
						Advice: domain.WeatherAdviceResult{
							ExtraWaterMl:     650,
							HeatStressBucket: domain.RiskHigh,
							Report:           *report,
						},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockAnalysisService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "humidity out of range",
			body:           `{"temperature_c": 20, "humidity": 140, "uv_index": 3}`,
			mockService:    &MockAnalysisService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "impossible temperature",
			body:           `{"temperature_c": 99, "humidity": 50, "uv_index": 3}`,
			mockService:    &MockAnalysisService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAnalysisHandler(tt.mockService, &MockLangfuseClient{})

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/analysis/weather/refresh", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParam(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.RefreshWeather(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("RefreshWeather() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_PostFeedback(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		lfClient       *MockLangfuseClient
		wantStatusCode int
	}{
		{
			name:           "valid feedback",
			body:           `{"trace_id": "trace-abc", "score": 4, "comment": "Helpful!"}`,
			lfClient:       &MockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			lfClient:       &MockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing trace ID",
			body:           `{"score": 4}`,
			lfClient:       &MockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "score too low",
			body:           `{"trace_id": "trace-abc", "score": 0}`,
			lfClient:       &MockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "score too high",
			body:           `{"trace_id": "trace-abc", "score": 6}`,
			lfClient:       &MockLangfuseClient{enabled: true},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "langfuse not configured",
			body:           `{"trace_id": "trace-abc", "score": 4}`,
			lfClient:       &MockLangfuseClient{},
			wantStatusCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAnalysisHandler(&MockAnalysisService{}, tt.lfClient)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/analysis/feedback", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParam(req, "userId", userID.String())
			rec := httptest.NewRecorder()

			handler.PostFeedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PostFeedback() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAnalysisHandler_PostFeedback_RecordsScore(t *testing.T) {
	userID := uuid.New()
	lfClient := &MockLangfuseClient{enabled: true}
	handler := NewAnalysisHandler(&MockAnalysisService{}, lfClient)

	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/analysis/feedback",
		bytes.NewBufferString(`{"trace_id": "trace-abc", "score": 5, "comment": "Spot on."}`))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("PostFeedback() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if len(lfClient.scores) != 1 {
		t.Fatalf("recorded %d scores, want 1", len(lfClient.scores))
	}
	score := lfClient.scores[0]
	if score.TraceID != "trace-abc" || score.Name != "comment_rating" || score.Value != 5 || score.Comment != "Spot on." {
		t.Errorf("score = %+v, want comment_rating 5 on trace-abc", score)
	}
}

func TestAnalysisHandler_GetWeather(t *testing.T) {
	userID := uuid.New()

	mockService := &MockAnalysisService{
		getWeatherFunc: func(ctx context.Context, id uuid.UUID, date string) (*domain.WeatherAnalysisResponse, error) {
			return &domain.WeatherAnalysisResponse{Date: date}, nil
		},
	}
	handler := NewAnalysisHandler(mockService, &MockLangfuseClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/analysis/weather?date=2024-07-10", nil)
	req = withURLParam(req, "userId", userID.String())
	rec := httptest.NewRecorder()

	handler.GetWeather(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetWeather() status = %d, body: %s", rec.Code, rec.Body.String())
	}
}
