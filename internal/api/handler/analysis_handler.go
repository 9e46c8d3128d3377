package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/api/validation"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/langfuse"
	"github.com/hydrolog/hydration-tracker/internal/service"
	"github.com/hydrolog/hydration-tracker/pkg/problem"
)

type AnalysisHandler struct {
	service        service.AnalysisService
	langfuseClient langfuse.Client
}

func NewAnalysisHandler(service service.AnalysisService, langfuseClient langfuse.Client) *AnalysisHandler {
	return &AnalysisHandler{service: service, langfuseClient: langfuseClient}
}

// RefreshSleep handles POST /v1/users/{userId}/analysis/sleep/refresh
// @Summary Recompute the sleep analysis
// @Description Recompute the hydration/nocturia risk analysis for a day and replace the cached snapshot. Omitting date means today.
// @Tags analysis
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date query string false "Day in YYYY-MM-DD format (default today)"
// @Success 200 {object} domain.SleepAnalysisResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analysis/sleep/refresh [post]
func (h *AnalysisHandler) RefreshSleep(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.RefreshSleep(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeAnalysisError(w, err, "Failed to refresh sleep analysis")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetSleep handles GET /v1/users/{userId}/analysis/sleep
// @Summary Get the cached sleep analysis
// @Description Return the cached sleep analysis snapshot for a day. Reads never recompute; refresh first.
// @Tags analysis
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date query string false "Day in YYYY-MM-DD format (default today)"
// @Success 200 {object} domain.SleepAnalysisResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analysis/sleep [get]
func (h *AnalysisHandler) GetSleep(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.GetSleep(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeAnalysisError(w, err, "Failed to load sleep analysis")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RefreshWeather handles POST /v1/users/{userId}/analysis/weather/refresh
// @Summary Recompute the weather advice
// @Description Compute the extra-water recommendation from the supplied weather report and replace the cached snapshot. Omitting date means today.
// @Tags analysis
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date query string false "Day in YYYY-MM-DD format (default today)"
// @Param request body domain.WeatherReport true "Weather report"
// @Success 200 {object} domain.WeatherAnalysisResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analysis/weather/refresh [post]
func (h *AnalysisHandler) RefreshWeather(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var report domain.WeatherReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(report); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.service.RefreshWeather(r.Context(), userID, r.URL.Query().Get("date"), &report)
	if err != nil {
		writeAnalysisError(w, err, "Failed to refresh weather analysis")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetWeather handles GET /v1/users/{userId}/analysis/weather
// @Summary Get the cached weather advice
// @Description Return the cached weather advice snapshot for a day. Reads never recompute; refresh first.
// @Tags analysis
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date query string false "Day in YYYY-MM-DD format (default today)"
// @Success 200 {object} domain.WeatherAnalysisResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/analysis/weather [get]
func (h *AnalysisHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.GetWeather(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeAnalysisError(w, err, "Failed to load weather analysis")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// FeedbackRequest is the request body for comment feedback.
// @Description Request body for rating a generated coach comment.
type FeedbackRequest struct {
	// Trace ID from the analysis response's comment_trace_id field
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The advice was helpful!"`
}

// PostFeedback handles POST /v1/users/{userId}/analysis/feedback
// @Summary Rate a generated coach comment
// @Description Submit a user rating and optional comment for a previously generated analysis comment.
// @Tags analysis
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body FeedbackRequest true "Feedback"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem
// @Failure 503 {object} problem.Problem
// @Router /users/{userId}/analysis/feedback [post]
func (h *AnalysisHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	if h.langfuseClient == nil || !h.langfuseClient.IsEnabled() {
		problem.ServiceUnavailable("Feedback recording is not configured").Write(w)
		return
	}

	// Errors are logged by the client, not surfaced to the caller.
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "comment_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	log.Printf("comment feedback recorded: user=%s trace=%s score=%d", userID, req.TraceID, req.Score)

	w.WriteHeader(http.StatusNoContent)
}

func writeAnalysisError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrNoSnapshot):
		problem.NotFound("No analysis snapshot for this day, refresh first").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}
