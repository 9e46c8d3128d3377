package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/api/validation"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/service"
	"github.com/hydrolog/hydration-tracker/pkg/problem"
)

type SleepSummaryHandler struct {
	service service.SleepSummaryService
}

func NewSleepSummaryHandler(service service.SleepSummaryService) *SleepSummaryHandler {
	return &SleepSummaryHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/sleep-summaries
// @Summary Push a sleep summary
// @Description Store the device sleep record for a calendar day, replacing any existing record for that day
// @Tags sleep-summaries
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.UpsertSleepSummaryRequest true "Sleep summary"
// @Success 200 {object} domain.SleepSummaryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-summaries [put]
func (h *SleepSummaryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.UpsertSleepSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	summary, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
		default:
			problem.InternalError("Failed to store sleep summary").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary.ToResponse())
}
