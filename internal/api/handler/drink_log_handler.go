package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/api/validation"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/service"
	"github.com/hydrolog/hydration-tracker/pkg/problem"
)

type DrinkLogHandler struct {
	service service.DrinkLogService
}

func NewDrinkLogHandler(service service.DrinkLogService) *DrinkLogHandler {
	return &DrinkLogHandler{service: service}
}

// Create handles POST /v1/users/{userId}/drinks
// @Summary Log a drink
// @Description Record a consumed drink. Supply client_request_id to make retries idempotent: a repeated ID returns the original record with 200 instead of 201.
// @Tags drinks
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateDrinkRequest true "Drink creation request"
// @Success 201 {object} domain.DrinkResponse
// @Success 200 {object} domain.DrinkResponse "Existing record returned for a repeated client_request_id"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/drinks [post]
func (h *DrinkLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateDrinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrUnknownVariant):
			problem.UnprocessableEntity("Unknown drink variant").Write(w)
		default:
			problem.InternalError("Failed to log drink").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(event.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/drinks/{drinkId}
// @Summary Edit a logged drink
// @Description Edit the amount, variant or time of a logged drink in place
// @Tags drinks
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param drinkId path string true "Drink ID" format(uuid)
// @Param request body domain.UpdateDrinkRequest true "Drink update request"
// @Success 200 {object} domain.DrinkResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/drinks/{drinkId} [patch]
func (h *DrinkLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	drinkID, err := uuid.Parse(chi.URLParam(r, "drinkId"))
	if err != nil {
		problem.BadRequest("Invalid drink ID format").Write(w)
		return
	}

	var req domain.UpdateDrinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	event, err := h.service.Update(r.Context(), userID, drinkID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Drink record not found").Write(w)
		case errors.Is(err, domain.ErrUnknownVariant):
			problem.UnprocessableEntity("Unknown drink variant").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Resulting volume must be positive").Write(w)
		default:
			problem.InternalError("Failed to update drink").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event.ToResponse())
}

// Delete handles DELETE /v1/users/{userId}/drinks/{drinkId}
// @Summary Delete a logged drink
// @Description Remove a drink record. Subsequent summaries and analyses no longer include it.
// @Tags drinks
// @Param userId path string true "User ID" format(uuid)
// @Param drinkId path string true "Drink ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/drinks/{drinkId} [delete]
func (h *DrinkLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	drinkID, err := uuid.Parse(chi.URLParam(r, "drinkId"))
	if err != nil {
		problem.BadRequest("Invalid drink ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, drinkID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Drink record not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete drink").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /v1/users/{userId}/drinks
// @Summary List logged drinks
// @Description List drink records newest first with cursor pagination and optional time range filters
// @Tags drinks
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Only records at or after this RFC3339 time"
// @Param to query string false "Only records before this RFC3339 time"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.DrinkListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/drinks [get]
func (h *DrinkLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		problem.BadRequest(err.Error()).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list drinks").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// DailySummary handles GET /v1/users/{userId}/drinks/summary
// @Summary Daily drink summary
// @Description Aggregate one calendar day's drinks in the user's timezone. Omitting date means today.
// @Tags drinks
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date query string false "Day in YYYY-MM-DD format (default today)"
// @Success 200 {object} domain.DailySummaryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/drinks/summary [get]
func (h *DrinkLogHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.DailySummary(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
		default:
			problem.InternalError("Failed to compute daily summary").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.DrinkFilter, error) {
	var filter domain.DrinkFilter
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filter, errors.New("invalid 'from' parameter, expected RFC3339 timestamp")
		}
		filter.From = &t
	}

	if to := query.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filter, errors.New("invalid 'to' parameter, expected RFC3339 timestamp")
		}
		filter.To = &t
	}

	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return filter, errors.New("invalid 'limit' parameter, expected a non-negative integer")
		}
		filter.Limit = n
	}

	filter.Cursor = query.Get("cursor")
	return filter, nil
}
