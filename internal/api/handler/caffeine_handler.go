package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/api/validation"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/service"
	"github.com/restwell/restwell-api/pkg/problem"
)

type CaffeineHandler struct {
	service service.CaffeineService
}

func NewCaffeineHandler(service service.CaffeineService) *CaffeineHandler {
	return &CaffeineHandler{service: service}
}

// Create handles POST /v1/caffeine-entries
// @Summary Log caffeine intake
// @Description Record a caffeine dose. The intake instant is assigned server-side at the moment of the request.
// @Tags caffeine
// @Accept json
// @Produce json
// @Param request body domain.CreateCaffeineEntryRequest true "Caffeine dose data"
// @Success 201 {object} domain.CaffeineEntryResponse "Caffeine entry created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /caffeine-entries [post]
func (h *CaffeineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCaffeineEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Log(r.Context(), &req, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrOutOfRange) {
			problem.ValidationError("Dose is out of range", []problem.FieldError{
				{Field: "amount_mg", Message: "must be a positive amount"},
			}).Write(w)
			return
		}
		problem.InternalError("Failed to create caffeine entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/caffeine-entries
// @Summary List caffeine entries
// @Description Fetch paginated caffeine intake history, newest first.
// @Tags caffeine
// @Produce json
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.CaffeineEntryListResponse "Caffeine entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /caffeine-entries [get]
func (h *CaffeineHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.CaffeineEntryFilter

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			}).Write(w)
			return
		}
		filter.Limit = limit
	}
	filter.Cursor = r.URL.Query().Get("cursor")

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list caffeine entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Delete handles DELETE /v1/caffeine-entries/{entryId}
// @Summary Delete a caffeine entry
// @Description Remove one caffeine entry by its identifier.
// @Tags caffeine
// @Param entryId path string true "Entry UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 204 "Entry deleted"
// @Failure 400 {object} problem.Problem "Invalid entry ID"
// @Failure 404 {object} problem.Problem "Entry not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /caffeine-entries/{entryId} [delete]
func (h *CaffeineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(chi.URLParam(r, "entryId"))
	if err != nil {
		problem.BadRequest("Invalid entry ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Caffeine entry not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete caffeine entry").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /v1/caffeine-entries
// @Summary Clear caffeine history
// @Description Remove all caffeine entries.
// @Tags caffeine
// @Success 204 "All entries deleted"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /caffeine-entries [delete]
func (h *CaffeineHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		problem.InternalError("Failed to clear caffeine entries").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Status handles GET /v1/caffeine/status
// @Summary Residual caffeine status
// @Description Report the residual caffeine level at an instant, plus a 24-hour decay timeline sampled every 30 minutes. Defaults to now.
// @Tags caffeine
// @Produce json
// @Param at query string false "Query instant (RFC 3339)" example(2024-01-16T14:00:00Z)
// @Success 200 {object} domain.CaffeineStatusResponse "Residual level and timeline"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /caffeine/status [get]
func (h *CaffeineHandler) Status(w http.ResponseWriter, r *http.Request) {
	at := time.Now()
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "at", Message: "must be an RFC 3339 timestamp"},
			}).Write(w)
			return
		}
		at = parsed
	}

	status, err := h.service.Status(r.Context(), at)
	if err != nil {
		problem.InternalError("Failed to compute caffeine status").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
