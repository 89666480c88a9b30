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
	"github.com/restwell/restwell-api/pkg/clock"
	"github.com/restwell/restwell-api/pkg/problem"
)

type SleepRecordHandler struct {
	service service.SleepRecordService
}

func NewSleepRecordHandler(service service.SleepRecordService) *SleepRecordHandler {
	return &SleepRecordHandler{service: service}
}

// Create handles POST /v1/sleep-records
// @Summary Log sleep
// @Description Record one sleep interval. Hours are derived from bedtime and wake time; a wake time at or before the bedtime is treated as the next day. Submitting twice for the same date creates two records.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param request body domain.CreateSleepRecordRequest true "Sleep interval data"
// @Success 201 {object} domain.SleepRecordResponse "Sleep record created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [post]
func (h *SleepRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, clock.ErrInvalidFormat) || errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid date or clock time").Write(w)
			return
		}
		problem.InternalError("Failed to create sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record.ToResponse())
}

// List handles GET /v1/sleep-records
// @Summary List sleep records
// @Description Fetch paginated sleep history, newest first. Filter by calendar date range.
// @Tags sleep-records
// @Produce json
// @Param from query string false "Start of date range (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string false "End of date range (YYYY-MM-DD)" example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepRecordListResponse "Sleep records with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseRecordFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list sleep records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Delete handles DELETE /v1/sleep-records/{recordId}
// @Summary Delete a sleep record
// @Description Remove one sleep record by its identifier.
// @Tags sleep-records
// @Param recordId path string true "Record UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 204 "Record deleted"
// @Failure 400 {object} problem.Problem "Invalid record ID"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId} [delete]
func (h *SleepRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), recordID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete sleep record").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseRecordFilter(r *http.Request) (domain.SleepRecordFilter, []problem.FieldError) {
	var filter domain.SleepRecordFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if _, err := time.Parse(domain.DateLayout, fromStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a calendar date in YYYY-MM-DD format",
			})
		} else {
			filter.FromDate = fromStr
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if _, err := time.Parse(domain.DateLayout, toStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a calendar date in YYYY-MM-DD format",
			})
		} else {
			filter.ToDate = toStr
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
