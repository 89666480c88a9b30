package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/restwell/restwell-api/internal/api/validation"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/service"
	"github.com/restwell/restwell-api/pkg/problem"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /v1/settings
// @Summary Get settings
// @Description Fetch the current settings. Returns the 8-hour default until a target has been saved.
// @Tags settings
// @Produce json
// @Success 200 {object} domain.SettingsResponse "Current settings"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		problem.InternalError("Failed to fetch settings").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// Update handles PUT /v1/settings
// @Summary Update settings
// @Description Set the nightly sleep target used by the debt aggregator.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} domain.SettingsResponse "Updated settings"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfRange) {
			problem.ValidationError("Target is out of range", []problem.FieldError{
				{Field: "recommended_hours", Message: "must be between 1 and 24"},
			}).Write(w)
			return
		}
		problem.InternalError("Failed to update settings").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}
