package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/service"
	"github.com/restwell/restwell-api/pkg/clock"
	"github.com/restwell/restwell-api/pkg/problem"
)

type PlannerHandler struct {
	service service.PlannerService
}

func NewPlannerHandler(service service.PlannerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

// Plan handles GET /v1/planner
// @Summary Plan sleep around full cycles
// @Description Compute six candidate times aligned to 90-minute sleep cycles around a target clock time. Bedtime mode answers "when should I go to bed to wake at the target"; wakeup mode answers "when should I wake if I go to bed at the target".
// @Tags planner
// @Produce json
// @Param target query string true "Target clock time (HH:mm)" example(07:00)
// @Param mode query string false "Planning mode" Enums(bedtime, wakeup) default(bedtime)
// @Success 200 {object} domain.PlanResponse "Candidate times ordered by preference"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /planner [get]
func (h *PlannerHandler) Plan(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")
	if target == "" {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: "target", Message: "is required"},
		}).Write(w)
		return
	}

	mode := domain.PlanModeBedtime
	if modeStr := r.URL.Query().Get("mode"); modeStr != "" {
		switch domain.PlanMode(modeStr) {
		case domain.PlanModeBedtime, domain.PlanModeWakeup:
			mode = domain.PlanMode(modeStr)
		default:
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "mode", Message: "must be one of: bedtime wakeup"},
			}).Write(w)
			return
		}
	}

	plan, err := h.service.Plan(r.Context(), target, mode)
	if err != nil {
		if errors.Is(err, clock.ErrInvalidFormat) {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "target", Message: "must be a clock time in HH:mm format"},
			}).Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep plan").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}
