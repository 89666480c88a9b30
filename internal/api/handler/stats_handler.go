package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/llm"
	"github.com/restwell/restwell-api/internal/service"
	"github.com/restwell/restwell-api/internal/unlock"
	"github.com/restwell/restwell-api/pkg/problem"
)

// StatsHandler serves the aggregate views over sleep and caffeine
// history. The stats view is premium: it is gated behind a daily unlock
// (see the unlock package), while sleep debt stays freely accessible.
type StatsHandler struct {
	statsService    service.StatsService
	debtService     service.DebtService
	insightsService service.InsightsService
	gate            *unlock.Gate
	provider        unlock.Provider
}

func NewStatsHandler(
	statsService service.StatsService,
	debtService service.DebtService,
	insightsService service.InsightsService,
	gate *unlock.Gate,
	provider unlock.Provider,
) *StatsHandler {
	return &StatsHandler{
		statsService:    statsService,
		debtService:     debtService,
		insightsService: insightsService,
		gate:            gate,
		provider:        provider,
	}
}

// Debt handles GET /v1/sleep-debt
// @Summary Weekly sleep debt
// @Description Break down accumulated sleep debt over the seven days ending at a reference date. Defaults to today.
// @Tags stats
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.SleepDebtResult "Per-day breakdown and totals"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-debt [get]
func (h *StatsHandler) Debt(w http.ResponseWriter, r *http.Request) {
	ref := time.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateLayout, dateStr)
		if err != nil {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "date", Message: "must be a calendar date in YYYY-MM-DD format"},
			}).Write(w)
			return
		}
		ref = parsed
	}

	result, err := h.debtService.Compute(r.Context(), ref)
	if err != nil {
		problem.InternalError("Failed to compute sleep debt").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Stats handles GET /v1/stats
// @Summary Sleep statistics and tips
// @Description Aggregate statistics over the full sleep and caffeine history, plus prioritized tips. Requires today's unlock.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.StatsResponse "Statistics and tips"
// @Failure 403 {object} problem.Problem "Stats are locked for today"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /stats [get]
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if !h.gate.IsUnlocked(now) {
		problem.Forbidden("Stats are locked, unlock them for today first").Write(w)
		return
	}

	response, err := h.statsService.Compute(r.Context(), now)
	if err != nil {
		problem.InternalError("Failed to compute statistics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Insights handles GET /v1/stats/insights
// @Summary AI sleep insights
// @Description Generate a natural-language reading of the current statistics. Requires today's unlock and a configured OpenAI key.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.InsightsResponse "Generated insights"
// @Failure 403 {object} problem.Problem "Stats are locked for today"
// @Failure 502 {object} problem.Problem "Upstream model error"
// @Failure 503 {object} problem.Problem "Insights not configured"
// @Router /stats/insights [get]
func (h *StatsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	if !h.gate.IsUnlocked(now) {
		problem.Forbidden("Stats are locked, unlock them for today first").Write(w)
		return
	}

	response, err := h.insightsService.Generate(r.Context(), now)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("Insights are not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Insights generation failed").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Unlock handles POST /v1/unlock
// @Summary Unlock today's stats
// @Description Request the daily stats unlock. Succeeds immediately with the house provider; reports 503 when the unlock source has no inventory.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.UnlockResponse "Unlock granted"
// @Failure 503 {object} problem.Problem "Unlock source unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /unlock [post]
func (h *StatsHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	granted, err := h.provider.RequestUnlock(r.Context())
	if err != nil {
		problem.InternalError("Failed to request unlock").Write(w)
		return
	}
	if !granted {
		problem.ServiceUnavailable("Unlock source is unavailable, try again later").Write(w)
		return
	}

	now := time.Now()
	h.gate.Unlock(now)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.UnlockResponse{
		UnlockedDate: now.Format(domain.DateLayout),
	})
}
