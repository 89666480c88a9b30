package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/llm"
	"github.com/restwell/restwell-api/internal/unlock"
)

func newStatsHandlerForTest(provider unlock.Provider) (*StatsHandler, *unlock.Gate) {
	gate := unlock.NewGate()
	h := NewStatsHandler(
		&MockStatsService{},
		&MockDebtService{},
		&MockInsightsService{},
		gate,
		provider,
	)
	return h, gate
}

func TestStatsHandler_Debt(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		wantStatusCode int
	}{
		{name: "default to today", queryParams: "", wantStatusCode: http.StatusOK},
		{name: "explicit date", queryParams: "?date=2024-01-16", wantStatusCode: http.StatusOK},
		{name: "malformed date", queryParams: "?date=Tuesday", wantStatusCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newStatsHandlerForTest(unlock.HouseProvider{})

			req := httptest.NewRequest(http.MethodGet, "/v1/sleep-debt"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			h.Debt(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Debt() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

// Debt is free; it never consults the unlock gate.
func TestStatsHandler_Debt_NotGated(t *testing.T) {
	h, _ := newStatsHandlerForTest(unlock.UnavailableProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/sleep-debt", nil)
	rec := httptest.NewRecorder()

	h.Debt(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Debt() status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestStatsHandler_Stats_LockedUntilUnlocked(t *testing.T) {
	h, gate := newStatsHandlerForTest(unlock.HouseProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("Stats() before unlock status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	gate.Unlock(time.Now())

	rec = httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Stats() after unlock status = %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestStatsHandler_Unlock(t *testing.T) {
	h, gate := newStatsHandlerForTest(unlock.HouseProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/unlock", nil)
	rec := httptest.NewRecorder()

	h.Unlock(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Unlock() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.UnlockResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.UnlockedDate != time.Now().Format(domain.DateLayout) {
		t.Errorf("UnlockedDate = %s, want today", resp.UnlockedDate)
	}
	if !gate.IsUnlocked(time.Now()) {
		t.Error("expected today to be unlocked")
	}
}

func TestStatsHandler_Unlock_Unavailable(t *testing.T) {
	h, gate := newStatsHandlerForTest(unlock.UnavailableProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/unlock", nil)
	rec := httptest.NewRecorder()

	h.Unlock(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Unlock() status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if gate.IsUnlocked(time.Now()) {
		t.Error("failed unlock must not open the gate")
	}
}

func TestStatsHandler_Insights(t *testing.T) {
	tests := []struct {
		name           string
		generateErr    error
		wantStatusCode int
	}{
		{name: "generated", wantStatusCode: http.StatusOK},
		{name: "not configured", generateErr: llm.ErrOpenAIUnavailable, wantStatusCode: http.StatusServiceUnavailable},
		{name: "upstream request failed", generateErr: llm.ErrOpenAIRequest, wantStatusCode: http.StatusBadGateway},
		{name: "unparseable model output", generateErr: llm.ErrOpenAIResponse, wantStatusCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := unlock.NewGate()
			gate.Unlock(time.Now())

			h := NewStatsHandler(
				&MockStatsService{},
				&MockDebtService{},
				&MockInsightsService{
					generateFunc: func(ctx context.Context, ref time.Time) (*domain.InsightsResponse, error) {
						if tt.generateErr != nil {
							return nil, tt.generateErr
						}
						return &domain.InsightsResponse{
							Insights: domain.InsightsOutput{Summary: "Steady week."},
						}, nil
					},
				},
				gate,
				unlock.HouseProvider{},
			)

			req := httptest.NewRequest(http.MethodGet, "/v1/stats/insights", nil)
			rec := httptest.NewRecorder()

			h.Insights(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Insights() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestStatsHandler_Insights_Locked(t *testing.T) {
	h, _ := newStatsHandlerForTest(unlock.HouseProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/insights", nil)
	rec := httptest.NewRecorder()

	h.Insights(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("Insights() before unlock status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
