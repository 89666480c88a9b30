package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/service"
)

func TestPlannerHandler_Plan(t *testing.T) {
	handler := NewPlannerHandler(service.NewPlannerService())

	tests := []struct {
		name           string
		queryParams    string
		wantStatusCode int
	}{
		{name: "bedtime mode", queryParams: "?target=07:00&mode=bedtime", wantStatusCode: http.StatusOK},
		{name: "wakeup mode", queryParams: "?target=23:00&mode=wakeup", wantStatusCode: http.StatusOK},
		{name: "mode defaults to bedtime", queryParams: "?target=07:00", wantStatusCode: http.StatusOK},
		{name: "missing target", queryParams: "", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "malformed target", queryParams: "?target=7am", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "unknown mode", queryParams: "?target=07:00&mode=nap", wantStatusCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/planner"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			handler.Plan(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Plan() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestPlannerHandler_Plan_BedtimeCandidates(t *testing.T) {
	handler := NewPlannerHandler(service.NewPlannerService())

	req := httptest.NewRequest(http.MethodGet, "/v1/planner?target=07:00&mode=bedtime", nil)
	rec := httptest.NewRecorder()

	handler.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Plan() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.PlanResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Target != "07:00" || resp.Mode != domain.PlanModeBedtime {
		t.Errorf("unexpected plan header: %+v", resp)
	}
	if len(resp.Candidates) != 6 {
		t.Fatalf("got %d candidates, want 6", len(resp.Candidates))
	}
	// Most sleep first: 6 cycles plus 15 minutes to fall asleep
	if resp.Candidates[0].Time != "21:45" || resp.Candidates[0].Cycles != 6 {
		t.Errorf("first candidate = %+v, want 21:45 with 6 cycles", resp.Candidates[0])
	}
}
