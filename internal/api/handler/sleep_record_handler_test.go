package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/pkg/clock"
)

func TestSleepRecordHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockSleepRecordService
		wantStatusCode int
	}{
		{
			name:           "valid overnight sleep",
			body:           `{"date": "2024-01-16", "bedtime": "23:00", "wake_time": "07:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing date",
			body:           `{"bedtime": "23:00", "wake_time": "07:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "bedtime not a clock time",
			body:           `{"date": "2024-01-16", "bedtime": "25:00", "wake_time": "07:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "wake time with seconds",
			body:           `{"date": "2024-01-16", "bedtime": "23:00", "wake_time": "07:00:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "service rejects malformed time",
			body: `{"date": "2024-01-16", "bedtime": "23:00", "wake_time": "07:30"}`,
			mockService: &MockSleepRecordService{
				createFunc: func(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
					return nil, clock.ErrInvalidFormat
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSleepRecordHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/sleep-records", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestSleepRecordHandler_Create_ResponseBody(t *testing.T) {
	handler := NewSleepRecordHandler(&MockSleepRecordService{})

	body := `{"date": "2024-01-16", "bedtime": "23:00", "wake_time": "07:00"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sleep-records", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Create() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.SleepRecordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Date != "2024-01-16" || resp.Bedtime != "23:00" || resp.WakeTime != "07:00" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Hours != 8 {
		t.Errorf("Hours = %v, want 8", resp.Hours)
	}
}

func TestSleepRecordHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		wantStatusCode int
	}{
		{name: "no filters", queryParams: "", wantStatusCode: http.StatusOK},
		{name: "date range", queryParams: "?from=2024-01-01&to=2024-01-31", wantStatusCode: http.StatusOK},
		{name: "invalid from date", queryParams: "?from=January", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "invalid limit", queryParams: "?limit=zero", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "negative limit", queryParams: "?limit=-5", wantStatusCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSleepRecordHandler(&MockSleepRecordService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/sleep-records"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestSleepRecordHandler_Delete(t *testing.T) {
	recordID := uuid.New()

	tests := []struct {
		name           string
		recordID       string
		mockService    *MockSleepRecordService
		wantStatusCode int
	}{
		{
			name:           "existing record",
			recordID:       recordID.String(),
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:           "invalid record ID",
			recordID:       "not-a-uuid",
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:     "record not found",
			recordID: uuid.New().String(),
			mockService: &MockSleepRecordService{
				deleteFunc: func(ctx context.Context, id uuid.UUID) error {
					return domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSleepRecordHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodDelete, "/v1/sleep-records/"+tt.recordID, nil)
			rec := httptest.NewRecorder()

			// Add chi URL param
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("recordId", tt.recordID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.Delete(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Delete() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
