package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for sleep record dates.
const DateLayout = "2006-01-02"

type SleepRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_sleep_records_date" json:"date"`
	Bedtime   string    `gorm:"type:varchar(5);not null" json:"bedtime"`
	WakeTime  string    `gorm:"type:varchar(5);not null" json:"wake_time"`
	Hours     float64   `gorm:"not null" json:"hours"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// CreateSleepRecordRequest is the request body for logging a sleep interval.
// @Description Request payload for recording one night of sleep. If the wake
// @Description time is at or before the bedtime it is interpreted as the
// @Description following day.
type CreateSleepRecordRequest struct {
	// Calendar date the sleep interval belongs to
	Date string `json:"date" validate:"required,dateonly" example:"2024-01-16"`
	// Bedtime as HH:mm wall-clock time
	Bedtime string `json:"bedtime" validate:"required,clocktime" example:"23:00"`
	// Wake time as HH:mm wall-clock time
	WakeTime string `json:"wake_time" validate:"required,clocktime" example:"07:00"`
}

// SleepRecordResponse is the response body for sleep record endpoints.
// @Description One logged sleep interval with its derived duration.
type SleepRecordResponse struct {
	// Unique record identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Calendar date of the record
	Date string `json:"date" example:"2024-01-16"`
	// Bedtime (HH:mm)
	Bedtime string `json:"bedtime" example:"23:00"`
	// Wake time (HH:mm)
	WakeTime string `json:"wake_time" example:"07:00"`
	// Hours slept, derived at creation and never mutated
	Hours float64 `json:"hours" example:"8"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (r *SleepRecord) ToResponse() SleepRecordResponse {
	return SleepRecordResponse{
		ID:        r.ID,
		Date:      r.Date,
		Bedtime:   r.Bedtime,
		WakeTime:  r.WakeTime,
		Hours:     r.Hours,
		CreatedAt: r.CreatedAt,
	}
}

// SleepRecordListResponse is the response body for listing sleep records.
// @Description Paginated list of sleep records.
type SleepRecordListResponse struct {
	// Array of sleep records, newest first
	Data []SleepRecordResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepRecordFilter contains filter parameters for listing sleep records
type SleepRecordFilter struct {
	FromDate string
	ToDate   string
	Limit    int
	Cursor   string
}
