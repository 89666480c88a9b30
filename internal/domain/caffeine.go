package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaffeineCategory represents the kind of caffeinated drink.
// @Description Drink category for a caffeine intake event.
type CaffeineCategory string

const (
	CaffeineCoffee      CaffeineCategory = "coffee"
	CaffeineEspresso    CaffeineCategory = "espresso"
	CaffeineTea         CaffeineCategory = "tea"
	CaffeineEnergyDrink CaffeineCategory = "energy_drink"
	CaffeineOther       CaffeineCategory = "other"
)

type CaffeineEntry struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TakenAt   time.Time        `gorm:"not null;index:idx_caffeine_entries_taken_at" json:"taken_at"`
	AmountMg  float64          `gorm:"not null" json:"amount_mg"`
	Category  CaffeineCategory `gorm:"type:varchar(20);not null" json:"category"`
	Label     string           `gorm:"type:varchar(120)" json:"label"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (CaffeineEntry) TableName() string {
	return "caffeine_entries"
}

// CreateCaffeineEntryRequest is the request body for logging caffeine intake.
// @Description Request payload for a caffeine intake event. The intake
// @Description instant is the moment of logging, not a user-chosen time.
type CreateCaffeineEntryRequest struct {
	// Amount of caffeine in milligrams
	AmountMg float64 `json:"amount_mg" validate:"required,gt=0,lte=1000" example:"95"`
	// Drink category
	Category CaffeineCategory `json:"category" validate:"required,oneof=coffee espresso tea energy_drink other" example:"coffee" enums:"coffee,espresso,tea,energy_drink,other"`
	// Optional free-text label
	Label string `json:"label,omitempty" validate:"omitempty,max=120" example:"flat white"`
}

// CaffeineEntryResponse is the response body for caffeine entry endpoints.
// @Description One caffeine intake event.
type CaffeineEntryResponse struct {
	// Unique entry identifier
	ID uuid.UUID `json:"id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Intake instant
	TakenAt time.Time `json:"taken_at" example:"2024-01-16T08:30:00Z"`
	// Amount in milligrams
	AmountMg float64 `json:"amount_mg" example:"95"`
	// Drink category
	Category CaffeineCategory `json:"category" example:"coffee"`
	// Free-text label
	Label string `json:"label,omitempty" example:"flat white"`
	// Entry creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T08:30:00Z"`
}

func (e *CaffeineEntry) ToResponse() CaffeineEntryResponse {
	return CaffeineEntryResponse{
		ID:        e.ID,
		TakenAt:   e.TakenAt,
		AmountMg:  e.AmountMg,
		Category:  e.Category,
		Label:     e.Label,
		CreatedAt: e.CreatedAt,
	}
}

// CaffeineEntryListResponse is the response body for listing caffeine entries.
// @Description Paginated list of caffeine entries.
type CaffeineEntryListResponse struct {
	// Array of caffeine entries, newest first
	Data []CaffeineEntryResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// CaffeineEntryFilter contains filter parameters for listing caffeine entries
type CaffeineEntryFilter struct {
	Limit  int
	Cursor string
}

// TimelinePoint is one sample of the residual caffeine curve.
// @Description One fixed-resolution sample of residual caffeine.
type TimelinePoint struct {
	// Offset from the timeline anchor in hours (0, 0.5, ... 24)
	OffsetHours float64 `json:"offset_hours" example:"1.5"`
	// Residual caffeine in milligrams, rounded to 1 decimal
	LevelMg float64 `json:"level_mg" example:"87.3"`
}

// CaffeineStatusResponse is the response for the caffeine status endpoint.
// @Description Residual caffeine level at an instant plus a 24-hour
// @Description timeline sampled every 30 minutes.
type CaffeineStatusResponse struct {
	// Query instant
	At time.Time `json:"at" example:"2024-01-16T14:00:00Z"`
	// Residual caffeine at the query instant in milligrams
	LevelMg float64 `json:"level_mg" example:"120.5"`
	// Start of the clock hour containing the earliest entry; zero when empty
	TimelineStart *time.Time `json:"timeline_start,omitempty" example:"2024-01-16T08:00:00Z"`
	// 49 samples spaced 30 minutes apart; empty when no entries exist
	Timeline []TimelinePoint `json:"timeline"`
}
