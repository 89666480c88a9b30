package domain

// SleepDebtDay is one day of the fixed 7-day debt window.
// @Description Per-day sleep debt entry.
type SleepDebtDay struct {
	// Calendar date of the day
	Date string `json:"date" example:"2024-01-16"`
	// Weekday label
	Weekday string `json:"weekday" example:"Tuesday"`
	// Hours slept that day (0 if no record)
	Hours float64 `json:"hours" example:"6.5"`
	// Shortfall against the recommended hours, never negative
	DebtHours float64 `json:"debt_hours" example:"1.5"`
	// True when a record exists for the day
	HasRecord bool `json:"has_record" example:"true"`
}

// SleepDebtResult is the computed 7-day sleep debt report.
// @Description Rolling 7-day sleep debt window ending on the reference
// @Description date. Days without a record count the full recommended
// @Description hours as debt but are excluded from the average.
type SleepDebtResult struct {
	// Recommended nightly hours the debt is measured against
	RecommendedHours float64 `json:"recommended_hours" example:"8"`
	// Exactly 7 days, oldest to newest, reference date last
	Days []SleepDebtDay `json:"days"`
	// Sum of the 7 per-day debts, rounded to 2 decimals
	TotalDebtHours float64 `json:"total_debt_hours" example:"9.5"`
	// Mean hours across only the days that have hours > 0
	AverageHours float64 `json:"average_hours" example:"6.8"`
}
