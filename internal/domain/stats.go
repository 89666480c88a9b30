package domain

// SleepStats is the computed all-history rollup shown on the stats view.
// @Description Summary statistics combining sleep history, debt and
// @Description residual caffeine.
type SleepStats struct {
	// Total number of sleep records ever logged
	TotalRecords int `json:"total_records" example:"42"`
	// Average hours across records dated within the trailing 7 days
	WeeklyAverageHours float64 `json:"weekly_average_hours" example:"6.9"`
	// Total sleep debt over the trailing 7 days
	TotalDebtHours float64 `json:"total_debt_hours" example:"7.5"`
	// Longest single session ever recorded, in hours
	LongestHours float64 `json:"longest_hours" example:"10.25"`
	// Shortest single session ever recorded, in hours
	ShortestHours float64 `json:"shortest_hours" example:"4.5"`
	// Circular-mean bedtime across all history (HH:mm)
	AverageBedtime string `json:"average_bedtime" example:"23:20"`
	// Circular-mean wake time across all history (HH:mm)
	AverageWakeTime string `json:"average_wake_time" example:"06:50"`
	// Residual caffeine at the reference instant, in milligrams
	CurrentCaffeineMg float64 `json:"current_caffeine_mg" example:"54.2"`
}

// SleepTip is one rule-generated advice entry. Ordering is significant:
// tips appear in rule-evaluation order, never re-sorted.
// @Description Rule-based advice entry.
type SleepTip struct {
	// Icon reference for the presentation layer
	Icon string `json:"icon" example:"coffee"`
	// Short title
	Title string `json:"title" example:"High caffeine level"`
	// Advice text
	Description string `json:"description" example:"You still have over 200 mg of caffeine in your system."`
}

// StatsResponse is the response for the stats endpoint.
// @Description Summary statistics plus an ordered list of advice entries.
type StatsResponse struct {
	Stats SleepStats `json:"stats"`
	Tips  []SleepTip `json:"tips"`
}

// UnlockResponse is the response for the daily stats unlock endpoint.
// @Description Confirmation of the unlocked date.
type UnlockResponse struct {
	// Calendar date the unlock applies to
	UnlockedDate string `json:"unlocked_date" example:"2024-01-16"`
}

// InsightsOutput contains the structured narrative generated by the LLM.
// @Description LLM-generated narrative over the computed statistics.
type InsightsOutput struct {
	// Summary of sleep and caffeine habits (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep has been fairly consistent this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Weekly average of 6.9 hours is below your 8 hour target\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Skip caffeine after 16:00 to protect your usual 23:20 bedtime\"]"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for insights generation.
type InsightsContext struct {
	Stats SleepStats      `json:"stats"`
	Debt  SleepDebtResult `json:"debt"`
	Tips  []SleepTip      `json:"tips"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Computed statistics with an LLM narrative on top.
type InsightsResponse struct {
	Stats    SleepStats      `json:"stats"`
	Debt     SleepDebtResult `json:"debt"`
	Tips     []SleepTip      `json:"tips"`
	Insights InsightsOutput  `json:"insights"`
}
