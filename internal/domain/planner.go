package domain

// PlanMode selects which end of the sleep interval the planner solves for.
// @Description Planner direction: bedtime (user knows their wake time) or
// @Description wakeup (user knows their bedtime).
type PlanMode string

const (
	// PlanModeBedtime computes candidate bedtimes for a target wake time
	PlanModeBedtime PlanMode = "bedtime"
	// PlanModeWakeup computes candidate wake times for a target bedtime
	PlanModeWakeup PlanMode = "wakeup"
)

// SleepQuality grades a candidate by how many full cycles it allows.
// @Description Quality grade ordered poor < fair < good < great.
type SleepQuality string

const (
	QualityPoor  SleepQuality = "poor"
	QualityFair  SleepQuality = "fair"
	QualityGood  SleepQuality = "good"
	QualityGreat SleepQuality = "great"
)

// OptimalTime is a computed candidate bed or wake time. Ephemeral:
// recomputed on every planner call, never persisted.
// @Description One sleep-cycle-aligned candidate time.
type OptimalTime struct {
	// Candidate clock time (HH:mm)
	Time string `json:"time" example:"21:45"`
	// Number of full 90-minute sleep cycles
	Cycles int `json:"cycles" example:"6"`
	// Total sleep duration in hours
	Hours float64 `json:"hours" example:"9"`
	// Quality grade for this cycle count
	Quality SleepQuality `json:"quality" example:"great"`
}

// PlanResponse is the response for the planner endpoint.
// @Description Six cycle-aligned candidates for the requested target time.
type PlanResponse struct {
	// Target time the candidates were computed against (HH:mm)
	Target string `json:"target" example:"07:00"`
	// Planner direction
	Mode PlanMode `json:"mode" example:"bedtime"`
	// Exactly six candidates, ordered earliest to latest
	Candidates []OptimalTime `json:"candidates"`
}
