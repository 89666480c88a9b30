package service

import (
	"context"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/pkg/clock"
)

const (
	// CycleMinutes is the length of one full sleep cycle.
	CycleMinutes = 90

	// FallAsleepMinutes is the assumed sleep-onset latency.
	FallAsleepMinutes = 15

	// Cycle range covered by the planner
	MinCycles = 1
	MaxCycles = 6
)

// PlannerService computes sleep-cycle-aligned bed and wake times.
type PlannerService interface {
	// Plan returns six candidates for the given target time.
	Plan(ctx context.Context, target string, mode domain.PlanMode) (*domain.PlanResponse, error)
}

type plannerService struct{}

// NewPlannerService creates a new PlannerService.
func NewPlannerService() PlannerService {
	return &plannerService{}
}

func (s *plannerService) Plan(ctx context.Context, target string, mode domain.PlanMode) (*domain.PlanResponse, error) {
	targetTime, err := clock.Parse(target)
	if err != nil {
		return nil, err
	}

	if mode != domain.PlanModeBedtime && mode != domain.PlanModeWakeup {
		return nil, domain.ErrInvalidInput
	}

	return &domain.PlanResponse{
		Target:     targetTime.String(),
		Mode:       mode,
		Candidates: planOptimalTimes(targetTime, mode),
	}, nil
}

// planOptimalTimes enumerates candidates at 1-6 full cycles plus the
// fall-asleep latency. Bedtime mode counts cycles down so candidates run
// from the earliest bedtime to the latest; wakeup mode counts up so wake
// times run earliest to latest. No filtering by plausible hours happens
// here; highlighting the best candidate is the caller's concern.
func planOptimalTimes(target clock.Time, mode domain.PlanMode) []domain.OptimalTime {
	candidates := make([]domain.OptimalTime, 0, MaxCycles)

	if mode == domain.PlanModeBedtime {
		for cycles := MaxCycles; cycles >= MinCycles; cycles-- {
			offset := cycles*CycleMinutes + FallAsleepMinutes
			candidates = append(candidates, domain.OptimalTime{
				Time:    target.Sub(offset).String(),
				Cycles:  cycles,
				Hours:   float64(cycles*CycleMinutes) / 60.0,
				Quality: qualityForCycles(cycles),
			})
		}
		return candidates
	}

	for cycles := MinCycles; cycles <= MaxCycles; cycles++ {
		offset := cycles*CycleMinutes + FallAsleepMinutes
		candidates = append(candidates, domain.OptimalTime{
			Time:    target.Add(offset).String(),
			Cycles:  cycles,
			Hours:   float64(cycles*CycleMinutes) / 60.0,
			Quality: qualityForCycles(cycles),
		})
	}
	return candidates
}

// qualityForCycles is a fixed lookup, not configurable.
func qualityForCycles(cycles int) domain.SleepQuality {
	switch {
	case cycles <= 2:
		return domain.QualityPoor
	case cycles == 3:
		return domain.QualityFair
	case cycles == 4:
		return domain.QualityGood
	default:
		return domain.QualityGreat
	}
}
