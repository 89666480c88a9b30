package service

import (
	"context"
	"math"
	"time"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/repository"
	"github.com/restwell/restwell-api/pkg/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Caffeine level thresholds for the tip cascade, in milligrams.
	HighCaffeineMg     = 200.0
	ModerateCaffeineMg = 100.0

	// Weekly debt thresholds for the tip cascade, in hours.
	SevereDebtHours   = 10.0
	ModerateDebtHours = 5.0

	// LateCaffeineHour is the local hour from which caffeine today
	// triggers the late-caffeine tip.
	LateCaffeineHour = 16

	// MaxTips caps the advice list.
	MaxTips = 8
)

// StatsService computes the summary statistics and advice shown on the
// stats view.
type StatsService interface {
	// Compute builds the stats rollup and tip list for the given
	// reference instant.
	Compute(ctx context.Context, ref time.Time) (*domain.StatsResponse, error)
}

type statsService struct {
	recordRepo   repository.SleepRecordRepository
	caffeineRepo repository.CaffeineEntryRepository
	debtService  DebtService
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	recordRepo repository.SleepRecordRepository,
	caffeineRepo repository.CaffeineEntryRepository,
	debtService DebtService,
) StatsService {
	return &statsService{
		recordRepo:   recordRepo,
		caffeineRepo: caffeineRepo,
		debtService:  debtService,
	}
}

func (s *statsService) Compute(ctx context.Context, ref time.Time) (*domain.StatsResponse, error) {
	tracer := otel.Tracer("restwell-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.Compute",
		trace.WithAttributes(
			attribute.String("stats.reference_date", ref.Format(domain.DateLayout)),
		),
	)
	defer span.End()

	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.caffeineRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	debt, err := s.debtService.Compute(ctx, ref)
	if err != nil {
		return nil, err
	}

	stats := computeSleepStats(records, entries, debt, ref)
	tips := buildTips(stats, entries, ref)

	span.SetAttributes(
		attribute.Int("stats.records", stats.TotalRecords),
		attribute.Int("stats.tips", len(tips)),
	)

	return &domain.StatsResponse{Stats: stats, Tips: tips}, nil
}

// computeSleepStats builds the all-history rollup. The weekly average
// here deliberately differs from the debt aggregator's: it averages over
// every record dated within the trailing 7 days, zero-hour records
// included, while the debt average skips untracked days. Both behaviors
// are kept as-is; do not unify them.
func computeSleepStats(records []domain.SleepRecord, entries []domain.CaffeineEntry, debt *domain.SleepDebtResult, ref time.Time) domain.SleepStats {
	stats := domain.SleepStats{
		TotalRecords:      len(records),
		TotalDebtHours:    debt.TotalDebtHours,
		CurrentCaffeineMg: caffeineLevelAt(entries, ref),
	}

	if len(records) == 0 {
		return stats
	}

	weekStart := ref.AddDate(0, 0, -(DebtWindowDays - 1)).Format(domain.DateLayout)
	weekEnd := ref.Format(domain.DateLayout)

	weeklySum := 0.0
	weeklyCount := 0
	longest := records[0].Hours
	shortest := records[0].Hours
	var bedtimes, wakeTimes []clock.Time

	for _, record := range records {
		if record.Date >= weekStart && record.Date <= weekEnd {
			weeklySum += record.Hours
			weeklyCount++
		}
		if record.Hours > longest {
			longest = record.Hours
		}
		if record.Hours < shortest {
			shortest = record.Hours
		}
		if bed, err := clock.Parse(record.Bedtime); err == nil {
			bedtimes = append(bedtimes, bed)
		}
		if wake, err := clock.Parse(record.WakeTime); err == nil {
			wakeTimes = append(wakeTimes, wake)
		}
	}

	if weeklyCount > 0 {
		stats.WeeklyAverageHours = math.Round(weeklySum/float64(weeklyCount)*100) / 100
	}
	stats.LongestHours = longest
	stats.ShortestHours = shortest
	if len(bedtimes) > 0 {
		stats.AverageBedtime = clock.CircularMean(bedtimes).String()
	}
	if len(wakeTimes) > 0 {
		stats.AverageWakeTime = clock.CircularMean(wakeTimes).String()
	}

	return stats
}

// buildTips runs the ordered rule cascade. Rules append independently
// except for the two explicit if/else-if pairs; the output keeps
// generation order and is truncated to MaxTips.
func buildTips(stats domain.SleepStats, entries []domain.CaffeineEntry, ref time.Time) []domain.SleepTip {
	var tips []domain.SleepTip

	if stats.CurrentCaffeineMg > HighCaffeineMg {
		tips = append(tips, domain.SleepTip{
			Icon:        "coffee",
			Title:       "High caffeine level",
			Description: "You still have over 200 mg of caffeine in your system. Expect it to interfere with falling asleep.",
		})
	} else if stats.CurrentCaffeineMg > ModerateCaffeineMg {
		tips = append(tips, domain.SleepTip{
			Icon:        "coffee",
			Title:       "Caffeine still active",
			Description: "Over 100 mg of caffeine remains in your system. Consider switching to water for the rest of the day.",
		})
	}

	if stats.TotalDebtHours > SevereDebtHours {
		tips = append(tips, domain.SleepTip{
			Icon:        "alert",
			Title:       "Serious sleep debt",
			Description: "You are more than 10 hours behind your weekly target. Plan an early night or two to catch up.",
		})
	} else if stats.TotalDebtHours > ModerateDebtHours {
		tips = append(tips, domain.SleepTip{
			Icon:        "clock",
			Title:       "Building sleep debt",
			Description: "Your weekly shortfall passed 5 hours. Try going to bed 30-60 minutes earlier this week.",
		})
	}

	if stats.WeeklyAverageHours > 0 && stats.WeeklyAverageHours < 6 {
		tips = append(tips, domain.SleepTip{
			Icon:        "moon",
			Title:       "Short on sleep",
			Description: "Your weekly average is under 6 hours. Most adults need 7-9 hours per night.",
		})
	}

	if stats.TotalRecords >= 3 {
		tips = append(tips, domain.SleepTip{
			Icon:        "calendar",
			Title:       "Keep a regular bedtime",
			Description: "Going to bed at the same time every night strengthens your circadian rhythm.",
		})
	}

	if hasLateCaffeineToday(entries, ref) {
		tips = append(tips, domain.SleepTip{
			Icon:        "coffee",
			Title:       "Avoid late caffeine",
			Description: "You had caffeine after 16:00 today. With a 5 hour half-life it will still be active at bedtime.",
		})
	}

	tips = append(tips,
		domain.SleepTip{
			Icon:        "phone",
			Title:       "Limit blue light before bed",
			Description: "Put screens away an hour before bedtime, or use a night-mode filter.",
		},
		domain.SleepTip{
			Icon:        "thermometer",
			Title:       "Keep the bedroom cool",
			Description: "A room temperature around 18 degrees Celsius helps your body reach deep sleep.",
		},
	)

	if stats.LongestHours-stats.ShortestHours > 3 && stats.ShortestHours > 0 {
		tips = append(tips, domain.SleepTip{
			Icon:        "activity",
			Title:       "Uneven sleep lengths",
			Description: "Your longest and shortest nights differ by more than 3 hours. A steadier schedule improves sleep quality.",
		})
	}

	tips = append(tips,
		domain.SleepTip{
			Icon:        "dumbbell",
			Title:       "Time your exercise",
			Description: "Regular exercise improves sleep, but finish intense workouts at least 3 hours before bed.",
		},
		domain.SleepTip{
			Icon:        "utensils",
			Title:       "Mind late meals",
			Description: "Heavy meals close to bedtime disturb sleep. Keep dinner light and a few hours before bed.",
		},
	)

	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}

// hasLateCaffeineToday reports whether any entry was logged on ref's
// calendar date at or after the late-caffeine hour.
func hasLateCaffeineToday(entries []domain.CaffeineEntry, ref time.Time) bool {
	today := ref.Format(domain.DateLayout)
	for _, entry := range entries {
		takenAt := entry.TakenAt.In(ref.Location())
		if takenAt.Format(domain.DateLayout) == today && takenAt.Hour() >= LateCaffeineHour {
			return true
		}
	}
	return false
}
