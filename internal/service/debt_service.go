package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DebtWindowDays is the fixed size of the sleep-debt window.
const DebtWindowDays = 7

// DebtService computes the rolling 7-day sleep debt report.
type DebtService interface {
	// Compute builds the 7-day report ending on the reference instant's
	// calendar date.
	Compute(ctx context.Context, ref time.Time) (*domain.SleepDebtResult, error)
}

type debtService struct {
	recordRepo   repository.SleepRecordRepository
	settingsRepo repository.SettingsRepository
}

// NewDebtService creates a new DebtService.
func NewDebtService(recordRepo repository.SleepRecordRepository, settingsRepo repository.SettingsRepository) DebtService {
	return &debtService{
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *debtService) Compute(ctx context.Context, ref time.Time) (*domain.SleepDebtResult, error) {
	tracer := otel.Tracer("restwell-api/debt")
	ctx, span := tracer.Start(ctx, "DebtService.Compute",
		trace.WithAttributes(
			attribute.String("debt.reference_date", ref.Format(domain.DateLayout)),
		),
	)
	defer span.End()

	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	recommended, err := s.recommendedHours(ctx)
	if err != nil {
		return nil, err
	}

	result := computeSleepDebt(records, recommended, ref)
	span.SetAttributes(
		attribute.Float64("debt.total_hours", result.TotalDebtHours),
		attribute.Int("debt.records", len(records)),
	)

	return result, nil
}

// recommendedHours loads the persisted target, falling back to the
// documented default when nothing has been saved yet.
func (s *debtService) recommendedHours(ctx context.Context) (float64, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultRecommendedHours, nil
		}
		return 0, err
	}
	return settings.RecommendedHours, nil
}

// computeSleepDebt builds the fixed 7-day window ending on ref's date,
// oldest day first. Each day matches at most one record by exact date
// string; when several records share a date the first one in input order
// wins. Days without a record carry the full recommended hours as debt
// but are excluded from the average, so untracked days do not drag the
// average down.
func computeSleepDebt(records []domain.SleepRecord, recommendedHours float64, ref time.Time) *domain.SleepDebtResult {
	if math.IsNaN(recommendedHours) {
		recommendedHours = 0
	}

	result := &domain.SleepDebtResult{
		RecommendedHours: recommendedHours,
		Days:             make([]domain.SleepDebtDay, 0, DebtWindowDays),
	}

	totalDebt := 0.0
	trackedSum := 0.0
	trackedDays := 0

	for i := DebtWindowDays - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		date := day.Format(domain.DateLayout)

		hours := 0.0
		hasRecord := false
		for _, record := range records {
			if record.Date == date {
				hours = record.Hours
				hasRecord = true
				break
			}
		}

		debt := recommendedHours - hours
		if debt < 0 || math.IsNaN(debt) {
			debt = 0
		}
		totalDebt += debt

		if hours > 0 {
			trackedSum += hours
			trackedDays++
		}

		result.Days = append(result.Days, domain.SleepDebtDay{
			Date:      date,
			Weekday:   day.Weekday().String(),
			Hours:     hours,
			DebtHours: math.Round(debt*100) / 100,
			HasRecord: hasRecord,
		})
	}

	result.TotalDebtHours = math.Round(totalDebt*100) / 100
	if trackedDays > 0 {
		result.AverageHours = math.Round(trackedSum/float64(trackedDays)*100) / 100
	}

	return result
}
