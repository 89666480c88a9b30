package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/repository"
	"github.com/restwell/restwell-api/pkg/pagination"
)

const (
	// HalfLifeHours is the caffeine elimination half-life used by the
	// decay model.
	HalfLifeHours = 5.0

	// TimelineSamples is the fixed number of points on the residual
	// caffeine timeline: a 24-hour span at 30-minute spacing, both ends
	// inclusive.
	TimelineSamples = 49

	// TimelineStepMinutes is the spacing between timeline samples.
	TimelineStepMinutes = 30
)

// CaffeineService manages caffeine intake events and computes residual
// caffeine levels.
type CaffeineService interface {
	// Log records a caffeine intake event at the current instant.
	Log(ctx context.Context, req *domain.CreateCaffeineEntryRequest, now time.Time) (*domain.CaffeineEntry, error)
	List(ctx context.Context, filter domain.CaffeineEntryFilter) (*domain.CaffeineEntryListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
	// Status reports the residual level at the given instant plus the
	// fixed-resolution timeline over all entries.
	Status(ctx context.Context, at time.Time) (*domain.CaffeineStatusResponse, error)
}

type caffeineService struct {
	repo repository.CaffeineEntryRepository
}

// NewCaffeineService creates a new CaffeineService.
func NewCaffeineService(repo repository.CaffeineEntryRepository) CaffeineService {
	return &caffeineService{repo: repo}
}

func (s *caffeineService) Log(ctx context.Context, req *domain.CreateCaffeineEntryRequest, now time.Time) (*domain.CaffeineEntry, error) {
	if req.AmountMg <= 0 || math.IsNaN(req.AmountMg) {
		return nil, domain.ErrOutOfRange
	}

	entry := &domain.CaffeineEntry{
		TakenAt:  now.UTC(),
		AmountMg: req.AmountMg,
		Category: req.Category,
		Label:    req.Label,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *caffeineService) List(ctx context.Context, filter domain.CaffeineEntryFilter) (*domain.CaffeineEntryListResponse, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.CaffeineEntryListResponse{
		Data: make([]domain.CaffeineEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *caffeineService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *caffeineService) Clear(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *caffeineService) Status(ctx context.Context, at time.Time) (*domain.CaffeineStatusResponse, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	timeline, anchor := caffeineTimeline(entries)

	response := &domain.CaffeineStatusResponse{
		At:       at,
		LevelMg:  caffeineLevelAt(entries, at),
		Timeline: timeline,
	}
	if anchor != nil {
		response.TimelineStart = anchor
	}

	return response, nil
}

// caffeineLevelAt computes the residual caffeine in milligrams at the
// given instant. Each entry decays independently with a fixed half-life;
// entries taken after the query instant contribute nothing. The sum is
// rounded to 1 decimal place and never negative.
func caffeineLevelAt(entries []domain.CaffeineEntry, at time.Time) float64 {
	total := 0.0
	for _, entry := range entries {
		if entry.TakenAt.After(at) {
			continue
		}
		if entry.AmountMg <= 0 || math.IsNaN(entry.AmountMg) {
			continue
		}
		elapsed := at.Sub(entry.TakenAt).Hours()
		total += entry.AmountMg * math.Pow(0.5, elapsed/HalfLifeHours)
	}

	if math.IsNaN(total) || total < 0 {
		return 0
	}
	return math.Round(total*10) / 10
}

// caffeineTimeline samples the decay curve into a fixed 24-hour grid.
// The anchor is the start of the clock hour containing the earliest
// entry, so callers get a consistent x-axis regardless of how entries
// are distributed in time. Returns a nil timeline when no entries exist.
func caffeineTimeline(entries []domain.CaffeineEntry) ([]domain.TimelinePoint, *time.Time) {
	if len(entries) == 0 {
		return nil, nil
	}

	earliest := entries[0].TakenAt
	for _, entry := range entries[1:] {
		if entry.TakenAt.Before(earliest) {
			earliest = entry.TakenAt
		}
	}

	anchor := time.Date(
		earliest.Year(), earliest.Month(), earliest.Day(),
		earliest.Hour(), 0, 0, 0, earliest.Location(),
	)

	timeline := make([]domain.TimelinePoint, TimelineSamples)
	for i := 0; i < TimelineSamples; i++ {
		at := anchor.Add(time.Duration(i) * TimelineStepMinutes * time.Minute)
		timeline[i] = domain.TimelinePoint{
			OffsetHours: float64(i) * float64(TimelineStepMinutes) / 60.0,
			LevelMg:     caffeineLevelAt(entries, at),
		}
	}

	return timeline, &anchor
}
