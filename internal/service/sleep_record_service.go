package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/repository"
	"github.com/restwell/restwell-api/pkg/clock"
	"github.com/restwell/restwell-api/pkg/pagination"
)

type SleepRecordService interface {
	Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sleepRecordService struct {
	repo repository.SleepRecordRepository
}

func NewSleepRecordService(repo repository.SleepRecordRepository) SleepRecordService {
	return &sleepRecordService{repo: repo}
}

// Create logs one sleep interval. Hours are derived from bedtime and
// wake time here and never mutated afterwards; a wake time numerically
// at or before the bedtime counts as the following day. Records are
// never merged: submitting twice for the same date yields two records.
func (s *sleepRecordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}

	bedtime, err := clock.Parse(req.Bedtime)
	if err != nil {
		return nil, err
	}
	wake, err := clock.Parse(req.WakeTime)
	if err != nil {
		return nil, err
	}

	record := &domain.SleepRecord{
		Date:     req.Date,
		Bedtime:  bedtime.String(),
		WakeTime: wake.String(),
		Hours:    clock.ElapsedHours(bedtime, wake),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *sleepRecordService) List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = record.ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *sleepRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
