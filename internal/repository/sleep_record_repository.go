package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/pkg/pagination"
	"gorm.io/gorm"
)

type SleepRecordRepository interface {
	Create(ctx context.Context, record *domain.SleepRecord) error
	List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error)
	// ListAll returns every record ordered oldest first (by creation).
	// The aggregation services rely on this insertion order for the
	// first-match-wins date collision policy.
	ListAll(ctx context.Context) ([]domain.SleepRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *sleepRecordRepository) List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC")

	// Apply date filters (lexicographic compare works for YYYY-MM-DD)
	if filter.FromDate != "" {
		query = query.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("date <= ?", filter.ToDate)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records created before the cursor,
			// or created at the same instant but with a smaller id
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.SleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *sleepRecordRepository) ListAll(ctx context.Context) ([]domain.SleepRecord, error) {
	var records []domain.SleepRecord
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sleepRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.SleepRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
