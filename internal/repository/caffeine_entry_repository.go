package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/pkg/pagination"
	"gorm.io/gorm"
)

type CaffeineEntryRepository interface {
	Create(ctx context.Context, entry *domain.CaffeineEntry) error
	List(ctx context.Context, filter domain.CaffeineEntryFilter) ([]domain.CaffeineEntry, error)
	// ListAll returns every entry ordered by intake instant, oldest first.
	ListAll(ctx context.Context) ([]domain.CaffeineEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type caffeineEntryRepository struct {
	db *gorm.DB
}

func NewCaffeineEntryRepository(db *gorm.DB) CaffeineEntryRepository {
	return &caffeineEntryRepository{db: db}
}

func (r *caffeineEntryRepository) Create(ctx context.Context, entry *domain.CaffeineEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *caffeineEntryRepository) List(ctx context.Context, filter domain.CaffeineEntryFilter) ([]domain.CaffeineEntry, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.CaffeineEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *caffeineEntryRepository) ListAll(ctx context.Context) ([]domain.CaffeineEntry, error) {
	var entries []domain.CaffeineEntry
	err := r.db.WithContext(ctx).
		Order("taken_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *caffeineEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.CaffeineEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *caffeineEntryRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&domain.CaffeineEntry{}).Error
}
