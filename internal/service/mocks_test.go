package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/domain"
)

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records    []*domain.SleepRecord
	listResult []domain.SleepRecord
	err        error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{}
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records = append(m.records, record)
	return nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		result = append(result, *m.records[i])
	}
	return result, nil
}

func (m *MockSleepRecordRepository) ListAll(ctx context.Context) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.SleepRecord, 0, len(m.records))
	for _, record := range m.records {
		result = append(result, *record)
	}
	return result, nil
}

func (m *MockSleepRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, record := range m.records {
		if record.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockCaffeineEntryRepository is a mock implementation of CaffeineEntryRepository
type MockCaffeineEntryRepository struct {
	entries []*domain.CaffeineEntry
	err     error
}

func NewMockCaffeineEntryRepository() *MockCaffeineEntryRepository {
	return &MockCaffeineEntryRepository{}
}

func (m *MockCaffeineEntryRepository) Create(ctx context.Context, entry *domain.CaffeineEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockCaffeineEntryRepository) List(ctx context.Context, filter domain.CaffeineEntryFilter) ([]domain.CaffeineEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.CaffeineEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		result = append(result, *m.entries[i])
	}
	return result, nil
}

func (m *MockCaffeineEntryRepository) ListAll(ctx context.Context) ([]domain.CaffeineEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.CaffeineEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		result = append(result, *entry)
	}
	return result, nil
}

func (m *MockCaffeineEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockCaffeineEntryRepository) DeleteAll(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.entries = nil
	return nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	settings *domain.Settings
	err      error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		return nil, domain.ErrNotFound
	}
	return m.settings, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if m.err != nil {
		return m.err
	}
	m.settings = settings
	return nil
}

// Helper functions

func mustRecord(date, bedtime, wakeTime string, hours float64) *domain.SleepRecord {
	return &domain.SleepRecord{
		ID:       uuid.New(),
		Date:     date,
		Bedtime:  bedtime,
		WakeTime: wakeTime,
		Hours:    hours,
	}
}

func mustEntry(takenAt time.Time, amountMg float64) *domain.CaffeineEntry {
	return &domain.CaffeineEntry{
		ID:       uuid.New(),
		TakenAt:  takenAt,
		AmountMg: amountMg,
		Category: domain.CaffeineCoffee,
	}
}
