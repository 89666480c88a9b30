package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restwell/restwell-api/internal/domain"
)

// MockSleepRecordService is a mock implementation of service.SleepRecordService
type MockSleepRecordService struct {
	createFunc func(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	listFunc   func(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockSleepRecordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.SleepRecord{
		ID:       uuid.New(),
		Date:     req.Date,
		Bedtime:  req.Bedtime,
		WakeTime: req.WakeTime,
		Hours:    8,
	}, nil
}

func (m *MockSleepRecordService) List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.SleepRecordListResponse{
		Data:       []domain.SleepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockSleepRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// MockCaffeineService is a mock implementation of service.CaffeineService
type MockCaffeineService struct {
	logFunc    func(ctx context.Context, req *domain.CreateCaffeineEntryRequest, now time.Time) (*domain.CaffeineEntry, error)
	listFunc   func(ctx context.Context, filter domain.CaffeineEntryFilter) (*domain.CaffeineEntryListResponse, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
	clearFunc  func(ctx context.Context) error
	statusFunc func(ctx context.Context, at time.Time) (*domain.CaffeineStatusResponse, error)
}

func (m *MockCaffeineService) Log(ctx context.Context, req *domain.CreateCaffeineEntryRequest, now time.Time) (*domain.CaffeineEntry, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, req, now)
	}
	return &domain.CaffeineEntry{
		ID:       uuid.New(),
		TakenAt:  now,
		AmountMg: req.AmountMg,
		Category: req.Category,
		Label:    req.Label,
	}, nil
}

func (m *MockCaffeineService) List(ctx context.Context, filter domain.CaffeineEntryFilter) (*domain.CaffeineEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.CaffeineEntryListResponse{
		Data:       []domain.CaffeineEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockCaffeineService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCaffeineService) Clear(ctx context.Context) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx)
	}
	return nil
}

func (m *MockCaffeineService) Status(ctx context.Context, at time.Time) (*domain.CaffeineStatusResponse, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, at)
	}
	return &domain.CaffeineStatusResponse{At: at, Timeline: []domain.TimelinePoint{}}, nil
}

// MockStatsService is a mock implementation of service.StatsService
type MockStatsService struct {
	computeFunc func(ctx context.Context, ref time.Time) (*domain.StatsResponse, error)
}

func (m *MockStatsService) Compute(ctx context.Context, ref time.Time) (*domain.StatsResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, ref)
	}
	return &domain.StatsResponse{Tips: []domain.SleepTip{}}, nil
}

// MockDebtService is a mock implementation of service.DebtService
type MockDebtService struct {
	computeFunc func(ctx context.Context, ref time.Time) (*domain.SleepDebtResult, error)
}

func (m *MockDebtService) Compute(ctx context.Context, ref time.Time) (*domain.SleepDebtResult, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, ref)
	}
	return &domain.SleepDebtResult{RecommendedHours: domain.DefaultRecommendedHours}, nil
}

// MockInsightsService is a mock implementation of service.InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, ref time.Time) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, ref time.Time) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, ref)
	}
	return &domain.InsightsResponse{}, nil
}

// MockSettingsService is a mock implementation of service.SettingsService
type MockSettingsService struct {
	getFunc    func(ctx context.Context) (*domain.SettingsResponse, error)
	updateFunc func(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.SettingsResponse, error)
}

func (m *MockSettingsService) Get(ctx context.Context) (*domain.SettingsResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return &domain.SettingsResponse{RecommendedHours: domain.DefaultRecommendedHours}, nil
}

func (m *MockSettingsService) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.SettingsResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, req)
	}
	return &domain.SettingsResponse{RecommendedHours: req.RecommendedHours}, nil
}
