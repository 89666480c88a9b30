package service

import (
	"context"
	"errors"
	"math"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/repository"
)

const (
	// Sane bounds for the recommended nightly hours setting.
	MinRecommendedHours = 1.0
	MaxRecommendedHours = 24.0
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.SettingsResponse, error)
	Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.SettingsResponse, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// Get returns the stored preferences, substituting the documented
// default when nothing has been saved yet.
func (s *settingsService) Get(ctx context.Context) (*domain.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.SettingsResponse{RecommendedHours: domain.DefaultRecommendedHours}, nil
		}
		return nil, err
	}
	return &domain.SettingsResponse{RecommendedHours: settings.RecommendedHours}, nil
}

func (s *settingsService) Update(ctx context.Context, req *domain.UpdateSettingsRequest) (*domain.SettingsResponse, error) {
	hours := req.RecommendedHours
	if math.IsNaN(hours) || hours < MinRecommendedHours || hours > MaxRecommendedHours {
		return nil, domain.ErrOutOfRange
	}

	settings := &domain.Settings{RecommendedHours: hours}
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return &domain.SettingsResponse{RecommendedHours: settings.RecommendedHours}, nil
}
