package service

import (
	"context"
	"time"

	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/llm"
)

// InsightsService generates a narrative summary over the computed stats.
type InsightsService interface {
	// Generate builds the stats, debt report and tips for the reference
	// instant and asks the LLM for a narrative on top of them.
	Generate(ctx context.Context, ref time.Time) (*domain.InsightsResponse, error)
}

type insightsService struct {
	statsService StatsService
	debtService  DebtService
	llmClient    llm.InsightsLLM
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(statsService StatsService, debtService DebtService, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		statsService: statsService,
		debtService:  debtService,
		llmClient:    llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, ref time.Time) (*domain.InsightsResponse, error) {
	statsResp, err := s.statsService.Compute(ctx, ref)
	if err != nil {
		return nil, err
	}

	debt, err := s.debtService.Compute(ctx, ref)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Stats: statsResp.Stats,
		Debt:  *debt,
		Tips:  statsResp.Tips,
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Stats:    statsResp.Stats,
		Debt:     *debt,
		Tips:     statsResp.Tips,
		Insights: *output,
	}, nil
}
