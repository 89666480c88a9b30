// RestWell API
//
// REST API for personal sleep and caffeine tracking.
//
//	@title			RestWell API
//	@version		1.0
//	@description	Track sleep intervals and caffeine intake, plan bedtimes around 90-minute cycles, and follow weekly sleep debt and statistics.
//
//	@BasePath	/v1
//
//	@tag.name			sleep-records
//	@tag.description	Sleep history endpoints
//
//	@tag.name			caffeine
//	@tag.description	Caffeine intake and residual level endpoints
//
//	@tag.name			planner
//	@tag.description	Sleep cycle planner endpoints
//
//	@tag.name			stats
//	@tag.description	Sleep debt, statistics and insights endpoints
//
//	@tag.name			settings
//	@tag.description	Settings endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/restwell/restwell-api/internal/api"
	"github.com/restwell/restwell-api/internal/api/handler"
	"github.com/restwell/restwell-api/internal/config"
	"github.com/restwell/restwell-api/internal/domain"
	"github.com/restwell/restwell-api/internal/llm"
	"github.com/restwell/restwell-api/internal/repository"
	"github.com/restwell/restwell-api/internal/seed"
	"github.com/restwell/restwell-api/internal/service"
	"github.com/restwell/restwell-api/internal/telemetry"
	"github.com/restwell/restwell-api/internal/unlock"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when OTLP is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "restwell-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.SleepRecord{}, &domain.CaffeineEntry{}, &domain.Settings{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	sleepRecordRepo := repository.NewSleepRecordRepository(db)
	caffeineRepo := repository.NewCaffeineEntryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	sleepRecordService := service.NewSleepRecordService(sleepRecordRepo)
	caffeineService := service.NewCaffeineService(caffeineRepo)
	plannerService := service.NewPlannerService()
	debtService := service.NewDebtService(sleepRecordRepo, settingsRepo)
	statsService := service.NewStatsService(sleepRecordRepo, caffeineRepo, debtService)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(statsService, debtService, openaiClient)

	// Daily stats unlock
	gate := unlock.NewGate()
	provider := unlock.NewProvider(cfg.UnlockMode)

	// Initialize handlers
	sleepRecordHandler := handler.NewSleepRecordHandler(sleepRecordService)
	caffeineHandler := handler.NewCaffeineHandler(caffeineService)
	plannerHandler := handler.NewPlannerHandler(plannerService)
	statsHandler := handler.NewStatsHandler(statsService, debtService, insightsService, gate, provider)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	// Setup router
	router := api.NewRouter(sleepRecordHandler, caffeineHandler, plannerHandler, statsHandler, settingsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
