package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/restwell/restwell-api/docs"
	"github.com/restwell/restwell-api/internal/api/handler"
	"github.com/restwell/restwell-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	sleepRecordHandler *handler.SleepRecordHandler
	caffeineHandler    *handler.CaffeineHandler
	plannerHandler     *handler.PlannerHandler
	statsHandler       *handler.StatsHandler
	settingsHandler    *handler.SettingsHandler
}

func NewRouter(
	sleepRecordHandler *handler.SleepRecordHandler,
	caffeineHandler *handler.CaffeineHandler,
	plannerHandler *handler.PlannerHandler,
	statsHandler *handler.StatsHandler,
	settingsHandler *handler.SettingsHandler,
) *Router {
	return &Router{
		sleepRecordHandler: sleepRecordHandler,
		caffeineHandler:    caffeineHandler,
		plannerHandler:     plannerHandler,
		statsHandler:       statsHandler,
		settingsHandler:    settingsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Sleep records
		r.Route("/sleep-records", func(r chi.Router) {
			r.Post("/", rt.sleepRecordHandler.Create)
			r.Get("/", rt.sleepRecordHandler.List)
			r.Delete("/{recordId}", rt.sleepRecordHandler.Delete)
		})

		// Caffeine
		r.Route("/caffeine-entries", func(r chi.Router) {
			r.Post("/", rt.caffeineHandler.Create)
			r.Get("/", rt.caffeineHandler.List)
			r.Delete("/", rt.caffeineHandler.Clear)
			r.Delete("/{entryId}", rt.caffeineHandler.Delete)
		})
		r.Get("/caffeine/status", rt.caffeineHandler.Status)

		// Cycle planner
		r.Get("/planner", rt.plannerHandler.Plan)

		// Debt, stats and the daily unlock
		r.Get("/sleep-debt", rt.statsHandler.Debt)
		r.Get("/stats", rt.statsHandler.Stats)
		r.Get("/stats/insights", rt.statsHandler.Insights)
		r.Post("/unlock", rt.statsHandler.Unlock)

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", rt.settingsHandler.Get)
			r.Put("/", rt.settingsHandler.Update)
		})
	})

	return r
}
