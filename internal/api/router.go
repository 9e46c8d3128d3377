package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/hydrolog/hydration-tracker/docs"
	"github.com/hydrolog/hydration-tracker/internal/api/handler"
	"github.com/hydrolog/hydration-tracker/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler         *handler.UserHandler
	catalogHandler      *handler.CatalogHandler
	drinkLogHandler     *handler.DrinkLogHandler
	sleepSummaryHandler *handler.SleepSummaryHandler
	analysisHandler     *handler.AnalysisHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	drinkLogHandler *handler.DrinkLogHandler,
	sleepSummaryHandler *handler.SleepSummaryHandler,
	analysisHandler *handler.AnalysisHandler,
) *Router {
	return &Router{
		userHandler:         userHandler,
		catalogHandler:      catalogHandler,
		drinkLogHandler:     drinkLogHandler,
		sleepSummaryHandler: sleepSummaryHandler,
		analysisHandler:     analysisHandler,
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
		// Drink catalog
		r.Get("/catalog/drinks", rt.catalogHandler.List)

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Patch("/{userId}", rt.userHandler.Update)

			// Drink logs (nested under users)
			r.Route("/{userId}/drinks", func(r chi.Router) {
				r.Post("/", rt.drinkLogHandler.Create)
				r.Get("/", rt.drinkLogHandler.List)
				r.Get("/summary", rt.drinkLogHandler.DailySummary)
				r.Patch("/{drinkId}", rt.drinkLogHandler.Update)
				r.Delete("/{drinkId}", rt.drinkLogHandler.Delete)
			})

			// Sleep summaries pushed by the client's sleep provider
			r.Put("/{userId}/sleep-summaries", rt.sleepSummaryHandler.Upsert)

			// Cached per-day analyses
			r.Route("/{userId}/analysis", func(r chi.Router) {
				r.Get("/sleep", rt.analysisHandler.GetSleep)
				r.Post("/sleep/refresh", rt.analysisHandler.RefreshSleep)
				r.Get("/weather", rt.analysisHandler.GetWeather)
				r.Post("/weather/refresh", rt.analysisHandler.RefreshWeather)
				r.Post("/feedback", rt.analysisHandler.PostFeedback)
			})
		})
	})

	return r
}
