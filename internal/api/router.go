package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Stock-Chart-Viewer/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Stock-Chart-Viewer/internal/api/middleware"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/config"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/flash"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/service"
	"github.com/ndewijer/Stock-Chart-Viewer/internal/view"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	chartService *service.ChartService,
	flashes *flash.Store,
	views *view.Renderer,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	chartHandler := handlers.NewChartHandler(chartService, flashes, views, nil)

	// HTML pages
	r.Get("/", chartHandler.Index)
	r.Get("/get_ticker", chartHandler.RedirectToIndex)
	r.Post("/get_ticker", chartHandler.GetTicker)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// CORS middleware
		corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
		r.Use(corsMiddleware.Handler)

		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Get("/chart", chartHandler.Chart)
	})

	return r
}
