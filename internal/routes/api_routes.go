package routes

import (
	"github.com/go-chi/chi/v5"

	"reportgate/internal/api"
	"reportgate/internal/metrics"
	"reportgate/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	// Public share-link redemption, rate limited instead of API-keyed
	r.Group(func(public chi.Router) {
		public.Use(middleware.RateLimitMiddleware)
		public.Get("/public/reports", api.PublicReportHandler(deps.Services.Signer, deps.Services.Report, metricsReg, deps.Emitter))
	})

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(deps.Repo.Keys)) // global: all routes require an active API key

		v1.Get("/reports/{report_id}", api.FetchReportHandler(deps.Services.Report, metricsReg, deps.Emitter))
		v1.Post("/reports/{report_id}/share", api.ShareReportHandler(deps.Services.Signer, deps.Services.Report, deps.PublicBaseURL))

		// Configuration management
		v1.Route("/admin", func(admin chi.Router) {
			admin.Post("/settings", api.CreateSettingsHandler(deps.Repo.ConfigAdmin))
			admin.Get("/settings", api.ListSettingsHandler(deps.Repo.ConfigAdmin))
			admin.Put("/settings/{id}", api.UpdateSettingsHandler(deps.Repo.ConfigAdmin))
			admin.Delete("/settings/{id}", api.DeactivateSettingsHandler(deps.Repo.ConfigAdmin))

			admin.Post("/reports", api.CreateReportHandler(deps.Repo.ConfigAdmin))
			admin.Get("/reports", api.ListReportsHandler(deps.Repo.ConfigAdmin))
			admin.Put("/reports/{id}", api.UpdateReportHandler(deps.Repo.ConfigAdmin))
			admin.Delete("/reports/{id}", api.DeactivateReportHandler(deps.Repo.ConfigAdmin))
		})
	})
}
