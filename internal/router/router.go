package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/handler"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Scan    *handler.ScanHandler
	Run     *handler.RunHandler
	Channel *handler.ChannelHandler
	Export  *handler.ExportHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus metrics
	app.Get("/metrics", handler.MetricsHandler())

	scanLimit := middleware.NewScanRateLimiter()
	trendsLimit := middleware.NewTrendsRateLimiter()
	exportLimit := middleware.NewExportRateLimiter()

	// API routes
	api := app.Group("/api")

	// Scan routes
	api.Post("/scan", h.Scan.Scan, scanLimit.Handler())

	// Run history routes
	api.Get("/runs", h.Run.List, trendsLimit.Handler())

	// Channel history routes
	api.Get("/channels", h.Channel.List, trendsLimit.Handler())
	api.Get("/channels/:channelId/samples", h.Channel.Samples, trendsLimit.Handler())
	api.Get("/channels/:channelId/trend", h.Channel.Trend, trendsLimit.Handler())

	// Export routes
	api.Get("/export/latest", h.Export.Latest, exportLimit.Handler())
}
