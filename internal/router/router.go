package router

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laporku/monthly-report-api/internal/config"
	"github.com/laporku/monthly-report-api/internal/handler"
	"github.com/laporku/monthly-report-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ActivityHandler  *handler.ActivityHandler
	DashboardHandler *handler.DashboardHandler
	RecapHandler     *handler.RecapHandler
	ExportHandler    *handler.ExportHandler
	UploadHandler    *handler.UploadHandler
	FileHandler      *handler.FileHandler
	Database         *mongo.Database
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", handler.Root())
	app.Get("/healthz", handler.HealthCheck(cfg))
	app.Get("/test", handler.Status(deps.Database))
	app.Get("/schema", handler.Schema())
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activities"))
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api)
	}
	if deps.RecapHandler != nil {
		deps.RecapHandler.Register(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.Register(api.Group("/export"))
	}
	if deps.UploadHandler != nil {
		deps.UploadHandler.Register(api.Group("/upload"))
	}
	if deps.FileHandler != nil {
		deps.FileHandler.Register(app.Group("/files"))
	}
}
