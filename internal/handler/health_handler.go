package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/laporku/monthly-report-api/internal/config"
	"github.com/laporku/monthly-report-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
}

// StatusResponse reports store connectivity for the diagnostic endpoint.
type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root returns the banner handler for the service root.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Monthly Report API Running"})
	}
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}

// Status returns a handler that reports document-store connectivity and the
// first few collection names. The database handle may be nil.
func Status(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := StatusResponse{
			Backend:          "running",
			Database:         "not available",
			ConnectionStatus: "not connected",
			Collections:      []string{},
		}

		if db == nil {
			return c.JSON(resp)
		}

		resp.DatabaseName = db.Name()

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			resp.Database = "error: " + storeErrorMessage(err)
			return c.JSON(resp)
		}
		resp.Database = "available"
		resp.ConnectionStatus = "connected"

		names, err := db.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			resp.Database = "connected but error: " + storeErrorMessage(err)
			return c.JSON(resp)
		}
		if len(names) > 10 {
			names = names[:10]
		}
		resp.Collections = names
		resp.Database = "connected and working"

		return c.JSON(resp)
	}
}

// Schema returns a handler describing the activity collection shape.
func Schema() fiber.Handler {
	model := fiber.Map{
		"type":     "object",
		"required": []string{"date", "name", "category", "duration"},
		"properties": fiber.Map{
			"date":             fiber.Map{"type": "string", "format": "date"},
			"name":             fiber.Map{"type": "string"},
			"category":         fiber.Map{"type": "string"},
			"duration":         fiber.Map{"type": "number", "minimum": 0},
			"result":           fiber.Map{"type": "string"},
			"notes":            fiber.Map{"type": "string"},
			"income":           fiber.Map{"type": "number", "minimum": 0},
			"expense":          fiber.Map{"type": "number", "minimum": 0},
			"finance_category": fiber.Map{"type": "string"},
			"attachments": fiber.Map{
				"type": "array",
				"items": fiber.Map{
					"type":     "object",
					"required": []string{"filename", "url"},
					"properties": fiber.Map{
						"filename":     fiber.Map{"type": "string"},
						"url":          fiber.Map{"type": "string"},
						"content_type": fiber.Map{"type": "string"},
						"size":         fiber.Map{"type": "integer", "minimum": 0},
					},
				},
			},
		},
	}

	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"collections": []fiber.Map{
				{"name": "activity", "model": model},
			},
		})
	}
}
