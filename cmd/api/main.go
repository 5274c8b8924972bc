package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laporku/monthly-report-api/internal/config"
	"github.com/laporku/monthly-report-api/internal/database"
	"github.com/laporku/monthly-report-api/internal/handler"
	"github.com/laporku/monthly-report-api/internal/middleware"
	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/repository"
	"github.com/laporku/monthly-report-api/internal/router"
	"github.com/laporku/monthly-report-api/internal/service"
	"github.com/laporku/monthly-report-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	mongoClient, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	db := mongoClient.Database(cfg.MongoDatabase)

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer cache.Close()
	}

	blobs, err := storage.NewLocal(cfg.UploadDir, logger)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	filters := query.NewFilterBuilder(cfg.LenientDateFilter)

	activityRepo := repository.NewActivityRepository(db)

	activityService := service.NewActivityService(activityRepo, filters, validate, logger)
	dashboardService := service.NewDashboardService(activityRepo, cache, cfg.DashboardCacheTTL, logger)
	recapService := service.NewRecapService(activityRepo, logger)
	exportService := service.NewExportService(activityService, recapService, logger)
	uploadService := service.NewUploadService(blobs, cfg.UploadMaxSizeMB, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ActivityHandler:  handler.NewActivityHandler(activityService, logger),
		DashboardHandler: handler.NewDashboardHandler(dashboardService, logger),
		RecapHandler:     handler.NewRecapHandler(recapService, logger),
		ExportHandler:    handler.NewExportHandler(exportService, logger),
		UploadHandler:    handler.NewUploadHandler(uploadService, logger),
		FileHandler:      handler.NewFileHandler(blobs, logger),
		Database:         db,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, mongoClient)
}

func waitForShutdown(app *fiber.App, mongoClient *mongo.Client) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect failed: %v", err)
	}

	log.Println("server stopped")
}
