package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	MongoURI          string
	MongoDatabase     string
	RedisURL          string
	UploadDir         string
	UploadMaxSizeMB   int
	DashboardCacheTTL time.Duration
	LenientDateFilter bool
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LAPOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Monthly Report API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8000")
	v.SetDefault("mongo.database", "monthly_report")
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("dashboard.cache_ttl", "5m")
	v.SetDefault("lenient.date_filter", true)

	ttlString := v.GetString("dashboard.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		MongoURI:          v.GetString("mongo.uri"),
		MongoDatabase:     v.GetString("mongo.database"),
		RedisURL:          v.GetString("redis.url"),
		UploadDir:         v.GetString("upload.dir"),
		UploadMaxSizeMB:   v.GetInt("upload.max_size_mb"),
		DashboardCacheTTL: ttl,
		LenientDateFilter: v.GetBool("lenient.date_filter"),
	}

	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("mongo uri must be provided")
	}

	if cfg.UploadMaxSizeMB <= 0 {
		cfg.UploadMaxSizeMB = 10
	}

	return cfg, nil
}
