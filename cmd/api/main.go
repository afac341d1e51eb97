// @title           Video List Service API
// @version         1.0
// @description     YouTube bookmark lists with tags, field schemas and typed custom fields

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8010
// @BasePath  /api/lists

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "video-list-api/docs" // Swagger docs import

	"video-list-api/internal/client"
	"video-list-api/internal/config"
	"video-list-api/internal/database"
	"video-list-api/internal/job"
	"video-list-api/internal/metrics"
	"video-list-api/internal/repository"
	"video-list-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Video List Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database; a failed connection does not abort startup,
	// the pod keeps running and reconnects in the background
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrate(db, logger); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	var statsDone chan struct{}
	var businessCollector *metrics.BusinessMetricsCollector
	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		statsDone = database.StartDBStatsCollector(db, m)
		businessCollector = metrics.NewBusinessMetricsCollector(db, m, logger)
		businessCollector.Start()
	}

	// Initialize Redis for the YouTube metadata cache; the service runs
	// without it, metadata calls just skip the cache
	if err := database.InitRedis(cfg.Redis, logger); err != nil {
		logger.Warn("Failed to connect to Redis, metadata caching disabled", zap.Error(err))
	}

	// Initialize YouTube Data API client
	youtubeClient := client.NewYouTubeClient(
		cfg.YouTube.BaseURL,
		cfg.YouTube.APIKey,
		cfg.YouTube.Timeout,
		cfg.YouTube.CacheTTL,
		database.GetRedis(),
		logger,
		m,
	)
	if youtubeClient.Enabled() {
		logger.Info("YouTube client initialized")
	} else {
		logger.Warn("No YouTube API key configured, metadata features disabled")
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		Logger:      logger,
		JWTSecret:   cfg.JWT.Secret,
		BasePath:    cfg.Server.BasePath,
		Metrics:     m,
		YouTube:     youtubeClient,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	// Schedule the maintenance job
	scheduler := cron.New()
	if db != nil {
		maintenance := job.NewMaintenanceJob(
			repository.NewVideoRepository(db),
			youtubeClient,
			logger,
			cfg.Job.PurgeRetention,
			cfg.Job.MetadataStaleAge,
		)
		if _, err := scheduler.AddJob(cfg.Job.Schedule, maintenance); err != nil {
			logger.Warn("Failed to schedule maintenance job",
				zap.String("schedule", cfg.Job.Schedule),
				zap.Error(err))
		} else {
			scheduler.Start()
			logger.Info("Maintenance job scheduled", zap.String("schedule", cfg.Job.Schedule))
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Video List Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()
	if businessCollector != nil {
		businessCollector.Stop()
	}
	if statsDone != nil {
		close(statsDone)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
