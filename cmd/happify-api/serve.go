package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/happify-app/backend/internal/config"
	"github.com/happify-app/backend/internal/events"
	"github.com/happify-app/backend/internal/handlers"
	"github.com/happify-app/backend/internal/logger"
	"github.com/happify-app/backend/internal/middleware"
	"github.com/happify-app/backend/internal/repository"
	"github.com/happify-app/backend/internal/service"
	"github.com/happify-app/backend/pkg/happify"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting happify analytics API",
		logger.String("env", cfg.Server.Env),
		logger.String("store_url", cfg.Store.URL),
	)

	// Store client
	storeClient := happify.NewClient(cfg.Store.URL)

	// Repositories
	moodRepo := repository.NewMoodRepository(storeClient)
	journalRepo := repository.NewJournalRepository(storeClient)
	trendRepo := repository.NewTrendRepository(storeClient)
	streakRepo := repository.NewStreakRepository(storeClient)
	remoteAnalytics := repository.NewAnalyticsRepository(storeClient)

	// Refresh notifications
	bus := events.NewBus()
	refreshCh, unsubscribe := bus.Subscribe()
	defer unsubscribe()
	go func() {
		for ev := range refreshCh {
			log.Debug("analytics refreshed",
				logger.String("time_range", string(ev.TimeRange)),
				logger.Int64("generation", int64(ev.Generation)),
			)
		}
	}()

	// Services and handlers
	analyticsService := service.NewAnalyticsService(moodRepo, journalRepo, trendRepo, streakRepo, remoteAnalytics, bus, log)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RequestLogger(log))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	analytics := router.Group("/analytics")
	analytics.Use(middleware.Session(cfg.Store.RequireSession))
	analyticsHandler.RegisterRoutes(analytics)

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
