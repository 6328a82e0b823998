package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flortune/app-settings/internal/config"
	"github.com/flortune/app-settings/internal/handlers"
	"github.com/flortune/app-settings/internal/logging"
	"github.com/flortune/app-settings/internal/middleware"
	"github.com/flortune/app-settings/internal/observability"
	"github.com/flortune/app-settings/internal/services"
	"github.com/flortune/app-settings/internal/store"
	"github.com/flortune/app-settings/internal/utils/httpclient"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/flortune/app-settings/docs"
)

// @title           Flortune Settings API
// @version         1.0
// @description     Per-scope settings, theme, popup and notification service for the Flortune personal-finance app. Settings are stored per scope (a user id or "global") and every change is recorded and streamed to watchers.

// @contact.name   API Support
// @contact.email  support@flortune.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name settings
// @tag.description Per-scope settings operations

// @tag.name loaders
// @tag.description Weather and quote loaders

// @tag.name notifications
// @tag.description Per-scope notification feed

// @tag.name popups
// @tag.description Popup campaign configuration

// @tag.name landing
// @tag.description Landing page content

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Wire the settings stack
	kv := store.NewRedisKV(config.Redis, config.AppConfig.RedisTTL)
	pool := httpclient.NewHTTPClientPool(10, config.AppConfig.UpstreamTimeout)
	feeds := services.NewFeedRegistry()
	bus := services.NewEventBus()
	weather := services.NewWeatherService(config.AppConfig.WeatherAPIURL, pool, feeds, logging.Logger)
	quotes := services.NewQuoteService(config.AppConfig.QuotesAPIURL, pool, logging.Logger)
	popups := services.NewPopupService(kv, logging.Logger)
	history := services.NewHistoryService(logging.Logger)
	provider := services.NewSettingsProvider(kv, weather, quotes, popups, feeds, history, bus, logging.Logger)
	landing := services.NewLandingService(logging.Logger)

	settingsHandlers := handlers.NewSettingsHandlers(provider, logging.Logger)
	landingHandlers := handlers.NewLandingHandlers(landing, logging.Logger)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Health check endpoint
		v1.GET("/health", handlers.HealthCheck)

		scoped := v1.Group("/settings/:scope")
		{
			scoped.GET("", settingsHandlers.GetSnapshot)
			scoped.PUT("/dark-mode", settingsHandlers.UpdateDarkMode)
			scoped.PUT("/private-mode", settingsHandlers.UpdatePrivateMode)
			scoped.PUT("/theme", settingsHandlers.UpdateTheme)
			scoped.PUT("/campaign", settingsHandlers.UpdateCampaign)
			scoped.GET("/weather-city", settingsHandlers.GetWeatherCity)
			scoped.PUT("/weather-city", settingsHandlers.UpdateWeatherCity)
			scoped.GET("/quote-codes", settingsHandlers.GetQuoteCodes)
			scoped.PUT("/quote-codes", settingsHandlers.UpdateQuoteCodes)

			scoped.GET("/weather", settingsHandlers.GetWeather)
			scoped.GET("/quotes", settingsHandlers.GetQuotes)

			scoped.GET("/notifications", settingsHandlers.ListNotifications)
			scoped.POST("/notifications", settingsHandlers.AddNotification)
			scoped.DELETE("/notifications", settingsHandlers.ClearNotifications)
			scoped.PUT("/notifications/:id/read", settingsHandlers.MarkNotificationRead)
			scoped.PUT("/notifications/read-all", settingsHandlers.MarkAllNotificationsRead)

			scoped.GET("/history", settingsHandlers.GetHistory)
			scoped.GET("/watch", settingsHandlers.WatchSettings)
		}

		v1.GET("/popups", settingsHandlers.GetPopups)
		v1.PUT("/admin/popups", settingsHandlers.MergePopups)
		v1.PUT("/admin/popups/active", settingsHandlers.SetActivePopup)

		v1.GET("/landing-content", landingHandlers.GetLandingContent)
		v1.PUT("/admin/landing-content", landingHandlers.UpdateLandingContent)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	pool.Close()

	logging.Logger.Info("server exited gracefully")
}
