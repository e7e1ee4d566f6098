// Package main is the entry point for the flight search HTTP service.
//
//	@title						Flight Search Tool API
//	@version					1.0.0
//	@description				A flight search service that queries a configured provider (Kiwi, Amadeus, or bundled mock data) and returns filtered, sorted results.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-app/flight-search-tool/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travel-app/flight-search-tool/docs"

	flighthttp "github.com/travel-app/flight-search-tool/internal/adapter/http"
	"github.com/travel-app/flight-search-tool/internal/adapter/http/middleware"
	"github.com/travel-app/flight-search-tool/internal/adapter/provider"
	"github.com/travel-app/flight-search-tool/internal/config"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/metrics"
	"github.com/travel-app/flight-search-tool/internal/usecase"
)

const (
	serviceName     = "flight-search-api"
	metricNamespace = "flightsearch"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: serviceName,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Str("provider", cfg.Provider.Name).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the provider, use case, and handler, then registers
// the HTTP routes. Request ID, logging, and recovery middleware apply to
// the API group only; /health, /metrics, and /swagger stay outside it.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	// Resolve the configured provider (falls back to mock when unusable)
	flightProvider := provider.New(cfg.Provider, cfg.Search.Currency, log)

	// Prometheus metrics with a private registry
	m := metrics.New(metricNamespace)

	// Initialize use case
	flightUseCase := usecase.NewFlightSearchUseCase(flightProvider, &usecase.Config{
		Logger:  log,
		Metrics: m,
	})

	// Initialize handler
	flightHandler := flighthttp.NewFlightHandler(flightUseCase)

	// API routes behind the middleware chain
	flighthttp.RegisterRoutesWithMiddleware(e, flightHandler, middleware.Chain(log)...)

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown did not complete cleanly")
	}

	log.Info().Msg("Server stopped")
}
