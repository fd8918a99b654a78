package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "order-weather/docs" // Ensure docs are imported
	"order-weather/internal/config"
	"order-weather/internal/geocoding"
	"order-weather/internal/observability"
	"order-weather/internal/orders"
	"order-weather/internal/orderweather"
	"order-weather/internal/platform/db"
	"order-weather/internal/timezone"
	"order-weather/internal/weather"
)

const shutdownTimeout = 10 * time.Second

// pinger reports whether the order store is reachable.
type pinger interface {
	PingContext(ctx context.Context) error
}

// App encapsulates application dependencies
type App struct {
	router              *gin.Engine
	logger              *slog.Logger
	cfg                 *config.Config
	db                  pinger
	closeDB             func() error
	registry            *prometheus.Registry
	geocodingService    geocoding.Service
	weatherService      weather.Service
	orderWeatherService orderweather.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	// Evaluation dates fall back to the delivery time zone without tzf
	tzSvc, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	}

	geocoder := geocoding.NewGeocodingService(cfg, metrics, logger)
	forecaster := weather.NewWeatherService(cfg, metrics, logger)
	orderWeather, err := orderweather.NewOrderWeatherService(
		orders.NewPostgresRepository(database),
		geocoder,
		forecaster,
		tzSvc,
		clockwork.NewRealClock(),
		cfg,
		metrics,
		logger,
	)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to create order weather service: %w", err)
	}

	app := newApp(cfg, logger, registry, database, geocoder, forecaster, orderWeather)
	app.closeDB = database.Close
	return app, nil
}

func newApp(
	cfg *config.Config,
	logger *slog.Logger,
	registry *prometheus.Registry,
	database *sql.DB,
	geocoder geocoding.Service,
	forecaster weather.Service,
	orderWeather orderweather.Service,
) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery(), requestLogger(logger))

	app := &App{
		router:              router,
		logger:              logger,
		cfg:                 cfg,
		registry:            registry,
		geocodingService:    geocoder,
		weatherService:      forecaster,
		orderWeatherService: orderWeather,
	}
	if database != nil {
		app.db = database
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("http server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case <-ctx.Done():
		app.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("http server shutdown error", "error", err)
		}
	}

	if app.closeDB != nil {
		if err := app.closeDB(); err != nil {
			app.logger.Error("database close error", "error", err)
		}
	}

	app.logger.Info("shutdown complete")
	return runErr
}
