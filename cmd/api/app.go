package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	weatherapp "medi-weather/internal/app"
	"medi-weather/internal/config"
	"medi-weather/internal/location"
	"medi-weather/internal/metrics"
	"medi-weather/internal/providers/openmeteo"
	"medi-weather/internal/store"
	"medi-weather/internal/ui"
	"medi-weather/internal/weather"

	_ "medi-weather/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router     *gin.Engine
	logger     *slog.Logger
	controller *weatherapp.Controller
	metrics    *metrics.Metrics
	store      store.Store
	cfg        *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	m := metrics.New()

	// Add middleware
	router.Use(gin.Recovery(), m.Middleware())

	tmpl, err := ui.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Shared by both Open-Meteo clients
	var limiter *rate.Limiter
	if cfg.OpenMeteo.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.OpenMeteo.RequestsPerSecond), max(cfg.OpenMeteo.Burst, 1))
	}
	clientOpts := func(baseURL string) []openmeteo.Option {
		return []openmeteo.Option{
			openmeteo.WithBaseURL(baseURL),
			openmeteo.WithTimeout(cfg.OpenMeteo.Timeout),
			openmeteo.WithRateLimiter(limiter),
			openmeteo.WithObserver(m),
		}
	}

	locationSvc := location.NewLocationService(logger, clientOpts(cfg.OpenMeteo.GeocodingURL)...)

	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(logger, cfg.App.TimezoneLookup, clientOpts(cfg.OpenMeteo.ForecastURL)...)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	controller := weatherapp.NewController(locationSvc, weatherSvc, st, cfg.App.DefaultCity, logger,
		weatherapp.WithLoadObserver(m),
	)

	app := &App{
		router:     router,
		logger:     logger,
		controller: controller,
		metrics:    m,
		store:      st,
		cfg:        cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized",
		"storage", cfg.Storage.Driver,
		"default_city", cfg.App.DefaultCity,
	)

	return app, nil
}

// Start loads the persisted or default city in the background
func (app *App) Start(ctx context.Context) {
	go func() {
		if err := app.controller.Start(ctx); err != nil {
			app.logger.Warn("initial load failed", "error", err)
		}
	}()
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close releases the store
func (app *App) Close() error {
	return app.store.Close()
}
