package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cityweather.app/internal/adapters/api"
	"cityweather.app/internal/adapters/infrastructure"
	"cityweather.app/internal/config"
	"cityweather.app/internal/core/lookup"
	"cityweather.app/internal/ports"
	"github.com/gin-gonic/gin"
)

type Application struct {
	config *config.Config

	// Use Cases
	lookupUseCase *lookup.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// NewApplication wires the application from an already loaded configuration
func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		if closeErr := deps.Close(); closeErr != nil {
			slog.Warn("Failed to release dependencies", "error", closeErr)
		}
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	if cfg == nil || depContainer == nil {
		return nil, fmt.Errorf("config and dependency container are required")
	}

	app := &Application{
		config: cfg,
		deps:   depContainer,
		ports:  depContainer.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	lookupUseCase, err := lookup.NewUseCase(lookup.UseCaseDependencies{
		PlaceProvider:       a.ports.PlaceProvider,
		ForecastProvider:    a.ports.ForecastProvider,
		DescriptionProvider: a.ports.DescriptionProvider,
		ImageProvider:       a.ports.ImageProvider,
		VideoProvider:       a.ports.VideoProvider,
		NewsProvider:        a.ports.NewsProvider,
		TravelGuideProvider: a.ports.TravelGuideProvider,
		Cache:               a.ports.LookupCache,
		Config:              a.ports.ConfigProvider,
		Logger:              a.ports.Logger,
		Metrics:             a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create lookup use case: %w", err)
	}
	a.lookupUseCase = lookupUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if !strings.EqualFold(a.config.Logging.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	statsReporter := infrastructure.NewStatsReporter(infrastructure.StatsReporterConfig{
		CacheMetrics:   a.ports.CacheMetrics,
		UpstreamStatus: a.ports.UpstreamStatus,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		CacheChecker:    infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, a.config.Cache.Type.String()),
		UpstreamChecker: infrastructure.NewUpstreamHealthChecker(a.ports.UpstreamStatus),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		RateLimit: api.RateLimitConfig{
			Enabled:           a.config.RateLimit.Enabled,
			RequestsPerSecond: a.config.RateLimit.RequestsPerSecond,
			Burst:             a.config.RateLimit.Burst,
		},
		LookupUseCase:  a.lookupUseCase,
		StatsReporter:  statsReporter,
		HealthChecker:  systemHealthChecker,
		ConfigProvider: a.ports.ConfigProvider,
		MetricsHandler: a.deps.Metrics().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Close(); err != nil {
		slog.Warn("Error releasing dependencies", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetLookupUseCase returns the lookup use case for testing
func (a *Application) GetLookupUseCase() *lookup.UseCase {
	return a.lookupUseCase
}
