// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"

	"cityweather.app/internal/core/lookup"
	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// RateLimitConfig configures the inbound token bucket
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	lookupUseCase  LookupUseCase
	statsReporter  StatsReporter
	healthChecker  ports.SystemHealthChecker
	configProvider ports.ConfigProvider
	metricsHandler http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type LookupUseCase interface {
	LookupWeather(ctx context.Context, request lookup.LookupRequest) (*lookup.Aggregate, error)
	SuggestPlaces(ctx context.Context, query string) []lookup.Place
}

type StatsReporter interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	RateLimit      RateLimitConfig
	LookupUseCase  LookupUseCase
	StatsReporter  StatsReporter
	HealthChecker  ports.SystemHealthChecker
	ConfigProvider ports.ConfigProvider
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	RegisterValidators()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())
	if opts.RateLimit.Enabled {
		router.Use(rateLimit(opts.RateLimit.RequestsPerSecond, opts.RateLimit.Burst))
	}

	server := &HTTPServerAdapter{
		router:         router,
		lookupUseCase:  opts.LookupUseCase,
		statsReporter:  opts.StatsReporter,
		healthChecker:  opts.HealthChecker,
		configProvider: opts.ConfigProvider,
		metricsHandler: opts.MetricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.LookupUseCase == nil {
		return errors.NewValidationError("lookup use case is required")
	}
	if opts.StatsReporter == nil {
		return errors.NewValidationError("stats reporter is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.ConfigProvider == nil {
		return errors.NewValidationError("config provider is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.RateLimit.Enabled && (opts.RateLimit.RequestsPerSecond <= 0 || opts.RateLimit.Burst < 1) {
		return errors.NewValidationError("rate limit needs a positive rate and burst")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/suggestions", s.getSuggestions)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
		api.GET("/donation", s.getDonation)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
