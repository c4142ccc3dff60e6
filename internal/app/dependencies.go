package app

import (
	"fmt"
	"io"
	"log/slog"

	"cityweather.app/internal/adapters/external"
	"cityweather.app/internal/adapters/infrastructure"
	"cityweather.app/internal/config"
	"cityweather.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	ports      *ports.ApplicationPorts
	metrics    *infrastructure.PrometheusMetricsCollector
	cache      external.CacheBackend
	fileLogger *infrastructure.FileLoggerAdapter
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{config: cfg}
	if err := container.initializePorts(); err != nil {
		if closeErr := container.Close(); closeErr != nil {
			slog.Warn("Failed to release partial dependencies", "error", closeErr)
		}
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	c.metrics = infrastructure.NewPrometheusMetricsCollector()

	// Upstream calls go to a dedicated file when enabled
	var callLogger ports.Logger
	if c.config.Logging.EnableUpstreamLogging && c.config.Logging.UpstreamLogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.UpstreamLogFilePath)
		if err != nil {
			slog.Warn("Failed to create upstream call logger, continuing without it", "error", err)
		} else {
			c.fileLogger = fileLogger
			callLogger = fileLogger
			slog.Info("Upstream call logging enabled", "path", c.config.Logging.UpstreamLogFilePath)
		}
	}

	upstream := c.config.Upstream
	client, err := external.NewUpstreamClient(external.UpstreamClientConfig{
		HTTPTimeout:        upstream.HTTPTimeout,
		BrowserUserAgent:   upstream.BrowserUserAgent,
		BreakerMaxFailures: upstream.BreakerMaxFailures,
		BreakerOpenTimeout: upstream.BreakerOpenTimeout,
	}, c.metrics, callLogger)
	if err != nil {
		return fmt.Errorf("create upstream client: %w", err)
	}

	geocoding := external.NewGeocodingAdapter(client, upstream.GeocodingBaseURL)

	cacheBackend, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cacheBackend

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	c.ports = &ports.ApplicationPorts{
		PlaceProvider:    geocoding,
		ForecastProvider: external.NewForecastAdapter(client, upstream.ForecastBaseURL),

		DescriptionProvider: external.NewDescriptionAdapter(client, upstream.WikipediaBaseURL),
		ImageProvider:       external.NewImageAdapter(client, upstream.WikipediaBaseURL),
		VideoProvider: external.NewVideoResolver(client, upstream.VideoSearchBaseURL,
			c.config.Lookup.DefaultVideoID, upstream.ScrapesPerMinute),
		NewsProvider:        external.NewNewsFeedAdapter(client, upstream.NewsBaseURL),
		TravelGuideProvider: external.NewTravelGuideAdapter(client, upstream.WikivoyageBaseURL),

		LookupCache:   external.NewLookupCacheAdapter(cacheBackend, nil),
		CacheProvider: cacheBackend,
		CacheMetrics:  cacheBackend,

		ConfigProvider:   infrastructure.NewConfigProviderAdapter(c.config),
		Logger:           infrastructure.NewSlogLoggerAdapter(slog.Default()),
		MetricsCollector: c.metrics,
		UpstreamStatus:   client,
	}

	slog.Info("Ports initialized successfully", "upstream_sources", client.Sources())
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the Prometheus collector backing the /metrics endpoint
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Close releases the cache connection and the upstream call log
func (c *DependencyContainer) Close() error {
	var firstErr error
	if closer, ok := c.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			firstErr = fmt.Errorf("close cache: %w", err)
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close upstream call logger: %w", err)
		}
	}
	return firstErr
}
