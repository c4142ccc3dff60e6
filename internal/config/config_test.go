package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"cityweather.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "https://geocoding-api.open-meteo.com/v1", config.Upstream.GeocodingBaseURL)
		assert.Equal(t, "https://api.open-meteo.com/v1", config.Upstream.ForecastBaseURL)
		assert.Equal(t, 10*time.Second, config.Upstream.HTTPTimeout)
		assert.Equal(t, 10*time.Minute, config.Lookup.AggregateTTL)
		assert.Equal(t, time.Hour, config.Lookup.DescriptionTTL)
		assert.Equal(t, time.Hour, config.Lookup.ImagesTTL)
		assert.Equal(t, time.Hour, config.Lookup.NewsTTL)
		assert.Equal(t, time.Hour, config.Lookup.SuggestionsTTL)
		assert.Equal(t, 24*time.Hour, config.Lookup.VideoTTL)
		assert.Equal(t, "h_apb3252aA", config.Lookup.DefaultVideoID)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, "localhost:6379", config.Cache.Redis.Addr)
		assert.Equal(t, "info", config.Logging.Level)
		assert.True(t, config.RateLimit.Enabled)
		assert.Equal(t, "M-PESA", config.Donation.Provider)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("LOOKUP_AGGREGATE_TTL", "5m"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "cache:6379"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))
		require.NoError(t, os.Setenv("FORECAST_BASE_URL", "http://127.0.0.1:9999/v1"))
		defer os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, 5*time.Minute, config.Lookup.AggregateTTL)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "cache:6379", config.Cache.Redis.Addr)
		assert.Equal(t, slog.LevelDebug, config.Logging.SlogLevel())
		assert.Equal(t, "http://127.0.0.1:9999/v1", config.Upstream.ForecastBaseURL)
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("CACHE_TYPE", "memcached"))
		defer os.Clearenv()

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "CACHE_TYPE must be one of")
	})
}

func TestUpstreamConfig_Validate(t *testing.T) {
	valid := func() UpstreamConfig {
		return UpstreamConfig{
			GeocodingBaseURL:   "https://geo.example",
			ForecastBaseURL:    "https://forecast.example",
			WikipediaBaseURL:   "https://wiki.example",
			WikivoyageBaseURL:  "https://voyage.example",
			NewsBaseURL:        "https://news.example",
			VideoSearchBaseURL: "https://video.example",
			HTTPTimeout:        time.Second,
			ScrapesPerMinute:   10,
			BreakerMaxFailures: 3,
			BreakerOpenTimeout: time.Minute,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *UpstreamConfig)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *UpstreamConfig) {}},
		{
			name:    "EmptyForecastURL",
			mutate:  func(c *UpstreamConfig) { c.ForecastBaseURL = "" },
			wantErr: "FORECAST_BASE_URL cannot be empty",
		},
		{
			name:    "NewsURLWithoutScheme",
			mutate:  func(c *UpstreamConfig) { c.NewsBaseURL = "news.example" },
			wantErr: "NEWS_BASE_URL must start with http:// or https://",
		},
		{
			name:    "ZeroTimeout",
			mutate:  func(c *UpstreamConfig) { c.HTTPTimeout = 0 },
			wantErr: "UPSTREAM_HTTP_TIMEOUT must be positive",
		},
		{
			name:    "ZeroBreakerFailures",
			mutate:  func(c *UpstreamConfig) { c.BreakerMaxFailures = 0 },
			wantErr: "UPSTREAM_BREAKER_MAX_FAILURES must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLookupConfig_Validate(t *testing.T) {
	cfg := LookupConfig{
		AggregateTTL:      10 * time.Minute,
		DescriptionTTL:    time.Hour,
		ImagesTTL:         time.Hour,
		NewsTTL:           time.Hour,
		SuggestionsTTL:    time.Hour,
		VideoTTL:          24 * time.Hour,
		EnrichmentTimeout: 5 * time.Second,
		DefaultVideoID:    "h_apb3252aA",
	}
	assert.NoError(t, cfg.Validate())

	cfg.VideoTTL = 0
	assert.ErrorContains(t, cfg.Validate(), "LOOKUP_VIDEO_TTL")

	cfg.VideoTTL = time.Hour
	cfg.DefaultVideoID = "  "
	assert.ErrorContains(t, cfg.Validate(), "LOOKUP_DEFAULT_VIDEO_ID cannot be empty")
}

func TestRedisConfig_Validate(t *testing.T) {
	cfg := CacheConfig{
		Type: CacheTypeRedis,
		Redis: RedisConfig{
			Addr:         "localhost:6379",
			DB:           16,
			DialTimeout:  5,
			ReadTimeout:  3,
			WriteTimeout: 3,
		},
	}

	assert.ErrorContains(t, cfg.Validate(), "REDIS_DB must be between 0 and 15")

	cfg.Redis.DB = 0
	assert.NoError(t, cfg.Validate())
}

func TestCacheTypeFromString(t *testing.T) {
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString(" Redis "))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("disk"))
}

func TestLoggingConfig_Validate(t *testing.T) {
	assert.NoError(t, (&LoggingConfig{Level: "warn"}).Validate())
	assert.Error(t, (&LoggingConfig{Level: "verbose"}).Validate())
	assert.Error(t, (&LoggingConfig{Level: "info", EnableUpstreamLogging: true}).Validate())
}
