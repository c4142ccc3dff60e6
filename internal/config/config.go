package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cityweather.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB       = 15
	maxPortNumber    = 65535
	maxTTL           = 7 * 24 * time.Hour
	maxLookupTimeout = time.Minute
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Upstream  UpstreamConfig  `split_words:"true"`
	Lookup    LookupConfig    `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Logging   LoggingConfig   `split_words:"true"`
	RateLimit RateLimitConfig `split_words:"true"`
	Donation  DonationConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// UpstreamConfig holds the base URLs of every third-party source and the
// shared outbound client settings
type UpstreamConfig struct {
	GeocodingBaseURL   string        `envconfig:"GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
	ForecastBaseURL    string        `envconfig:"FORECAST_BASE_URL" default:"https://api.open-meteo.com/v1"`
	WikipediaBaseURL   string        `envconfig:"WIKIPEDIA_BASE_URL" default:"https://en.wikipedia.org"`
	WikivoyageBaseURL  string        `envconfig:"WIKIVOYAGE_BASE_URL" default:"https://en.wikivoyage.org"`
	NewsBaseURL        string        `envconfig:"NEWS_BASE_URL" default:"https://news.google.com"`
	VideoSearchBaseURL string        `envconfig:"VIDEO_SEARCH_BASE_URL" default:"https://www.youtube.com"`
	HTTPTimeout        time.Duration `envconfig:"UPSTREAM_HTTP_TIMEOUT" default:"10s"`
	BrowserUserAgent   string        `envconfig:"UPSTREAM_BROWSER_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	ScrapesPerMinute   int           `envconfig:"UPSTREAM_SCRAPES_PER_MINUTE" default:"30"`
	BreakerMaxFailures uint32        `envconfig:"UPSTREAM_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenTimeout time.Duration `envconfig:"UPSTREAM_BREAKER_OPEN_TIMEOUT" default:"1m"`
}

// LookupConfig holds the TTL of every cache key class and the enrichment budget
type LookupConfig struct {
	AggregateTTL      time.Duration `envconfig:"LOOKUP_AGGREGATE_TTL" default:"10m"`
	DescriptionTTL    time.Duration `envconfig:"LOOKUP_DESCRIPTION_TTL" default:"1h"`
	ImagesTTL         time.Duration `envconfig:"LOOKUP_IMAGES_TTL" default:"1h"`
	NewsTTL           time.Duration `envconfig:"LOOKUP_NEWS_TTL" default:"1h"`
	SuggestionsTTL    time.Duration `envconfig:"LOOKUP_SUGGESTIONS_TTL" default:"1h"`
	VideoTTL          time.Duration `envconfig:"LOOKUP_VIDEO_TTL" default:"24h"`
	EnrichmentTimeout time.Duration `envconfig:"LOOKUP_ENRICHMENT_TIMEOUT" default:"8s"`
	DefaultVideoID    string        `envconfig:"LOOKUP_DEFAULT_VIDEO_ID" default:"h_apb3252aA"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"cityweather:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LoggingConfig struct {
	Level                 string `envconfig:"LOG_LEVEL" default:"info"`
	EnableUpstreamLogging bool   `envconfig:"UPSTREAM_ENABLE_LOGGING" default:"false"`
	UpstreamLogFilePath   string `envconfig:"UPSTREAM_LOG_FILE_PATH" default:"logs/upstream_calls.log"`
}

// SlogLevel maps the configured level name to a slog level
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type RateLimitConfig struct {
	Enabled           bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

// DonationConfig describes the out-of-band donation instructions shown to users
type DonationConfig struct {
	Provider        string `envconfig:"DONATION_PROVIDER" default:"M-PESA"`
	Recipient       string `envconfig:"DONATION_RECIPIENT" default:""`
	SuggestedAmount int    `envconfig:"DONATION_SUGGESTED_AMOUNT" default:"200"`
	Currency        string `envconfig:"DONATION_CURRENCY" default:"KES"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Lookup.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	return c.Donation.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (u *UpstreamConfig) Validate() error {
	urls := []struct {
		name  string
		value string
	}{
		{"GEOCODING_BASE_URL", u.GeocodingBaseURL},
		{"FORECAST_BASE_URL", u.ForecastBaseURL},
		{"WIKIPEDIA_BASE_URL", u.WikipediaBaseURL},
		{"WIKIVOYAGE_BASE_URL", u.WikivoyageBaseURL},
		{"NEWS_BASE_URL", u.NewsBaseURL},
		{"VIDEO_SEARCH_BASE_URL", u.VideoSearchBaseURL},
	}
	for _, entry := range urls {
		if err := validateBaseURL(entry.name, entry.value); err != nil {
			return err
		}
	}

	if u.HTTPTimeout <= 0 {
		return errors.NewConfigurationError("UPSTREAM_HTTP_TIMEOUT must be positive", nil)
	}
	if u.ScrapesPerMinute < 0 {
		return errors.NewConfigurationError("UPSTREAM_SCRAPES_PER_MINUTE cannot be negative", nil)
	}
	if u.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if u.BreakerOpenTimeout <= 0 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_OPEN_TIMEOUT must be positive", nil)
	}
	return nil
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (l *LookupConfig) Validate() error {
	ttls := []struct {
		name  string
		value time.Duration
	}{
		{"LOOKUP_AGGREGATE_TTL", l.AggregateTTL},
		{"LOOKUP_DESCRIPTION_TTL", l.DescriptionTTL},
		{"LOOKUP_IMAGES_TTL", l.ImagesTTL},
		{"LOOKUP_NEWS_TTL", l.NewsTTL},
		{"LOOKUP_SUGGESTIONS_TTL", l.SuggestionsTTL},
		{"LOOKUP_VIDEO_TTL", l.VideoTTL},
	}
	for _, ttl := range ttls {
		if ttl.value <= 0 || ttl.value > maxTTL {
			return errors.NewConfigurationError(
				fmt.Sprintf("%s must be between 1ns and %s", ttl.name, maxTTL), nil)
		}
	}

	if l.EnrichmentTimeout <= 0 || l.EnrichmentTimeout > maxLookupTimeout {
		return errors.NewConfigurationError("LOOKUP_ENRICHMENT_TIMEOUT must be between 1ns and 1m", nil)
	}
	if strings.TrimSpace(l.DefaultVideoID) == "" {
		return errors.NewConfigurationError("LOOKUP_DEFAULT_VIDEO_ID cannot be empty", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	if l.EnableUpstreamLogging && l.UpstreamLogFilePath == "" {
		return errors.NewConfigurationError("UPSTREAM_LOG_FILE_PATH cannot be empty when upstream logging is enabled", nil)
	}
	return nil
}

func (r *RateLimitConfig) Validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerSecond <= 0 {
		return errors.NewConfigurationError("RATE_LIMIT_RPS must be positive", nil)
	}
	if r.Burst < 1 {
		return errors.NewConfigurationError("RATE_LIMIT_BURST must be at least 1", nil)
	}
	return nil
}

func (d *DonationConfig) Validate() error {
	if d.SuggestedAmount < 0 {
		return errors.NewConfigurationError("DONATION_SUGGESTED_AMOUNT cannot be negative", nil)
	}
	if d.Provider == "" {
		return errors.NewConfigurationError("DONATION_PROVIDER cannot be empty", nil)
	}
	return nil
}
