package ports

import (
	"time"
)

// LookupConfig represents the TTL classes and enrichment budget of a lookup
type LookupConfig struct {
	AggregateTTL      time.Duration
	DescriptionTTL    time.Duration
	ImagesTTL         time.Duration
	NewsTTL           time.Duration
	SuggestionsTTL    time.Duration
	VideoTTL          time.Duration
	EnrichmentTimeout time.Duration
	DefaultVideoID    string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type      string
	RedisAddr string
}

// DonationConfig represents the donation instructions exposed to clients
type DonationConfig struct {
	Provider        string
	Recipient       string
	SuggestedAmount int
	Currency        string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetLookupConfig() LookupConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
	GetDonationConfig() DonationConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Upstream call outcomes reported to the metrics collector
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(keyClass string)
	RecordCacheMiss(keyClass string)
	RecordUpstreamCall(source, outcome string, duration time.Duration)
	RecordBreakerState(source, state string)
	RecordLookup(outcome string)
	RecordEnrichmentFallback(task string)
}

// UpstreamStatusReporter exposes the circuit breaker state of every upstream source
type UpstreamStatusReporter interface {
	BreakerStates() map[string]string
}
