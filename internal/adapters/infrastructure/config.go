package infrastructure

import (
	"cityweather.app/internal/config"
	"cityweather.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetLookupConfig returns cache TTLs and enrichment settings
func (c *ConfigProviderAdapter) GetLookupConfig() ports.LookupConfig {
	return ports.LookupConfig{
		AggregateTTL:      c.config.Lookup.AggregateTTL,
		DescriptionTTL:    c.config.Lookup.DescriptionTTL,
		ImagesTTL:         c.config.Lookup.ImagesTTL,
		NewsTTL:           c.config.Lookup.NewsTTL,
		SuggestionsTTL:    c.config.Lookup.SuggestionsTTL,
		VideoTTL:          c.config.Lookup.VideoTTL,
		EnrichmentTimeout: c.config.Lookup.EnrichmentTimeout,
		DefaultVideoID:    c.config.Lookup.DefaultVideoID,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	cacheConfig := ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
	}
	if c.config.Cache.Type == config.CacheTypeRedis {
		cacheConfig.RedisAddr = c.config.Cache.Redis.Addr
	}
	return cacheConfig
}

// GetDonationConfig returns the donation instructions
func (c *ConfigProviderAdapter) GetDonationConfig() ports.DonationConfig {
	return ports.DonationConfig{
		Provider:        c.config.Donation.Provider,
		Recipient:       c.config.Donation.Recipient,
		SuggestedAmount: c.config.Donation.SuggestedAmount,
		Currency:        c.config.Donation.Currency,
	}
}
