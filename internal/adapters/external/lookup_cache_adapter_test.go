package external

import (
	"context"
	"testing"
	"time"

	"cityweather.app/internal/config"
	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.LookupCache = (*LookupCacheAdapter)(nil)

type cachedHeadline struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

func TestLookupCacheAdapter_Integration(t *testing.T) {
	mockRedis := miniredis.RunT(t)

	tests := []struct {
		name   string
		config *config.CacheConfig
	}{
		{
			name:   "MemoryCache",
			config: &config.CacheConfig{Type: config.CacheTypeMemory},
		},
		{
			name: "RedisCache",
			config: &config.CacheConfig{
				Type: config.CacheTypeRedis,
				Redis: config.RedisConfig{
					Addr:         mockRedis.Addr(),
					DB:           1,
					KeyPrefix:    "test:",
					DialTimeout:  5,
					ReadTimeout:  3,
					WriteTimeout: 3,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := NewCacheProviderFactory().CreateCacheProvider(tt.config)
			require.NoError(t, err)

			cache := NewLookupCacheAdapter(backend, nil)
			ctx := context.Background()

			var missing []cachedHeadline
			found, err := cache.Get(ctx, "news:Lima", &missing)
			require.NoError(t, err)
			assert.False(t, found)

			news := []cachedHeadline{
				{Title: "Festival opens", Link: "https://news.example/1"},
				{Title: "Metro line extended", Link: "https://news.example/2"},
			}
			require.NoError(t, cache.Set(ctx, "news:Lima", news, time.Minute))

			var cached []cachedHeadline
			found, err = cache.Get(ctx, "news:Lima", &cached)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, news, cached)
		})
	}
}

func TestLookupCacheAdapter_EmptyValuesAreCached(t *testing.T) {
	cache := NewLookupCacheAdapter(NewMemoryCacheProvider(), JSONSerializer{})
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "images:Atlantis", []string{}, time.Minute))

	var images []string
	found, err := cache.Get(ctx, "images:Atlantis", &images)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}

func TestLookupCacheAdapter_CorruptEntry(t *testing.T) {
	backend := NewMemoryCacheProvider()
	cache := NewLookupCacheAdapter(backend, nil)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "desc:Paris", []byte("{not json"), time.Minute))

	var description string
	found, err := cache.Get(ctx, "desc:Paris", &description)
	assert.False(t, found)
	assert.True(t, errors.IsCacheError(err))

	exists, err := backend.Exists(ctx, "desc:Paris")
	require.NoError(t, err)
	assert.False(t, exists, "corrupt entry is evicted")
}

func TestLookupCacheAdapter_SetNil(t *testing.T) {
	cache := NewLookupCacheAdapter(NewMemoryCacheProvider(), nil)

	err := cache.Set(context.Background(), "weather:x", nil, time.Minute)

	assert.True(t, errors.IsValidationError(err))
}
