package external

import (
	"context"
	"testing"
	"time"

	"cityweather.app/internal/config"
	"cityweather.app/internal/core/lookup"
	"cityweather.app/pkg/errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyPrefix = "cityweather:"

var _ CacheBackend = (*RedisCacheProviderAdapter)(nil)

// setupMockRedis starts an in-memory Redis and returns a config pointing at it
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	return mockRedis, &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		KeyPrefix:    testKeyPrefix,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}
}

func newTestRedisAdapter(t *testing.T) (*RedisCacheProviderAdapter, *miniredis.Miniredis) {
	t.Helper()

	mockRedis, cfg := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })
	return adapter, mockRedis
}

func nairobiAggregate() *lookup.Aggregate {
	aggregate := &lookup.Aggregate{
		CityName:    "Nairobi",
		Country:     "Kenya",
		Conditions:  "Overcast",
		Description: "Nairobi is the capital of Kenya.",
		Images:      []string{"https://upload.wikimedia.org/nairobi.jpg"},
		VideoID:     "h_apb3252aA",
		News:        []lookup.Headline{{Title: "Rains expected", Link: "https://news.example/1", Source: "Daily Nation"}},
		Travel:      map[string]string{"Get in": "Jomo Kenyatta International Airport"},
	}
	aggregate.Timezone = "Africa/Nairobi"
	aggregate.Current.Temperature = 24.3
	aggregate.Current.WeatherCode = 3
	return aggregate
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	_, validConfig := setupMockRedis(t)

	tests := []struct {
		name      string
		config    *config.RedisConfig
		errorType errors.ErrorType
	}{
		{
			name:      "NilConfig",
			config:    nil,
			errorType: errors.ErrorTypeConfiguration,
		},
		{
			name:   "ValidConfig",
			config: validConfig,
		},
		{
			name: "UnreachableServer",
			config: &config.RedisConfig{
				Addr:         "127.0.0.1:1",
				KeyPrefix:    testKeyPrefix,
				DialTimeout:  1,
				ReadTimeout:  1,
				WriteTimeout: 1,
			},
			errorType: errors.ErrorTypeExternalAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config)

			if tt.errorType != errors.ErrorTypeUnknown {
				require.Error(t, err)
				assert.Nil(t, adapter)
				var appErr *errors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.errorType, appErr.Type)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, adapter)
			assert.NoError(t, adapter.Close())
		})
	}
}

func TestRedisCacheProviderAdapter_AggregateUnderWeatherKey(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)
	cache := NewLookupCacheAdapter(adapter, nil)
	ctx := context.Background()

	key := (&lookup.LookupRequest{City: "NAIROBI"}).CacheKey()
	require.Equal(t, "weather:nairobi", key)

	require.NoError(t, cache.Set(ctx, key, nairobiAggregate(), 10*time.Minute))

	// stored under the prefix, never under the bare key
	assert.True(t, mockRedis.Exists(testKeyPrefix+"weather:nairobi"))
	assert.False(t, mockRedis.Exists("weather:nairobi"))
	assert.Equal(t, 10*time.Minute, mockRedis.TTL(testKeyPrefix+"weather:nairobi"))

	raw, err := mockRedis.Get(testKeyPrefix + "weather:nairobi")
	require.NoError(t, err)
	var document map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &document))
	assert.Equal(t, "Nairobi", document["cityName"])
	assert.Equal(t, "Africa/Nairobi", document["timezone"])
	assert.Contains(t, document, "current")

	var cached lookup.Aggregate
	found, err := cache.Get(ctx, key, &cached)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *nairobiAggregate(), cached)
	assert.Equal(t, "Nairobi, Kenya: 24.3°C, Overcast", cached.String())

	stats := adapter.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
}

func TestRedisCacheProviderAdapter_KeyClassExpiry(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		ttl   time.Duration
	}{
		{name: "Aggregate", key: "weather:nairobi", value: `{"cityName":"Nairobi"}`, ttl: 10 * time.Minute},
		{name: "Description", key: "desc:Nairobi, Kenya", value: `"Nairobi is the capital of Kenya."`, ttl: time.Hour},
		{name: "Images", key: "images:Nairobi, Kenya", value: `["https://upload.wikimedia.org/nairobi.jpg"]`, ttl: time.Hour},
		{name: "News", key: "news:Nairobi, Kenya", value: `[{"title":"Rains expected"}]`, ttl: time.Hour},
		{name: "Suggestions", key: "suggestions:nai", value: `[{"name":"Nairobi"}]`, ttl: time.Hour},
		{name: "Video", key: "video_v3:Nairobi, Kenya", value: `"h_apb3252aA"`, ttl: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, mockRedis := newTestRedisAdapter(t)
			ctx := context.Background()

			require.NoError(t, adapter.Set(ctx, tt.key, []byte(tt.value), tt.ttl))
			assert.Equal(t, tt.ttl, mockRedis.TTL(testKeyPrefix+tt.key))

			mockRedis.FastForward(tt.ttl - time.Second)
			value, err := adapter.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, string(value))

			mockRedis.FastForward(time.Second)
			assert.False(t, mockRedis.Exists(testKeyPrefix+tt.key))

			_, err = adapter.Get(ctx, tt.key)
			assert.True(t, errors.IsNotFoundError(err))

			stats := adapter.GetStats()
			assert.Equal(t, int64(1), stats.Hits)
			assert.Equal(t, int64(1), stats.Misses)
		})
	}
}

func TestRedisCacheProviderAdapter_VideoOutlivesAggregate(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "weather:nairobi", []byte(`{"cityName":"Nairobi"}`), 10*time.Minute))
	require.NoError(t, adapter.Set(ctx, "video_v3:Nairobi, Kenya", []byte(`"h_apb3252aA"`), 24*time.Hour))

	mockRedis.FastForward(23 * time.Hour)

	exists, err := adapter.Exists(ctx, "weather:nairobi")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = adapter.Exists(ctx, "video_v3:Nairobi, Kenya")
	require.NoError(t, err)
	assert.True(t, exists)

	mockRedis.FastForward(2 * time.Hour)

	exists, err = adapter.Exists(ctx, "video_v3:Nairobi, Kenya")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "GetEmptyKey",
			call: func() error { _, err := adapter.Get(ctx, ""); return err },
		},
		{
			name: "SetEmptyKey",
			call: func() error { return adapter.Set(ctx, "", []byte(`{}`), time.Hour) },
		},
		{
			name: "SetNilValue",
			call: func() error { return adapter.Set(ctx, "desc:Nairobi, Kenya", nil, time.Hour) },
		},
		{
			name: "SetZeroTTL",
			call: func() error { return adapter.Set(ctx, "weather:nairobi", []byte(`{}`), 0) },
		},
		{
			name: "SetNegativeTTL",
			call: func() error { return adapter.Set(ctx, "video_v3:Nairobi, Kenya", []byte(`"x"`), -time.Hour) },
		},
		{
			name: "DeleteEmptyKey",
			call: func() error { return adapter.Delete(ctx, "") },
		},
		{
			name: "ExistsEmptyKey",
			call: func() error { _, err := adapter.Exists(ctx, ""); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}

	// rejected writes leave nothing behind, prefixed or not
	assert.Empty(t, mockRedis.Keys())

	stats := adapter.GetStats()
	assert.Equal(t, int64(0), stats.TotalOps)
}

func TestRedisCacheProviderAdapter_DeleteUsesPrefix(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)
	ctx := context.Background()

	require.NoError(t, mockRedis.Set("news:Nairobi, Kenya", "foreign"))
	require.NoError(t, adapter.Set(ctx, "news:Nairobi, Kenya", []byte(`[]`), time.Hour))

	require.NoError(t, adapter.Delete(ctx, "news:Nairobi, Kenya"))

	assert.False(t, mockRedis.Exists(testKeyPrefix+"news:Nairobi, Kenya"))
	assert.True(t, mockRedis.Exists("news:Nairobi, Kenya"))

	// deleting an absent entry is not an error
	assert.NoError(t, adapter.Delete(ctx, "news:Nairobi, Kenya"))
}

func TestRedisCacheProviderAdapter_ClearKeepsForeignKeys(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)
	ctx := context.Background()

	require.NoError(t, mockRedis.Set("other-service:weather:nairobi", "keep"))
	for _, key := range []string{"weather:nairobi", "desc:Nairobi, Kenya", "suggestions:nai"} {
		require.NoError(t, adapter.Set(ctx, key, []byte(`{}`), time.Hour))
	}

	require.NoError(t, adapter.Clear(ctx))

	assert.Equal(t, []string{"other-service:weather:nairobi"}, mockRedis.Keys())
}

func TestRedisCacheProviderAdapter_CorruptAggregateIsDropped(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)
	cache := NewLookupCacheAdapter(adapter, nil)

	require.NoError(t, mockRedis.Set(testKeyPrefix+"weather:nairobi", "not json"))

	var cached lookup.Aggregate
	found, err := cache.Get(context.Background(), "weather:nairobi", &cached)
	assert.False(t, found)
	assert.True(t, errors.IsCacheError(err))
	assert.False(t, mockRedis.Exists(testKeyPrefix+"weather:nairobi"))
}

func TestRedisCacheProviderAdapter_Stats(t *testing.T) {
	adapter, _ := newTestRedisAdapter(t)
	cache := NewLookupCacheAdapter(adapter, nil)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "weather:nairobi", nairobiAggregate(), 10*time.Minute))

	var cached lookup.Aggregate
	for i := 0; i < 3; i++ {
		found, err := cache.Get(ctx, "weather:nairobi", &cached)
		require.NoError(t, err)
		require.True(t, found)
	}
	found, err := cache.Get(ctx, "weather:mombasa", &cached)
	require.NoError(t, err)
	assert.False(t, found)

	stats := adapter.GetStats()
	assert.Equal(t, "redis", stats.Backend)
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(4), stats.TotalOps)
	assert.InDelta(t, 0.75, stats.HitRatio, 0.0001)
	assert.Equal(t, int64(-1), stats.Entries)

	adapter.RecordMiss()
	assert.Equal(t, int64(2), adapter.GetStats().Misses)
}

func TestRedisCacheProviderAdapter_CancelledRequest(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := adapter.Set(ctx, "news:Nairobi, Kenya", []byte(`[]`), time.Hour)
	assert.True(t, errors.IsCacheError(err))
	assert.False(t, mockRedis.Exists(testKeyPrefix+"news:Nairobi, Kenya"))

	_, err = adapter.Get(ctx, "news:Nairobi, Kenya")
	assert.True(t, errors.IsCacheError(err))
	assert.Equal(t, int64(0), adapter.GetStats().Misses)
}

func TestRedisCacheProviderAdapter_ServerDown(t *testing.T) {
	adapter, mockRedis := newTestRedisAdapter(t)
	ctx := context.Background()

	mockRedis.Close()

	_, err := adapter.Get(ctx, "weather:nairobi")
	assert.True(t, errors.IsCacheError(err))

	err = adapter.Set(ctx, "weather:nairobi", []byte(`{}`), 10*time.Minute)
	assert.True(t, errors.IsCacheError(err))

	_, err = adapter.Exists(ctx, "weather:nairobi")
	assert.True(t, errors.IsCacheError(err))
}
