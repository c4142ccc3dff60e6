package external

import (
	"context"
	"time"

	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
	"github.com/goccy/go-json"
)

// JSONSerializer implements CacheSerializer with goccy/go-json
type JSONSerializer struct{}

func (JSONSerializer) Serialize(data interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func (JSONSerializer) Deserialize(data []byte, target interface{}) error {
	return json.Unmarshal(data, target)
}

// LookupCacheAdapter bridges the byte-oriented CacheProvider to typed lookup values
type LookupCacheAdapter struct {
	cacheProvider ports.CacheProvider
	serializer    ports.CacheSerializer
}

// NewLookupCacheAdapter creates a lookup cache using a generic cache provider
func NewLookupCacheAdapter(cacheProvider ports.CacheProvider, serializer ports.CacheSerializer) *LookupCacheAdapter {
	if serializer == nil {
		serializer = JSONSerializer{}
	}
	return &LookupCacheAdapter{
		cacheProvider: cacheProvider,
		serializer:    serializer,
	}
}

// Get decodes the value under key into target. A miss reports false with a nil error.
func (l *LookupCacheAdapter) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	data, err := l.cacheProvider.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	if err := l.serializer.Deserialize(data, target); err != nil {
		// an undecodable entry is dropped so the next lookup refreshes it
		_ = l.cacheProvider.Delete(ctx, key)
		return false, errors.NewCacheError("failed to deserialize cached value", err)
	}

	return true, nil
}

// Set encodes value and stores it for ttl
func (l *LookupCacheAdapter) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}

	data, err := l.serializer.Serialize(value)
	if err != nil {
		return errors.NewCacheError("failed to serialize cached value", err)
	}

	return l.cacheProvider.Set(ctx, key, data, ttl)
}
