package infrastructure

import (
	"context"
	"sort"

	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
)

const healthProbeKey = "health:probe"

// CacheHealthChecker verifies the cache backend answers requests
type CacheHealthChecker struct {
	cache   ports.CacheProvider
	backend string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, backend string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, backend: backend}
}

// Check probes the backend with an existence lookup
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    "healthy",
		Details: map[string]interface{}{
			"backend": c.backend,
		},
	}

	if c.cache == nil {
		status.Status = "unhealthy"
		status.Error = "cache is not configured"
		return status
	}

	if _, err := c.cache.Exists(ctx, healthProbeKey); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		if errors.IsCacheError(err) {
			status.Details["reachable"] = false
		}
	}

	return status
}

// UpstreamHealthChecker reports degraded health when any circuit breaker is not closed
type UpstreamHealthChecker struct {
	upstreams ports.UpstreamStatusReporter
}

// NewUpstreamHealthChecker creates a new upstream health checker
func NewUpstreamHealthChecker(upstreams ports.UpstreamStatusReporter) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{upstreams: upstreams}
}

// Check summarizes breaker states
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "upstreams",
		Status:    "healthy",
		Details:   make(map[string]interface{}),
	}

	if u.upstreams == nil {
		status.Status = "unhealthy"
		status.Error = "upstream client is not available"
		return status
	}

	var tripped []string
	for source, state := range u.upstreams.BreakerStates() {
		status.Details[source] = state
		if state != "closed" {
			tripped = append(tripped, source)
		}
	}

	if len(tripped) > 0 {
		sort.Strings(tripped)
		status.Status = "degraded"
		status.Details["tripped"] = tripped
	}

	return status
}
