package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cityweather.app/internal/mocks"
	"cityweather.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubStatsReporter map[string]interface{}

func (s stubStatsReporter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return s, nil
}

type testServer struct {
	server  *HTTPServerAdapter
	lookup  *mockLookupUseCase
	health  *mocks.SystemHealthChecker
	configs *mocks.ConfigProvider
}

func newTestServer(t *testing.T, rateLimit RateLimitConfig) *testServer {
	gin.SetMode(gin.TestMode)

	lookupUseCase := newMockLookupUseCase(t)
	health := mocks.NewSystemHealthChecker(t)
	configs := mocks.NewConfigProvider(t)

	server, err := NewHTTPServerAdapter(ServerOptions{
		RateLimit:      rateLimit,
		LookupUseCase:  lookupUseCase,
		StatsReporter:  stubStatsReporter{"upstreams": map[string]string{"forecast": "closed"}},
		HealthChecker:  health,
		ConfigProvider: configs,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("cityweather_lookups_total 1\n"))
		}),
	})
	require.NoError(t, err)

	return &testServer{server: server, lookup: lookupUseCase, health: health, configs: configs}
}

func (ts *testServer) get(path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	w := httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(w, req)
	return w
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	complete := func() ServerOptions {
		return ServerOptions{
			LookupUseCase:  &mockLookupUseCase{},
			StatsReporter:  stubStatsReporter{},
			HealthChecker:  &mocks.SystemHealthChecker{},
			ConfigProvider: &mocks.ConfigProvider{},
			MetricsHandler: http.NotFoundHandler(),
		}
	}

	tests := []struct {
		name   string
		modify func(*ServerOptions)
		errMsg string
	}{
		{"missing lookup use case", func(o *ServerOptions) { o.LookupUseCase = nil }, "lookup use case is required"},
		{"missing stats reporter", func(o *ServerOptions) { o.StatsReporter = nil }, "stats reporter is required"},
		{"missing health checker", func(o *ServerOptions) { o.HealthChecker = nil }, "health checker is required"},
		{"missing config provider", func(o *ServerOptions) { o.ConfigProvider = nil }, "config provider is required"},
		{"missing metrics handler", func(o *ServerOptions) { o.MetricsHandler = nil }, "metrics handler is required"},
		{"zero rate", func(o *ServerOptions) { o.RateLimit = RateLimitConfig{Enabled: true, Burst: 1} }, "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := complete()
			tt.modify(&opts)

			server, err := NewHTTPServerAdapter(opts)

			assert.Nil(t, server)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestServer_RequestID(t *testing.T) {
	ts := newTestServer(t, RateLimitConfig{})
	ts.configs.EXPECT().GetDonationConfig().Return(ports.DonationConfig{})

	t.Run("generated", func(t *testing.T) {
		w := ts.get("/api/donation", nil)

		id := w.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("propagated", func(t *testing.T) {
		w := ts.get("/api/donation", http.Header{"X-Request-ID": []string{"req-42"}})

		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}

func TestServer_RateLimit(t *testing.T) {
	ts := newTestServer(t, RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2})
	ts.configs.EXPECT().GetDonationConfig().Return(ports.DonationConfig{}).Twice()

	assert.Equal(t, http.StatusOK, ts.get("/api/donation", nil).Code)
	assert.Equal(t, http.StatusOK, ts.get("/api/donation", nil).Code)

	w := ts.get("/api/donation", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Error)
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name           string
		components     map[string]ports.HealthStatus
		expectedStatus int
		expectedHealth string
	}{
		{
			name: "healthy",
			components: map[string]ports.HealthStatus{
				"cache":     {Component: "cache", Status: "healthy"},
				"upstreams": {Component: "upstreams", Status: "healthy"},
			},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
		},
		{
			name: "degraded upstream",
			components: map[string]ports.HealthStatus{
				"cache":     {Component: "cache", Status: "healthy"},
				"upstreams": {Component: "upstreams", Status: "degraded"},
			},
			expectedStatus: http.StatusOK,
			expectedHealth: "degraded",
		},
		{
			name: "cache down",
			components: map[string]ports.HealthStatus{
				"cache":     {Component: "cache", Status: "unhealthy", Error: "connection refused"},
				"upstreams": {Component: "upstreams", Status: "degraded"},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, RateLimitConfig{})
			ts.health.EXPECT().CheckAll(mock.Anything).Return(tt.components).Once()

			w := ts.get("/api/health", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response struct {
				Status     string                        `json:"status"`
				Components map[string]ports.HealthStatus `json:"components"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedHealth, response.Status)
			assert.Len(t, response.Components, len(tt.components))
		})
	}
}

func TestServer_Donation(t *testing.T) {
	ts := newTestServer(t, RateLimitConfig{})
	ts.configs.EXPECT().GetDonationConfig().Return(ports.DonationConfig{
		Provider:        "M-PESA",
		Recipient:       "0700000000",
		SuggestedAmount: 200,
		Currency:        "KES",
	}).Once()

	w := ts.get("/api/donation", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"provider":"M-PESA","recipient":"0700000000","suggestedAmount":200,"currency":"KES"}`, w.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t, RateLimitConfig{})

	t.Run("json stats", func(t *testing.T) {
		w := ts.get("/api/metrics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"upstreams":{"forecast":"closed"}}`, w.Body.String())
	})

	t.Run("prometheus exposition", func(t *testing.T) {
		w := ts.get("/metrics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cityweather_lookups_total 1")
	})
}
