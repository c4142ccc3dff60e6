package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cityweather.app/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyUpstream answers every request with an empty JSON object
func emptyUpstream(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Upstream: config.UpstreamConfig{
			GeocodingBaseURL:   baseURL,
			ForecastBaseURL:    baseURL,
			WikipediaBaseURL:   baseURL,
			WikivoyageBaseURL:  baseURL,
			NewsBaseURL:        baseURL,
			VideoSearchBaseURL: baseURL,
			HTTPTimeout:        2 * time.Second,
			BrowserUserAgent:   "test-agent",
			ScrapesPerMinute:   30,
			BreakerMaxFailures: 5,
			BreakerOpenTimeout: time.Minute,
		},
		Lookup: config.LookupConfig{
			AggregateTTL:      10 * time.Minute,
			DescriptionTTL:    time.Hour,
			ImagesTTL:         time.Hour,
			NewsTTL:           time.Hour,
			SuggestionsTTL:    time.Hour,
			VideoTTL:          24 * time.Hour,
			EnrichmentTimeout: 2 * time.Second,
			DefaultVideoID:    "h_apb3252aA",
		},
		Cache:   config.CacheConfig{Type: config.CacheTypeMemory},
		Logging: config.LoggingConfig{Level: "info"},
		Donation: config.DonationConfig{
			Provider:        "M-PESA",
			Recipient:       "0700000000",
			SuggestedAmount: 200,
			Currency:        "KES",
		},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	gin.SetMode(gin.TestMode)

	deps, err := NewDependencyContainer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, deps.Close()) })

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return application
}

func serve(application *Application, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestApplication_HealthAndDonation(t *testing.T) {
	upstream := emptyUpstream(t)
	application := newTestApplication(t, testConfig(upstream.URL))

	w := serve(application, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status     string                            `json:"status"`
		Components map[string]map[string]interface{} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Contains(t, health.Components, "cache")
	assert.Contains(t, health.Components, "upstreams")
	assert.Contains(t, health.Components, "config")

	w = serve(application, "/api/donation")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"provider":"M-PESA","recipient":"0700000000","suggestedAmount":200,"currency":"KES"}`, w.Body.String())
}

func TestApplication_UnknownCity(t *testing.T) {
	upstream := emptyUpstream(t)
	application := newTestApplication(t, testConfig(upstream.URL))

	w := serve(application, "/api/weather?city=Atlantisxyz")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"City not found"}`, w.Body.String())

	w = serve(application, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cityweather_lookups_total{outcome="failure"} 1`)
}

func TestApplication_SuggestionsWithoutMatches(t *testing.T) {
	upstream := emptyUpstream(t)
	application := newTestApplication(t, testConfig(upstream.URL))

	w := serve(application, "/api/suggestions?q=Zzq")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions":[]}`, w.Body.String())
}

func TestApplication_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	upstream := emptyUpstream(t)

	cfg := testConfig(upstream.URL)
	cfg.Cache = config.CacheConfig{
		Type: config.CacheTypeRedis,
		Redis: config.RedisConfig{
			Addr:         mr.Addr(),
			KeyPrefix:    "test:",
			DialTimeout:  1,
			ReadTimeout:  1,
			WriteTimeout: 1,
		},
	}
	application := newTestApplication(t, cfg)

	w := serve(application, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis"`)
}

func TestNewDependencyContainer_InvalidCache(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Cache.Type = config.CacheTypeUnknown

	deps, err := NewDependencyContainer(cfg)
	assert.Error(t, err)
	assert.Nil(t, deps)
}

func TestNewApplicationWithDependencies_RequiresArguments(t *testing.T) {
	_, err := NewApplicationWithDependencies(nil, nil)
	assert.Error(t, err)
}
