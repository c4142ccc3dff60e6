package lookup_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cityweather.app/internal/adapters/external"
	"cityweather.app/internal/adapters/infrastructure"
	"cityweather.app/internal/config"
	"cityweather.app/internal/core/lookup"
	"cityweather.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	geocodingNairobi = `{"results":[{"name":"Nairobi","latitude":-1.28333,"longitude":36.81667,"country":"Kenya","country_code":"KE","admin1":"Nairobi Area","timezone":"Africa/Nairobi","population":2750547}]}`

	forecastNairobi = `{"latitude":-1.25,"longitude":36.875,"elevation":1661.0,"timezone":"Africa/Nairobi",
		"timezone_abbreviation":"EAT","utc_offset_seconds":10800,
		"current_units":{"temperature_2m":"°C"},
		"current":{"time":"2025-03-01T12:00","temperature_2m":24.3,"relative_humidity_2m":48,"weather_code":3,"wind_speed_10m":12.6},
		"daily_units":{"temperature_2m_max":"°C"},
		"daily":{"time":["2025-03-01"],"weather_code":[3],"temperature_2m_max":[26.1],"temperature_2m_min":[13.2]}}`

	summaryNairobi = `{"title":"Nairobi","extract":"Nairobi is the capital and largest city of Kenya."}`

	imagesNairobi = `{"query":{"pages":[
		{"title":"File:Nairobi skyline.jpg","imageinfo":[{"url":"https://upload.wikimedia.org/nairobi_skyline.jpg"}]},
		{"title":"File:Flag of Kenya.jpg","imageinfo":[{"url":"https://upload.wikimedia.org/Flag_of_Kenya.jpg"}]},
		{"title":"File:Map.png","imageinfo":[{"url":"https://upload.wikimedia.org/map.png"}]}]}}`

	newsNairobi = `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Feed</title>` +
		`<item><title>Matatu strike ends</title><link>https://news.example/1</link>` +
		`<pubDate>Sat, 01 Mar 2025 09:30:00 GMT</pubDate><source url="https://nation.africa">Nation</source></item>` +
		`</channel></rss>`

	travelNairobi = `{"lead":{},"remaining":{"sections":[
		{"line":"History","text":"<p>Founded in 1899.</p>"},
		{"line":"See","text":"<p>Nairobi National Park<sup>[1]</sup></p>"}]}}`
)

// fakeUpstreams serves every upstream API from one server and counts requests per route
type fakeUpstreams struct {
	server *httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

func newFakeUpstreams(t *testing.T) *fakeUpstreams {
	t.Helper()

	f := &fakeUpstreams{calls: make(map[string]int)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeUpstreams) serve(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Path
	query := r.URL.Query()

	f.mu.Lock()
	f.calls[route]++
	f.mu.Unlock()

	switch {
	case route == "/search":
		if query.Get("name") == "Nairobi" {
			_, _ = io.WriteString(w, geocodingNairobi)
			return
		}
		_, _ = io.WriteString(w, `{"generationtime_ms":0.5}`)
	case route == "/forecast":
		_, _ = io.WriteString(w, forecastNairobi)
	case route == "/api/rest_v1/page/summary/Nairobi":
		_, _ = io.WriteString(w, summaryNairobi)
	case route == "/w/api.php":
		_, _ = io.WriteString(w, imagesNairobi)
	case route == "/rss/search":
		_, _ = io.WriteString(w, newsNairobi)
	case route == "/api/rest_v1/page/mobile-sections/Nairobi":
		_, _ = io.WriteString(w, travelNairobi)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeUpstreams) count(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

func (f *fakeUpstreams) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func newIntegrationUseCase(t *testing.T, upstreams *fakeUpstreams) (*lookup.UseCase, *external.MemoryCacheProvider) {
	t.Helper()

	cfg := &config.Config{
		Lookup: config.LookupConfig{
			AggregateTTL:      10 * time.Minute,
			DescriptionTTL:    time.Hour,
			ImagesTTL:         time.Hour,
			NewsTTL:           time.Hour,
			SuggestionsTTL:    time.Hour,
			VideoTTL:          24 * time.Hour,
			EnrichmentTimeout: 5 * time.Second,
			DefaultVideoID:    "h_apb3252aA",
		},
	}

	metrics := infrastructure.NewPrometheusMetricsCollector()
	client, err := external.NewUpstreamClient(external.UpstreamClientConfig{
		HTTPTimeout:        5 * time.Second,
		BrowserUserAgent:   "Mozilla/5.0 (test)",
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: time.Minute,
	}, metrics, nil)
	require.NoError(t, err)

	base := upstreams.server.URL
	provider := external.NewMemoryCacheProvider()

	useCase, err := lookup.NewUseCase(lookup.UseCaseDependencies{
		PlaceProvider:       external.NewGeocodingAdapter(client, base),
		ForecastProvider:    external.NewForecastAdapter(client, base),
		DescriptionProvider: external.NewDescriptionAdapter(client, base),
		ImageProvider:       external.NewImageAdapter(client, base),
		VideoProvider:       external.NewVideoResolver(client, base, cfg.Lookup.DefaultVideoID, 30),
		NewsProvider:        external.NewNewsFeedAdapter(client, base),
		TravelGuideProvider: external.NewTravelGuideAdapter(client, base),
		Cache:               external.NewLookupCacheAdapter(provider, nil),
		Config:              infrastructure.NewConfigProviderAdapter(cfg),
		Logger:              infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Metrics:             metrics,
	})
	require.NoError(t, err)
	return useCase, provider
}

func TestLookupWeather_EndToEnd_Nairobi(t *testing.T) {
	upstreams := newFakeUpstreams(t)
	useCase, _ := newIntegrationUseCase(t, upstreams)
	ctx := context.Background()

	aggregate, err := useCase.LookupWeather(ctx, lookup.LookupRequest{City: "Nairobi"})
	require.NoError(t, err)

	assert.Equal(t, "Nairobi", aggregate.CityName)
	assert.Equal(t, "Kenya", aggregate.Country)
	assert.Equal(t, "Overcast", aggregate.Conditions)
	assert.Equal(t, 24.3, aggregate.Current.Temperature)
	assert.Equal(t, "Nairobi is the capital and largest city of Kenya.", aggregate.Description)
	assert.Equal(t, []string{"https://upload.wikimedia.org/nairobi_skyline.jpg"}, aggregate.Images)
	knownID, ok := external.KnownVideoID("Nairobi")
	require.True(t, ok)
	assert.Equal(t, knownID, aggregate.VideoID)
	require.Len(t, aggregate.News, 1)
	assert.Equal(t, "Matatu strike ends", aggregate.News[0].Title)
	assert.Equal(t, "3/1/2025", aggregate.News[0].PubDate)
	assert.Equal(t, map[string]string{"See": "Nairobi National Park..."}, aggregate.Travel)

	for _, route := range []string{
		"/search",
		"/forecast",
		"/api/rest_v1/page/summary/Nairobi",
		"/w/api.php",
		"/rss/search",
		"/api/rest_v1/page/mobile-sections/Nairobi",
	} {
		assert.Equal(t, 1, upstreams.count(route), route)
	}
	// the video id comes from the curated table
	assert.Zero(t, upstreams.count("/results"))
	callsAfterFirst := upstreams.total()

	second, err := useCase.LookupWeather(ctx, lookup.LookupRequest{City: "nairobi "})
	require.NoError(t, err)

	assert.Equal(t, callsAfterFirst, upstreams.total(), "second lookup must be served from cache")
	assert.Equal(t, aggregate.CityName, second.CityName)
	assert.Equal(t, aggregate.Images, second.Images)
	assert.Equal(t, aggregate.News, second.News)
	assert.Equal(t, aggregate.Travel, second.Travel)
}

func TestLookupWeather_EndToEnd_UnknownCity(t *testing.T) {
	upstreams := newFakeUpstreams(t)
	useCase, provider := newIntegrationUseCase(t, upstreams)

	aggregate, err := useCase.LookupWeather(context.Background(), lookup.LookupRequest{City: "Atlantisxyz"})

	assert.Nil(t, aggregate)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, strings.Contains(err.Error(), "City not found"), err.Error())
	assert.Equal(t, 1, upstreams.total())
	assert.Zero(t, provider.Len(), "nothing may be cached for an unknown city")
}

func TestSuggestPlaces_EndToEnd(t *testing.T) {
	upstreams := newFakeUpstreams(t)
	useCase, _ := newIntegrationUseCase(t, upstreams)
	ctx := context.Background()

	places := useCase.SuggestPlaces(ctx, "Nairobi")
	require.Len(t, places, 1)
	assert.Equal(t, "Nairobi", places[0].Name)
	assert.Equal(t, "KE", places[0].CountryCode)

	again := useCase.SuggestPlaces(ctx, "NAIROBI")
	assert.Equal(t, places, again)
	assert.Equal(t, 1, upstreams.count("/search"), fmt.Sprintf("calls: %d", upstreams.total()))
}
