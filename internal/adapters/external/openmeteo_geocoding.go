package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
	"github.com/goccy/go-json"
)

// GeocodingAdapter implements PlaceProvider with the Open-Meteo geocoding API
type GeocodingAdapter struct {
	client  *UpstreamClient
	baseURL string
}

func NewGeocodingAdapter(client *UpstreamClient, baseURL string) *GeocodingAdapter {
	return &GeocodingAdapter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type geocodingResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Country     string  `json:"country"`
		CountryCode string  `json:"country_code"`
		Admin1      string  `json:"admin1"`
		Timezone    string  `json:"timezone"`
		Population  int64   `json:"population"`
	} `json:"results"`
}

// ResolvePlace returns the best match for query
func (g *GeocodingAdapter) ResolvePlace(ctx context.Context, query string) (*ports.PlaceData, error) {
	places, err := g.search(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, errors.NewNotFoundError("City not found")
	}
	return &places[0], nil
}

// SearchPlaces returns up to limit candidates for query
func (g *GeocodingAdapter) SearchPlaces(ctx context.Context, query string, limit int) ([]ports.PlaceData, error) {
	return g.search(ctx, query, limit)
}

func (g *GeocodingAdapter) search(ctx context.Context, query string, limit int) ([]ports.PlaceData, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", strconv.Itoa(limit))
	params.Set("language", "en")
	params.Set("format", "json")

	resp, err := g.client.Get(ctx, SourceGeocoding, fmt.Sprintf("%s/search?%s", g.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("geocoding returned status %d", resp.StatusCode), nil)
	}

	var payload geocodingResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode geocoding response", err)
	}

	places := make([]ports.PlaceData, 0, len(payload.Results))
	for _, r := range payload.Results {
		places = append(places, ports.PlaceData{
			Name:        r.Name,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Admin1:      r.Admin1,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Timezone:    r.Timezone,
			Population:  r.Population,
		})
	}
	return places, nil
}
