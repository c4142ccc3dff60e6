package ports

import "context"

// PlaceData represents a geocoded place
type PlaceData struct {
	Name        string
	Country     string
	CountryCode string
	Admin1      string
	Latitude    float64
	Longitude   float64
	Timezone    string
	Population  int64
}

// CurrentConditionsData represents the current weather block of a forecast
type CurrentConditionsData struct {
	Time                string
	Temperature         float64
	RelativeHumidity    float64
	ApparentTemperature float64
	Precipitation       float64
	Rain                float64
	Showers             float64
	Snowfall            float64
	WeatherCode         int
	CloudCover          float64
	WindSpeed           float64
}

// DailyForecastData represents the daily arrays of a forecast
type DailyForecastData struct {
	Time           []string
	WeatherCode    []int
	TemperatureMax []float64
	TemperatureMin []float64
}

// ForecastData represents a forecast for one pair of coordinates
type ForecastData struct {
	Latitude             float64
	Longitude            float64
	Elevation            float64
	Timezone             string
	TimezoneAbbreviation string
	UTCOffsetSeconds     int
	Current              CurrentConditionsData
	CurrentUnits         map[string]string
	Daily                DailyForecastData
	DailyUnits           map[string]string
}

// HeadlineData represents one local news headline
type HeadlineData struct {
	Title   string
	Link    string
	PubDate string
	Source  string
}

// PlaceProvider resolves free text to places
type PlaceProvider interface {
	// ResolvePlace returns the best match or a NotFound error.
	ResolvePlace(ctx context.Context, query string) (*PlaceData, error)
	// SearchPlaces returns up to limit candidates.
	SearchPlaces(ctx context.Context, query string, limit int) ([]PlaceData, error)
}

// ForecastProvider fetches weather for coordinates
type ForecastProvider interface {
	FetchForecast(ctx context.Context, latitude, longitude float64) (*ForecastData, error)
}

// The enrichment providers below return an error only for transient failures
// (transport, unexpected status, undecodable body). A confirmed absence of data
// is a regular result and safe to cache.

// DescriptionProvider returns a short description of a place
type DescriptionProvider interface {
	FetchDescription(ctx context.Context, place string) (string, error)
}

// ImageProvider returns photo URLs of a place
type ImageProvider interface {
	FetchImages(ctx context.Context, place string) ([]string, error)
}

// VideoProvider resolves a representative video identifier for a place
type VideoProvider interface {
	ResolveVideoID(ctx context.Context, place string) (string, error)
}

// NewsProvider returns local news headlines for a place
type NewsProvider interface {
	FetchNews(ctx context.Context, place string) ([]HeadlineData, error)
}

// TravelGuideProvider returns travel guide sections of a place, nil when there is no guide
type TravelGuideProvider interface {
	FetchTravelTips(ctx context.Context, place string) (map[string]string, error)
}
