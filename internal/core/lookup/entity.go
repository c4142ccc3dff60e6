package lookup

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cityweather.app/pkg/validation"
)

const (
	maxQueryLength = 100

	// MaxImages is the number of photos kept per place
	MaxImages = 3
	// MaxHeadlines is the number of news items kept per place
	MaxHeadlines = 5
)

// Place is the resolved identity of a location
type Place struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone,omitempty"`
	Population  int64   `json:"population,omitempty"`
}

// DisplayName returns "Name, Country" or just the name when the country is unknown
func (p Place) DisplayName() string {
	if p.Country == "" {
		return p.Name
	}
	return p.Name + ", " + p.Country
}

// CurrentConditions mirrors the forecast API current block
type CurrentConditions struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature_2m"`
	RelativeHumidity    float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	Precipitation       float64 `json:"precipitation"`
	Rain                float64 `json:"rain"`
	Showers             float64 `json:"showers"`
	Snowfall            float64 `json:"snowfall"`
	WeatherCode         int     `json:"weather_code"`
	CloudCover          float64 `json:"cloud_cover"`
	WindSpeed           float64 `json:"wind_speed_10m"`
}

// DailyForecast mirrors the forecast API daily block
type DailyForecast struct {
	Time           []string  `json:"time"`
	WeatherCode    []int     `json:"weather_code"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
}

// Forecast is an immutable weather snapshot for one place
type Forecast struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	Elevation            float64           `json:"elevation"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int               `json:"utc_offset_seconds"`
	Current              CurrentConditions `json:"current"`
	CurrentUnits         map[string]string `json:"current_units"`
	Daily                DailyForecast     `json:"daily"`
	DailyUnits           map[string]string `json:"daily_units"`
}

// Headline is one local news item
type Headline struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`
	Source  string `json:"source"`
}

// Aggregate is the merged and cached result of one lookup.
// Forecast fields are flattened into the top level of the JSON document.
type Aggregate struct {
	Forecast
	CityName    string            `json:"cityName"`
	Country     string            `json:"country"`
	Conditions  string            `json:"conditions"`
	Description string            `json:"description"`
	Images      []string          `json:"images"`
	VideoID     string            `json:"videoId"`
	News        []Headline        `json:"news"`
	Travel      map[string]string `json:"travel"`
}

// String returns a one-line summary of the aggregate
func (a *Aggregate) String() string {
	place := Place{Name: a.CityName, Country: a.Country}
	return fmt.Sprintf("%s: %.1f°C, %s", place.DisplayName(), a.Current.Temperature, a.Conditions)
}

// LookupRequest represents a request for an aggregate
type LookupRequest struct {
	City string
}

// IsValid validates the lookup request
func (r *LookupRequest) IsValid() error {
	city, ok := validation.TrimAndValidate(r.City)
	if !ok {
		return fmt.Errorf("city cannot be empty")
	}
	if utf8.RuneCountInString(city) > maxQueryLength {
		return fmt.Errorf("city cannot be longer than %d characters", maxQueryLength)
	}
	return nil
}

// Normalize trims the city name
func (r *LookupRequest) Normalize() {
	r.City = strings.TrimSpace(r.City)
}

// CacheKey returns the aggregate cache key, case-insensitive on the query
func (r *LookupRequest) CacheKey() string {
	return aggregateKey(r.City)
}
