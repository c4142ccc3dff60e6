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

const (
	forecastCurrentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,rain,showers,snowfall,weather_code,cloud_cover,wind_speed_10m"
	forecastDailyFields   = "weather_code,temperature_2m_max,temperature_2m_min"
)

// ForecastAdapter implements ForecastProvider with the Open-Meteo forecast API
type ForecastAdapter struct {
	client  *UpstreamClient
	baseURL string
}

func NewForecastAdapter(client *UpstreamClient, baseURL string) *ForecastAdapter {
	return &ForecastAdapter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type forecastResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	Elevation            float64           `json:"elevation"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int               `json:"utc_offset_seconds"`
	CurrentUnits         map[string]string `json:"current_units"`
	Current              struct {
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
	} `json:"current"`
	DailyUnits map[string]string `json:"daily_units"`
	Daily      struct {
		Time           []string  `json:"time"`
		WeatherCode    []int     `json:"weather_code"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// FetchForecast returns current conditions and the daily outlook for coordinates
func (f *ForecastAdapter) FetchForecast(ctx context.Context, latitude, longitude float64) (*ports.ForecastData, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", forecastCurrentFields)
	params.Set("daily", forecastDailyFields)
	params.Set("timezone", "auto")

	resp, err := f.client.Get(ctx, SourceForecast, fmt.Sprintf("%s/forecast?%s", f.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("forecast returned status %d", resp.StatusCode), nil)
	}

	var payload forecastResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode forecast response", err)
	}

	return &ports.ForecastData{
		Latitude:             payload.Latitude,
		Longitude:            payload.Longitude,
		Elevation:            payload.Elevation,
		Timezone:             payload.Timezone,
		TimezoneAbbreviation: payload.TimezoneAbbreviation,
		UTCOffsetSeconds:     payload.UTCOffsetSeconds,
		Current: ports.CurrentConditionsData{
			Time:                payload.Current.Time,
			Temperature:         payload.Current.Temperature,
			RelativeHumidity:    payload.Current.RelativeHumidity,
			ApparentTemperature: payload.Current.ApparentTemperature,
			Precipitation:       payload.Current.Precipitation,
			Rain:                payload.Current.Rain,
			Showers:             payload.Current.Showers,
			Snowfall:            payload.Current.Snowfall,
			WeatherCode:         payload.Current.WeatherCode,
			CloudCover:          payload.Current.CloudCover,
			WindSpeed:           payload.Current.WindSpeed,
		},
		CurrentUnits: payload.CurrentUnits,
		Daily: ports.DailyForecastData{
			Time:           payload.Daily.Time,
			WeatherCode:    payload.Daily.WeatherCode,
			TemperatureMax: payload.Daily.TemperatureMax,
			TemperatureMin: payload.Daily.TemperatureMin,
		},
		DailyUnits: payload.DailyUnits,
	}, nil
}
