package api

import (
	"log/slog"
	"net/http"

	"cityweather.app/internal/core/lookup"
	"cityweather.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// WeatherQuery represents the query string of a weather lookup
type WeatherQuery struct {
	City string `form:"city" binding:"required,notblank,max=100"`
}

// SuggestionsQuery represents the query string of an autocomplete request
type SuggestionsQuery struct {
	Q string `form:"q" binding:"max=100"`
}

// WeatherResponse represents the HTTP response for a successful lookup
type WeatherResponse struct {
	Success bool              `json:"success"`
	Data    *lookup.Aggregate `json:"data"`
}

// SuggestionsResponse represents the HTTP response for place suggestions
type SuggestionsResponse struct {
	Suggestions []lookup.Place `json:"suggestions"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required and must be at most 100 characters"))
		return
	}

	slog.Debug("Getting weather for city", "city", query.City)

	aggregate, err := s.lookupUseCase.LookupWeather(c.Request.Context(), lookup.LookupRequest{City: query.City})
	if err != nil {
		slog.Error("Lookup use case error", "error", err, "city", query.City)
		s.handleError(c, err)
		return
	}

	slog.Debug("Lookup result", "aggregate", aggregate.String(), "city", query.City)
	c.JSON(http.StatusOK, WeatherResponse{Success: true, Data: aggregate})
}

// getSuggestions handles GET /api/suggestions requests
func (s *HTTPServerAdapter) getSuggestions(c *gin.Context) {
	var query SuggestionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: []lookup.Place{}})
		return
	}

	suggestions := s.lookupUseCase.SuggestPlaces(c.Request.Context(), query.Q)
	if suggestions == nil {
		suggestions = []lookup.Place{}
	}
	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}
