package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the aggregated component health
type HealthResponse struct {
	Status     string      `json:"status"`
	Components interface{} `json:"components"`
}

// DonationResponse represents the donation instructions shown to visitors
type DonationResponse struct {
	Provider        string `json:"provider"`
	Recipient       string `json:"recipient"`
	SuggestedAmount int    `json:"suggestedAmount"`
	Currency        string `json:"currency"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	overall := "healthy"
	for _, component := range components {
		switch component.Status {
		case "unhealthy":
			overall = "unhealthy"
		case "degraded":
			if overall == "healthy" {
				overall = "degraded"
			}
		}
	}

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, HealthResponse{Status: overall, Components: components})
}

// getDonation handles GET /api/donation requests
func (s *HTTPServerAdapter) getDonation(c *gin.Context) {
	donation := s.configProvider.GetDonationConfig()
	c.JSON(http.StatusOK, DonationResponse{
		Provider:        donation.Provider,
		Recipient:       donation.Recipient,
		SuggestedAmount: donation.SuggestedAmount,
		Currency:        donation.Currency,
	})
}
