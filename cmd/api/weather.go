package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"order-weather/internal/types"
)

// GetWeatherInput defines the query parameters for the weather endpoint.
// Either both coordinates or a search text must be given.
type GetWeatherInput struct {
	Query     string   `form:"q"`                                              // Place name
	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`    // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"` // Longitude in decimal degrees
}

// WeatherResponse is today's weather signal
type WeatherResponse struct {
	WeatherSummary           string   `json:"weather_summary" example:"Symbol: 3"`
	PrecipitationProbability *float64 `json:"precipitation_probability" example:"0.4"` // Fraction in [0,1], null when unknown
}

// handleGetWeather godoc
// @Summary Get today's weather signal
// @Description Read today's forecast for a coordinate or a place name. Provider failures are reported in the summary, never as errors.
// @Tags lookup
// @Produce json
// @Param q query string false "Place name" example(Providencia)
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(-33.4489)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(-70.6693)
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} map[string]string
// @Router /api/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var signal types.WeatherSignal
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		coords := types.NewCoords(*input.Latitude, *input.Longitude)
		if !coords.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be finite numbers"})
			return
		}
		signal = app.weatherService.ByCoordinate(c.Request.Context(), coords)
	case strings.TrimSpace(input.Query) != "":
		signal = app.weatherService.ByText(c.Request.Context(), input.Query)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either q or both latitude and longitude are required"})
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{
		WeatherSummary:           signal.Summary,
		PrecipitationProbability: signal.PrecipitationProbability,
	})
}
