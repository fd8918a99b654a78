package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GeocodeInput defines the query parameters for the geocode endpoint
type GeocodeInput struct {
	Address string `form:"address" binding:"required"` // Free-text address
}

// GeocodeResponse holds resolved coordinates
type GeocodeResponse struct {
	Latitude  float64 `json:"latitude" example:"-33.4263"`
	Longitude float64 `json:"longitude" example:"-70.617"`
}

// handleGeocode godoc
// @Summary Geocode an address
// @Description Resolve a free-text address to coordinates, retrying with broader variants of the address
// @Tags lookup
// @Produce json
// @Param address query string true "Address" example(Av. Providencia 1234, Providencia)
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string
// @Router /api/geocode [get]
func (app *App) handleGeocode(c *gin.Context) {
	var input GeocodeInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords, ok := app.geocodingService.Resolve(c.Request.Context(), input.Address)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not geocode address"})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	})
}
