package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"order-weather/internal/orderweather"
)

// OrderWeatherResponse is the weather evaluation of one order
type OrderWeatherResponse struct {
	OrderID                  int64    `json:"order_id" example:"42"`
	OrderNumber              string   `json:"order_number" example:"ORD-42"`
	Address                  string   `json:"address" example:"Av. Providencia 1234, Providencia, Región Metropolitana"`
	Latitude                 float64  `json:"latitude" example:"-33.4263"`
	Longitude                float64  `json:"longitude" example:"-70.617"`
	WeatherSummary           string   `json:"weather_summary" example:"Symbol: 3"`
	PrecipitationProbability *float64 `json:"precipitation_probability" example:"0.4"` // Fraction in [0,1], null when unknown
	DeliveryAvailable        bool     `json:"delivery_available" example:"true"`
	CheckedAt                string   `json:"checked_at" example:"2025-06-10"`                 // Evaluation date, YYYY-MM-DD
	RecommendedDate          *string  `json:"recommended_date,omitempty" example:"2025-06-11"` // Set when delivery is not available
}

func newOrderWeatherResponse(res *orderweather.Result) OrderWeatherResponse {
	out := OrderWeatherResponse{
		OrderID:                  res.OrderID,
		OrderNumber:              res.OrderNumber,
		Address:                  res.Address,
		Latitude:                 res.Coords.Latitude,
		Longitude:                res.Coords.Longitude,
		WeatherSummary:           res.Signal.Summary,
		PrecipitationProbability: res.Signal.PrecipitationProbability,
		DeliveryAvailable:        res.Decision.Available,
		CheckedAt:                res.CheckedAt.Format(time.DateOnly),
	}
	if d := res.Decision.RecommendedDate; d != nil {
		s := d.Format(time.DateOnly)
		out.RecommendedDate = &s
	}
	return out
}

// handleGetOrderWeather godoc
// @Summary Check delivery weather for an order
// @Description Geocode the order's address, read today's forecast there and decide whether delivery is weather-permitted
// @Tags orders
// @Produce json
// @Param orderId path int true "Order ID" minimum(1) example(42)
// @Success 200 {object} OrderWeatherResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/orders/{orderId}/weather [get]
func (app *App) handleGetOrderWeather(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	res, err := app.orderWeatherService.Evaluate(c.Request.Context(), id)
	app.respondOrderWeather(c, res, err)
}

// handleGetOrderWeatherByNumber godoc
// @Summary Check delivery weather for an order number
// @Description Same as the order id endpoint, looking the order up by its order number
// @Tags orders
// @Produce json
// @Param number path string true "Order number" example(ORD-42)
// @Success 200 {object} OrderWeatherResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/orders/by-number/{number}/weather [get]
func (app *App) handleGetOrderWeatherByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order number"})
		return
	}

	res, err := app.orderWeatherService.EvaluateByNumber(c.Request.Context(), number)
	app.respondOrderWeather(c, res, err)
}

func (app *App) respondOrderWeather(c *gin.Context, res *orderweather.Result, err error) {
	if err != nil {
		switch {
		case errors.Is(err, orderweather.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, orderweather.ErrCoordinatesUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not determine coordinates for order address"})
		default:
			app.logger.Error("failed to evaluate order weather",
				"path", c.Request.URL.Path,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate order weather"})
		}
		return
	}

	c.JSON(http.StatusOK, newOrderWeatherResponse(res))
}
