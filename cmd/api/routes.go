package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/readyz", app.handleReady)

	api := app.router.Group("/api")
	{
		// Order endpoints
		api.GET("/orders/:orderId/weather", app.handleGetOrderWeather)
		api.GET("/orders/by-number/:number/weather", app.handleGetOrderWeatherByNumber)

		// Lookup endpoints
		api.GET("/geocode", app.handleGeocode)
		api.GET("/weather", app.handleGetWeather)
	}

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{})))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
