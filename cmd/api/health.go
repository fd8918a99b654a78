package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// ReadyResponse represents the response for the readiness endpoint
type ReadyResponse struct {
	Status string `json:"status" example:"ready"`
	Error  string `json:"error,omitempty"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleReady godoc
// @Summary Readiness check
// @Description Check that the order store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /readyz [get]
func (app *App) handleReady(c *gin.Context) {
	if app.db == nil {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "not ready", Error: "order store not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "not ready", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{Status: "ready"})
}
