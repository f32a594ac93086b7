package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingFunc reports whether a backing store is reachable
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	pingDB PingFunc
}

func NewHealthHandler(pingDB PingFunc) *HealthHandler {
	return &HealthHandler{pingDB: pingDB}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
	router.GET("/api/health", h.Health)
}

// Health reports liveness. A failed database ping is reported in the body, not the status code.
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "ok",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if h.pingDB == nil || h.pingDB(ctx) != nil {
		body["database"] = "unavailable"
	}

	c.JSON(http.StatusOK, body)
}
