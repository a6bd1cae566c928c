package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/models"
)

// HealthHandler reports liveness and catalog size
type HealthHandler struct {
	catalog agent.CatalogSource
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalog agent.CatalogSource, version string) *HealthHandler {
	return &HealthHandler{catalog: catalog, version: version}
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:      "healthy",
		Version:     h.version,
		CatalogSize: h.catalog.Snapshot().Len(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
