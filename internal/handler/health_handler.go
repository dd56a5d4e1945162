package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/pkg/database"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db *database.PostgresDB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports liveness
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{"status": "ok"}))
}

// Ready reports readiness, including database connectivity
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Error(
			response.ErrCodeInternalError, "database unreachable"))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"status": "ready"}))
}
