package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// PrayerHandler handles prayer time HTTP requests
type PrayerHandler struct {
	prayerService service.PrayerService
}

// NewPrayerHandler creates a new PrayerHandler
func NewPrayerHandler(prayerService service.PrayerService) *PrayerHandler {
	return &PrayerHandler{prayerService: prayerService}
}

// Today handles today's prayer times for a JAKIM zone
// GET /api/v1/prayer-times/:zone
func (h *PrayerHandler) Today(c *gin.Context) {
	times, err := h.prayerService.GetToday(c.Request.Context(), c.Param("zone"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownZone):
			c.JSON(http.StatusNotFound, response.NotFound("Unknown JAKIM zone"))
		case errors.Is(err, service.ErrPrayerUpstream):
			c.JSON(http.StatusBadGateway, response.Error(
				response.ErrCodeInternalError, "Prayer times are temporarily unavailable"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, response.Success(times))
}
