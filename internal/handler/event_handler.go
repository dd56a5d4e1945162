package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/middleware"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// EventHandler handles event management HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create handles event creation
// POST /api/v1/mosques/:mosqueId/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Not authenticated"))
		return
	}
	req.CreatedBy = userID

	event, err := h.eventService.Create(c.Request.Context(), c.Param("mosqueId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMosqueNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
		case errors.Is(err, service.ErrMosqueNotVerified):
			c.JSON(http.StatusForbidden, response.Forbidden("Mosque must be verified before hosting events"))
		default:
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, response.Success(event))
}

// GetByID handles retrieving an event
// GET /api/v1/mosques/:mosqueId/events/:eventId
func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.eventService.GetByID(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(event))
}

// List handles listing a mosque's events
// GET /api/v1/mosques/:mosqueId/events
func (h *EventHandler) List(c *gin.Context) {
	var filter dto.EventListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	filter.MosqueID = c.Param("mosqueId")
	filter.SetDefaults()

	events, total, err := h.eventService.List(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	page := filter.Offset/filter.Limit + 1
	c.JSON(http.StatusOK, response.Paginated(events, page, filter.Limit, int64(total)))
}

// Update handles event updates
// PUT /api/v1/mosques/:mosqueId/events/:eventId
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), c.Param("eventId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(event))
}

// Delete handles event deletion, registrations included
// DELETE /api/v1/mosques/:mosqueId/events/:eventId
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("eventId")); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}
