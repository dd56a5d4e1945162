package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// RegistrationHandler handles the staff-facing registration surface:
// participant lists, status changes and attendance marking.
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Create handles a staff-entered registration, typically a walk-in.
// POST /api/v1/mosques/:mosqueId/events/:eventId/registrations
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	reg, err := h.registrationService.Create(c.Request.Context(), c.Param("eventId"), &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, response.ErrorWithDetails(
				response.ErrCodeValidationFailed, "Please correct the highlighted fields", verr.Fields))
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
		case errors.Is(err, service.ErrEventFull):
			c.JSON(http.StatusConflict, response.Error(
				response.ErrCodeRegistrationFull, "This event is fully booked"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, response.Success(reg))
}

// List handles listing an event's registrations
// GET /api/v1/mosques/:mosqueId/events/:eventId/registrations
func (h *RegistrationHandler) List(c *gin.Context) {
	var filter dto.RegistrationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	filter.EventID = c.Param("eventId")
	filter.SetDefaults()

	regs, total, err := h.registrationService.List(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	page := filter.Offset/filter.Limit + 1
	c.JSON(http.StatusOK, response.Paginated(regs, page, filter.Limit, int64(total)))
}

// GetByID handles retrieving one registration
// GET /api/v1/mosques/:mosqueId/events/:eventId/registrations/:registrationId
func (h *RegistrationHandler) GetByID(c *gin.Context) {
	reg, err := h.registrationService.GetByID(c.Request.Context(), c.Param("registrationId"))
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Registration not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(reg))
}

// UpdateStatus handles registration status changes
// PUT /api/v1/mosques/:mosqueId/events/:eventId/registrations/:registrationId
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	reg, err := h.registrationService.UpdateStatus(c.Request.Context(), c.Param("registrationId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Registration not found"))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, response.Error(
				response.ErrCodeInvalidTransition, "Registration status cannot change this way"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, response.Success(reg))
}

// MarkAttendance handles the attendance action
// POST /api/v1/mosques/:mosqueId/events/:eventId/registrations/:registrationId/attendance
func (h *RegistrationHandler) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	reg, err := h.registrationService.MarkAttendance(c.Request.Context(), c.Param("registrationId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Registration not found"))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, response.Error(
				response.ErrCodeInvalidTransition, "Attendance has already been decided"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, response.Success(reg))
}

// Delete handles removing a registration outright
// DELETE /api/v1/mosques/:mosqueId/events/:eventId/registrations/:registrationId
func (h *RegistrationHandler) Delete(c *gin.Context) {
	if err := h.registrationService.Delete(c.Request.Context(), c.Param("registrationId")); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Registration not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}
