package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
	qrcode "github.com/skip2/go-qrcode"
)

// PublicHandler serves the unauthenticated registration surface reached
// through event QR codes.
type PublicHandler struct {
	registrationService service.RegistrationService
	eventService        service.EventService
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(registrationService service.RegistrationService, eventService service.EventService) *PublicHandler {
	return &PublicHandler{
		registrationService: registrationService,
		eventService:        eventService,
	}
}

// ShowRegistrationPage handles the public registration page. The page is
// idempotent: reloading a closed or full event keeps showing its state
// without side effects.
// GET /events/:id/register
func (h *PublicHandler) ShowRegistrationPage(c *gin.Context) {
	page, err := h.registrationService.PublicPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(page))
}

// SubmitRegistration handles a public registration submission
// POST /events/:id/register
func (h *PublicHandler) SubmitRegistration(c *gin.Context) {
	var req dto.PublicRegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.registrationService.RegisterPublic(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, response.ErrorWithDetails(
				response.ErrCodeValidationFailed, "Please correct the highlighted fields", verr.Fields))
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
		case errors.Is(err, service.ErrRegistrationClosed):
			c.JSON(http.StatusConflict, response.Error(
				response.ErrCodeRegistrationClosed, "Registration for this event has closed"))
		case errors.Is(err, service.ErrEventFull):
			c.JSON(http.StatusConflict, response.Error(
				response.ErrCodeRegistrationFull, "This event is fully booked"))
		case errors.Is(err, service.ErrOperationFailed):
			c.JSON(http.StatusInternalServerError, response.Error(
				response.ErrCodeOperationFailed, "Registration could not be completed, please try again"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// RegistrationQR serves the event's registration link as a QR code PNG,
// sized for print.
// GET /events/:id/register/qr
func (h *PublicHandler) RegistrationQR(c *gin.Context) {
	eventID := c.Param("id")

	// The event must exist before handing out a scannable link.
	if _, err := h.eventService.GetByID(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	png, err := qrcode.Encode(h.eventService.RegistrationURL(eventID), qrcode.Medium, 512)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
