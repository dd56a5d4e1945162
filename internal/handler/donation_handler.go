package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// DonationHandler handles donation HTTP requests
type DonationHandler struct {
	donationService service.DonationService
}

// NewDonationHandler creates a new DonationHandler
func NewDonationHandler(donationService service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

// Record handles recording a donation
// POST /api/v1/mosques/:mosqueId/donations
func (h *DonationHandler) Record(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	donation, err := h.donationService.Record(c.Request.Context(), c.Param("mosqueId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMosqueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(donation))
}

// List handles listing a mosque's donations
// GET /api/v1/mosques/:mosqueId/donations
func (h *DonationHandler) List(c *gin.Context) {
	var filter dto.DonationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	filter.MosqueID = c.Param("mosqueId")
	filter.SetDefaults()

	donations, total, err := h.donationService.List(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	page := filter.Offset/filter.Limit + 1
	c.JSON(http.StatusOK, response.Paginated(donations, page, filter.Limit, int64(total)))
}

// GetByID handles retrieving one donation
// GET /api/v1/mosques/:mosqueId/donations/:donationId
func (h *DonationHandler) GetByID(c *gin.Context) {
	donation, err := h.donationService.GetByID(c.Request.Context(), c.Param("donationId"))
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Donation not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(donation))
}

// Complete handles marking a pending donation as paid
// POST /api/v1/mosques/:mosqueId/donations/:donationId/complete
func (h *DonationHandler) Complete(c *gin.Context) {
	donation, err := h.donationService.Complete(c.Request.Context(), c.Param("donationId"))
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Donation not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(donation))
}

// Total handles the donation total for a mosque
// GET /api/v1/mosques/:mosqueId/donations/total
func (h *DonationHandler) Total(c *gin.Context) {
	total, err := h.donationService.Total(c.Request.Context(), c.Param("mosqueId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"total": total}))
}
