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

// AnnouncementHandler handles announcement HTTP requests
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Create handles announcement creation
// POST /api/v1/mosques/:mosqueId/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
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

	announcement, err := h.announcementService.Create(c.Request.Context(), c.Param("mosqueId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMosqueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(announcement))
}

// List handles listing a mosque's announcements (staff view, all statuses)
// GET /api/v1/mosques/:mosqueId/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	var filter dto.AnnouncementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	filter.MosqueID = c.Param("mosqueId")
	filter.SetDefaults()

	announcements, total, err := h.announcementService.List(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	page := filter.Offset/filter.Limit + 1
	c.JSON(http.StatusOK, response.Paginated(announcements, page, filter.Limit, int64(total)))
}

// ListVisible handles the public view: published, unexpired announcements
// GET /api/v1/mosques/:mosqueId/announcements/visible
func (h *AnnouncementHandler) ListVisible(c *gin.Context) {
	announcements, err := h.announcementService.ListVisible(c.Request.Context(), c.Param("mosqueId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(announcements))
}

// Update handles announcement updates
// PUT /api/v1/mosques/:mosqueId/announcements/:announcementId
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	announcement, err := h.announcementService.Update(c.Request.Context(), c.Param("announcementId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Announcement not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(announcement))
}

// Delete handles announcement deletion
// DELETE /api/v1/mosques/:mosqueId/announcements/:announcementId
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.announcementService.Delete(c.Request.Context(), c.Param("announcementId")); err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Announcement not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}
