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

// MosqueHandler handles mosque management HTTP requests
type MosqueHandler struct {
	mosqueService service.MosqueService
}

// NewMosqueHandler creates a new MosqueHandler
func NewMosqueHandler(mosqueService service.MosqueService) *MosqueHandler {
	return &MosqueHandler{mosqueService: mosqueService}
}

// Register handles mosque registration
// POST /api/v1/mosques
func (h *MosqueHandler) Register(c *gin.Context) {
	var req dto.CreateMosqueRequest
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

	mosque, err := h.mosqueService.Register(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(mosque))
}

// GetByID handles retrieving a mosque
// GET /api/v1/mosques/:mosqueId
func (h *MosqueHandler) GetByID(c *gin.Context) {
	mosque, err := h.mosqueService.GetByID(c.Request.Context(), c.Param("mosqueId"))
	if err != nil {
		if errors.Is(err, service.ErrMosqueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(mosque))
}

// List handles listing mosques
// GET /api/v1/mosques
func (h *MosqueHandler) List(c *gin.Context) {
	var filter dto.MosqueListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	filter.SetDefaults()

	mosques, total, err := h.mosqueService.List(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	page := filter.Offset/filter.Limit + 1
	c.JSON(http.StatusOK, response.Paginated(mosques, page, filter.Limit, int64(total)))
}

// Mine handles listing the mosques the authenticated user administers
// GET /api/v1/mosques/mine
func (h *MosqueHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Not authenticated"))
		return
	}

	mosques, err := h.mosqueService.ListByAdmin(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(mosques))
}

// Update handles mosque updates
// PUT /api/v1/mosques/:mosqueId
func (h *MosqueHandler) Update(c *gin.Context) {
	var req dto.UpdateMosqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	mosque, err := h.mosqueService.Update(c.Request.Context(), c.Param("mosqueId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMosqueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(mosque))
}

// Delete handles mosque deletion
// DELETE /api/v1/mosques/:mosqueId
func (h *MosqueHandler) Delete(c *gin.Context) {
	if err := h.mosqueService.Delete(c.Request.Context(), c.Param("mosqueId")); err != nil {
		if errors.Is(err, service.ErrMosqueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// Verify handles the system admin's verification decision
// POST /api/v1/mosques/:mosqueId/verify
func (h *MosqueHandler) Verify(c *gin.Context) {
	var req dto.VerifyMosqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Not authenticated"))
		return
	}

	mosque, err := h.mosqueService.Verify(c.Request.Context(), c.Param("mosqueId"), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMosqueNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
		case errors.Is(err, service.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeConflict, "Verification already decided"))
		default:
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, response.Success(mosque))
}

// AddAdmin handles adding mosque staff
// POST /api/v1/mosques/:mosqueId/admins
func (h *MosqueHandler) AddAdmin(c *gin.Context) {
	var req dto.AddMosqueAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	admin, err := h.mosqueService.AddAdmin(c.Request.Context(), c.Param("mosqueId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMosqueNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("User not found"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, response.Success(admin))
}

// ListAdmins handles listing mosque staff
// GET /api/v1/mosques/:mosqueId/admins
func (h *MosqueHandler) ListAdmins(c *gin.Context) {
	admins, err := h.mosqueService.ListAdmins(c.Request.Context(), c.Param("mosqueId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(admins))
}

// RemoveAdmin handles removing mosque staff
// DELETE /api/v1/mosques/:mosqueId/admins/:userId
func (h *MosqueHandler) RemoveAdmin(c *gin.Context) {
	err := h.mosqueService.RemoveAdmin(c.Request.Context(), c.Param("mosqueId"), c.Param("userId"))
	if err != nil {
		if errors.Is(err, service.ErrNotMosqueAdmin) {
			c.JSON(http.StatusNotFound, response.NotFound("User does not administer this mosque"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"removed": true}))
}

// AddCommittee handles committee appointments
// POST /api/v1/mosques/:mosqueId/committees
func (h *MosqueHandler) AddCommittee(c *gin.Context) {
	var req dto.CreateCommitteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	committee, err := h.mosqueService.AddCommittee(c.Request.Context(), c.Param("mosqueId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMosqueNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(committee))
}

// ListCommittee handles listing the committee
// GET /api/v1/mosques/:mosqueId/committees
func (h *MosqueHandler) ListCommittee(c *gin.Context) {
	committees, err := h.mosqueService.ListCommittee(c.Request.Context(), c.Param("mosqueId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(committees))
}

// RemoveCommittee handles removing a committee member
// DELETE /api/v1/mosques/:mosqueId/committees/:committeeId
func (h *MosqueHandler) RemoveCommittee(c *gin.Context) {
	err := h.mosqueService.RemoveCommittee(c.Request.Context(), c.Param("mosqueId"), c.Param("committeeId"))
	if err != nil {
		if errors.Is(err, service.ErrCommitteeNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Committee member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"removed": true}))
}
