package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// MemberHandler handles kariah membership HTTP requests
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Apply handles a membership application
// POST /api/v1/mosques/:mosqueId/members
func (h *MemberHandler) Apply(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	member, err := h.memberService.Apply(c.Request.Context(), c.Param("mosqueId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMosqueNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Mosque not found"))
		case errors.Is(err, service.ErrMemberAlreadyExists):
			c.JSON(http.StatusConflict, response.Error(
				response.ErrCodeDuplicateEntry, "A member with the same contact details already exists"))
		default:
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, response.Success(member))
}

// List handles listing a mosque's members
// GET /api/v1/mosques/:mosqueId/members
func (h *MemberHandler) List(c *gin.Context) {
	var filter dto.MemberListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	filter.MosqueID = c.Param("mosqueId")
	filter.SetDefaults()

	members, total, err := h.memberService.List(c.Request.Context(), &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	page := filter.Offset/filter.Limit + 1
	c.JSON(http.StatusOK, response.Paginated(members, page, filter.Limit, int64(total)))
}

// GetByID handles retrieving one member
// GET /api/v1/mosques/:mosqueId/members/:memberId
func (h *MemberHandler) GetByID(c *gin.Context) {
	member, err := h.memberService.GetByID(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(member))
}

// UpdateStatus handles staff approval decisions
// PUT /api/v1/mosques/:mosqueId/members/:memberId/status
func (h *MemberHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateMemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	member, err := h.memberService.UpdateStatus(c.Request.Context(), c.Param("memberId"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(member))
}

// Remove handles membership removal
// DELETE /api/v1/mosques/:mosqueId/members/:memberId
func (h *MemberHandler) Remove(c *gin.Context) {
	if err := h.memberService.Remove(c.Request.Context(), c.Param("memberId")); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"removed": true}))
}
