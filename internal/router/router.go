package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurikhwanidris/urusmasjid/internal/di"
	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/service"
	"github.com/nurikhwanidris/urusmasjid/pkg/config"
	"github.com/nurikhwanidris/urusmasjid/pkg/middleware"
	"github.com/nurikhwanidris/urusmasjid/pkg/response"
)

// Setup builds the gin engine and registers all routes.
func Setup(cfg *config.Config, c *di.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.GET("/health", c.HealthHandler.Health)
	r.GET("/ready", c.HealthHandler.Ready)

	// Public registration surface. Reached from the printed QR code, so no auth.
	events := r.Group("/events")
	{
		events.GET("/:id/register", c.PublicHandler.ShowRegistrationPage)
		events.POST("/:id/register", c.PublicHandler.SubmitRegistration)
		events.GET("/:id/register/qr", c.PublicHandler.RegistrationQR)
	}

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)

		v1.GET("/prayer-times/:zone", c.PrayerHandler.Today)
		v1.GET("/mosques/:mosqueId/announcements/visible", c.AnnouncementHandler.ListVisible)
	}

	authed := r.Group("/api/v1")
	authed.Use(middleware.JWTMiddleware(&middleware.JWTConfig{Secret: cfg.JWT.Secret}))
	{
		authed.GET("/auth/me", c.AuthHandler.Me)

		mosques := authed.Group("/mosques")
		mosques.POST("", c.MosqueHandler.Register)
		mosques.GET("", c.MosqueHandler.List)
		mosques.GET("/mine", c.MosqueHandler.Mine)
		mosques.GET("/:mosqueId", c.MosqueHandler.GetByID)
		mosques.POST("/:mosqueId/verify", middleware.RequireRole(string(domain.RoleAdmin)), c.MosqueHandler.Verify)

		// Everything below is scoped to one mosque and restricted to its staff.
		staff := mosques.Group("/:mosqueId", mosqueStaffOnly(c.MosqueService))
		{
			staff.PUT("", c.MosqueHandler.Update)
			staff.DELETE("", c.MosqueHandler.Delete)

			staff.POST("/admins", c.MosqueHandler.AddAdmin)
			staff.GET("/admins", c.MosqueHandler.ListAdmins)
			staff.DELETE("/admins/:userId", c.MosqueHandler.RemoveAdmin)

			staff.POST("/committees", c.MosqueHandler.AddCommittee)
			staff.GET("/committees", c.MosqueHandler.ListCommittee)
			staff.DELETE("/committees/:committeeId", c.MosqueHandler.RemoveCommittee)

			staff.POST("/events", c.EventHandler.Create)
			staff.GET("/events", c.EventHandler.List)
			staff.GET("/events/:eventId", c.EventHandler.GetByID)
			staff.PUT("/events/:eventId", c.EventHandler.Update)
			staff.DELETE("/events/:eventId", c.EventHandler.Delete)

			staff.POST("/events/:eventId/registrations", c.RegistrationHandler.Create)
			staff.GET("/events/:eventId/registrations", c.RegistrationHandler.List)
			staff.GET("/events/:eventId/registrations/:registrationId", c.RegistrationHandler.GetByID)
			staff.PUT("/events/:eventId/registrations/:registrationId", c.RegistrationHandler.UpdateStatus)
			staff.DELETE("/events/:eventId/registrations/:registrationId", c.RegistrationHandler.Delete)
			staff.POST("/events/:eventId/registrations/:registrationId/attendance", c.RegistrationHandler.MarkAttendance)

			staff.POST("/members", c.MemberHandler.Apply)
			staff.GET("/members", c.MemberHandler.List)
			staff.GET("/members/:memberId", c.MemberHandler.GetByID)
			staff.PUT("/members/:memberId/status", c.MemberHandler.UpdateStatus)
			staff.DELETE("/members/:memberId", c.MemberHandler.Remove)

			staff.POST("/donations", c.DonationHandler.Record)
			staff.GET("/donations", c.DonationHandler.List)
			staff.GET("/donations/total", c.DonationHandler.Total)
			staff.GET("/donations/:donationId", c.DonationHandler.GetByID)
			staff.POST("/donations/:donationId/complete", c.DonationHandler.Complete)

			staff.POST("/announcements", c.AnnouncementHandler.Create)
			staff.GET("/announcements", c.AnnouncementHandler.List)
			staff.PUT("/announcements/:announcementId", c.AnnouncementHandler.Update)
			staff.DELETE("/announcements/:announcementId", c.AnnouncementHandler.Delete)
		}
	}

	return r
}

// mosqueStaffOnly blocks access to mosque-scoped routes unless the caller
// administers the mosque in the path. System admins pass through.
func mosqueStaffOnly(mosqueService service.MosqueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, ok := middleware.GetRole(c); ok && role == string(domain.RoleAdmin) {
			c.Next()
			return
		}

		userID, ok := middleware.GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Not authenticated"))
			return
		}

		isStaff, err := mosqueService.IsStaff(c.Request.Context(), c.Param("mosqueId"), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.InternalError("Failed to check mosque access"))
			return
		}
		if !isStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Forbidden("Not an administrator of this mosque"))
			return
		}

		c.Next()
	}
}
