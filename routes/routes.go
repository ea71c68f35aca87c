package routes

import (
	"net/http"
	"time"

	"broheal/handlers"
	"broheal/middleware"
	"broheal/models"
	"broheal/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the unauthenticated endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/settings", hb.Public.GetSettings)
		api.GET("/services", hb.Public.ListServices)
		api.GET("/services/:serviceId/addons", hb.Public.ListAddons)
		api.GET("/therapists", hb.Public.ListTherapists)
		api.GET("/reviews", hb.Public.ListReviews)

		// Gateway server-to-server callback; authenticated by the shared
		// callback token, not a user session.
		api.POST("/payments/callback", hb.Payment.Callback)
	}
}

// RegisterAuthRoutes registers the login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions auth.SessionStore) {
	api := r.Group("/api/auth")
	{
		api.POST("/send-otp", hb.Auth.SendOTP)
		api.POST("/verify-otp", hb.Auth.VerifyOTP)
		api.POST("/firebase", hb.Auth.FirebaseLogin)
		api.POST("/login", hb.Auth.PasswordLogin)
		api.POST("/admin/send-otp", hb.Auth.SendAdminOTP)
		api.POST("/admin/verify-otp", hb.Auth.VerifyAdminOTP)
		api.POST("/refresh", hb.Auth.Refresh)

		api.POST("/logout",
			middleware.RequireRole(sessions, models.RoleUser, models.RoleTherapist, models.RoleAdmin),
			hb.Auth.Logout)
	}
}

// RegisterUserRoutes registers the customer-facing endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions auth.SessionStore) {
	api := r.Group("/api/user")
	{
		api.Use(middleware.RequireRole(sessions, models.RoleUser))
		api.GET("/profile", hb.User.GetProfile)
		api.PUT("/profile", hb.User.UpdateProfile)

		api.GET("/slots", hb.Booking.GetSlots)
		api.POST("/slots/hold", hb.Booking.HoldSlot)
		api.POST("/bookings", hb.Booking.CreateBooking)
		api.GET("/bookings", hb.Booking.ListBookings)
		api.GET("/bookings/:bookingId", hb.Booking.GetBooking)
		api.DELETE("/bookings/:bookingId", hb.Booking.CancelBooking)
		api.GET("/bookings/:bookingId/messages", hb.Conversations.Messages)
		api.POST("/bookings/:bookingId/messages", hb.Conversations.Send)
		api.GET("/conversations", hb.Conversations.List)

		api.POST("/reviews", hb.Review.CreateReview)

		api.GET("/notifications", hb.Notification.List)
		api.PUT("/notifications/read-all", hb.Notification.MarkAllRead)
		api.PUT("/notifications/:notificationId/read", hb.Notification.MarkRead)

		api.POST("/payments/intent", hb.Payment.CreateIntent)
		api.GET("/orders/:orderId", hb.Payment.GetOrder)

		api.GET("/geo/reverse", hb.Geo.Reverse)
		api.POST("/storage/upload", hb.Storage.Upload)
	}
}

// RegisterTherapistRoutes registers the provider-facing endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions auth.SessionStore) {
	api := r.Group("/api/therapist")
	{
		api.Use(middleware.RequireRole(sessions, models.RoleTherapist))
		api.GET("/profile", hb.Therapist.GetProfile)
		api.PUT("/profile", hb.Therapist.UpdateProfile)

		api.GET("/schedule", hb.Therapist.GetSchedule)
		api.PUT("/schedule", hb.Therapist.SetSchedule)

		api.GET("/bookings", hb.Therapist.ListBookings)
		api.PUT("/bookings/:bookingId/status", hb.Therapist.UpdateBookingStatus)
		api.GET("/bookings/:bookingId/messages", hb.Conversations.Messages)
		api.POST("/bookings/:bookingId/messages", hb.Conversations.Send)
		api.GET("/conversations", hb.Conversations.List)

		api.POST("/kyc", hb.KYC.Submit)
		api.GET("/kyc/status", hb.KYC.GetStatus)

		api.GET("/notifications", hb.Notification.List)
		api.PUT("/notifications/read-all", hb.Notification.MarkAllRead)
		api.PUT("/notifications/:notificationId/read", hb.Notification.MarkRead)

		api.POST("/storage/upload", hb.Storage.Upload)
		api.GET("/storage/sign", hb.Storage.SignUpload)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions auth.SessionStore) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.RequireRole(sessions, models.RoleAdmin))
		api.GET("/profile", hb.User.GetProfile)
		api.PUT("/settings", hb.Admin.UpdateSettings)

		api.POST("/services", hb.Admin.UpsertService)
		api.POST("/addons", hb.Admin.UpsertAddon)

		api.GET("/users", hb.Admin.ListUsers)
		api.GET("/therapists", hb.Admin.ListTherapists)

		api.GET("/kyc/pending", hb.Admin.ListPendingKYC)
		api.PUT("/kyc/:submissionId/review", hb.Admin.ReviewKYC)
		api.GET("/storage/url", hb.Storage.SignedDownloadURL)

		api.GET("/bookings", hb.Admin.ListBookings)
		api.GET("/reviews", hb.Admin.ListReviews)
		api.PUT("/reviews/:reviewId/approve", hb.Admin.ApproveReview)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions auth.SessionStore) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAuthRoutes(r, hb, sessions)
	RegisterUserRoutes(r, hb, sessions)
	RegisterTherapistRoutes(r, hb, sessions)
	RegisterAdminRoutes(r, hb, sessions)
}
