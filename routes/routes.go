package routes

import (
	"net/http"
	"time"

	"pulselink/handlers"
	"pulselink/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers identity endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/verify-otp", hb.User.VerifyOTPHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.User.GetProfileHandler)
		api.POST("/logout", hb.User.RevokeUserAuthTokenHandler)
	}
}

// RegisterDoctorRoutes registers directory lookups. The directory is
// reachable only when signed in, like the search surface itself.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", hb.Doctor.ListDoctorsHandler)
		api.GET("/:id", hb.Doctor.GetDoctorByIDHandler)
	}
}

// RegisterSearchRoutes sets up the endpoints of the search engine.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/session", hb.Search.StartSession)
		api.PUT("/session/:sessionID/pincode", hb.Search.SetPincodeInput)
		api.POST("/session/:sessionID/apply", hb.Search.ApplyPincode)
		api.POST("/session/:sessionID/fallback", hb.Search.ResolveFallback)
		api.PUT("/session/:sessionID/specializations", hb.Search.ToggleSpecialization)
		api.DELETE("/session/:sessionID/filters", hb.Search.ClearFilters)
		api.GET("/session/:sessionID/results", hb.Search.GetResults)
	}
}

// RegisterBookingRoutes sets up the endpoints of the booking sequencer.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/session", hb.Booking.InitiateSession)
		api.GET("/session/:sessionID/dates", hb.Booking.GetAvailableDates)
		api.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		api.PUT("/session/:sessionID/slot", hb.Booking.SelectSlot)
		api.POST("/session/:sessionID/confirm", hb.Booking.ConfirmAndPay)
		api.POST("/session/:sessionID/dismiss", hb.Booking.DismissConfirmation)
		api.POST("/session/:sessionID/finalize", hb.Booking.FinalConfirm)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterChatRoutes registers assistant endpoints. Guest quick-chat is
// public; threads require authentication.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	guest := r.Group("/api/chat/guest")
	{
		guest.POST("", hb.Chat.AddGuestMessage)
		guest.GET("/:guestID", hb.Chat.GetGuestMessages)
		guest.DELETE("/:guestID", hb.Chat.ClearGuestMessages)
	}

	api := r.Group("/api/chat/threads")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", hb.Chat.ListThreads)
		api.POST("", hb.Chat.CreateThread)
		api.POST("/:threadID/messages", hb.Chat.AddMessage)
	}
}

// RegisterNotificationRoutes registers the toast feed endpoint.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", hb.Notification.DrainHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PulseLink"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
