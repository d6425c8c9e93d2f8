package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pawhub/handlers"
	"pawhub/middleware"
	"pawhub/models"
)

// RegisterUserRoutes registers user account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.Register)
		api.POST("/login", hb.Users.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.UserAuth(hb.UserRepo))
		api.POST("/logout", hb.Users.Logout)
		api.GET("/me", hb.Users.Me)
		api.PUT("/me", hb.Users.Update)
	}
}

// RegisterProviderRoutes registers vet/groomer/trainer account endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.Providers.Register)
		api.POST("/login", hb.Providers.Login)
		api.GET("", hb.Providers.List)
		api.GET("/:id", hb.Providers.Get)

		// Endpoints that modify provider data require strict authentication.
		protected := api.Group("")
		protected.Use(middleware.ProviderAuth(hb.ProviderRepo))
		protected.POST("/logout", hb.Providers.Logout)
		protected.PATCH("/me", hb.Providers.UpdateProfile)
		protected.PUT("/me/availability/:weekday", hb.Providers.SetDayAvailability)
	}
}

// RegisterBookingRoutes sets up one endpoint group per service line. All three
// share the same handler, parameterized by service type.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	groups := map[string]string{
		"/api/appointments":          models.ServiceVet,
		"/api/grooming-appointments": models.ServiceGrooming,
		"/api/training-sessions":     models.ServiceTraining,
	}
	for path, serviceType := range groups {
		g := r.Group(path)
		g.Use(middleware.UserAuth(hb.UserRepo))
		g.POST("", hb.Bookings.Create(serviceType))
		g.GET("", hb.Bookings.List(serviceType))
		g.GET("/:bookingId", hb.Bookings.Get)
		g.PATCH("/:bookingId/status", hb.Bookings.UpdateStatus)
	}
}

// RegisterDonationRoutes sets up the pet food donation endpoints.
func RegisterDonationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/donations")
	{
		api.GET("", hb.Donations.Search)
		api.GET("/search", hb.Donations.Search)

		api.Use(middleware.UserAuth(hb.UserRepo))
		api.POST("", hb.Donations.Create)
		api.GET("/mine", hb.Donations.Mine)
		api.POST("/:id/claim", hb.Donations.Claim)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuth(hb.UserRepo))
		adminGroup.GET("/users", hb.Admin.ListUsers)
		adminGroup.GET("/providers", hb.Admin.ListProviders)
		adminGroup.PUT("/providers/:id/approval", hb.Admin.SetProviderApproval)
		adminGroup.PATCH("/bookings/:bookingId/status", hb.Bookings.UpdateStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PawHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDonationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
