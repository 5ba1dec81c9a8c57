package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"smarthome/handlers"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users", hb.User.UpsertUserHandler)
}

// RegisterCatalogRoutes registers the service catalog and decorator endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.ListServicesHandler)
		api.GET("/services/:id", hb.Catalog.GetServiceByIDHandler)
		api.GET("/categories", hb.Catalog.ListCategoriesHandler)
		api.GET("/decorators", hb.Catalog.TopDecoratorsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
		bookingGroup.GET("/user/:userId", hb.Booking.GetUserBookingsHandler)
		bookingGroup.GET("/:id", hb.Booking.GetBookingHandler)
		bookingGroup.PATCH("/:id/status", hb.Booking.UpdateStatusHandler)
		bookingGroup.PATCH("/:id/payment", hb.Booking.UpdatePaymentHandler)
		bookingGroup.POST("/:id/complete-payment", hb.Booking.CompletePaymentHandler)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)

	// Unrecognized routes get the uniform envelope.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})
}
