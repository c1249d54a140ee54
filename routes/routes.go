package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sparklewash/handlers"
)

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
		api.GET("/today", hb.TodayBookings)
		api.PUT("/bulk-status", hb.BulkStatus)
		api.GET("/:bookingId", hb.GetBooking)
		api.PUT("/:bookingId/advance", hb.AdvanceBooking)
		api.PUT("/:bookingId/cancel", hb.CancelBooking)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("", hb.RecordPayment)
		api.GET("", hb.ListPayments)
		api.GET("/stats", hb.PaymentStats)
		api.PUT("/:id/status", hb.UpdatePaymentStatus)
	}
}

// RegisterCustomerRoutes registers customer endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.GET("", hb.ListCustomers)
		api.GET("/:phone", hb.GetCustomer)
		api.PUT("/:phone/fcm-token", hb.UpdateFCMToken)
	}
}

// RegisterStatsRoutes registers the dashboard endpoint.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/stats/dashboard", hb.DashboardStats)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
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

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
}
