package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers routes need, so route registration
// depends on one assembled value instead of every handler type.
type HandlerBundle struct {
	// Booking endpoints.
	CreateBooking  gin.HandlerFunc
	ListBookings   gin.HandlerFunc
	TodayBookings  gin.HandlerFunc
	GetBooking     gin.HandlerFunc
	AdvanceBooking gin.HandlerFunc
	CancelBooking  gin.HandlerFunc
	BulkStatus     gin.HandlerFunc

	// Payment endpoints.
	RecordPayment       gin.HandlerFunc
	ListPayments        gin.HandlerFunc
	UpdatePaymentStatus gin.HandlerFunc
	PaymentStats        gin.HandlerFunc

	// Customer endpoints.
	ListCustomers  gin.HandlerFunc
	GetCustomer    gin.HandlerFunc
	UpdateFCMToken gin.HandlerFunc

	// Dashboard endpoints.
	DashboardStats gin.HandlerFunc
}
