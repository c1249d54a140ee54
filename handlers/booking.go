package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sparklewash/models"
	"sparklewash/services/booking"
	"sparklewash/utils"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles a customer submission.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("booking created",
		zap.String("bookingId", b.BookingID), zap.String("phone", b.Phone))
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// ListBookingsHandler lists bookings, optionally filtered by ?status= or
// matched against ?search=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if term := c.Query("search"); term != "" {
		bookings, err := h.Service.Search(ctx, term)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	if status := c.Query("status"); status != "" {
		st := models.BookingStatus(status)
		if !st.Valid() {
			utils.JSONError(c, http.StatusBadRequest, "unknown booking status", status)
			return
		}
		bookings, err := h.Service.ListByStatus(ctx, st)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	bookings, err := h.Service.ListBookings(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// TodayBookingsHandler lists bookings scheduled for today.
func (h *BookingHandler) TodayBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListToday(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler returns one booking by its reference.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// AdvanceBookingHandler moves a booking one step along the lifecycle.
func (h *BookingHandler) AdvanceBookingHandler(c *gin.Context) {
	b, err := h.Service.Advance(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("booking advanced",
		zap.String("bookingId", b.BookingID), zap.String("status", string(b.Status)))
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelBookingHandler cancels a pending booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Service.Cancel(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("booking cancelled", zap.String("bookingId", b.BookingID))
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// BulkStatusHandler applies a status to a set of bookings from the admin
// table multi-select.
func (h *BookingHandler) BulkStatusHandler(c *gin.Context) {
	var input struct {
		BookingIDs []string             `json:"bookingIds" binding:"required"`
		Status     models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.BulkUpdateStatus(c.Request.Context(), input.BookingIDs, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
