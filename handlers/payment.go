package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sparklewash/models"
	"sparklewash/services/payment"
	"sparklewash/services/stats"
	"sparklewash/utils"
)

// PaymentHandler exposes the payment endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
	Stats   stats.StatsService
	Logger  *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, statsSvc stats.StatsService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Stats: statsSvc, Logger: logger}
}

// RecordPaymentHandler records a charge against a booking.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var input payment.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, err := h.Service.RecordPayment(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("payment recorded",
		zap.String("paymentId", p.PaymentID),
		zap.String("bookingId", p.BookingID),
		zap.Int64("amount", p.Amount))
	c.JSON(http.StatusCreated, gin.H{"payment": p})
}

// ListPaymentsHandler lists payments, optionally filtered by ?status= or by
// ?from=&to= date range.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	from, to := c.Query("from"), c.Query("to")
	if from != "" && to != "" {
		payments, err := h.Service.ListByDateRange(ctx, from, to)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": payments})
		return
	}

	if status := c.Query("status"); status != "" {
		st := models.PaymentStatus(status)
		if !st.Valid() {
			utils.JSONError(c, http.StatusBadRequest, "unknown payment status", status)
			return
		}
		payments, err := h.Service.ListByStatus(ctx, st)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": payments})
		return
	}

	payments, err := h.Service.ListPayments(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// UpdatePaymentStatusHandler records the settlement outcome of a payment.
func (h *PaymentHandler) UpdatePaymentStatusHandler(c *gin.Context) {
	var input struct {
		Status models.PaymentStatus `json:"status" binding:"required"`
		Notes  string               `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("payment settled",
		zap.String("paymentId", p.PaymentID), zap.String("status", string(p.Status)))
	c.JSON(http.StatusOK, gin.H{"payment": p})
}

// PaymentStatsHandler returns the payments-screen metrics.
func (h *PaymentHandler) PaymentStatsHandler(c *gin.Context) {
	result, err := h.Stats.GetPaymentStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": result})
}
