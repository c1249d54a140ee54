package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	customerRepo "sparklewash/database/repository/customer"
	"sparklewash/services/stats"
	"sparklewash/utils"
)

// CustomerHandler exposes the customer endpoints. Rollups on the returned
// customers are always recomputed, never the stored counters.
type CustomerHandler struct {
	Customers customerRepo.CustomerRepository
	Stats     stats.StatsService
	Logger    *zap.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(repo customerRepo.CustomerRepository, statsSvc stats.StatsService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Customers: repo, Stats: statsSvc, Logger: logger}
}

// ListCustomersHandler lists every customer with derived stats.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.Stats.ListCustomersWithStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetCustomerHandler returns one customer and their derived stats.
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	ctx := c.Request.Context()
	phone := c.Param("phone")

	customer, err := h.Customers.GetByPhone(ctx, phone)
	if err != nil {
		respondError(c, err)
		return
	}

	cs, err := h.Stats.GetCustomerStats(ctx, phone)
	if err != nil {
		respondError(c, err)
		return
	}

	customer.TotalBookings = cs.TotalBookings
	customer.TotalSpent = cs.TotalSpent
	customer.LastBooking = cs.LastBooking
	c.JSON(http.StatusOK, gin.H{"customer": customer, "stats": cs})
}

// UpdateFCMTokenHandler stores the push token for a customer's device.
func (h *CustomerHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Customers.SetFCMToken(c.Request.Context(), c.Param("phone"), input.Token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
