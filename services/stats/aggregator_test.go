package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sparklewash/models"
)

var now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestDashboardStatsScenario(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.StatusPending, Date: "2024-01-10"},
		{Status: models.StatusCompleted, Date: "2024-01-01"},
	}

	result := ComputeDashboardStats(bookings, nil, nil, now)

	assert.Equal(t, 2, result.TotalBookings)
	assert.Equal(t, 1, result.TodayBookings)
	assert.Equal(t, 1, result.PendingBookings)
	assert.Equal(t, 1, result.CompletedBookings)
}

func TestDashboardRevenueScenario(t *testing.T) {
	payments := []models.Payment{
		{Amount: 5000, Status: models.PaymentCompleted, Date: "2024-01-01"},
		{Amount: 3000, Status: models.PaymentPending, Date: "2024-01-10"},
	}

	result := ComputeDashboardStats(nil, payments, nil, now)

	assert.Equal(t, int64(5000), result.TotalRevenue)
	assert.Equal(t, int64(0), result.TodayRevenue)
	assert.Equal(t, 1, result.PendingPayments)
}

func TestTodayRevenueCountsOnlyTodaysCompletedPayments(t *testing.T) {
	payments := []models.Payment{
		{Amount: 5000, Status: models.PaymentCompleted, Date: "2024-01-10"},
		{Amount: 2000, Status: models.PaymentCompleted, Date: "2024-01-09"},
		{Amount: 9000, Status: models.PaymentPending, Date: "2024-01-10"},
	}

	result := ComputeDashboardStats(nil, payments, nil, now)

	assert.Equal(t, int64(7000), result.TotalRevenue)
	assert.Equal(t, int64(5000), result.TodayRevenue)
}

func TestRevenueIsPermutationInvariant(t *testing.T) {
	payments := []models.Payment{
		{Amount: 1500, Status: models.PaymentCompleted, Date: "2024-01-05"},
		{Amount: 2500, Status: models.PaymentCompleted, Date: "2024-01-06"},
		{Amount: 4000, Status: models.PaymentFailed, Date: "2024-01-06"},
		{Amount: 500, Status: models.PaymentCompleted, Date: "2024-01-07"},
	}
	reversed := []models.Payment{payments[3], payments[2], payments[1], payments[0]}

	a := ComputeDashboardStats(nil, payments, nil, now)
	b := ComputeDashboardStats(nil, reversed, nil, now)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4500), a.TotalRevenue)
}

func TestDashboardStatsIdempotent(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.StatusPending, Date: "2024-01-10", Phone: "111"},
		{Status: models.StatusConfirmed, Date: "2024-01-09", Phone: "222"},
	}
	payments := []models.Payment{
		{Amount: 1200, Status: models.PaymentCompleted, Date: "2024-01-09", CustomerPhone: "222"},
	}
	customers := []models.Customer{{Phone: "111"}, {Phone: "222"}}

	first := ComputeDashboardStats(bookings, payments, customers, now)
	second := ComputeDashboardStats(bookings, payments, customers, now)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.TotalCustomers)
}

func TestCustomerStatsMatchesByPhone(t *testing.T) {
	bookings := []models.Booking{
		{Phone: "111", Status: models.StatusCompleted, Date: "2024-01-02"},
		{Phone: "111", Status: models.StatusPending, Date: "2024-01-08"},
		{Phone: "111", Status: models.StatusOnWay, Date: "2024-01-09"},
		{Phone: "222", Status: models.StatusCompleted, Date: "2024-01-05"},
	}
	payments := []models.Payment{
		{CustomerPhone: "111", Amount: 4000, Status: models.PaymentCompleted},
		{CustomerPhone: "111", Amount: 6000, Status: models.PaymentPending},
		{CustomerPhone: "222", Amount: 9999, Status: models.PaymentCompleted},
	}

	result := ComputeCustomerStats("111", bookings, payments, now, 0)

	assert.Equal(t, 3, result.TotalBookings)
	assert.Equal(t, int64(4000), result.TotalSpent, "only completed payments for this phone count")
	assert.Equal(t, "2024-01-09", result.LastBooking)
	assert.Equal(t, 1, result.CompletedBookings)
	assert.Equal(t, 2, result.ActiveBookings)
	assert.True(t, result.Active)
}

func TestCustomerStatsEmptyHistory(t *testing.T) {
	result := ComputeCustomerStats("999", nil, nil, now, 0)

	assert.Zero(t, result.TotalBookings)
	assert.Zero(t, result.TotalSpent)
	assert.Empty(t, result.LastBooking)
	assert.False(t, result.Active)
}

func TestActivityWindowClassification(t *testing.T) {
	// Last booking 40 days before now: inactive.
	assert.False(t, IsActive("2023-12-01", now, 0))

	// Last booking 10 days before now: active.
	assert.True(t, IsActive("2023-12-31", now, 0))

	// Window is configurable.
	assert.True(t, IsActive("2023-12-01", now, 60*24*time.Hour))
	assert.False(t, IsActive("2023-12-31", now, 5*24*time.Hour))
}

func TestPaymentStatsSubset(t *testing.T) {
	payments := []models.Payment{
		{Amount: 5000, Status: models.PaymentCompleted, Date: "2024-01-10"},
		{Amount: 3000, Status: models.PaymentPending, Date: "2024-01-10"},
		{Amount: 1000, Status: models.PaymentRefunded, Date: "2024-01-10"},
	}

	result := ComputePaymentStats(payments, now)

	assert.Equal(t, int64(5000), result.TotalRevenue)
	assert.Equal(t, int64(5000), result.TodayRevenue)
	assert.Equal(t, 1, result.PendingPayments)
	assert.Equal(t, 1, result.CompletedPayments)
}
