// Package stats derives dashboard and per-customer metrics from snapshots of
// bookings, payments and customers. All computations are pure folds over the
// input slices: identical snapshots and an identical reference time always
// produce identical output, regardless of slice ordering. Money is int64.
package stats

import (
	"time"

	"sparklewash/models"
	"sparklewash/utils"
)

// DefaultActivityWindow is the trailing window used to classify a customer as
// active when no override is configured.
const DefaultActivityWindow = 30 * 24 * time.Hour

// ComputeDashboardStats recomputes every dashboard metric from a full
// snapshot. No incremental state: the result is always consistent with the
// snapshot passed in.
func ComputeDashboardStats(bookings []models.Booking, payments []models.Payment, customers []models.Customer, now time.Time) models.DashboardStats {
	today := utils.DateKey(now)

	stats := models.DashboardStats{
		TotalBookings:  len(bookings),
		TotalCustomers: len(customers),
	}

	for _, b := range bookings {
		if b.Date == today {
			stats.TodayBookings++
		}
		switch b.Status {
		case models.StatusPending:
			stats.PendingBookings++
		case models.StatusCompleted:
			stats.CompletedBookings++
		}
	}

	for _, p := range payments {
		switch p.Status {
		case models.PaymentCompleted:
			stats.TotalRevenue += p.Amount
			if p.Date == today {
				stats.TodayRevenue += p.Amount
			}
		case models.PaymentPending:
			stats.PendingPayments++
		}
	}

	return stats
}

// ComputePaymentStats is the payments-screen subset of the dashboard metrics.
func ComputePaymentStats(payments []models.Payment, now time.Time) models.PaymentStats {
	today := utils.DateKey(now)

	var stats models.PaymentStats
	for _, p := range payments {
		switch p.Status {
		case models.PaymentCompleted:
			stats.CompletedPayments++
			stats.TotalRevenue += p.Amount
			if p.Date == today {
				stats.TodayRevenue += p.Amount
			}
		case models.PaymentPending:
			stats.PendingPayments++
		}
	}
	return stats
}

// ComputeCustomerStats derives a single customer's rollups by matching
// bookings and payments on the phone number. TotalSpent counts completed
// payments only; ActiveBookings counts every non-terminal, non-cancelled
// status; LastBooking is the maximum booking date, empty when the customer
// has none.
func ComputeCustomerStats(phone string, bookings []models.Booking, payments []models.Payment, now time.Time, window time.Duration) models.CustomerStats {
	var stats models.CustomerStats

	for _, b := range bookings {
		if b.Phone != phone {
			continue
		}
		stats.TotalBookings++
		if b.Date > stats.LastBooking {
			stats.LastBooking = b.Date
		}
		switch b.Status {
		case models.StatusCompleted:
			stats.CompletedBookings++
		case models.StatusPending, models.StatusConfirmed, models.StatusOnWay, models.StatusInProgress:
			stats.ActiveBookings++
		}
	}

	for _, p := range payments {
		if p.CustomerPhone == phone && p.Status == models.PaymentCompleted {
			stats.TotalSpent += p.Amount
		}
	}

	stats.Active = IsActive(stats.LastBooking, now, window)
	return stats
}

// IsActive reports whether a customer whose most recent booking date is
// lastBooking falls within the trailing activity window of now. A customer
// with no bookings is never active.
func IsActive(lastBooking string, now time.Time, window time.Duration) bool {
	if lastBooking == "" {
		return false
	}
	if window <= 0 {
		window = DefaultActivityWindow
	}
	last, err := time.Parse(utils.DateLayout, lastBooking)
	if err != nil {
		return false
	}
	return !last.Before(now.Add(-window))
}
