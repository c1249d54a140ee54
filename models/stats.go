package models

// DashboardStats is the set of derived dashboard metrics. Every field is
// recomputed from a full snapshot of bookings, payments and customers; none
// of it is stored authoritative state.
type DashboardStats struct {
	TotalBookings     int   `json:"totalBookings"`
	TodayBookings     int   `json:"todayBookings"`
	TotalRevenue      int64 `json:"totalRevenue"`
	TodayRevenue      int64 `json:"todayRevenue"`
	PendingBookings   int   `json:"pendingBookings"`
	CompletedBookings int   `json:"completedBookings"`
	TotalCustomers    int   `json:"totalCustomers"`
	PendingPayments   int   `json:"pendingPayments"`
}

// PaymentStats is the payments-screen subset of the dashboard metrics.
type PaymentStats struct {
	TotalRevenue      int64 `json:"totalRevenue"`
	TodayRevenue      int64 `json:"todayRevenue"`
	PendingPayments   int   `json:"pendingPayments"`
	CompletedPayments int   `json:"completedPayments"`
}

// CustomerStats is derived per customer by matching bookings and payments on
// the customer's phone number.
type CustomerStats struct {
	TotalBookings     int    `json:"totalBookings"`
	TotalSpent        int64  `json:"totalSpent"`
	LastBooking       string `json:"lastBooking,omitempty"` // "YYYY-MM-DD", empty when no bookings
	CompletedBookings int    `json:"completedBookings"`
	ActiveBookings    int    `json:"activeBookings"`
	Active            bool   `json:"active"`
}

// CustomerWithStats pairs a stored customer with its recomputed rollups for
// the customers screen.
type CustomerWithStats struct {
	Customer
	Stats CustomerStats `json:"stats"`
}

// ReminderPayload is the asynq task payload for a scheduled wash reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Phone     string `json:"phone"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
