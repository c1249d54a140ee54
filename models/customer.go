package models

import "time"

// Customer is identified by phone number (natural key, one document per
// distinct phone). The rollup fields are advisory snapshots written on
// booking creation; read paths recompute them from the booking and payment
// sets instead of trusting the stored values.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email" json:"email"`
	Location  string    `bson:"location" json:"location"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Advisory rollups, see services/stats for the authoritative values.
	TotalBookings int    `bson:"totalBookings" json:"totalBookings"`
	TotalSpent    int64  `bson:"totalSpent" json:"totalSpent"`
	LastBooking   string `bson:"lastBooking,omitempty" json:"lastBooking,omitempty"` // "YYYY-MM-DD"
}
