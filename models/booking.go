package models

import "time"

// BookingStatus is the lifecycle state of a booking. Transitions are owned by
// the lifecycle manager in services/booking; nothing else writes this field.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusOnWay      BookingStatus = "on-way"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusOnWay, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking is a scheduled wash request. Cancellation is a status, not a
// deletion; booking documents are never removed.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	BookingID       string        `bson:"bookingId" json:"bookingId"` // human-readable, e.g. "2SW-482913"
	Service         string        `bson:"service" json:"service"`
	Date            string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time            string        `bson:"time" json:"time"` // "HH:MM"
	VehicleType     string        `bson:"vehicleType" json:"vehicleType"`
	PlateNumber     string        `bson:"plateNumber" json:"plateNumber"`
	FirstName       string        `bson:"firstName" json:"firstName"`
	LastName        string        `bson:"lastName" json:"lastName"`
	Phone           string        `bson:"phone" json:"phone"`
	Email           string        `bson:"email" json:"email"`
	Location        string        `bson:"location" json:"location"`
	PaymentMethod   string        `bson:"paymentMethod" json:"paymentMethod"`
	SpecialRequests string        `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	Status          BookingStatus `bson:"status" json:"status"`
	TotalAmount     int64         `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"` // whole shillings
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// CustomerName returns the display name used in payment records and pushes.
func (b Booking) CustomerName() string {
	if b.LastName == "" {
		return b.FirstName
	}
	return b.FirstName + " " + b.LastName
}
