package models

import "time"

// PaymentStatus is the settlement state of a payment record. It is independent
// of the linked booking's status.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment is a monetary transaction tied to a booking. Amount is fixed at
// creation; only the status and notes may change afterwards.
type Payment struct {
	ID            string        `bson:"id" json:"id"`
	PaymentID     string        `bson:"paymentId" json:"paymentId"` // human-readable, e.g. "PAY-901245"
	BookingID     string        `bson:"bookingId" json:"bookingId"`
	CustomerName  string        `bson:"customerName" json:"customerName"`
	CustomerPhone string        `bson:"customerPhone" json:"customerPhone"`
	Service       string        `bson:"service" json:"service"`
	Amount        int64         `bson:"amount" json:"amount"` // whole shillings, never float
	PaymentMethod string        `bson:"paymentMethod" json:"paymentMethod"`
	Status        PaymentStatus `bson:"status" json:"status"`
	Date          string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time          string        `bson:"time" json:"time"`
	Location      string        `bson:"location" json:"location"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
