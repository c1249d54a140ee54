package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for booking and payment dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for booking and payment times of day.
const TimeLayout = "15:04"

// NewBookingRef returns a human-readable booking reference like "2SW-482913".
// Document identity is a UUID assigned by the repository; this reference is
// only for customers and admin screens.
func NewBookingRef() string {
	return fmt.Sprintf("2SW-%06d", time.Now().UnixMilli()%1_000_000)
}

// NewPaymentRef returns a human-readable payment reference like "PAY-901245".
func NewPaymentRef() string {
	return fmt.Sprintf("PAY-%06d", time.Now().UnixMilli()%1_000_000)
}

// DateKey formats t in the booking date format, in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
