package bookingRepo

import (
	"context"
	"time"

	"sparklewash/models"
)

// BookingRepository is the persistence collaborator for bookings. Status
// writes go through UpdateStatus, which enforces compare-and-swap on the
// expected current status; the lifecycle manager never writes documents
// directly.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByBookingRef(ctx context.Context, bookingRef string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, at time.Time) error
	BulkUpdateStatus(ctx context.Context, ids []string, to models.BookingStatus, at time.Time) (int64, error)

	// Watch invokes onChange whenever the bookings collection changes. It
	// blocks until ctx is done and is used for liveness only; readers always
	// work from a fresh snapshot.
	Watch(ctx context.Context, onChange func()) error
}
