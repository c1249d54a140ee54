package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingRepo "sparklewash/database/repository/booking"
	customerRepo "sparklewash/database/repository/customer"
	paymentRepo "sparklewash/database/repository/payment"
	"sparklewash/models"
	"sparklewash/services/notification"
)

// CreateBookingInput is what a customer submission carries. The reference,
// status and timestamps are assigned by the service.
type CreateBookingInput struct {
	Service         string `json:"service" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	VehicleType     string `json:"vehicleType" binding:"required"`
	PlateNumber     string `json:"plateNumber" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email"`
	Location        string `json:"location" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
	TotalAmount     int64  `json:"totalAmount"`
}

// BookingService owns booking creation and the status lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingRef string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	ListToday(ctx context.Context) ([]models.Booking, error)
	Search(ctx context.Context, term string) ([]models.Booking, error)
	Advance(ctx context.Context, bookingRef string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingRef string) (*models.Booking, error)
	BulkUpdateStatus(ctx context.Context, bookingRefs []string, to models.BookingStatus) (int64, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	PaymentRepo  paymentRepo.PaymentRepository
	CustomerRepo customerRepo.CustomerRepository
	Notifier     notification.NotificationService
	Reminders    *ReminderScheduler
	Logger       *zap.Logger

	// Now is injected for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
