package payment

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingRepo "sparklewash/database/repository/booking"
	paymentRepo "sparklewash/database/repository/payment"
	"sparklewash/models"
)

// RecordPaymentInput is an admin-entered charge against a booking. Amount is
// in whole shillings and immutable once recorded.
type RecordPaymentInput struct {
	BookingID     string `json:"bookingId" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"` // cash, mpesa or card
	Notes         string `json:"notes"`
}

// PaymentService owns payment recording and settlement.
type PaymentService interface {
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*models.Payment, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	ListByStatus(ctx context.Context, status models.PaymentStatus) ([]models.Payment, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, notes string) (*models.Payment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	Logger      *zap.Logger

	// Now is injected for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultPaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
