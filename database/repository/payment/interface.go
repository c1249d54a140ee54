package paymentRepo

import (
	"context"

	"sparklewash/models"
)

// PaymentRepository is the persistence collaborator for payment records.
// Amounts are immutable after Create; only status and notes change.
type PaymentRepository interface {
	Create(ctx context.Context, payment models.Payment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetAll(ctx context.Context) ([]models.Payment, error)
	GetByStatus(ctx context.Context, status models.PaymentStatus) ([]models.Payment, error)
	GetByDateRange(ctx context.Context, startDate, endDate string) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, notes string) error

	// Watch invokes onChange on every payments collection change. Liveness
	// only; see BookingRepository.Watch.
	Watch(ctx context.Context, onChange func()) error
}
