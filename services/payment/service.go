package payment

import (
	"context"
	"fmt"

	"sparklewash/models"
	"sparklewash/utils"
)

// RecordPayment creates a payment record linked to an existing booking. The
// booking supplies the customer and service fields; a missing booking is a
// NotFound surfaced to the caller.
func (s *DefaultPaymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: fmt.Sprintf("must be positive, got %d", input.Amount)}
	}

	b, err := s.BookingRepo.GetByBookingRef(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := models.Payment{
		PaymentID:     utils.NewPaymentRef(),
		BookingID:     b.BookingID,
		CustomerName:  b.CustomerName(),
		CustomerPhone: b.Phone,
		Service:       b.Service,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        models.PaymentPending,
		Date:          utils.DateKey(now),
		Time:          now.Format(utils.TimeLayout),
		Location:      b.Location,
		Notes:         input.Notes,
	}

	id, err := s.Repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	return &p, nil
}

// ListPayments returns all payments, newest first.
func (s *DefaultPaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.Repo.GetAll(ctx)
}

// ListByStatus returns payments filtered by settlement status.
func (s *DefaultPaymentService) ListByStatus(ctx context.Context, status models.PaymentStatus) ([]models.Payment, error) {
	return s.Repo.GetByStatus(ctx, status)
}

// ListByDateRange returns payments dated within [startDate, endDate].
func (s *DefaultPaymentService) ListByDateRange(ctx context.Context, startDate, endDate string) ([]models.Payment, error) {
	return s.Repo.GetByDateRange(ctx, startDate, endDate)
}

// UpdateStatus records the settlement outcome. The amount never changes.
func (s *DefaultPaymentService) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, notes string) (*models.Payment, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown payment status %q", status)}
	}

	if err := s.Repo.UpdateStatus(ctx, id, status, notes); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}
