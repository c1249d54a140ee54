package booking

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"sparklewash/database/repository"
	"sparklewash/models"
	"sparklewash/services/stats"
	"sparklewash/utils"
)

// CreateBooking persists a customer submission with a generated reference and
// the initial pending status, then upserts the customer record keyed by
// phone. The customer's rollups are recomputed from the booking and payment
// sets rather than incremented, so they cannot drift.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	now := s.now()
	b := models.Booking{
		BookingID:       utils.NewBookingRef(),
		Service:         input.Service,
		Date:            input.Date,
		Time:            input.Time,
		VehicleType:     input.VehicleType,
		PlateNumber:     input.PlateNumber,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Phone:           input.Phone,
		Email:           input.Email,
		Location:        input.Location,
		PaymentMethod:   input.PaymentMethod,
		SpecialRequests: input.SpecialRequests,
		TotalAmount:     input.TotalAmount,
		Status:          models.StatusPending,
	}

	id, err := s.Repo.Create(ctx, b)
	if err != nil {
		return nil, &PersistenceError{Op: "create booking", Err: err}
	}
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.upsertCustomer(ctx, b); err != nil {
		// The booking exists; customer upsert failure must not hide it.
		s.log().Warn("customer upsert failed after booking create",
			zap.String("bookingId", b.BookingID), zap.Error(err))
	}

	return &b, nil
}

// GetBooking returns a booking by its human-readable reference.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingRef string) (*models.Booking, error) {
	return s.Repo.GetByBookingRef(ctx, bookingRef)
}

// ListBookings returns all bookings, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx)
}

// ListByStatus returns bookings filtered by status.
func (s *DefaultBookingService) ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.GetByStatus(ctx, status)
}

// ListToday returns bookings scheduled for today, earliest first.
func (s *DefaultBookingService) ListToday(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetByDate(ctx, utils.DateKey(s.now()))
}

// Search filters bookings by name, phone, reference or plate, matching the
// admin table's free-text search box.
func (s *DefaultBookingService) Search(ctx context.Context, term string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return bookings, nil
	}

	var matched []models.Booking
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.FirstName), term) ||
			strings.Contains(strings.ToLower(b.LastName), term) ||
			strings.Contains(b.Phone, term) ||
			strings.Contains(strings.ToLower(b.BookingID), term) ||
			strings.Contains(strings.ToLower(b.PlateNumber), term) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// Advance moves a booking to the unique successor of its current status. The
// persisted write is compare-and-swap on the current status, so a concurrent
// transition surfaces as a conflict instead of a skipped state.
func (s *DefaultBookingService) Advance(ctx context.Context, bookingRef string) (*models.Booking, error) {
	b, err := s.Repo.GetByBookingRef(ctx, bookingRef)
	if err != nil {
		return nil, err
	}

	next, ok := NextStatus(b.Status)
	if !ok {
		return nil, &InvalidTransitionError{From: b.Status}
	}

	return s.transition(ctx, b, next)
}

// Cancel moves a pending booking to the terminal cancelled status.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingRef string) (*models.Booking, error) {
	b, err := s.Repo.GetByBookingRef(ctx, bookingRef)
	if err != nil {
		return nil, err
	}

	if !CanCancel(b.Status) {
		return nil, &InvalidTransitionError{From: b.Status, To: models.StatusCancelled}
	}

	return s.transition(ctx, b, models.StatusCancelled)
}

// BulkUpdateStatus applies a target status to the listed bookings, skipping
// any whose current status does not permit the transition. Returns the number
// of bookings updated.
func (s *DefaultBookingService) BulkUpdateStatus(ctx context.Context, bookingRefs []string, to models.BookingStatus) (int64, error) {
	if !to.Valid() {
		return 0, &InvalidTransitionError{To: to}
	}

	var ids []string
	for _, ref := range bookingRefs {
		b, err := s.Repo.GetByBookingRef(ctx, ref)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return 0, err
		}
		if CanTransition(b.Status, to) {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	updated, err := s.Repo.BulkUpdateStatus(ctx, ids, to, s.now())
	if err != nil {
		return 0, &PersistenceError{Op: "bulk update booking status", Err: err}
	}
	return updated, nil
}

func (s *DefaultBookingService) transition(ctx context.Context, b *models.Booking, to models.BookingStatus) (*models.Booking, error) {
	at := s.now()
	err := s.Repo.UpdateStatus(ctx, b.ID, b.Status, to, at)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrConflict) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "update booking status", Err: err}
	}

	b.Status = to
	b.UpdatedAt = at

	if s.Notifier != nil {
		// Push failures never fail the transition.
		_ = s.Notifier.NotifyBookingStatus(ctx, b)
	}
	if to == models.StatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleWashReminder(ctx, b); err != nil {
			s.log().Warn("failed to schedule wash reminder",
				zap.String("bookingId", b.BookingID), zap.Error(err))
		}
	}

	return b, nil
}

// upsertCustomer refreshes the customer document for the booking's phone with
// recomputed rollups.
func (s *DefaultBookingService) upsertCustomer(ctx context.Context, b models.Booking) error {
	bookings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return err
	}
	payments, err := s.PaymentRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	cs := stats.ComputeCustomerStats(b.Phone, bookings, payments, s.now(), 0)
	return s.CustomerRepo.Upsert(ctx, models.Customer{
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Phone:         b.Phone,
		Email:         b.Email,
		Location:      b.Location,
		TotalBookings: cs.TotalBookings,
		TotalSpent:    cs.TotalSpent,
		LastBooking:   cs.LastBooking,
	})
}

func (s *DefaultBookingService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
