package booking

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparklewash/database/repository"
	"sparklewash/models"
)

// fakeBookingRepo is an in-memory BookingRepository with the same CAS
// semantics as the mongo implementation.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking // keyed by document ID
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) add(b models.Booking) *models.Booking {
	r.nextID++
	if b.ID == "" {
		b.ID = "doc-" + strconv.Itoa(r.nextID)
	}
	stored := b
	r.bookings[stored.ID] = &stored
	return &stored
}

func (r *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	stored := r.add(b)
	return stored.ID, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByBookingRef(ctx context.Context, ref string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.BookingID == ref {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, at time.Time) error {
	b, ok := r.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	if b.Status != from {
		return repository.ErrConflict
	}
	b.Status = to
	b.UpdatedAt = at
	return nil
}

func (r *fakeBookingRepo) BulkUpdateStatus(ctx context.Context, ids []string, to models.BookingStatus, at time.Time) (int64, error) {
	var n int64
	for _, id := range ids {
		if b, ok := r.bookings[id]; ok {
			b.Status = to
			b.UpdatedAt = at
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Watch(ctx context.Context, onChange func()) error {
	<-ctx.Done()
	return ctx.Err()
}

// fakePaymentListRepo satisfies only the GetAll call the booking service makes.
type fakePaymentListRepo struct {
	payments []models.Payment
}

func (r *fakePaymentListRepo) Create(ctx context.Context, p models.Payment) (string, error) {
	return "", nil
}
func (r *fakePaymentListRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	return nil, repository.ErrNotFound
}
func (r *fakePaymentListRepo) GetAll(ctx context.Context) ([]models.Payment, error) {
	return r.payments, nil
}
func (r *fakePaymentListRepo) GetByStatus(ctx context.Context, status models.PaymentStatus) ([]models.Payment, error) {
	return nil, nil
}
func (r *fakePaymentListRepo) GetByDateRange(ctx context.Context, startDate, endDate string) ([]models.Payment, error) {
	return nil, nil
}
func (r *fakePaymentListRepo) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, notes string) error {
	return nil
}
func (r *fakePaymentListRepo) Watch(ctx context.Context, onChange func()) error {
	<-ctx.Done()
	return ctx.Err()
}

type fakeCustomerRepo struct {
	upserts []models.Customer
}

func (r *fakeCustomerRepo) Upsert(ctx context.Context, c models.Customer) error {
	r.upserts = append(r.upserts, c)
	return nil
}
func (r *fakeCustomerRepo) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return nil, repository.ErrNotFound
}
func (r *fakeCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) SetFCMToken(ctx context.Context, phone, token string) error {
	return nil
}

func newTestService(repo *fakeBookingRepo) (*DefaultBookingService, *fakeCustomerRepo) {
	customers := &fakeCustomerRepo{}
	svc := &DefaultBookingService{
		Repo:         repo,
		PaymentRepo:  &fakePaymentListRepo{},
		CustomerRepo: customers,
		Now:          func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) },
	}
	return svc, customers
}

func TestAdvanceVisitsExactSequenceThenFails(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.add(models.Booking{ID: "doc-1", BookingID: "2SW-000001", Status: models.StatusPending})
	svc, _ := newTestService(repo)

	ctx := context.Background()
	want := []models.BookingStatus{
		models.StatusConfirmed,
		models.StatusOnWay,
		models.StatusInProgress,
		models.StatusCompleted,
	}
	for _, expected := range want {
		b, err := svc.Advance(ctx, "2SW-000001")
		require.NoError(t, err)
		assert.Equal(t, expected, b.Status)
	}

	// Fifth advance from completed must fail with InvalidTransition.
	_, err := svc.Advance(ctx, "2SW-000001")
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.StatusCompleted, invalid.From)

	// No mutation happened.
	stored, _ := repo.GetByID(ctx, "doc-1")
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestAdvancePersistsUpdatedTimestamp(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.add(models.Booking{ID: "doc-1", BookingID: "2SW-000001", Status: models.StatusPending})
	svc, _ := newTestService(repo)

	b, err := svc.Advance(context.Background(), "2SW-000001")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), b.UpdatedAt)

	stored, _ := repo.GetByID(context.Background(), "doc-1")
	assert.Equal(t, b.UpdatedAt, stored.UpdatedAt)
}

func TestCancelOnlyFromPending(t *testing.T) {
	ctx := context.Background()

	repo := newFakeBookingRepo()
	repo.add(models.Booking{ID: "doc-1", BookingID: "2SW-000001", Status: models.StatusPending})
	svc, _ := newTestService(repo)

	b, err := svc.Cancel(ctx, "2SW-000001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, b.Status)

	for _, status := range []models.BookingStatus{
		models.StatusConfirmed,
		models.StatusOnWay,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		repo := newFakeBookingRepo()
		repo.add(models.Booking{ID: "doc-2", BookingID: "2SW-000002", Status: status})
		svc, _ := newTestService(repo)

		_, err := svc.Cancel(ctx, "2SW-000002")
		var invalid *InvalidTransitionError
		require.ErrorAs(t, err, &invalid, "cancel from %q must fail", status)

		stored, _ := repo.GetByID(ctx, "doc-2")
		assert.Equal(t, status, stored.Status, "status must be unchanged after failed cancel")
	}
}

// contendedBookingRepo lands a concurrent status change between the service's
// read and its compare-and-swap write.
type contendedBookingRepo struct {
	*fakeBookingRepo
	beforeUpdate func()
}

func (r *contendedBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, at time.Time) error {
	if r.beforeUpdate != nil {
		fn := r.beforeUpdate
		r.beforeUpdate = nil
		fn()
	}
	return r.fakeBookingRepo.UpdateStatus(ctx, id, from, to, at)
}

func TestAdvanceLostRaceIsConflictNotDoubleTransition(t *testing.T) {
	inner := newFakeBookingRepo()
	inner.add(models.Booking{ID: "doc-1", BookingID: "2SW-000001", Status: models.StatusPending})

	repo := &contendedBookingRepo{fakeBookingRepo: inner}
	repo.beforeUpdate = func() {
		// Another admin cancels the booking first.
		inner.bookings["doc-1"].Status = models.StatusCancelled
	}

	svc := &DefaultBookingService{
		Repo:         repo,
		PaymentRepo:  &fakePaymentListRepo{},
		CustomerRepo: &fakeCustomerRepo{},
		Now:          func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) },
	}

	ctx := context.Background()
	_, err := svc.Advance(ctx, "2SW-000001")
	require.ErrorIs(t, err, repository.ErrConflict)

	// The winner's transition stands; the loser advanced nothing.
	stored, _ := inner.GetByID(ctx, "doc-1")
	assert.Equal(t, models.StatusCancelled, stored.Status)
}

func TestAdvanceMissingBookingIsNotFound(t *testing.T) {
	svc, _ := newTestService(newFakeBookingRepo())

	_, err := svc.Advance(context.Background(), "2SW-999999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateBookingDefaultsAndCustomerUpsert(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, customers := newTestService(repo)

	b, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		Service:       "Full Wash",
		Date:          "2024-01-12",
		Time:          "10:30",
		VehicleType:   "SUV",
		PlateNumber:   "T 123 ABC",
		FirstName:     "Asha",
		LastName:      "Mrema",
		Phone:         "+255700000001",
		Location:      "Mbezi Beach",
		PaymentMethod: "mpesa",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, b.Status)
	assert.True(t, strings.HasPrefix(b.BookingID, "2SW-"))
	assert.NotEmpty(t, b.ID)

	require.Len(t, customers.upserts, 1)
	upserted := customers.upserts[0]
	assert.Equal(t, "+255700000001", upserted.Phone)
	// Rollups are recomputed from the snapshot, not incremented.
	assert.Equal(t, 1, upserted.TotalBookings)
	assert.Equal(t, int64(0), upserted.TotalSpent)
	assert.Equal(t, "2024-01-12", upserted.LastBooking)
}

func TestBulkUpdateSkipsIllegalTransitions(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.add(models.Booking{ID: "doc-1", BookingID: "2SW-000001", Status: models.StatusPending})
	repo.add(models.Booking{ID: "doc-2", BookingID: "2SW-000002", Status: models.StatusCompleted})
	repo.add(models.Booking{ID: "doc-3", BookingID: "2SW-000003", Status: models.StatusPending})
	svc, _ := newTestService(repo)

	ctx := context.Background()
	updated, err := svc.BulkUpdateStatus(ctx, []string{"2SW-000001", "2SW-000002", "2SW-000003", "2SW-404"}, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	stored, _ := repo.GetByID(ctx, "doc-2")
	assert.Equal(t, models.StatusCompleted, stored.Status, "completed booking must be left alone")
}
