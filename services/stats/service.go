package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sparklewash/models"
)

const dashboardCacheKey = "stats:dashboard"

// GetDashboardStats loads a fresh snapshot of all three collections and folds
// it into the dashboard metrics. The cached copy is served when present; any
// cache failure falls through to recomputation.
func (s *DefaultStatsService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var cached models.DashboardStats
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	bookings, payments, customers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := ComputeDashboardStats(bookings, payments, customers, s.now())
	s.cacheDashboard(ctx, result)
	return &result, nil
}

// GetPaymentStats folds the payments snapshot into the payments-screen
// metrics. Never cached; the payments screen always reflects the snapshot.
func (s *DefaultStatsService) GetPaymentStats(ctx context.Context) (*models.PaymentStats, error) {
	payments, err := s.PaymentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments snapshot: %w", err)
	}
	result := ComputePaymentStats(payments, s.now())
	return &result, nil
}

// GetCustomerStats recomputes one customer's rollups from the booking and
// payment sets sharing that phone number.
func (s *DefaultStatsService) GetCustomerStats(ctx context.Context, phone string) (*models.CustomerStats, error) {
	if _, err := s.CustomerRepo.GetByPhone(ctx, phone); err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings snapshot: %w", err)
	}
	payments, err := s.PaymentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments snapshot: %w", err)
	}

	result := ComputeCustomerStats(phone, bookings, payments, s.now(), s.ActivityWindow)
	return &result, nil
}

// ListCustomersWithStats returns every customer with recomputed rollups. The
// stored counters on the customer documents are ignored on this path.
func (s *DefaultStatsService) ListCustomersWithStats(ctx context.Context) ([]models.CustomerWithStats, error) {
	bookings, payments, customers, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]models.CustomerWithStats, 0, len(customers))
	for _, c := range customers {
		cs := ComputeCustomerStats(c.Phone, bookings, payments, now, s.ActivityWindow)
		c.TotalBookings = cs.TotalBookings
		c.TotalSpent = cs.TotalSpent
		c.LastBooking = cs.LastBooking
		result = append(result, models.CustomerWithStats{Customer: c, Stats: cs})
	}
	return result, nil
}

// InvalidateDashboard drops the cached dashboard stats. Called by the watcher
// whenever the underlying collections change.
func (s *DefaultStatsService) InvalidateDashboard(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, dashboardCacheKey).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to invalidate dashboard stats cache", zap.Error(err))
	}
}

func (s *DefaultStatsService) snapshot(ctx context.Context) ([]models.Booking, []models.Payment, []models.Customer, error) {
	bookings, err := s.BookingRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load bookings snapshot: %w", err)
	}
	payments, err := s.PaymentRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load payments snapshot: %w", err)
	}
	customers, err := s.CustomerRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load customers snapshot: %w", err)
	}
	return bookings, payments, customers, nil
}

func (s *DefaultStatsService) cacheDashboard(ctx context.Context, result models.DashboardStats) {
	if s.Cache == nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, dashboardCacheKey, data, ttl).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to cache dashboard stats", zap.Error(err))
	}
}
