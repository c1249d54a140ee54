package stats

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "sparklewash/database/repository/booking"
	customerRepo "sparklewash/database/repository/customer"
	paymentRepo "sparklewash/database/repository/payment"
	"sparklewash/models"
)

// StatsService exposes the derived-metrics surface of the dashboard.
type StatsService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	GetPaymentStats(ctx context.Context) (*models.PaymentStats, error)
	GetCustomerStats(ctx context.Context, phone string) (*models.CustomerStats, error)
	ListCustomersWithStats(ctx context.Context) ([]models.CustomerWithStats, error)
}

// DefaultStatsService implements StatsService over the entity repositories.
// The redis cache holds the last computed dashboard stats under a short TTL;
// it is a read accelerator only, never the source of truth.
type DefaultStatsService struct {
	BookingRepo  bookingRepo.BookingRepository
	PaymentRepo  paymentRepo.PaymentRepository
	CustomerRepo customerRepo.CustomerRepository
	Cache        *redis.Client
	CacheTTL     time.Duration

	// ActivityWindow classifies customers as active; zero means the 30-day
	// default.
	ActivityWindow time.Duration

	// Now is injected for tests; nil means time.Now.
	Now    func() time.Time
	Logger *zap.Logger
}

func (s *DefaultStatsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
