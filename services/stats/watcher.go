package stats

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"sparklewash/models"
)

// Watcher re-derives dashboard stats whenever the underlying collections
// change and fans the result out to registered subscribers. It exists for
// liveness of displayed stats only; every read path recomputes from a fresh
// snapshot regardless of whether the watcher is running.
type Watcher struct {
	Service *DefaultStatsService
	Logger  *zap.Logger

	mu          sync.Mutex
	subscribers []func(models.DashboardStats)
}

// Subscribe registers a callback invoked with fresh dashboard stats after
// every detected change.
func (w *Watcher) Subscribe(fn func(models.DashboardStats)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, fn)
}

// Run watches the bookings and payments collections until ctx is done. When
// change streams are unavailable (standalone mongod), it degrades to polling.
func (w *Watcher) Run(ctx context.Context) {
	changes := make(chan struct{}, 1)
	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	go w.watchOrPoll(ctx, notify, func(c context.Context, f func()) error {
		return w.Service.BookingRepo.Watch(c, f)
	})
	go w.watchOrPoll(ctx, notify, func(c context.Context, f func()) error {
		return w.Service.PaymentRepo.Watch(c, f)
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			w.Service.InvalidateDashboard(ctx)
			w.publish(ctx)
		}
	}
}

func (w *Watcher) watchOrPoll(ctx context.Context, notify func(), watch func(context.Context, func()) error) {
	for {
		err := watch(ctx, notify)
		if ctx.Err() != nil {
			return
		}
		if err != nil && w.Logger != nil {
			w.Logger.Warn("change stream unavailable, falling back to poll", zap.Error(err))
		}
		// Poll-based refresh keeps displayed stats live without streams.
		select {
		case <-ctx.Done():
			return
		case <-time.After(15 * time.Second):
			notify()
		}
	}
}

func (w *Watcher) publish(ctx context.Context) {
	result, err := w.Service.GetDashboardStats(ctx)
	if err != nil {
		if w.Logger != nil {
			w.Logger.Warn("failed to recompute dashboard stats", zap.Error(err))
		}
		return
	}

	w.mu.Lock()
	subs := make([]func(models.DashboardStats), len(w.subscribers))
	copy(subs, w.subscribers)
	w.mu.Unlock()

	for _, fn := range subs {
		fn(*result)
	}
}
