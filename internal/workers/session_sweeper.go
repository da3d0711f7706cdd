package workers

import (
	"context"
	"time"

	"osas/clubport/internal/logging"
	"osas/clubport/internal/metrics"
	"osas/clubport/internal/session"
)

// SessionSweeper periodically removes expired sessions from the durable
// store. Only the gorm store accumulates rows; redis-backed stores expire on
// their own.
type SessionSweeper struct {
	store    *session.GormStore
	interval time.Duration
	metrics  *metrics.MetricsRegistry
}

func NewSessionSweeper(store *session.GormStore, interval time.Duration, reg *metrics.MetricsRegistry) *SessionSweeper {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &SessionSweeper{store: store, interval: interval, metrics: reg}
}

// Start runs the sweep loop until ctx is cancelled.
func (w *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SessionSweeper) sweep(ctx context.Context) {
	n, err := w.store.SweepExpired(ctx, time.Now())
	if err != nil {
		logging.Warn("session sweep failed", "error", err.Error())
		return
	}
	if n > 0 {
		if w.metrics != nil {
			w.metrics.SessionsSweptTotal.Add(float64(n))
			w.metrics.SessionsActive.Sub(float64(n))
		}
		logging.Debug("expired sessions swept", "count", n)
	}
}
