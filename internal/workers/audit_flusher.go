package workers

import (
	"context"
	"time"

	"osas/clubport/internal/db/repositories"
	"osas/clubport/internal/logging"
)

// auditStore is the slice of the navigation repository the flusher needs.
type auditStore interface {
	InsertBatch(ctx context.Context, events []repositories.NavigationEvent) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditFlusher buffers navigation events in memory and writes them to the
// audit database in batches so guard decisions never wait on a disk write.
// It also owns retention: events older than the retention window are pruned
// on a slow tick.
type AuditFlusher struct {
	store     auditStore
	events    chan repositories.NavigationEvent
	interval  time.Duration
	retention time.Duration
	pruneTick time.Duration
	batchMax  int
}

func NewAuditFlusher(repo *repositories.NavigationRepository, interval time.Duration) *AuditFlusher {
	if repo == nil {
		return newAuditFlusher(nil, interval, 0)
	}
	return newAuditFlusher(repo, interval, 0)
}

func newAuditFlusher(store auditStore, interval, retention time.Duration) *AuditFlusher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if retention <= 0 {
		retention = 90 * 24 * time.Hour
	}
	return &AuditFlusher{
		store:     store,
		events:    make(chan repositories.NavigationEvent, 1024),
		interval:  interval,
		retention: retention,
		pruneTick: 6 * time.Hour,
		batchMax:  200,
	}
}

// Record queues one event. A full buffer drops the event rather than
// blocking the navigation path.
func (w *AuditFlusher) Record(ev repositories.NavigationEvent) {
	if w == nil || w.store == nil {
		return
	}
	select {
	case w.events <- ev:
	default:
		logging.Warn("audit buffer full, dropping navigation event", "to", ev.ToRoute)
	}
}

// Start runs the flush loop until ctx is cancelled, draining the buffer one
// last time on shutdown.
func (w *AuditFlusher) Start(ctx context.Context) {
	if w == nil || w.store == nil {
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	pruner := time.NewTicker(w.pruneTick)
	defer pruner.Stop()

	batch := make([]repositories.NavigationEvent, 0, w.batchMax)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := w.store.InsertBatch(context.Background(), batch); err != nil {
			logging.Warn("audit flush failed", "count", len(batch), "error", err.Error())
		}
		batch = batch[:0]
	}

	w.prune(ctx)
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case ev := <-w.events:
					batch = append(batch, ev)
				default:
					flush()
					return
				}
			}
		case ev := <-w.events:
			batch = append(batch, ev)
			if len(batch) >= w.batchMax {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-pruner.C:
			w.prune(ctx)
		}
	}
}

func (w *AuditFlusher) prune(ctx context.Context) {
	cutoff := time.Now().Add(-w.retention)
	n, err := w.store.PruneBefore(ctx, cutoff)
	if err != nil {
		logging.Warn("audit retention prune failed", "error", err.Error())
		return
	}
	if n > 0 {
		logging.Info("pruned navigation events past retention", "count", n)
	}
}
