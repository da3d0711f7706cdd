package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"osas/clubport/internal/db/repositories"
)

type fakeAuditStore struct {
	mu       sync.Mutex
	inserted []repositories.NavigationEvent
	cutoffs  []time.Time
}

func (f *fakeAuditStore) InsertBatch(_ context.Context, events []repositories.NavigationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, events...)
	return nil
}

func (f *fakeAuditStore) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return 0, nil
}

func (f *fakeAuditStore) insertedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}

func (f *fakeAuditStore) pruneCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestAuditFlusherWritesBatches(t *testing.T) {
	fake := &fakeAuditStore{}
	w := newAuditFlusher(fake, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	for i := 0; i < 3; i++ {
		w.Record(repositories.NavigationEvent{ToRoute: "dashboard"})
	}

	waitFor(t, func() bool { return fake.insertedCount() == 3 },
		"queued events never reached the store")
}

func TestAuditFlusherPrunesOnStart(t *testing.T) {
	fake := &fakeAuditStore{}
	retention := 48 * time.Hour
	w := newAuditFlusher(fake, 10*time.Millisecond, retention)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	waitFor(t, func() bool { return fake.pruneCount() >= 1 },
		"retention prune never ran")

	fake.mu.Lock()
	cutoff := fake.cutoffs[0]
	fake.mu.Unlock()
	want := time.Now().Add(-retention)
	if cutoff.Before(want.Add(-time.Minute)) || cutoff.After(want.Add(time.Minute)) {
		t.Fatalf("prune cutoff %v not near %v", cutoff, want)
	}
}

func TestAuditFlusherDrainsOnShutdown(t *testing.T) {
	fake := &fakeAuditStore{}
	w := newAuditFlusher(fake, time.Hour, time.Hour) // tick never fires

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	w.Record(repositories.NavigationEvent{ToRoute: "profile"})
	w.Record(repositories.NavigationEvent{ToRoute: "grievances"})
	cancel()
	<-done

	if got := fake.insertedCount(); got != 2 {
		t.Fatalf("expected shutdown drain to flush 2 events, got %d", got)
	}
}

func TestAuditFlusherWithoutStoreIsInert(t *testing.T) {
	w := NewAuditFlusher(nil, 0)
	w.Record(repositories.NavigationEvent{ToRoute: "dashboard"})
	w.Start(context.Background()) // returns immediately
}
