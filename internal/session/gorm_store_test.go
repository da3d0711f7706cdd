package session

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"osas/clubport/internal/constants"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	store, err := NewGormStore(gdb)
	if err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func testSession(id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		Token:        "access-token",
		RefreshToken: "refresh-token",
		User: &User{
			ID:        7,
			Email:     "officer@example.com",
			Role:      constants.RoleStudent,
			FirstName: "Juana",
			LastName:  "Dela Cruz",
		},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestGormStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := testSession("s1", time.Hour)
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Token != want.Token || got.User == nil || got.User.ID != 7 {
		t.Fatalf("session mismatch: %+v", got)
	}
	if got.User.Role != constants.RoleStudent {
		t.Fatalf("expected student role, got %q", got.User.Role)
	}
}

func TestGormStoreMissingSession(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Get(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormStoreExpiredSessionIsDropped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("old", -time.Minute)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.Get(ctx, "old"); err != ErrNotFound {
		t.Fatalf("expected expired session to read as not found, got %v", err)
	}
}

func TestGormStoreCorruptPayloadReadsAsNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := Record{ID: "bad", Payload: []byte("{not json"), ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.db.Create(&rec).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := store.Get(ctx, "bad"); err != ErrNotFound {
		t.Fatalf("expected corrupt payload to read as not found, got %v", err)
	}
	// The corrupt row must be gone afterwards.
	var count int64
	store.db.Model(&Record{}).Where("id = ?", "bad").Count(&count)
	if count != 0 {
		t.Fatal("corrupt session row should have been deleted")
	}
}

func TestGormStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("gone", time.Hour)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "gone"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSweepExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, s := range []*Session{
		testSession("live-1", time.Hour),
		testSession("dead-1", -time.Minute),
		testSession("dead-2", -time.Hour),
	} {
		if err := store.Save(ctx, s); err != nil {
			t.Fatalf("save %s failed: %v", s.ID, err)
		}
	}

	n, err := store.SweepExpired(ctx, time.Now())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 swept rows, got %d", n)
	}
	if _, err := store.Get(ctx, "live-1"); err != nil {
		t.Fatalf("live session must survive the sweep: %v", err)
	}
}
