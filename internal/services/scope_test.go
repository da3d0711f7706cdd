package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestScope(t *testing.T) *ScopeService {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	svc, err := NewScopeService(gdb)
	if err != nil {
		t.Fatalf("failed to init scope service: %v", err)
	}
	return svc
}

func TestScopeRoundTrip(t *testing.T) {
	svc := newTestScope(t)
	ctx := context.Background()

	if err := svc.Set(ctx, "sess-1", 7); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := svc.Get(ctx, "sess-1")
	if err != nil || got != 7 {
		t.Fatalf("get: got %d, %v", got, err)
	}

	// Switching clubs overwrites, not duplicates.
	if err := svc.Set(ctx, "sess-1", 9); err != nil {
		t.Fatalf("re-set failed: %v", err)
	}
	if got, _ := svc.Get(ctx, "sess-1"); got != 9 {
		t.Fatalf("expected updated scope 9, got %d", got)
	}
}

func TestScopeUnsetReadsZero(t *testing.T) {
	svc := newTestScope(t)

	got, err := svc.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected zero for unset scope, got %d", got)
	}
}

func TestScopeIsPerSession(t *testing.T) {
	svc := newTestScope(t)
	ctx := context.Background()

	_ = svc.Set(ctx, "laptop", 1)
	_ = svc.Set(ctx, "phone", 2)

	if got, _ := svc.Get(ctx, "laptop"); got != 1 {
		t.Fatalf("laptop scope clobbered: %d", got)
	}
	if got, _ := svc.Get(ctx, "phone"); got != 2 {
		t.Fatalf("phone scope clobbered: %d", got)
	}
}

func TestScopeClear(t *testing.T) {
	svc := newTestScope(t)
	ctx := context.Background()

	_ = svc.Set(ctx, "sess-1", 7)
	if err := svc.Clear(ctx, "sess-1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if got, _ := svc.Get(ctx, "sess-1"); got != 0 {
		t.Fatalf("expected cleared scope, got %d", got)
	}
}
