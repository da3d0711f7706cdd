package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"osas/clubport/internal/metrics"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	got, ok := TokenExpiry(signedToken(t, exp))
	if !ok {
		t.Fatal("expected expiry to decode")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry mismatch: got %v want %v", got, exp)
	}
}

func TestTokenExpiryGarbage(t *testing.T) {
	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Fatal("garbage token must not decode")
	}
	if _, ok := TokenExpiry(""); ok {
		t.Fatal("empty token must not decode")
	}
}

func TestNeedsRefresh(t *testing.T) {
	soon := &Session{Token: signedToken(t, time.Now().Add(2*time.Minute))}
	if !NeedsRefresh(soon, 5*time.Minute) {
		t.Fatal("token expiring inside the window must need refresh")
	}

	later := &Session{Token: signedToken(t, time.Now().Add(time.Hour))}
	if NeedsRefresh(later, 5*time.Minute) {
		t.Fatal("fresh token must not need refresh")
	}

	if NeedsRefresh(&Session{}, 5*time.Minute) {
		t.Fatal("unauthenticated session never needs refresh")
	}
}

func TestManagerLifecycle(t *testing.T) {
	store := newTestStore(t)
	mgr := NewManager(store, nil, time.Hour, nil)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "tok", "refresh", &User{ID: 7, Email: "x@y.z"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected generated session id")
	}

	got, err := mgr.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.UserID() != 7 {
		t.Fatalf("user mismatch: %+v", got.User)
	}

	if err := mgr.Destroy(ctx, sess.ID); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}
	if _, err := mgr.Get(ctx, sess.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after destroy, got %v", err)
	}
}

func TestActiveSessionGauge(t *testing.T) {
	store := newTestStore(t)
	reg := metrics.NewMetricsRegistry()
	mgr := NewManager(store, nil, time.Hour, reg)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "tok", "refresh", &User{ID: 7})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got := testutil.ToFloat64(reg.SessionsActive); got != 1 {
		t.Fatalf("expected 1 active session, gauge reads %v", got)
	}

	if err := mgr.Destroy(ctx, sess.ID); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}
	if got := testutil.ToFloat64(reg.SessionsActive); got != 0 {
		t.Fatalf("expected gauge back at 0, reads %v", got)
	}
}

func TestPendingTwoFAUpgrade(t *testing.T) {
	store := newTestStore(t)
	mgr := NewManager(store, nil, time.Hour, nil)
	ctx := context.Background()

	sess, err := mgr.CreatePendingTwoFA(ctx, "temp-token")
	if err != nil {
		t.Fatalf("pending create failed: %v", err)
	}
	if sess.Authenticated() {
		t.Fatal("pending session must not count as authenticated")
	}

	if err := mgr.Complete(ctx, sess, "tok", "refresh", &User{ID: 9}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if !sess.Authenticated() || sess.PendingTwoFA || sess.TempToken != "" {
		t.Fatalf("challenge completion left session inconsistent: %+v", sess)
	}

	got, err := mgr.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.UserID() != 9 {
		t.Fatalf("expected upgraded user, got %+v", got.User)
	}
}
