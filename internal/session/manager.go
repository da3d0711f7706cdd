package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"osas/clubport/internal/constants"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/metrics"
)

// Manager owns the session lifecycle: creation on login, lookup per request
// (with a short-lived in-process hot cache), teardown on logout, and the
// cross-instance logout broadcast over redis pub/sub.
type Manager struct {
	store   Store
	redis   *redis.Client // nil disables the logout broadcast
	ttl     time.Duration
	hot     *gocache.Cache
	metrics *metrics.MetricsRegistry
}

func NewManager(store Store, redisClient *redis.Client, ttl time.Duration, reg *metrics.MetricsRegistry) *Manager {
	return &Manager{
		store:   store,
		redis:   redisClient,
		ttl:     ttl,
		hot:     gocache.New(time.Minute, 5*time.Minute),
		metrics: reg,
	}
}

// Create opens a session for a fully authenticated user.
func (m *Manager) Create(ctx context.Context, token, refreshToken string, user *User) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:           uuid.New().String(),
		Token:        token,
		RefreshToken: refreshToken,
		User:         user,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	m.hot.Set(sess.ID, sess, gocache.DefaultExpiration)
	if m.metrics != nil {
		m.metrics.SessionsCreatedTotal.Inc()
		m.metrics.SessionsActive.Inc()
	}
	return sess, nil
}

// CreatePendingTwoFA opens a session holding only the temporary token of an
// in-flight two-factor challenge. The user record stays empty until the
// challenge completes; this is the one state where Token and User may
// diverge.
func (m *Manager) CreatePendingTwoFA(ctx context.Context, tempToken string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:           uuid.New().String(),
		PendingTwoFA: true,
		TempToken:    tempToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(10 * time.Minute),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	if m.metrics != nil {
		m.metrics.SessionsActive.Inc()
	}
	return sess, nil
}

// Complete upgrades a pending two-factor session with real tokens and user
// data once the challenge succeeds.
func (m *Manager) Complete(ctx context.Context, sess *Session, token, refreshToken string, user *User) error {
	sess.Token = token
	sess.RefreshToken = refreshToken
	sess.User = user
	sess.PendingTwoFA = false
	sess.TempToken = ""
	sess.ExpiresAt = time.Now().Add(m.ttl)
	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}
	m.hot.Set(sess.ID, sess, gocache.DefaultExpiration)
	return nil
}

// Get looks a session up, consulting the hot cache first.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if v, ok := m.hot.Get(id); ok {
		if sess, ok := v.(*Session); ok && !sess.Expired(time.Now()) {
			return sess, nil
		}
		m.hot.Delete(id)
	}

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.hot.Set(id, sess, gocache.DefaultExpiration)
	return sess, nil
}

// Update persists session mutations (refreshed tokens, role backfill).
func (m *Manager) Update(ctx context.Context, sess *Session) error {
	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}
	m.hot.Set(sess.ID, sess, gocache.DefaultExpiration)
	return nil
}

// Destroy tears a session down and broadcasts the logout so every gateway
// instance drops its cached copy.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	m.hot.Delete(id)
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	if m.metrics != nil {
		m.metrics.SessionsActive.Dec()
	}
	if m.redis != nil {
		if err := m.redis.Publish(ctx, constants.LogoutChannel, id).Err(); err != nil {
			logging.Warn("logout broadcast failed", "session_id", id, "error", err.Error())
		}
	}
	return nil
}

// WatchLogout subscribes to the logout channel and evicts broadcast session
// ids from the hot cache. Runs until ctx is cancelled.
func (m *Manager) WatchLogout(ctx context.Context) {
	if m.redis == nil {
		return
	}
	sub := m.redis.Subscribe(ctx, constants.LogoutChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			m.hot.Delete(msg.Payload)
			logging.Debug("session evicted via logout broadcast", "session_id", msg.Payload)
		}
	}
}

// TokenExpiry decodes the access token's exp claim without verifying the
// signature; the gateway trusts tokens it received from the upstream auth
// service directly.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// NeedsRefresh reports whether the session's access token expires within the
// given window (or already did).
func NeedsRefresh(sess *Session, window time.Duration) bool {
	if !sess.Authenticated() {
		return false
	}
	exp, ok := TokenExpiry(sess.Token)
	if !ok {
		return false
	}
	return time.Until(exp) < window
}
