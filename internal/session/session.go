package session

import (
	"time"

	"osas/clubport/internal/constants"
)

// User is the authenticated user record attached to a session, as handed
// back by the upstream auth endpoints.
type User struct {
	ID           int64          `json:"id"`
	Email        string         `json:"email"`
	Role         constants.Role `json:"role"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	TwoFAEnabled bool           `json:"twoFAEnabled"`
}

// Session is a browser session held by the gateway. User is non-nil whenever
// Token is non-empty, except while a two-factor challenge is pending.
type Session struct {
	ID           string    `json:"session_id"`
	Token        string    `json:"token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	User         *User     `json:"user,omitempty"`
	PendingTwoFA bool      `json:"pending_2fa,omitempty"`
	TempToken    string    `json:"temp_token,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Authenticated reports whether the session carries an access token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// BaseRole returns the role string from the session's user record, or the
// empty role when no user data is populated yet.
func (s *Session) BaseRole() constants.Role {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}

// UserID returns the session user's id, or 0 when unknown.
func (s *Session) UserID() int64 {
	if s == nil || s.User == nil {
		return 0
	}
	return s.User.ID
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
