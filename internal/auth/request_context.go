package auth

import (
	"context"

	"osas/clubport/internal/session"
)

type contextKey string

var (
	sessionKey   contextKey = "session"
	requestIDKey contextKey = "request_id"
)

// SetSession stores the resolved browser session in the request context.
func SetSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession retrieves the browser session from context; nil when the
// request is anonymous.
func GetSession(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(sessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// Token returns the bearer token of the request's session, or "".
func Token(ctx context.Context) string {
	if sess := GetSession(ctx); sess != nil {
		return sess.Token
	}
	return ""
}

// SetRequestID stores the request id in context.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID retrieves the request id from context, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
