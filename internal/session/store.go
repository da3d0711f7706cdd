package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a session id has no live record. Corrupt
// stored payloads are reported the same way: a session the gateway cannot
// decode is treated as absent, never as a hard failure.
var ErrNotFound = errors.New("session not found")

// Store persists sessions durably.
type Store interface {
	Save(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
