package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// NavigationEvent is one audited guard decision.
type NavigationEvent struct {
	ID        int64     `db:"id"`
	RequestID string    `db:"request_id"`
	SessionID string    `db:"session_id"`
	UserID    *int64    `db:"user_id"`
	UserRole  string    `db:"user_role"`
	FromRoute string    `db:"from_route"`
	ToRoute   string    `db:"to_route"`
	Decision  string    `db:"decision"`
	Redirect  string    `db:"redirect"`
	IP        string    `db:"ip"`
	CreatedAt time.Time `db:"created_at"`
}

const navigationSchema = `
CREATE TABLE IF NOT EXISTS navigation_events (
	id          BIGSERIAL PRIMARY KEY,
	request_id  TEXT NOT NULL,
	session_id  TEXT NOT NULL DEFAULT '',
	user_id     BIGINT,
	user_role   TEXT NOT NULL DEFAULT '',
	from_route  TEXT NOT NULL DEFAULT '',
	to_route    TEXT NOT NULL,
	decision    TEXT NOT NULL,
	redirect    TEXT NOT NULL DEFAULT '',
	ip          TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_navigation_events_user ON navigation_events (user_id, created_at DESC);
`

const insertNavigationEvent = `
INSERT INTO navigation_events
	(request_id, session_id, user_id, user_role, from_route, to_route, decision, redirect, ip, created_at)
VALUES
	(:request_id, :session_id, :user_id, :user_role, :from_route, :to_route, :decision, :redirect, :ip, :created_at)`

// NavigationRepository persists guard decisions for the session-log screens.
type NavigationRepository struct {
	db *sqlx.DB
}

func NewNavigationRepository(db *sqlx.DB) (*NavigationRepository, error) {
	if _, err := db.Exec(navigationSchema); err != nil {
		return nil, fmt.Errorf("failed to prepare navigation_events: %w", err)
	}
	return &NavigationRepository{db: db}, nil
}

// InsertBatch writes a flushed batch of events in one transaction.
func (r *NavigationRepository) InsertBatch(ctx context.Context, events []NavigationEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin audit tx: %w", err)
	}
	defer tx.Rollback()

	for _, ev := range events {
		if _, err := tx.NamedExecContext(ctx, insertNavigationEvent, ev); err != nil {
			return fmt.Errorf("failed to insert navigation event: %w", err)
		}
	}
	return tx.Commit()
}

// Recent returns the newest events, optionally filtered to one user.
func (r *NavigationRepository) Recent(ctx context.Context, userID *int64, limit int) ([]NavigationEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var (
		events []NavigationEvent
		err    error
	)
	if userID != nil {
		err = r.db.SelectContext(ctx, &events,
			`SELECT * FROM navigation_events WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, *userID, limit)
	} else {
		err = r.db.SelectContext(ctx, &events,
			`SELECT * FROM navigation_events ORDER BY created_at DESC LIMIT $1`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query navigation events: %w", err)
	}
	return events, nil
}

// PruneBefore deletes events older than the cutoff and reports how many rows
// went away.
func (r *NavigationRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM navigation_events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune navigation events: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
