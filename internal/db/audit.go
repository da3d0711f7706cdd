package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"osas/clubport/internal/logging"
)

// OpenAudit connects the navigation audit database, retrying while the
// container comes up. An empty DSN disables auditing.
func OpenAudit(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, nil
	}

	var (
		conn *sqlx.DB
		err  error
	)
	for i := 0; i < 10; i++ {
		conn, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			logging.Info("audit database connected")
			return conn, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, err
}
