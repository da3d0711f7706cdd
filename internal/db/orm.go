package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"osas/clubport/internal/logging"
)

// OpenORM connects the durable session/scope store. A postgres:// DSN gets
// the postgres driver; anything else is treated as a sqlite path, which is
// what local runs and tests use (":memory:" included).
func OpenORM(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var (
		gdb *gorm.DB
		err error
	)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		gdb, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		gdb, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	logging.Info("session database connected", "dsn_kind", dsnKind(dsn))
	return gdb, nil
}

func dsnKind(dsn string) string {
	if strings.HasPrefix(dsn, "postgres") {
		return "postgres"
	}
	return "sqlite"
}
