package server

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/eslsoft/coursecatalog/internal/adapter/db"
	"github.com/eslsoft/coursecatalog/internal/config"
	"github.com/eslsoft/coursecatalog/internal/logger"
)

// OpenDatabase opens the configured database without touching its schema.
func OpenDatabase(cfg config.Config) (*entsql.Driver, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		sqlDB, err := stdsql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// modernc sqlite serialises writers; one connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		return entsql.OpenDB(dialect.SQLite, sqlDB), nil
	default:
		drv, err := entsql.Open(dialect.Postgres, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return drv, nil
	}
}

// NewDriver opens the database and migrates the schema.
func NewDriver(ctx context.Context, cfg config.Config, log *logger.Logger) (*entsql.Driver, func(), error) {
	drv, err := OpenDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(ctx, drv); err != nil {
		_ = drv.Close()
		return nil, nil, fmt.Errorf("migrate schema: %w", err)
	}
	log.Info("database ready", "driver", cfg.DatabaseDriver)

	cleanup := func() {
		if err := drv.Close(); err != nil {
			log.Warn("closing database failed", "error", err)
		}
	}
	return drv, cleanup, nil
}

// sqliteDSN turns on foreign keys, which the schema migrator requires.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
