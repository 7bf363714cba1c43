package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/expnse/expnse-server/internal/config"
	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name it was
// opened with. The driver is fixed at startup; nothing downstream branches
// on it except migrations and driver-error classification.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens the relational backend selected by cfg.Driver.
// Exactly one backend is chosen per process lifetime.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for the opened backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
