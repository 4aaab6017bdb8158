package store

import (
	"context"
	"fmt"

	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
)

// Supported database engines.
const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// NewDB opens a database connection for the engine selected in cfg.
// An empty engine defaults to postgres.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Engine {
	case "", EnginePostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case EngineSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown database engine: %q", cfg.Engine)
	}
}
