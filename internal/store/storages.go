package store

import (
	"context"

	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
)

// Storages aggregates every repository used by the application.
type Storages struct {
	UserRepository UserRepository
	JobRepository  JobRepository
}

// NewStorages opens the configured database and constructs all repositories
// over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, *DB, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		JobRepository:  NewJobRepository(db, log),
	}, db, nil
}
