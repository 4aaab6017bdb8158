package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
)

// pingAttempts bounds the startup connectivity check. Transient failures
// (network errors, codes the classifier marks retryable) trigger another
// attempt; definitive postgres rejections do not.
const (
	pingAttempts = 3
	pingBackoff  = time.Second
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening database connection")
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	if err := pingWithRetry(ctx, conn, classifier, log); err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}, nil
}

// pingWithRetry verifies connectivity, retrying transient failures so that
// the service survives a database that is still coming up.
func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = conn.PingContext(ctx); err == nil {
			return nil
		}

		// Network-level failures carry no SQLSTATE and are worth another
		// try; a postgres rejection (bad credentials, unknown database)
		// classified non-retryable is final.
		if postgresError(err) != "" && classifier.Classify(err) != Retryable {
			break
		}
		if attempt == pingAttempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("database ping failed, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingBackoff):
		}
	}

	log.Err(err).Str("func", "pingWithRetry").Msg("error connecting database (ping)")
	return err
}

// postgresError returns the SQLSTATE code of a pgx driver error, or the
// empty string when err did not come from postgres.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
