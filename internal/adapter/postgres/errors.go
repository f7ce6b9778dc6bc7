package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapError adds operation and key context to a driver error.
// context.DeadlineExceeded and context.Canceled pass through unchanged so that
// callers can still match them with errors.Is.
func wrapError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("postgres %s %q: %w", op, key, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("postgres %s %q: sqlstate %s: %w", op, key, pgErr.Code, err)
	}

	return fmt.Errorf("postgres %s %q: %w", op, key, err)
}
