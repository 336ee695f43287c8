package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-admin/internal/domain"
)

// Database is the subset of *pgxpool.Pool the repositories need.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SQLSTATE codes classified by storeFailure.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// storeFailure logs a failed store call once and converts it to a domain error.
func storeFailure(logger *zap.Logger, op string, err error) error {
	logger.Error("store operation failed", zap.String("op", op), zap.Error(err))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrUniqueConstraint, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrUnknownDepartment)
		}
	}
	return &domain.StoreError{Op: op, Err: err}
}
