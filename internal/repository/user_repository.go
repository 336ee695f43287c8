package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-admin/internal/domain"
	"github.com/spec-kit/employee-admin/internal/observability"
)

// UserRepository defines persistence access for admin console users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByID and GetByEmail return nil and no error when nothing matches.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db      Database
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db Database, logger *zap.Logger, metrics *observability.Metrics) UserRepository {
	return &userRepository{db: db, logger: logger, metrics: metrics}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	defer r.metrics.ObserveQuery("create_user", time.Now())

	const query = `
        INSERT INTO users (name, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	if err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt); err != nil {
		return storeFailure(r.logger, "create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	defer r.metrics.ObserveQuery("get_user", time.Now())

	const query = `
        SELECT id, name, email, password_hash, role, created_at
        FROM users WHERE id=$1`
	return r.getOne(ctx, "get user", query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	defer r.metrics.ObserveQuery("get_user_by_email", time.Now())

	const query = `
        SELECT id, name, email, password_hash, role, created_at
        FROM users WHERE email=$1`
	return r.getOne(ctx, "get user by email", query, email)
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	defer r.metrics.ObserveQuery("count_users", time.Now())

	const query = `SELECT COUNT(*) AS count FROM users`
	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, storeFailure(r.logger, "count users", err)
	}
	return count, nil
}

func (r *userRepository) getOne(ctx context.Context, op, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeFailure(r.logger, op, err)
	}
	return &user, nil
}
