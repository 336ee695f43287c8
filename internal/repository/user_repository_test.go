package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-admin/internal/domain"
	"github.com/spec-kit/employee-admin/internal/repository"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role", "created_at"}

func TestUserCreate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash, role)`)).
		WithArgs("Root", "root@example.com", "hash", domain.UserRoleAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

	user := &domain.User{Name: "Root", Email: "root@example.com", PasswordHash: "hash", Role: domain.UserRoleAdmin}
	repo := repository.NewUserRepository(mock, zap.NewNop(), nil)
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, created, user.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmail(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email=$1`)).
		WithArgs("root@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(1), "Root", "root@example.com", "hash", domain.UserRoleAdmin, created))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email=$1`)).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns))

	repo := repository.NewUserRepository(mock, zap.NewNop(), nil)

	user, err := repo.GetByEmail(context.Background(), "root@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)

	missing, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByID_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id=$1`)).
		WithArgs(int64(1)).
		WillReturnError(assert.AnError)

	repo := repository.NewUserRepository(mock, zap.NewNop(), nil)
	_, err = repo.GetByID(context.Background(), 1)
	require.EqualError(t, err, "get user: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCount(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) AS count FROM users`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	repo := repository.NewUserRepository(mock, zap.NewNop(), nil)
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
