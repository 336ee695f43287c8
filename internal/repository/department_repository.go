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

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, name string) (*domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Count(ctx context.Context) (int64, error)
}

type departmentRepository struct {
	db      Database
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(db Database, logger *zap.Logger, metrics *observability.Metrics) DepartmentRepository {
	return &departmentRepository{db: db, logger: logger, metrics: metrics}
}

func (r *departmentRepository) Create(ctx context.Context, name string) (*domain.Department, error) {
	defer r.metrics.ObserveQuery("create_department", time.Now())

	const query = `INSERT INTO departments (name) VALUES ($1) RETURNING id`
	dept := domain.Department{Name: name}
	if err := r.db.QueryRow(ctx, query, name).Scan(&dept.ID); err != nil {
		return nil, storeFailure(r.logger, "create department", err)
	}
	return &dept, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	defer r.metrics.ObserveQuery("get_department", time.Now())

	const query = `SELECT id, name FROM departments WHERE id = $1`
	var dept domain.Department
	err := r.db.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeFailure(r.logger, "get department", err)
	}
	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	defer r.metrics.ObserveQuery("list_departments", time.Now())

	const query = `SELECT id, name FROM departments ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeFailure(r.logger, "list departments", err)
	}
	defer rows.Close()

	result := []domain.Department{}
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, storeFailure(r.logger, "list departments", err)
		}
		result = append(result, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFailure(r.logger, "list departments", err)
	}
	return result, nil
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	defer r.metrics.ObserveQuery("count_departments", time.Now())

	const query = `SELECT COUNT(*) AS count FROM departments`
	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, storeFailure(r.logger, "count departments", err)
	}
	return count, nil
}
