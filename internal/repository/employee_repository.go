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

// EmployeeRepository translates employee operations into queries on the employees table.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	// GetByID returns nil and no error when the id does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, employee domain.NewEmployee) (int64, error)
	// Update returns the number of rows changed, 0 when id does not exist.
	Update(ctx context.Context, id int64, patch domain.EmployeePatch) (int64, error)
	// Delete returns the number of rows removed, 0 when id does not exist.
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string) ([]domain.Employee, error)
}

const employeeSelect = `
        SELECT employees.id, employees.firstname, employees.lastname, employees.email,
               employees.phone, employees.department_id, employees.photo, departments.name AS department
        FROM employees
        LEFT JOIN departments ON employees.department_id = departments.id`

type employeeRepository struct {
	db      Database
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(db Database, logger *zap.Logger, metrics *observability.Metrics) EmployeeRepository {
	return &employeeRepository{db: db, logger: logger, metrics: metrics}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	defer r.metrics.ObserveQuery("list_employees", time.Now())

	const query = employeeSelect + `
        ORDER BY employees.id DESC`
	result, err := r.queryEmployees(ctx, query)
	if err != nil {
		return nil, storeFailure(r.logger, "list employees", err)
	}
	return result, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	defer r.metrics.ObserveQuery("get_employee", time.Now())

	const query = employeeSelect + `
        WHERE employees.id = $1`
	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeFailure(r.logger, "get employee", err)
	}
	return &employee, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee domain.NewEmployee) (int64, error) {
	defer r.metrics.ObserveQuery("create_employee", time.Now())

	const query = `
        INSERT INTO employees (firstname, lastname, email, phone, department_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query,
		employee.Firstname,
		employee.Lastname,
		employee.Email,
		employee.Phone,
		employee.DepartmentID,
	).Scan(&id); err != nil {
		return 0, storeFailure(r.logger, "create employee", err)
	}

	r.logger.Info("employee saved", zap.Int64("employee_id", id))
	return id, nil
}

func (r *employeeRepository) Update(ctx context.Context, id int64, patch domain.EmployeePatch) (int64, error) {
	query, args, err := BuildEmployeeUpdate(id, patch)
	if err != nil {
		return 0, err
	}
	defer r.metrics.ObserveQuery("update_employee", time.Now())

	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, storeFailure(r.logger, "update employee", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	defer r.metrics.ObserveQuery("delete_employee", time.Now())

	const query = `DELETE FROM employees WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, storeFailure(r.logger, "delete employee", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	defer r.metrics.ObserveQuery("count_employees", time.Now())

	const query = `SELECT COUNT(*) AS count FROM employees`
	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, storeFailure(r.logger, "count employees", err)
	}
	return count, nil
}

func (r *employeeRepository) Search(ctx context.Context, term string) ([]domain.Employee, error) {
	defer r.metrics.ObserveQuery("search_employees", time.Now())

	const query = employeeSelect + `
        WHERE employees.firstname ILIKE $1
           OR employees.lastname ILIKE $1
           OR employees.email ILIKE $1
           OR departments.name ILIKE $1
        ORDER BY employees.id DESC`
	result, err := r.queryEmployees(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, storeFailure(r.logger, "search employees", err)
	}
	return result, nil
}

func (r *employeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID,
		&e.Firstname,
		&e.Lastname,
		&e.Email,
		&e.Phone,
		&e.DepartmentID,
		&e.Photo,
		&e.Department,
	)
	return e, err
}
