package service

import (
	"context"

	"github.com/spec-kit/employee-admin/internal/repository"
)

// Summary holds the dashboard counters.
type Summary struct {
	Employees   int64
	Departments int64
	Users       int64
}

// DashboardService aggregates the admin dashboard.
type DashboardService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	users       repository.UserRepository
}

// DashboardDependencies encapsulates repositories required for the dashboard.
type DashboardDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	DepartmentRepo repository.DepartmentRepository
	UserRepo       repository.UserRepository
}

// NewDashboardService builds the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	return &DashboardService{
		employees:   deps.EmployeeRepo,
		departments: deps.DepartmentRepo,
		users:       deps.UserRepo,
	}
}

// Summary counts employees, departments and users.
func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	var (
		sum Summary
		err error
	)
	if sum.Employees, err = s.employees.Count(ctx); err != nil {
		return Summary{}, err
	}
	if sum.Departments, err = s.departments.Count(ctx); err != nil {
		return Summary{}, err
	}
	if sum.Users, err = s.users.Count(ctx); err != nil {
		return Summary{}, err
	}
	return sum, nil
}
