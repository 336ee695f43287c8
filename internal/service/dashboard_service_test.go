package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-admin/internal/service"
)

func TestDashboardService_Summary(t *testing.T) {
	t.Parallel()

	svc := service.NewDashboardService(service.DashboardDependencies{
		EmployeeRepo: stubEmployeeRepo{
			countFn: func(context.Context) (int64, error) { return 12, nil },
		},
		DepartmentRepo: stubDepartmentRepo{countOnly: 3},
		UserRepo:       &stubUserRepo{countOnly: 2},
	})

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.Summary{Employees: 12, Departments: 3, Users: 2}, sum)
}

func TestDashboardService_SummaryPropagatesError(t *testing.T) {
	t.Parallel()

	svc := service.NewDashboardService(service.DashboardDependencies{
		EmployeeRepo: stubEmployeeRepo{
			countFn: func(context.Context) (int64, error) { return 0, assert.AnError },
		},
		DepartmentRepo: stubDepartmentRepo{},
		UserRepo:       &stubUserRepo{},
	})

	_, err := svc.Summary(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}

func TestDepartmentService_CreateRequiresName(t *testing.T) {
	t.Parallel()

	svc := service.NewDepartmentService(stubDepartmentRepo{})

	_, err := svc.Create(context.Background(), "  ")
	require.Error(t, err)

	dept, err := svc.Create(context.Background(), " Sales ")
	require.NoError(t, err)
	assert.Equal(t, "Sales", dept.Name)
}
