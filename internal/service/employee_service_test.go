package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-admin/internal/domain"
	"github.com/spec-kit/employee-admin/internal/events"
	"github.com/spec-kit/employee-admin/internal/service"
	apperrors "github.com/spec-kit/employee-admin/pkg/util/errorutil"
)

func recordEvents(d events.Dispatcher) *[]events.Event {
	var got []events.Event
	record := func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	}
	d.Subscribe(events.EventEmployeeCreated, record)
	d.Subscribe(events.EventEmployeeUpdated, record)
	d.Subscribe(events.EventEmployeeDeleted, record)
	return &got
}

func TestEmployeeService_GetMissingIsNotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewEmployeeService(stubEmployeeRepo{}, nil, zap.NewNop())

	_, err := svc.Get(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestEmployeeService_GetPropagatesStoreError(t *testing.T) {
	t.Parallel()

	storeErr := &domain.StoreError{Op: "get employee", Err: assert.AnError}
	svc := service.NewEmployeeService(stubEmployeeRepo{
		getFn: func(context.Context, int64) (*domain.Employee, error) { return nil, storeErr },
	}, nil, zap.NewNop())

	_, err := svc.Get(context.Background(), 3)
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestEmployeeService_SearchBlankListsAll(t *testing.T) {
	t.Parallel()

	var listed, searched bool
	svc := service.NewEmployeeService(stubEmployeeRepo{
		listFn: func(context.Context) ([]domain.Employee, error) {
			listed = true
			return nil, nil
		},
		searchFn: func(_ context.Context, q string) ([]domain.Employee, error) {
			searched = true
			assert.Equal(t, "smith", q)
			return nil, nil
		},
	}, nil, zap.NewNop())

	_, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.True(t, listed)
	assert.False(t, searched)

	_, err = svc.Search(context.Background(), " smith ")
	require.NoError(t, err)
	assert.True(t, searched)
}

func TestEmployeeService_Create(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	published := recordEvents(dispatcher)

	svc := service.NewEmployeeService(stubEmployeeRepo{
		createFn: func(_ context.Context, e domain.NewEmployee) (int64, error) {
			assert.Equal(t, "ann@example.com", e.Email)
			return 11, nil
		},
		getFn: func(_ context.Context, id int64) (*domain.Employee, error) {
			return &domain.Employee{ID: id, Email: "ann@example.com"}, nil
		},
	}, dispatcher, zap.NewNop())

	employee, err := svc.Create(context.Background(), 1, domain.NewEmployee{Email: " ann@example.com "})
	require.NoError(t, err)
	assert.Equal(t, int64(11), employee.ID)

	require.Len(t, *published, 1)
	assert.Equal(t, events.EventEmployeeCreated, (*published)[0].Type)
	assert.Equal(t, int64(11), (*published)[0].EmployeeID)
	assert.Equal(t, int64(1), (*published)[0].ActorID)
}

func TestEmployeeService_CreateRequiresEmail(t *testing.T) {
	t.Parallel()

	svc := service.NewEmployeeService(stubEmployeeRepo{
		createFn: func(context.Context, domain.NewEmployee) (int64, error) {
			t.Fatal("store must not be called")
			return 0, nil
		},
	}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), 1, domain.NewEmployee{Firstname: strPtr("Ann")})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
}

func TestEmployeeService_CreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	published := recordEvents(dispatcher)

	svc := service.NewEmployeeService(stubEmployeeRepo{
		createFn: func(context.Context, domain.NewEmployee) (int64, error) {
			return 0, domain.ErrUniqueConstraint
		},
	}, dispatcher, zap.NewNop())

	_, err := svc.Create(context.Background(), 1, domain.NewEmployee{Email: "ann@example.com"})
	require.ErrorIs(t, err, domain.ErrUniqueConstraint)
	assert.Empty(t, *published)
}

func TestEmployeeService_Update(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	published := recordEvents(dispatcher)

	svc := service.NewEmployeeService(stubEmployeeRepo{
		updateFn: func(_ context.Context, id int64, p domain.EmployeePatch) (int64, error) {
			assert.Equal(t, int64(4), id)
			return 1, nil
		},
		getFn: func(_ context.Context, id int64) (*domain.Employee, error) {
			return &domain.Employee{ID: id, Phone: strPtr("555")}, nil
		},
	}, dispatcher, zap.NewNop())

	employee, err := svc.Update(context.Background(), 1, 4, domain.EmployeePatch{Phone: strPtr("555"), ClearDepartment: true})
	require.NoError(t, err)
	assert.Equal(t, "555", *employee.Phone)

	require.Len(t, *published, 1)
	payload, ok := (*published)[0].Payload.(events.EmployeeUpdatedPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"phone", "department_id"}, payload.Fields)
}

func TestEmployeeService_UpdateMissingIsNotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewEmployeeService(stubEmployeeRepo{
		updateFn: func(context.Context, int64, domain.EmployeePatch) (int64, error) { return 0, nil },
	}, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 1, 4, domain.EmployeePatch{Phone: strPtr("555")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeService_UpdateRejectsBlankEmail(t *testing.T) {
	t.Parallel()

	svc := service.NewEmployeeService(stubEmployeeRepo{}, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 1, 4, domain.EmployeePatch{Email: strPtr(" ")})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestEmployeeService_UpdateEmptyPatch(t *testing.T) {
	t.Parallel()

	svc := service.NewEmployeeService(stubEmployeeRepo{
		updateFn: func(_ context.Context, id int64, p domain.EmployeePatch) (int64, error) {
			return 0, domain.ErrEmptyUpdate
		},
	}, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), 1, 4, domain.EmployeePatch{})
	require.ErrorIs(t, err, domain.ErrEmptyUpdate)
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	published := recordEvents(dispatcher)

	rows := int64(1)
	svc := service.NewEmployeeService(stubEmployeeRepo{
		deleteFn: func(context.Context, int64) (int64, error) {
			affected := rows
			rows = 0
			return affected, nil
		},
	}, dispatcher, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 1, 9))
	require.ErrorIs(t, svc.Delete(context.Background(), 1, 9), domain.ErrNotFound)

	require.Len(t, *published, 1)
	assert.Equal(t, events.EventEmployeeDeleted, (*published)[0].Type)
}

func TestEmployeeService_EventFailureDoesNotFailWrite(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventEmployeeDeleted, func(context.Context, events.Event) error {
		return assert.AnError
	})

	svc := service.NewEmployeeService(stubEmployeeRepo{
		deleteFn: func(context.Context, int64) (int64, error) { return 1, nil },
	}, dispatcher, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 1, 9))
}
