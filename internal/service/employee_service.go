package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-admin/internal/domain"
	"github.com/spec-kit/employee-admin/internal/events"
	"github.com/spec-kit/employee-admin/internal/repository"
	apperrors "github.com/spec-kit/employee-admin/pkg/util/errorutil"
)

// EmployeeService applies not-found detection and change events on top of the employee repository.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewEmployeeService constructs the service. dispatcher may be nil.
func NewEmployeeService(employees repository.EmployeeRepository, dispatcher events.Dispatcher, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, dispatcher: dispatcher, logger: logger}
}

// List returns every employee, newest first.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// Search matches term against names, email and department name. A blank term lists everything.
func (s *EmployeeService) Search(ctx context.Context, term string) ([]domain.Employee, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.employees.List(ctx)
	}
	return s.employees.Search(ctx, term)
}

// Get fetches one employee or a NOT_FOUND error.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}
	return employee, nil
}

// Create inserts an employee and returns the stored record.
func (s *EmployeeService) Create(ctx context.Context, actorID int64, input domain.NewEmployee) (*domain.Employee, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		return nil, apperrors.NewValidationError("email required", nil)
	}

	id, err := s.employees.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEmployeeCreated, id, actorID, events.EmployeeCreatedPayload{
		Email:        input.Email,
		DepartmentID: input.DepartmentID,
	})
	return s.Get(ctx, id)
}

// Update applies a partial update and returns the stored record.
func (s *EmployeeService) Update(ctx context.Context, actorID, id int64, patch domain.EmployeePatch) (*domain.Employee, error) {
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, apperrors.NewValidationError("email cannot be blank", nil)
	}

	affected, err := s.employees.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}

	s.publish(ctx, events.EventEmployeeUpdated, id, actorID, events.EmployeeUpdatedPayload{Fields: patchFields(patch)})
	return s.Get(ctx, id)
}

// Delete removes an employee. Deleting a missing id is NOT_FOUND.
func (s *EmployeeService) Delete(ctx context.Context, actorID, id int64) error {
	affected, err := s.employees.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewNotFound("employee", map[string]any{"id": id})
	}

	s.publish(ctx, events.EventEmployeeDeleted, id, actorID, nil)
	return nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, employeeID, actorID int64, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employeeID,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(eventType)),
			zap.Int64("employee_id", employeeID),
			zap.Error(err))
	}
}

func patchFields(p domain.EmployeePatch) []string {
	fields := make([]string, 0, 5)
	if p.Firstname != nil {
		fields = append(fields, "firstname")
	}
	if p.Lastname != nil {
		fields = append(fields, "lastname")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.Phone != nil {
		fields = append(fields, "phone")
	}
	if p.DepartmentID != nil || p.ClearDepartment {
		fields = append(fields, "department_id")
	}
	return fields
}
