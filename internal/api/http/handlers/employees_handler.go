package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-admin/internal/api/dto"
	"github.com/spec-kit/employee-admin/internal/auth"
	"github.com/spec-kit/employee-admin/internal/domain"
	apperrors "github.com/spec-kit/employee-admin/pkg/util/errorutil"
)

// EmployeeService is the employee surface used by EmployeesHandler.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Search(ctx context.Context, term string) ([]domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, actorID int64, input domain.NewEmployee) (*domain.Employee, error)
	Update(ctx context.Context, actorID, id int64, patch domain.EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, actorID, id int64) error
}

// EmployeesHandler manages /admin/employees endpoints.
type EmployeesHandler struct {
	service EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List handles GET /admin/employees, filtering by ?q= when given.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	var (
		list []domain.Employee
		err  error
	)
	if q := c.Query("q"); q != "" {
		list, err = h.service.Search(c.UserContext(), q)
	} else {
		list, err = h.service.List(c.UserContext())
	}
	if err != nil {
		return err
	}

	resp := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		resp = append(resp, employeeResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /admin/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	employee, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Create handles POST /admin/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	employee, err := h.service.Create(c.UserContext(), actorID(c), domain.NewEmployee{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Update handles PATCH /admin/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	employee, err := h.service.Update(c.UserContext(), actorID(c), id, domain.EmployeePatch{
		Firstname:       req.Firstname,
		Lastname:        req.Lastname,
		Email:           req.Email,
		Phone:           req.Phone,
		DepartmentID:    req.DepartmentID,
		ClearDepartment: req.ClearDepartment,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Delete handles DELETE /admin/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actorID(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func actorID(c *fiber.Ctx) int64 {
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		return principal.User.ID
	}
	return 0
}

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           e.ID,
		Firstname:    e.Firstname,
		Lastname:     e.Lastname,
		Email:        e.Email,
		Phone:        e.Phone,
		DepartmentID: e.DepartmentID,
		Department:   e.Department,
		Photo:        e.Photo,
	}
}
