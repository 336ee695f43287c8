package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-admin/internal/api/dto"
	"github.com/spec-kit/employee-admin/internal/domain"
	"github.com/spec-kit/employee-admin/internal/service"
	apperrors "github.com/spec-kit/employee-admin/pkg/util/errorutil"
)

// DepartmentService is the department surface used by OrgHandler.
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, name string) (*domain.Department, error)
}

// DashboardService provides the dashboard counters.
type DashboardService interface {
	Summary(ctx context.Context) (service.Summary, error)
}

// OrgHandler serves departments and the dashboard.
type OrgHandler struct {
	departments DepartmentService
	dashboard   DashboardService
}

// NewOrgHandler constructs handler.
func NewOrgHandler(departments DepartmentService, dashboard DashboardService) *OrgHandler {
	return &OrgHandler{departments: departments, dashboard: dashboard}
}

// Dashboard handles GET /admin/dashboard.
func (h *OrgHandler) Dashboard(c *fiber.Ctx) error {
	sum, err := h.dashboard.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DashboardResponse{
		Employees:   sum.Employees,
		Departments: sum.Departments,
		Users:       sum.Users,
	}})
}

// ListDepartments handles GET /admin/departments.
func (h *OrgHandler) ListDepartments(c *fiber.Ctx) error {
	depts, err := h.departments.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		resp = append(resp, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return c.JSON(fiber.Map{"data": resp})
}

// CreateDepartment handles POST /admin/departments.
func (h *OrgHandler) CreateDepartment(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.departments.Create(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.DepartmentResponse{ID: dept.ID, Name: dept.Name}})
}
