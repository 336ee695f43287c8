package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-admin/internal/api/http/handlers"
	"github.com/spec-kit/employee-admin/internal/auth"
	"github.com/spec-kit/employee-admin/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Org            *handlers.OrgHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle)
	editors := auth.RequireRole(domain.UserRoleAdmin)

	admin.Get("/dashboard", cfg.Org.Dashboard)

	admin.Get("/employees", cfg.Employees.List)
	admin.Post("/employees", editors, cfg.Employees.Create)
	admin.Get("/employees/:id", cfg.Employees.Get)
	admin.Patch("/employees/:id", editors, cfg.Employees.Update)
	admin.Delete("/employees/:id", editors, cfg.Employees.Delete)

	admin.Get("/departments", cfg.Org.ListDepartments)
	admin.Post("/departments", editors, cfg.Org.CreateDepartment)
}
