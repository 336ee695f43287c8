package dto

// EmployeeCreateRequest payload. Only email is required.
type EmployeeCreateRequest struct {
	Firstname    *string `json:"firstname" form:"firstname"`
	Lastname     *string `json:"lastname" form:"lastname"`
	Email        string  `json:"email" form:"email"`
	Phone        *string `json:"phone" form:"phone"`
	DepartmentID *int64  `json:"department_id" form:"department_id"`
}

// EmployeeUpdateRequest payload. Omitted fields are left unchanged.
type EmployeeUpdateRequest struct {
	Firstname       *string `json:"firstname" form:"firstname"`
	Lastname        *string `json:"lastname" form:"lastname"`
	Email           *string `json:"email" form:"email"`
	Phone           *string `json:"phone" form:"phone"`
	DepartmentID    *int64  `json:"department_id" form:"department_id"`
	ClearDepartment bool    `json:"clear_department" form:"clear_department"`
}

// EmployeeResponse is an employee with its department name.
type EmployeeResponse struct {
	ID           int64   `json:"id"`
	Firstname    *string `json:"firstname"`
	Lastname     *string `json:"lastname"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	DepartmentID *int64  `json:"department_id"`
	Department   *string `json:"department"`
	Photo        *string `json:"photo"`
}

// DepartmentRequest payload.
type DepartmentRequest struct {
	Name string `json:"name" form:"name"`
}

// DepartmentResponse payload.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DashboardResponse carries the dashboard counters.
type DashboardResponse struct {
	Employees   int64 `json:"employees"`
	Departments int64 `json:"departments"`
	Users       int64 `json:"users"`
}
