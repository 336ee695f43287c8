package domain

// Employee is a stored employee row together with its department name.
type Employee struct {
	ID           int64
	Firstname    *string
	Lastname     *string
	Email        string
	Phone        *string
	DepartmentID *int64
	Photo        *string
	// Department is the joined departments.name, nil when no department is linked.
	Department *string
}

// NewEmployee carries the columns written on insert. Photo and ID take store defaults.
type NewEmployee struct {
	Firstname    *string
	Lastname     *string
	Email        string
	Phone        *string
	DepartmentID *int64
}

// EmployeePatch describes a partial update. A non-nil field is present and
// written as-is, so empty strings and zero are valid values.
type EmployeePatch struct {
	Firstname    *string
	Lastname     *string
	Email        *string
	Phone        *string
	DepartmentID *int64
	// ClearDepartment writes NULL to department_id when DepartmentID is nil.
	ClearDepartment bool
}

// IsEmpty reports whether the patch carries no updatable field.
func (p EmployeePatch) IsEmpty() bool {
	return p.Firstname == nil &&
		p.Lastname == nil &&
		p.Email == nil &&
		p.Phone == nil &&
		p.DepartmentID == nil &&
		!p.ClearDepartment
}
