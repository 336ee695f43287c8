package repository

import (
	"fmt"
	"strings"

	"github.com/spec-kit/employee-admin/internal/domain"
)

// BuildEmployeeUpdate renders an UPDATE touching only the fields present in
// patch, in the fixed order firstname, lastname, email, phone, department_id.
// Clause placeholders and args advance together; id is always the last arg.
func BuildEmployeeUpdate(id int64, patch domain.EmployeePatch) (string, []any, error) {
	clauses := make([]string, 0, 5)
	args := make([]any, 0, 6)

	set := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Firstname != nil {
		set("firstname", *patch.Firstname)
	}
	if patch.Lastname != nil {
		set("lastname", *patch.Lastname)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	switch {
	case patch.DepartmentID != nil:
		set("department_id", *patch.DepartmentID)
	case patch.ClearDepartment:
		set("department_id", nil)
	}

	if len(clauses) == 0 {
		return "", nil, domain.ErrEmptyUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(clauses, ", "), len(args))
	return query, args, nil
}
