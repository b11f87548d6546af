package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ogurasousui/employee-tracker/internal/core/department"
	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
	"github.com/shopspring/decimal"
)

func formatDepartment(d *department.Department) string {
	return fmt.Sprintf("{id: %d, name: %q}", d.ID, d.Name)
}

func formatRole(r *role.Role) string {
	return fmt.Sprintf("{id: %d, title: %q, salary: %s, department_id: %d}", r.ID, r.Title, r.Salary.String(), r.DepartmentID)
}

func formatEmployee(e *employee.Employee) string {
	manager := "null"
	if e.ManagerID != nil {
		manager = strconv.FormatInt(*e.ManagerID, 10)
	}
	return fmt.Sprintf("{id: %d, first_name: %q, last_name: %q, role_id: %d, manager_id: %s}",
		e.ID, e.FirstName, e.LastName, e.RoleID, manager)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// describeError は診断ログに添える操作者向けの説明を返します。
func describeError(err error) string {
	switch {
	case errors.Is(err, department.ErrDepartmentInUse):
		return "the department still has roles; delete or move them first"
	case errors.Is(err, role.ErrRoleInUse):
		return "the role is still held by employees; reassign them first"
	case errors.Is(err, role.ErrDepartmentNotFound):
		return "the selected department no longer exists"
	case errors.Is(err, employee.ErrRoleNotFound):
		return "the selected role no longer exists"
	case errors.Is(err, employee.ErrManagerNotFound):
		return "the selected manager no longer exists"
	case errors.Is(err, department.ErrDepartmentNotFound),
		errors.Is(err, role.ErrRoleNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound):
		return "the selected record no longer exists"
	case errors.Is(err, role.ErrInvalidSalary):
		return "salary must be a number"
	case errors.Is(err, errNoChoices):
		return "nothing to choose from"
	default:
		return "query failed"
	}
}
