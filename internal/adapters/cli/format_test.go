package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ogurasousui/employee-tracker/internal/core/department"
	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
	"github.com/shopspring/decimal"
)

func TestFormatRecords(t *testing.T) {
	t.Parallel()

	manager := int64(3)
	tests := []struct {
		got  string
		want string
	}{
		{
			got:  formatDepartment(&department.Department{ID: 1, Name: "R&D"}),
			want: `{id: 1, name: "R&D"}`,
		},
		{
			got:  formatRole(&role.Role{ID: 2, Title: "Engineer", Salary: decimal.RequireFromString("75000.25"), DepartmentID: 1}),
			want: `{id: 2, title: "Engineer", salary: 75000.25, department_id: 1}`,
		},
		{
			got:  formatEmployee(&employee.Employee{ID: 4, FirstName: "Ada", LastName: "Lovelace", RoleID: 2, ManagerID: &manager}),
			want: `{id: 4, first_name: "Ada", last_name: "Lovelace", role_id: 2, manager_id: 3}`,
		},
		{
			got:  formatEmployee(&employee.Employee{ID: 4, FirstName: "Ada", LastName: "Lovelace", RoleID: 2}),
			want: `{id: 4, first_name: "Ada", last_name: "Lovelace", role_id: 2, manager_id: null}`,
		},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, tt.got)
		}
	}
}

func TestDescribeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("delete department: %w", department.ErrDepartmentInUse), "the department still has roles; delete or move them first"},
		{role.ErrRoleInUse, "the role is still held by employees; reassign them first"},
		{role.ErrDepartmentNotFound, "the selected department no longer exists"},
		{employee.ErrRoleNotFound, "the selected role no longer exists"},
		{employee.ErrManagerNotFound, "the selected manager no longer exists"},
		{employee.ErrEmployeeNotFound, "the selected record no longer exists"},
		{role.ErrInvalidSalary, "salary must be a number"},
		{fmt.Errorf("roles: %w", errNoChoices), "nothing to choose from"},
		{errors.New("boom"), "query failed"},
	}

	for _, tt := range tests {
		if got := describeError(tt.err); got != tt.want {
			t.Errorf("describeError(%v): expected %q, got %q", tt.err, tt.want, got)
		}
	}
}

func TestValidateSalary(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"75000", " 1234.56 "} {
		if err := validateSalary(in); err != nil {
			t.Errorf("validateSalary(%q) returned error: %v", in, err)
		}
	}

	for _, in := range []string{"abc", "", "1e"} {
		err := validateSalary(in)
		if !errors.Is(err, errInvalidNumber) {
			t.Errorf("validateSalary(%q): expected errInvalidNumber, got %v", in, err)
		}
	}
}

func TestValidateSalary_MessageShownToOperator(t *testing.T) {
	t.Parallel()

	err := validateSalary("abc")
	if err == nil {
		t.Fatal("expected error for non-numeric salary")
	}
	if err.Error() != "Please enter a valid number" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWithNoneDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	base := make([]option, 1, 4)
	base[0] = option{label: "Ada Lovelace", id: ptr(1)}

	withNone(base)
	extended := append(base, option{label: "Alan Turing", id: ptr(2)})
	if extended[1].label != "Alan Turing" {
		t.Fatalf("unexpected extended slice: %+v", extended)
	}

	got := withNone(base)
	if len(got) != 2 || got[1].label != noneLabel || got[1].id != nil {
		t.Fatalf("unexpected options: %+v", got)
	}
}
