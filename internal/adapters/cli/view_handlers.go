package cli

import (
	"context"
	"fmt"
)

func (a *App) viewDepartments(ctx context.Context) error {
	departments, err := a.departments.ListDepartments(ctx)
	if err != nil {
		return fmt.Errorf("fetch departments: %w", err)
	}

	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{itoa(d.ID), d.Name})
	}
	a.render.Render([]string{"id", "name"}, rows)
	return nil
}

func (a *App) viewRoles(ctx context.Context) error {
	roles, err := a.roles.ListRolesWithDepartment(ctx)
	if err != nil {
		return fmt.Errorf("fetch roles: %w", err)
	}

	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{itoa(r.ID), r.Title, orEmpty(r.DepartmentName), r.Salary.String()})
	}
	a.render.Render([]string{"id", "title", "department", "salary"}, rows)
	return nil
}

func (a *App) viewEmployees(ctx context.Context) error {
	details, err := a.employees.ListEmployeeDetails(ctx)
	if err != nil {
		return fmt.Errorf("fetch employees: %w", err)
	}

	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{
			itoa(d.ID),
			d.FirstName,
			d.LastName,
			orEmpty(d.Title),
			orEmpty(d.Department),
			nullDecimal(d.Salary),
			orEmpty(d.Manager),
		})
	}
	a.render.Render([]string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}, rows)
	return nil
}

func (a *App) viewEmployeesByManager(ctx context.Context) error {
	entries, err := a.employees.ListByManager(ctx)
	if err != nil {
		return fmt.Errorf("fetch employees by manager: %w", err)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{orEmpty(e.Manager), e.Employee})
	}
	a.render.Render([]string{"manager", "employee"}, rows)
	return nil
}

func (a *App) viewEmployeesByDepartment(ctx context.Context) error {
	entries, err := a.employees.ListByDepartment(ctx)
	if err != nil {
		return fmt.Errorf("fetch employees by department: %w", err)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Department, e.Employee})
	}
	a.render.Render([]string{"department", "employee"}, rows)
	return nil
}

func (a *App) viewDepartmentBudget(ctx context.Context) error {
	departments, err := a.departments.ListDepartments(ctx)
	if err != nil {
		return fmt.Errorf("fetch departments: %w", err)
	}

	departmentID, err := a.chooseID("Which department's total budget would you like to view?", departmentOptions(departments))
	if err != nil {
		return fmt.Errorf("departments: %w", err)
	}

	budgets, err := a.departments.DepartmentBudget(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("calculate budget: %w", err)
	}

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, []string{b.Department, b.Total.String()})
	}
	a.render.Render([]string{"department", "total_budget"}, rows)
	return nil
}
