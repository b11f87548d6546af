package cli

import (
	"context"
	"fmt"

	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
)

// promptMessage は入力検証で survey がそのまま操作者に表示する文言です。
type promptMessage string

func (m promptMessage) Error() string { return string(m) }

const errInvalidNumber promptMessage = "Please enter a valid number"

func validateSalary(raw string) error {
	if _, err := role.ParseSalary(raw); err != nil {
		return errInvalidNumber
	}
	return nil
}

func (a *App) addDepartment(ctx context.Context) error {
	name, err := a.prompt.Input("What is the name of the department?", nil)
	if err != nil {
		return err
	}

	created, err := a.departments.CreateDepartment(ctx, name)
	if err != nil {
		return fmt.Errorf("add department: %w", err)
	}

	fmt.Fprintf(a.out, "Department added: %s\n", formatDepartment(created))
	return nil
}

func (a *App) addRole(ctx context.Context) error {
	departments, err := a.departments.ListDepartments(ctx)
	if err != nil {
		return fmt.Errorf("fetch departments: %w", err)
	}
	opts := departmentOptions(departments)
	if len(opts) == 0 {
		return fmt.Errorf("departments: %w", errNoChoices)
	}

	title, err := a.prompt.Input("What is the name of the role?", nil)
	if err != nil {
		return err
	}
	salary, err := a.prompt.Input("What is the salary for the role?", validateSalary)
	if err != nil {
		return err
	}
	departmentID, err := a.chooseID("Which department does the role belong to?", opts)
	if err != nil {
		return err
	}

	created, err := a.roles.CreateRole(ctx, role.CreateRoleInput{
		Title:        title,
		Salary:       salary,
		DepartmentID: departmentID,
	})
	if err != nil {
		return fmt.Errorf("add role: %w", err)
	}

	fmt.Fprintf(a.out, "Role added: %s\n", formatRole(created))
	return nil
}

func (a *App) addEmployee(ctx context.Context) error {
	roles, err := a.roles.ListRoles(ctx)
	if err != nil {
		return fmt.Errorf("fetch roles: %w", err)
	}
	roleOpts := roleOptions(roles)
	if len(roleOpts) == 0 {
		return fmt.Errorf("roles: %w", errNoChoices)
	}

	employees, err := a.employees.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("fetch employees: %w", err)
	}

	firstName, err := a.prompt.Input("What's the employee's first name?", nil)
	if err != nil {
		return err
	}
	lastName, err := a.prompt.Input("What's the employee's last name?", nil)
	if err != nil {
		return err
	}
	roleID, err := a.chooseID("What's the employee's role?", roleOpts)
	if err != nil {
		return err
	}
	managerID, err := a.choose("Who's the employee's manager?", withNone(employeeOptions(employees)))
	if err != nil {
		return err
	}

	created, err := a.employees.CreateEmployee(ctx, employee.CreateEmployeeInput{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    roleID,
		ManagerID: managerID,
	})
	if err != nil {
		return fmt.Errorf("add employee: %w", err)
	}

	fmt.Fprintf(a.out, "Employee added: %s\n", formatEmployee(created))
	return nil
}

func (a *App) updateEmployeeRole(ctx context.Context) error {
	employees, err := a.employees.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("fetch employees: %w", err)
	}
	roles, err := a.roles.ListRoles(ctx)
	if err != nil {
		return fmt.Errorf("fetch roles: %w", err)
	}

	employeeID, err := a.chooseID("Which employee would you like to update?", employeeOptions(employees))
	if err != nil {
		return fmt.Errorf("employees: %w", err)
	}
	roleID, err := a.chooseID("Which role do you want to assign to the selected employee?", roleOptions(roles))
	if err != nil {
		return fmt.Errorf("roles: %w", err)
	}

	updated, err := a.employees.UpdateEmployeeRole(ctx, employee.UpdateRoleInput{ID: employeeID, RoleID: roleID})
	if err != nil {
		return fmt.Errorf("update employee role: %w", err)
	}

	fmt.Fprintf(a.out, "Employee role updated: %s\n", formatEmployee(updated))
	return nil
}

// updateEmployeeManager は上長を更新します。自分自身を上長に選ぶことも許容します。
func (a *App) updateEmployeeManager(ctx context.Context) error {
	employees, err := a.employees.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("fetch employees: %w", err)
	}

	opts := employeeOptions(employees)
	employeeID, err := a.chooseID("Which employee would you like to update?", opts)
	if err != nil {
		return fmt.Errorf("employees: %w", err)
	}
	managerID, err := a.choose("Who's the employee's new manager?", withNone(opts))
	if err != nil {
		return err
	}

	updated, err := a.employees.UpdateEmployeeManager(ctx, employee.UpdateManagerInput{ID: employeeID, ManagerID: managerID})
	if err != nil {
		return fmt.Errorf("update employee manager: %w", err)
	}

	fmt.Fprintf(a.out, "Employee manager updated: %s\n", formatEmployee(updated))
	return nil
}

func (a *App) deleteDepartment(ctx context.Context) error {
	departments, err := a.departments.ListDepartments(ctx)
	if err != nil {
		return fmt.Errorf("fetch departments: %w", err)
	}

	departmentID, err := a.chooseID("Which department would you like to delete?", departmentOptions(departments))
	if err != nil {
		return fmt.Errorf("departments: %w", err)
	}

	deleted, err := a.departments.DeleteDepartment(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}

	fmt.Fprintf(a.out, "Department deleted: %s\n", formatDepartment(deleted))
	return nil
}

func (a *App) deleteRole(ctx context.Context) error {
	roles, err := a.roles.ListRoles(ctx)
	if err != nil {
		return fmt.Errorf("fetch roles: %w", err)
	}

	roleID, err := a.chooseID("Which role would you like to delete?", roleOptions(roles))
	if err != nil {
		return fmt.Errorf("roles: %w", err)
	}

	deleted, err := a.roles.DeleteRole(ctx, roleID)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}

	fmt.Fprintf(a.out, "Role deleted: %s\n", formatRole(deleted))
	return nil
}

func (a *App) deleteEmployee(ctx context.Context) error {
	employees, err := a.employees.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("fetch employees: %w", err)
	}

	employeeID, err := a.chooseID("Which employee would you like to delete?", employeeOptions(employees))
	if err != nil {
		return fmt.Errorf("employees: %w", err)
	}

	deleted, err := a.employees.DeleteEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	fmt.Fprintf(a.out, "Employee deleted: %s\n", formatEmployee(deleted))
	return nil
}
