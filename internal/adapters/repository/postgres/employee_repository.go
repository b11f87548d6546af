package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	pgdb "github.com/ogurasousui/employee-tracker/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

// 上長がいない社員の manager 列は CONCAT の結果 ' ' ではなく NULL を返します。
const managerNameExpr = `CASE WHEN m.id IS NULL THEN NULL ELSE CONCAT(m.first_name, ' ', m.last_name) END`

const (
	employeeColumns     = `id, first_name, last_name, role_id, manager_id`
	listEmployeesQuery  = `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	createEmployeeQuery = `
        INSERT INTO employees (first_name, last_name, role_id, manager_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + employeeColumns
	updateEmployeeRoleQuery    = `UPDATE employees SET role_id = $1 WHERE id = $2 RETURNING ` + employeeColumns
	updateEmployeeManagerQuery = `UPDATE employees SET manager_id = $1 WHERE id = $2 RETURNING ` + employeeColumns
	deleteEmployeeQuery        = `DELETE FROM employees WHERE id = $1 RETURNING ` + employeeColumns

	listEmployeeDetailsQuery = `
        SELECT e.id, e.first_name, e.last_name, r.title, d.name AS department, r.salary::text,
               ` + managerNameExpr + ` AS manager
          FROM employees e
          LEFT JOIN roles r ON e.role_id = r.id
          LEFT JOIN departments d ON r.department_id = d.id
          LEFT JOIN employees m ON e.manager_id = m.id
         ORDER BY e.id
    `
	listEmployeesByManagerQuery = `
        SELECT ` + managerNameExpr + ` AS manager,
               CONCAT(e.first_name, ' ', e.last_name) AS employee
          FROM employees e
          LEFT JOIN employees m ON e.manager_id = m.id
         ORDER BY manager NULLS FIRST, employee
    `
	listEmployeesByDepartmentQuery = `
        SELECT d.name AS department,
               CONCAT(e.first_name, ' ', e.last_name) AS employee
          FROM employees e
          JOIN roles r ON e.role_id = r.id
          JOIN departments d ON r.department_id = d.id
         ORDER BY d.name, employee
    `
)

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	db pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(db pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	return r.writeOne(ctx, createEmployeeQuery, e.FirstName, e.LastName, e.RoleID, nullableID(e.ManagerID))
}

// UpdateRole は社員の役職を更新します。
func (r *EmployeeRepository) UpdateRole(ctx context.Context, id, roleID int64) (*employee.Employee, error) {
	return r.writeOne(ctx, updateEmployeeRoleQuery, roleID, id)
}

// UpdateManager は社員の上長を更新します。managerID が nil なら NULL を設定します。
func (r *EmployeeRepository) UpdateManager(ctx context.Context, id int64, managerID *int64) (*employee.Employee, error) {
	return r.writeOne(ctx, updateEmployeeManagerQuery, nullableID(managerID), id)
}

// Delete は社員を削除し、削除した行を返します。部下の manager_id はストア側で NULL になります。
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (*employee.Employee, error) {
	return r.writeOne(ctx, deleteEmployeeQuery, id)
}

func (r *EmployeeRepository) writeOne(ctx context.Context, query string, args ...any) (*employee.Employee, error) {
	emp, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return emp, nil
}

// List は全社員を取得します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	rows, err := r.db.Query(ctx, listEmployeesQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return employees, nil
}

// ListDetailed は役職・部署・上長名を外部結合して全社員を取得します。
func (r *EmployeeRepository) ListDetailed(ctx context.Context) ([]*employee.Detail, error) {
	rows, err := r.db.Query(ctx, listEmployeeDetailsQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	details := make([]*employee.Detail, 0)
	for rows.Next() {
		var (
			d       employee.Detail
			title   sql.NullString
			dept    sql.NullString
			salary  sql.NullString
			manager sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &title, &dept, &salary, &manager); err != nil {
			return nil, err
		}
		if salary.Valid {
			amount, err := parseNumeric(salary.String)
			if err != nil {
				return nil, err
			}
			d.Salary = decimal.NewNullDecimal(amount)
		}
		d.Title = nullableString(title)
		d.Department = nullableString(dept)
		d.Manager = nullableString(manager)
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return details, nil
}

// ListByManager は上長名の昇順で (上長, 社員) の組を返します。上長のいない社員は先頭に並びます。
func (r *EmployeeRepository) ListByManager(ctx context.Context) ([]*employee.ManagerEntry, error) {
	rows, err := r.db.Query(ctx, listEmployeesByManagerQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	entries := make([]*employee.ManagerEntry, 0)
	for rows.Next() {
		var (
			manager sql.NullString
			name    string
		)
		if err := rows.Scan(&manager, &name); err != nil {
			return nil, err
		}
		entries = append(entries, &employee.ManagerEntry{Manager: nullableString(manager), Employee: name})
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return entries, nil
}

// ListByDepartment は部署名の昇順で (部署, 社員) の組を返します。
// 役職または部署に紐づかない社員は内部結合により除外されます。
func (r *EmployeeRepository) ListByDepartment(ctx context.Context) ([]*employee.DepartmentEntry, error) {
	rows, err := r.db.Query(ctx, listEmployeesByDepartmentQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	entries := make([]*employee.DepartmentEntry, 0)
	for rows.Next() {
		var e employee.DepartmentEntry
		if err := rows.Scan(&e.Department, &e.Employee); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return entries, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		e         employee.Employee
		managerID sql.NullInt64
	)

	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.RoleID, &managerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	if managerID.Valid {
		id := managerID.Int64
		e.ManagerID = &id
	}

	return &e, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	if constraint, ok := foreignKeyViolation(err); ok {
		switch constraint {
		case employeesRoleFK:
			return employee.ErrRoleNotFound
		case employeesManagerFK:
			return employee.ErrManagerNotFound
		}
	}
	return err
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
