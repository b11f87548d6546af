package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-tracker/internal/core/department"
	pgdb "github.com/ogurasousui/employee-tracker/internal/platform/db/postgres"
)

const (
	listDepartmentsQuery  = `SELECT id, name FROM departments ORDER BY id`
	createDepartmentQuery = `INSERT INTO departments (name) VALUES ($1) RETURNING id, name`
	deleteDepartmentQuery = `DELETE FROM departments WHERE id = $1 RETURNING id, name`
	departmentBudgetQuery = `
        SELECT d.name AS department, SUM(r.salary)::text AS total_budget
          FROM employees e
          JOIN roles r ON e.role_id = r.id
          JOIN departments d ON r.department_id = d.id
         WHERE d.id = $1
         GROUP BY d.name
    `
)

// DepartmentRepository は PostgreSQL を利用した部署永続化の実装です。
type DepartmentRepository struct {
	db pgdb.Queryer
}

// NewDepartmentRepository は DepartmentRepository を生成します。
func NewDepartmentRepository(db pgdb.Queryer) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create は部署を新規作成し、採番された ID を含む行を返します。
func (r *DepartmentRepository) Create(ctx context.Context, name string) (*department.Department, error) {
	created, err := scanDepartment(r.db.QueryRow(ctx, createDepartmentQuery, name))
	if err != nil {
		return nil, translateDepartmentPgError(err)
	}
	return created, nil
}

// Delete は部署を削除し、削除した行を返します。
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) (*department.Department, error) {
	deleted, err := scanDepartment(r.db.QueryRow(ctx, deleteDepartmentQuery, id))
	if err != nil {
		return nil, translateDepartmentPgError(err)
	}
	return deleted, nil
}

// List は全部署を取得します。
func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	rows, err := r.db.Query(ctx, listDepartmentsQuery)
	if err != nil {
		return nil, translateDepartmentPgError(err)
	}
	defer rows.Close()

	departments := make([]*department.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, translateDepartmentPgError(err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, translateDepartmentPgError(err)
	}

	return departments, nil
}

// Budget は部署に所属する社員の給与合計を返します。
// 該当する社員がいない場合 SUM は行を生まないため空のスライスになります。
func (r *DepartmentRepository) Budget(ctx context.Context, id int64) ([]*department.Budget, error) {
	rows, err := r.db.Query(ctx, departmentBudgetQuery, id)
	if err != nil {
		return nil, translateDepartmentPgError(err)
	}
	defer rows.Close()

	budgets := make([]*department.Budget, 0, 1)
	for rows.Next() {
		var (
			name  string
			total string
		)
		if err := rows.Scan(&name, &total); err != nil {
			return nil, err
		}
		amount, err := parseNumeric(total)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, &department.Budget{Department: name, Total: amount})
	}

	if err := rows.Err(); err != nil {
		return nil, translateDepartmentPgError(err)
	}

	return budgets, nil
}

func scanDepartment(row pgx.Row) (*department.Department, error) {
	var d department.Department
	if err := row.Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func translateDepartmentPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return department.ErrDepartmentNotFound
	}
	if constraint, ok := foreignKeyViolation(err); ok && constraint == rolesDepartmentFK {
		return department.ErrDepartmentInUse
	}
	return err
}
