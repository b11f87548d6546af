package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
	pgdb "github.com/ogurasousui/employee-tracker/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

// salary は NUMERIC のため text にキャストして受け取り、decimal に変換します。
const (
	listRolesQuery               = `SELECT id, title, salary::text, department_id FROM roles ORDER BY id`
	listRolesWithDepartmentQuery = `
        SELECT r.id, r.title, d.name AS department, r.salary::text
          FROM roles r
          LEFT JOIN departments d ON r.department_id = d.id
         ORDER BY r.id
    `
	createRoleQuery = `
        INSERT INTO roles (title, salary, department_id)
        VALUES ($1, $2, $3)
        RETURNING id, title, salary::text, department_id
    `
	deleteRoleQuery = `DELETE FROM roles WHERE id = $1 RETURNING id, title, salary::text, department_id`
)

// RoleRepository は PostgreSQL を利用した役職永続化の実装です。
type RoleRepository struct {
	db pgdb.Queryer
}

// NewRoleRepository は RoleRepository を生成します。
func NewRoleRepository(db pgdb.Queryer) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create は役職を新規作成します。
func (r *RoleRepository) Create(ctx context.Context, in *role.Role) (*role.Role, error) {
	created, err := scanRole(r.db.QueryRow(ctx, createRoleQuery, in.Title, in.Salary.String(), in.DepartmentID))
	if err != nil {
		return nil, translateRolePgError(err)
	}
	return created, nil
}

// Delete は役職を削除し、削除した行を返します。
func (r *RoleRepository) Delete(ctx context.Context, id int64) (*role.Role, error) {
	deleted, err := scanRole(r.db.QueryRow(ctx, deleteRoleQuery, id))
	if err != nil {
		return nil, translateRolePgError(err)
	}
	return deleted, nil
}

// List は全役職を取得します。
func (r *RoleRepository) List(ctx context.Context) ([]*role.Role, error) {
	rows, err := r.db.Query(ctx, listRolesQuery)
	if err != nil {
		return nil, translateRolePgError(err)
	}
	defer rows.Close()

	roles := make([]*role.Role, 0)
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, translateRolePgError(err)
		}
		roles = append(roles, ro)
	}

	if err := rows.Err(); err != nil {
		return nil, translateRolePgError(err)
	}

	return roles, nil
}

// ListWithDepartment は部署名を外部結合して全役職を取得します。
func (r *RoleRepository) ListWithDepartment(ctx context.Context) ([]*role.Listing, error) {
	rows, err := r.db.Query(ctx, listRolesWithDepartmentQuery)
	if err != nil {
		return nil, translateRolePgError(err)
	}
	defer rows.Close()

	listings := make([]*role.Listing, 0)
	for rows.Next() {
		var (
			l      role.Listing
			dept   sql.NullString
			salary string
		)
		if err := rows.Scan(&l.ID, &l.Title, &dept, &salary); err != nil {
			return nil, err
		}
		if l.Salary, err = parseNumeric(salary); err != nil {
			return nil, err
		}
		l.DepartmentName = nullableString(dept)
		listings = append(listings, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, translateRolePgError(err)
	}

	return listings, nil
}

func scanRole(row pgx.Row) (*role.Role, error) {
	var (
		ro     role.Role
		salary string
	)
	if err := row.Scan(&ro.ID, &ro.Title, &salary, &ro.DepartmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, role.ErrRoleNotFound
		}
		return nil, err
	}

	amount, err := parseNumeric(salary)
	if err != nil {
		return nil, err
	}
	ro.Salary = amount

	return &ro, nil
}

func translateRolePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return role.ErrRoleNotFound
	}
	if constraint, ok := foreignKeyViolation(err); ok {
		switch constraint {
		case rolesDepartmentFK:
			return role.ErrDepartmentNotFound
		case employeesRoleFK:
			return role.ErrRoleInUse
		}
	}
	return err
}

func parseNumeric(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("postgres: parse numeric %q: %w", raw, err)
	}
	return d, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
