package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolationCode = "23503"

// 外部キー制約名は assets/migrations のスキーマ定義と一致させます。
const (
	rolesDepartmentFK  = "roles_department_id_fkey"
	employeesRoleFK    = "employees_role_id_fkey"
	employeesManagerFK = "employees_manager_id_fkey"
)

// foreignKeyViolation は err が外部キー違反であれば制約名を返します。
func foreignKeyViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
