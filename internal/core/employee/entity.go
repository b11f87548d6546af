package employee

import "github.com/shopspring/decimal"

// Employee は社員エンティティです。ManagerID が nil の社員には上長がいません。
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

// FullName は "名 姓" 形式の表示名を返します。
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Detail は役職・部署・上長を外部結合した一覧表示用の社員です。
type Detail struct {
	ID         int64
	FirstName  string
	LastName   string
	Title      *string
	Department *string
	Salary     decimal.NullDecimal
	Manager    *string
}

// ManagerEntry は上長別社員一覧の 1 行です。
type ManagerEntry struct {
	Manager  *string
	Employee string
}

// DepartmentEntry は部署別社員一覧の 1 行です。
type DepartmentEntry struct {
	Department string
	Employee   string
}
