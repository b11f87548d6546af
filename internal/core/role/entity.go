package role

import "github.com/shopspring/decimal"

// Role は役職エンティティです。
type Role struct {
	ID           int64
	Title        string
	Salary       decimal.Decimal
	DepartmentID int64
}

// Listing は部署名を結合した一覧表示用の役職です。
// 部署が見つからない場合 DepartmentName は nil になります。
type Listing struct {
	ID             int64
	Title          string
	DepartmentName *string
	Salary         decimal.Decimal
}
