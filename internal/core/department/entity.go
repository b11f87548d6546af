package department

import "github.com/shopspring/decimal"

// Department は部署エンティティです。
type Department struct {
	ID   int64
	Name string
}

// Budget は部署に所属するロールを持つ社員の給与合計です。
type Budget struct {
	Department string
	Total      decimal.Decimal
}
