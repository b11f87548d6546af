package department

import "context"

// Repository は部署永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, name string) (*Department, error)
	Delete(ctx context.Context, id int64) (*Department, error)
	List(ctx context.Context) ([]*Department, error)
	// Budget は該当部署の給与合計を返します。所属社員がいなければ空のスライスを返します。
	Budget(ctx context.Context, id int64) ([]*Budget, error)
}
