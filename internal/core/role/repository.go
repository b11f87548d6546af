package role

import "context"

// Repository は役職永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, role *Role) (*Role, error)
	Delete(ctx context.Context, id int64) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	ListWithDepartment(ctx context.Context) ([]*Listing, error)
}
