package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	UpdateRole(ctx context.Context, id, roleID int64) (*Employee, error)
	UpdateManager(ctx context.Context, id int64, managerID *int64) (*Employee, error)
	Delete(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	ListDetailed(ctx context.Context) ([]*Detail, error)
	ListByManager(ctx context.Context) ([]*ManagerEntry, error)
	ListByDepartment(ctx context.Context) ([]*DepartmentEntry, error)
}
