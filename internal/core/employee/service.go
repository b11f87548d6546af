package employee

import (
	"context"
	"fmt"
)

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	ListEmployees(ctx context.Context) ([]*Employee, error)
	ListEmployeeDetails(ctx context.Context) ([]*Detail, error)
	ListByManager(ctx context.Context) ([]*ManagerEntry, error)
	ListByDepartment(ctx context.Context) ([]*DepartmentEntry, error)
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	UpdateEmployeeRole(ctx context.Context, in UpdateRoleInput) (*Employee, error)
	UpdateEmployeeManager(ctx context.Context, in UpdateManagerInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (*Employee, error)
}

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateEmployeeInput は社員作成時の入力です。ManagerID が nil の場合は上長なしで登録します。
type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

// UpdateRoleInput は役職変更時の入力です。
type UpdateRoleInput struct {
	ID     int64
	RoleID int64
}

// UpdateManagerInput は上長変更時の入力です。ManagerID が nil の場合は上長を外します。
//
// 自分自身や循環する上長関係は拒否しません。
type UpdateManagerInput struct {
	ID        int64
	ManagerID *int64
}

// ListEmployees は全社員を取得します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.List(ctx)
}

// ListEmployeeDetails は役職・部署・上長名付きで全社員を取得します。
func (s *Service) ListEmployeeDetails(ctx context.Context) ([]*Detail, error) {
	return s.repo.ListDetailed(ctx)
}

// ListByManager は上長名の昇順で社員を取得します。
func (s *Service) ListByManager(ctx context.Context) ([]*ManagerEntry, error) {
	return s.repo.ListByManager(ctx)
}

// ListByDepartment は部署名の昇順で社員を取得します。
func (s *Service) ListByDepartment(ctx context.Context) ([]*DepartmentEntry, error) {
	return s.repo.ListByDepartment(ctx)
}

// CreateEmployee は社員を作成します。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	if in.RoleID <= 0 {
		return nil, fmt.Errorf("role_id: %w", ErrInvalidRoleID)
	}
	if err := validateManagerID(in.ManagerID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Employee{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		RoleID:    in.RoleID,
		ManagerID: cloneID(in.ManagerID),
	})
}

// UpdateEmployeeRole は社員の役職を更新します。
func (s *Service) UpdateEmployeeRole(ctx context.Context, in UpdateRoleInput) (*Employee, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if in.RoleID <= 0 {
		return nil, fmt.Errorf("role_id: %w", ErrInvalidRoleID)
	}
	return s.repo.UpdateRole(ctx, in.ID, in.RoleID)
}

// UpdateEmployeeManager は社員の上長を更新します。
func (s *Service) UpdateEmployeeManager(ctx context.Context, in UpdateManagerInput) (*Employee, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if err := validateManagerID(in.ManagerID); err != nil {
		return nil, err
	}
	return s.repo.UpdateManager(ctx, in.ID, cloneID(in.ManagerID))
}

// DeleteEmployee は社員を削除し、削除した行を返します。
func (s *Service) DeleteEmployee(ctx context.Context, id int64) (*Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Delete(ctx, id)
}

func validateManagerID(id *int64) error {
	if id != nil && *id <= 0 {
		return fmt.Errorf("manager_id: %w", ErrManagerNotFound)
	}
	return nil
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
