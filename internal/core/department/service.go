package department

import (
	"context"
	"fmt"
)

// UseCase は部署ユースケースの公開インターフェースです。
type UseCase interface {
	ListDepartments(ctx context.Context) ([]*Department, error)
	CreateDepartment(ctx context.Context, name string) (*Department, error)
	DeleteDepartment(ctx context.Context, id int64) (*Department, error)
	DepartmentBudget(ctx context.Context, id int64) ([]*Budget, error)
}

// Service は部署に関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListDepartments は全部署を取得します。
func (s *Service) ListDepartments(ctx context.Context) ([]*Department, error) {
	return s.repo.List(ctx)
}

// CreateDepartment は部署を作成します。名前の重複チェックはストアに委ねます。
func (s *Service) CreateDepartment(ctx context.Context, name string) (*Department, error) {
	return s.repo.Create(ctx, name)
}

// DeleteDepartment は部署を削除し、削除した行を返します。
// 参照しているロールの扱いはストアの外部キー設定に従います。
func (s *Service) DeleteDepartment(ctx context.Context, id int64) (*Department, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Delete(ctx, id)
}

// DepartmentBudget は部署の給与合計を取得します。
func (s *Service) DepartmentBudget(ctx context.Context, id int64) ([]*Budget, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Budget(ctx, id)
}
