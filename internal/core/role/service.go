package role

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// UseCase は役職ユースケースの公開インターフェースです。
type UseCase interface {
	ListRoles(ctx context.Context) ([]*Role, error)
	ListRolesWithDepartment(ctx context.Context) ([]*Listing, error)
	CreateRole(ctx context.Context, in CreateRoleInput) (*Role, error)
	DeleteRole(ctx context.Context, id int64) (*Role, error)
}

// Service は役職に関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateRoleInput は役職作成時の入力です。Salary は入力された文字列のまま受け取ります。
type CreateRoleInput struct {
	Title        string
	Salary       string
	DepartmentID int64
}

// ParseSalary は給与入力を数値として解釈します。前後の空白は無視します。
func ParseSalary(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidSalary
	}
	return d, nil
}

// ListRoles は全役職を取得します。
func (s *Service) ListRoles(ctx context.Context) ([]*Role, error) {
	return s.repo.List(ctx)
}

// ListRolesWithDepartment は部署名付きで全役職を取得します。
func (s *Service) ListRolesWithDepartment(ctx context.Context) ([]*Listing, error) {
	return s.repo.ListWithDepartment(ctx)
}

// CreateRole は役職を作成します。
func (s *Service) CreateRole(ctx context.Context, in CreateRoleInput) (*Role, error) {
	salary, err := ParseSalary(in.Salary)
	if err != nil {
		return nil, err
	}
	if in.DepartmentID <= 0 {
		return nil, fmt.Errorf("department_id: %w", ErrDepartmentNotFound)
	}

	return s.repo.Create(ctx, &Role{
		Title:        in.Title,
		Salary:       salary,
		DepartmentID: in.DepartmentID,
	})
}

// DeleteRole は役職を削除し、削除した行を返します。
func (s *Service) DeleteRole(ctx context.Context, id int64) (*Role, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Delete(ctx, id)
}
