package department

import "errors"

var (
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("department: invalid id")
	// ErrDepartmentNotFound は部署が存在しない場合に返却されます。
	ErrDepartmentNotFound = errors.New("department: not found")
	// ErrDepartmentInUse は部署を参照するロールが残っているため削除できない場合に返却されます。
	ErrDepartmentInUse = errors.New("department: still referenced by roles")
)
