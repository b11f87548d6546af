package role

import "errors"

var (
	ErrInvalidID          = errors.New("role: invalid id")
	ErrInvalidSalary      = errors.New("role: salary must be a number")
	ErrRoleNotFound       = errors.New("role: not found")
	ErrDepartmentNotFound = errors.New("role: department not found")
	ErrRoleInUse          = errors.New("role: still held by employees")
)
