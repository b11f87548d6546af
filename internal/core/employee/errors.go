package employee

import "errors"

var (
	ErrInvalidID        = errors.New("employee: invalid id")
	ErrInvalidRoleID    = errors.New("employee: invalid role id")
	ErrEmployeeNotFound = errors.New("employee: not found")
	ErrRoleNotFound     = errors.New("employee: role not found")
	ErrManagerNotFound  = errors.New("employee: manager not found")
)
