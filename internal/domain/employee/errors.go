package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUIDExists        = errors.New("employee uid already exists")
	ErrEmailExists      = errors.New("employee email already registered")
	ErrInactiveEmployee = errors.New("employee is inactive")
)
