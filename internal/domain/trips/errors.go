package trips

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidEmployee  = errors.New("employee id must be positive")
)
