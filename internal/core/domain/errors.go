package domain

import (
	"errors"
	"strings"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrUserNotFound       = errors.New("system user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRoleNotConfigured  = errors.New("admin role is not configured")
)

// ValidationError reports every missing required field at once rather than
// failing on the first one found.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ConflictError signals a uniqueness-constraint violation on the named
// natural key. It maps to a 400 with a field-specific message, distinct
// from generic failure.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + " already exists"
}
