package domain

import "errors"

// Sentinel errors shared across services and repositories. The API layer
// maps them to HTTP status codes in a single place.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleExists         = errors.New("role already exists")
	ErrPermissionNotFound = errors.New("permission not found")
	ErrPermissionExists   = errors.New("permission already exists")
	ErrProjectNotFound    = errors.New("project not found")
	ErrCenterNotFound     = errors.New("center not found")
	ErrCenterExists       = errors.New("center already exists")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentExists   = errors.New("user already assigned to project")
)
