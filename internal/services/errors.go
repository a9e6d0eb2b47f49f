package services

import "errors"

var (
	// Not found
	ErrModuleNotFound   = errors.New("module not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrTermNotFound     = errors.New("glossary term not found")
	ErrPartNotFound     = errors.New("printer part not found")
	ErrMaterialNotFound = errors.New("material not found")

	// Uniqueness conflicts
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateTerm     = errors.New("glossary term already exists")

	// Invalid input caught at the service boundary
	ErrValidationFailed = errors.New("validation failed")
)
