package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserInactive           = errors.New("user is inactive")
	ErrDuplicateUsername      = errors.New("username already exists")
	ErrDuplicateCategory      = errors.New("category already required for this employee")
	ErrDuplicateEmployee      = errors.New("employee id already exists")
	ErrConcurrentModification = errors.New("only one document of same category should be active")
	ErrInvalidTransition      = errors.New("document is not in a state that allows this transition")
	ErrValidation             = errors.New("invalid input")
	ErrStorage                = errors.New("blob storage operation failed")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
)
