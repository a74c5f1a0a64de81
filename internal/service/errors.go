package service

import "errors"

// Sentinel failures returned by the services. The HTTP layer maps them to
// status codes with errors.Is; the messages are the ones clients see.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
