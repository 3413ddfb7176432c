package apperrors

import "errors"

var (
	ErrEventNotFound          = errors.New("event not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternalServerError    = errors.New("internal server error")
)
