package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInactiveUser  = errors.New("user is inactive")
	ErrInvalidClaims = errors.New("token claims are missing or invalid")
	ErrNotAllowed    = errors.New("actor is not allowed to perform this operation")
)
