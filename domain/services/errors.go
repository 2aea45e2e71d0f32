package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so the response never reveals which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrTaskNotFound  = errors.New("task not found")
)
