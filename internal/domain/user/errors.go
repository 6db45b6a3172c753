package user

import "errors"

var (
	// ErrUserNotFound indicates the user doesn't exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates another account already uses the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized indicates a missing, invalid or revoked token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput indicates invalid sign-up or sign-in input.
	ErrInvalidInput = errors.New("invalid user input")
)
