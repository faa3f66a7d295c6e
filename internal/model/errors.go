package model

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail indicates a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotActivated indicates login on an account that never consumed its
	// activation token.
	ErrNotActivated = errors.New("account is not activated")
	// ErrInvalidToken covers unknown, already consumed and expired
	// activation/reset tokens under one response.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrPasswordMismatch indicates the new password and its confirmation
	// differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
