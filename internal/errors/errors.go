package errors

import (
	"errors"
	"fmt"
)

// Common error types for the finance tracker client
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionExpired     = errors.New("session expired")
	ErrNoRefreshToken     = errors.New("no refresh token available")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")

	// Request errors
	ErrNetwork      = errors.New("network error")
	ErrInvalidShape = errors.New("unexpected response shape")

	// Input errors
	ErrValidation  = errors.New("validation failed")
	ErrInvalidDate = errors.New("invalid date")

	// Confirmation errors
	ErrNotConfirmed = errors.New("operation not confirmed")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
