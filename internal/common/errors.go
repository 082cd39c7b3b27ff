// Package common contains shared constants and sentinel errors used across
// server and client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal = errors.New("internal error")

	// ErrInvalidCredentials covers both an unknown email and a failed
	// password check. The two cases must stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors (signed codec only; the legacy codec never verifies).
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation marks a lookup subject that fails the dotted-quad check.
	ErrValidation = errors.New("validation error")

	// ErrUnavailable marks a transport-level failure talking to the auth
	// server or the geolocation provider.
	ErrUnavailable = errors.New("server unavailable")
)
