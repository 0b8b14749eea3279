// Package common defines shared constants and sentinel errors used across
// client and server layers of Deep Thoughts. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (caller-facing taxonomy).
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthenticated    = errors.New("unauthenticated")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorValidation         = errors.New("validation error")

	// Transport-level errors.
	ErrorBadRequest = errors.New("bad request")

	// Token verification errors. These never reach a caller directly: the
	// identity resolver downgrades them to an anonymous identity context.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
