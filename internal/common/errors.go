// Package common defines shared constants and sentinel errors used across
// the shopfront client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Cart-side local validation errors. These are raised before any
	// network call is attempted.
	ErrNoSelection        = errors.New("select color and size")
	ErrVariantUnavailable = errors.New("selected combination is not available")
	ErrOutOfStock         = errors.New("variant out of stock")

	// Registration flow errors.
	ErrRegistrationExpired = errors.New("registration attempt expired")
	ErrNoRegistration      = errors.New("no registration in progress")

	// Authorization errors surfaced by admin-only operations.
	ErrAdminOnly = errors.New("administrator privileges required")
)
