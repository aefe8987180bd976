package api

import "github.com/sunflowers/shopfront/internal/client/models"

// Envelope is the backend's standard response wrapper: {"data": ...}.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// AuthResponse is returned by /auth/login and /auth/complete.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// TokenResponse is returned by /auth/register and /auth/verify: the
// short-lived registration token for the next step.
type TokenResponse struct {
	Token string `json:"token"`
}
