package auth

import (
	"context"
)

// AuthService defines credential and session operations
type AuthService interface {
	// Register creates a new account and issues a session
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	// Login verifies credentials and issues a session
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)

	// Logout revokes the refresh token backing the session
	Logout(ctx context.Context, refreshToken string) error

	// RegistrationOptions returns the dropdown vocabularies for the
	// registration form
	RegistrationOptions(ctx context.Context) (RegistrationOptions, error)
}
