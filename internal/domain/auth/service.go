package auth

import "context"

// AuthService defines credential login and token lifecycle operations.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token so it can no longer be exchanged.
	Logout(ctx context.Context, refreshToken string) error
}
