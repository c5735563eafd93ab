package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// Google OAuth flow; authentication is delegated to the external
	// identity provider.
	GoogleRedirectURL(userAgent string) (url string, state string)
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
}
