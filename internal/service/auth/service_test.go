package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by ID
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "new-id"
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) LinkGoogleID(ctx context.Context, id string, googleID string) error {
	u := f.users[id]
	u.GoogleID = &googleID
	f.users[id] = u
	return nil
}

// fakeRefreshTokenRepo mirrors the revocation store: unknown tokens scan
// to no rows, known ones carry a revoked flag.
type fakeRefreshTokenRepo struct {
	tokens map[string]bool // token -> revoked
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]bool)}
}

func (f *fakeRefreshTokenRepo) Create(ctx context.Context, userID string, token string, expiresAt int64) error {
	f.tokens[token] = false
	return nil
}

func (f *fakeRefreshTokenRepo) IsRevoked(ctx context.Context, token string) (bool, error) {
	revoked, ok := f.tokens[token]
	if !ok {
		return false, pgx.ErrNoRows
	}
	return revoked, nil
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, token string) error {
	f.tokens[token] = true
	return nil
}

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func newAuthService(users map[string]user.User, tokens *fakeRefreshTokenRepo) auth.AuthService {
	return NewAuthService(
		nil,
		&fakeUserRepo{users: users},
		jwt.NewJWTService("test-secret", "15m", "720h"),
		tokens,
		nil,
	)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(map[string]user.User{}, newFakeRefreshTokenRepo())

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "email")
	assert.Contains(t, validationErrs.ToMap(), "password")
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(map[string]user.User{}, newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ghost@staffhub.dev", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(map[string]user.User{
		"u1": {ID: "u1", Email: "anna@staffhub.dev", PasswordHash: hashOf(t, "opensesame")},
	}, newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "anna@staffhub.dev", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginPasswordlessAccount(t *testing.T) {
	// A Google-linked account has no password hash; a password login
	// against it must not pass.
	googleID := "g-123"
	svc := newAuthService(map[string]user.User{
		"u1": {ID: "u1", Email: "anna@staffhub.dev", GoogleID: &googleID},
	}, newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "anna@staffhub.dev", Password: ""})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	tokens := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	svc := NewAuthService(nil, &fakeUserRepo{users: map[string]user.User{}}, jwtService, tokens, nil)

	refreshToken, _, err := jwtService.GenerateRefreshToken("u1")
	require.NoError(t, err)
	require.NoError(t, tokens.Create(context.Background(), "u1", refreshToken, 0))

	require.NoError(t, svc.Logout(context.Background(), refreshToken))
	assert.True(t, tokens.tokens[refreshToken])
}

func TestLogoutRejectsAccessToken(t *testing.T) {
	// An access token carries type "access" and must not pass for a
	// refresh token, even though the signature verifies.
	tokens := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	svc := NewAuthService(nil, &fakeUserRepo{users: map[string]user.User{}}, jwtService, tokens, nil)

	accessToken, _, err := jwtService.GenerateAccessToken("u1", "anna@staffhub.dev", false)
	require.NoError(t, err)

	err = svc.Logout(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.Empty(t, tokens.tokens)
}

func TestLogoutGarbageToken(t *testing.T) {
	svc := newAuthService(map[string]user.User{}, newFakeRefreshTokenRepo())

	err := svc.Logout(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutExpiredToken(t *testing.T) {
	// Same secret, expiry already in the past.
	expiredIssuer := jwt.NewJWTService("test-secret", "15m", "-2m")
	refreshToken, _, err := expiredIssuer.GenerateRefreshToken("u1")
	require.NoError(t, err)

	svc := newAuthService(map[string]user.User{}, newFakeRefreshTokenRepo())
	err = svc.Logout(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestRefreshRevokedToken(t *testing.T) {
	tokens := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	svc := NewAuthService(nil, &fakeUserRepo{users: map[string]user.User{}}, jwtService, tokens, nil)

	refreshToken, _, err := jwtService.GenerateRefreshToken("u1")
	require.NoError(t, err)
	tokens.tokens[refreshToken] = true

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshUnknownToken(t *testing.T) {
	// Verifies the signature but the revocation store never saw the
	// token, so the rotation chain is broken.
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	svc := NewAuthService(nil, &fakeUserRepo{users: map[string]user.User{}}, jwtService, newFakeRefreshTokenRepo(), nil)

	refreshToken, _, err := jwtService.GenerateRefreshToken("u1")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
