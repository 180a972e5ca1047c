package service

import (
	"context"
	"testing"

	"amassah-lodge-go/internal/config"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/pkg/hash"
	"amassah-lodge-go/pkg/token"

	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) AuthService {
	hashed, err := hash.HashPassword("front-desk")
	require.NoError(t, err)
	return NewAuthService(
		config.AdminConfig{Username: "admin", PasswordHash: hashed},
		token.NewJWTManager("secret", 2, 7),
		repository.NewMemoryTokenBlacklist(),
	)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	t.Run("should issue admin tokens for valid credentials", func(t *testing.T) {
		req := require.New(t)
		access, refresh, err := svc.Login("admin", "front-desk")
		req.NoError(err)
		req.NotEmpty(refresh)

		claims, err := svc.Authenticate(ctx, access)
		req.NoError(err)
		req.Equal(RoleAdmin, claims.Role)
	})

	t.Run("should reject wrong credentials", func(t *testing.T) {
		req := require.New(t)
		_, _, err := svc.Login("admin", "nope")
		req.ErrorIs(err, ErrInvalidCredentials)
		_, _, err = svc.Login("root", "front-desk")
		req.ErrorIs(err, ErrInvalidCredentials)
	})

	t.Run("should reject logins when no password is configured", func(t *testing.T) {
		svc := NewAuthService(config.AdminConfig{Username: "admin"}, token.NewJWTManager("s", 1, 1), repository.NewMemoryTokenBlacklist())
		_, _, err := svc.Login("admin", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("should rotate refresh tokens", func(t *testing.T) {
		req := require.New(t)
		svc := newTestAuthService(t)
		_, refresh, err := svc.Login("admin", "front-desk")
		req.NoError(err)

		access, _, err := svc.RefreshToken(ctx, refresh)
		req.NoError(err)
		_, err = svc.Authenticate(ctx, access)
		req.NoError(err)

		_, _, err = svc.RefreshToken(ctx, refresh)
		req.ErrorIs(err, ErrInvalidToken)
	})

	t.Run("should not refresh with an access token", func(t *testing.T) {
		req := require.New(t)
		svc := newTestAuthService(t)
		access, _, err := svc.Login("admin", "front-desk")
		req.NoError(err)

		_, _, err = svc.RefreshToken(ctx, access)
		req.ErrorIs(err, ErrInvalidToken)
	})

	t.Run("should reject a logged out access token", func(t *testing.T) {
		req := require.New(t)
		svc := newTestAuthService(t)
		access, _, err := svc.Login("admin", "front-desk")
		req.NoError(err)

		req.NoError(svc.Logout(ctx, access))
		_, err = svc.Authenticate(ctx, access)
		req.ErrorIs(err, ErrInvalidToken)
	})
}
