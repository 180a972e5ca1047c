package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", 2, 7)

	t.Run("should round trip access token claims", func(t *testing.T) {
		req := require.New(t)
		tok, err := m.GenerateToken("admin", "ADMIN")
		req.NoError(err)

		claims, err := m.VerifyTokenOfType(tok, TypeAccess)
		req.NoError(err)
		req.Equal("admin", claims.Username)
		req.Equal("ADMIN", claims.Role)
	})

	t.Run("should not accept a refresh token as an access token", func(t *testing.T) {
		req := require.New(t)
		tok, err := m.GenerateRefreshToken("admin", "ADMIN")
		req.NoError(err)

		_, err = m.VerifyTokenOfType(tok, TypeAccess)
		req.ErrorIs(err, ErrWrongTokenType)
		_, err = m.VerifyTokenOfType(tok, TypeRefresh)
		req.NoError(err)
	})

	t.Run("should reject tokens signed with another secret", func(t *testing.T) {
		req := require.New(t)
		tok, err := NewJWTManager("other", 2, 7).GenerateToken("admin", "ADMIN")
		req.NoError(err)

		_, err = m.VerifyToken(tok)
		req.Error(err)
	})

	t.Run("should reject expired tokens", func(t *testing.T) {
		req := require.New(t)
		tok, err := NewJWTManager("test-secret", -1, 7).GenerateToken("admin", "ADMIN")
		req.NoError(err)

		_, err = m.VerifyToken(tok)
		req.Error(err)
	})
}
