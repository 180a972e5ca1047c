package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"amassah-lodge-go/internal/config"
	"amassah-lodge-go/internal/middleware"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/internal/service"
	"amassah-lodge-go/pkg/hash"
	"amassah-lodge-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	hashed, err := hash.HashPassword("front-desk")
	require.NoError(t, err)
	authService := service.NewAuthService(
		config.AdminConfig{Username: "admin", PasswordHash: hashed},
		token.NewJWTManager("test-secret", 2, 7),
		repository.NewMemoryTokenBlacklist(),
	)
	h := NewAuthHandler(authService)

	r := gin.New()
	r.POST("/api/v1/admin/login", h.Login)
	r.POST("/api/v1/auth/refreshToken", h.RefreshToken)
	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(authService))
	protected.POST("/auth/logout", h.Logout)
	admin := protected.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	admin.GET("/ping", func(c *gin.Context) { respondOK(c, "pong") })
	return r
}

type tokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func login(t *testing.T, r *gin.Engine) tokenPair {
	t.Helper()
	w, env := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", LoginRequest{Username: "admin", Password: "front-desk"})
	require.Equal(t, http.StatusOK, w.Code)
	var pair tokenPair
	decodeData(t, env, &pair)
	return pair
}

func authorized(r *gin.Engine, method, path, accessToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler(t *testing.T) {
	t.Run("should reject wrong credentials and empty payloads", func(t *testing.T) {
		r := newAuthRouter(t)
		w, _ := doRequest(t, r, http.MethodPost, "/api/v1/admin/login", LoginRequest{Username: "admin", Password: "nope"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		w, _ = doRequest(t, r, http.MethodPost, "/api/v1/admin/login", gin.H{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should let an admin token through the admin routes", func(t *testing.T) {
		req := require.New(t)
		r := newAuthRouter(t)
		pair := login(t, r)

		req.Equal(http.StatusOK, authorized(r, http.MethodGet, "/api/v1/admin/ping", pair.Token).Code)
		req.Equal(http.StatusUnauthorized, authorized(r, http.MethodGet, "/api/v1/admin/ping", "garbage").Code)
		req.Equal(http.StatusUnauthorized, authorized(r, http.MethodGet, "/api/v1/admin/ping", pair.RefreshToken).Code)
	})

	t.Run("should rotate tokens on refresh", func(t *testing.T) {
		req := require.New(t)
		r := newAuthRouter(t)
		pair := login(t, r)

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/auth/refreshToken", RefreshTokenRequest{RefreshToken: pair.RefreshToken})
		req.Equal(http.StatusOK, w.Code)
		var rotated tokenPair
		decodeData(t, env, &rotated)
		req.NotEqual(pair.RefreshToken, rotated.RefreshToken)

		w, _ = doRequest(t, r, http.MethodPost, "/api/v1/auth/refreshToken", RefreshTokenRequest{RefreshToken: pair.RefreshToken})
		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should revoke the access token on logout", func(t *testing.T) {
		req := require.New(t)
		r := newAuthRouter(t)
		pair := login(t, r)

		req.Equal(http.StatusOK, authorized(r, http.MethodPost, "/api/v1/auth/logout", pair.Token).Code)
		req.Equal(http.StatusUnauthorized, authorized(r, http.MethodGet, "/api/v1/admin/ping", pair.Token).Code)
	})
}
