package service

import (
	"context"
	"errors"
	"time"

	"amassah-lodge-go/internal/config"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/pkg/hash"
	"amassah-lodge-go/pkg/log"
	"amassah-lodge-go/pkg/token"
)

// RoleAdmin 是库存看板管理员的角色。
const RoleAdmin = "ADMIN"

var (
	// ErrInvalidCredentials 表示用户名或密码错误。
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken 表示 token 无效、过期或已登出。
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService 接口定义了管理员认证相关的操作。
type AuthService interface {
	Login(username, password string) (accessToken, refreshToken string, err error)
	RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken, newRefreshToken string, err error)
	Logout(ctx context.Context, tokenString string) error
	Authenticate(ctx context.Context, accessToken string) (*token.CustomClaims, error)
}

type authService struct {
	admin      config.AdminConfig
	jwtManager *token.JWTManager
	blacklist  repository.TokenBlacklistRepository
}

// NewAuthService 创建一个新的 AuthService 实例。
func NewAuthService(admin config.AdminConfig, jwtManager *token.JWTManager, blacklist repository.TokenBlacklistRepository) AuthService {
	return &authService{admin: admin, jwtManager: jwtManager, blacklist: blacklist}
}

// Login 校验管理员账号并签发 access token 和 refresh token。
func (s *authService) Login(username, password string) (string, string, error) {
	if s.admin.PasswordHash == "" || username != s.admin.Username {
		return "", "", ErrInvalidCredentials
	}
	if !hash.CheckPasswordHash(password, s.admin.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}
	return s.issue(username)
}

// RefreshToken 用仍然有效的 refresh token 换取一对新的 token，旧的 refresh token 随即失效。
func (s *authService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	claims, err := s.verify(ctx, refreshTokenString, token.TypeRefresh)
	if err != nil {
		return "", "", err
	}
	if err := s.blacklist.Revoke(ctx, refreshTokenString, time.Until(claims.ExpiresAt.Time)); err != nil {
		log.Warnf("[AuthService] 作废旧 refresh token 失败: %v", err)
	}
	return s.issue(claims.Username)
}

// Logout 将 token 加入黑名单，直到它自然过期。
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtManager.VerifyToken(tokenString)
	if err != nil {
		return ErrInvalidToken
	}
	return s.blacklist.Revoke(ctx, tokenString, time.Until(claims.ExpiresAt.Time))
}

// Authenticate 校验 access token，返回其中的声明。
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*token.CustomClaims, error) {
	return s.verify(ctx, accessToken, token.TypeAccess)
}

func (s *authService) verify(ctx context.Context, tokenString, tokenType string) (*token.CustomClaims, error) {
	claims, err := s.jwtManager.VerifyTokenOfType(tokenString, tokenType)
	if err != nil {
		return nil, ErrInvalidToken
	}
	revoked, err := s.blacklist.IsRevoked(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *authService) issue(username string) (string, string, error) {
	accessToken, err := s.jwtManager.GenerateToken(username, RoleAdmin)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(username, RoleAdmin)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
