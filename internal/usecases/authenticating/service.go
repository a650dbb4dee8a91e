// Package authenticating valida os JWTs emitidos pelo provedor de autenticação.
// Cadastro, login e sessão ficam com o provedor.
package authenticating

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "token sem usuário")
	}

	if claims.UserRole == "" {
		claims.UserRole = domain.RoleUser
	}

	return claims, nil
}
