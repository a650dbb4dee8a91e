package middleware

import (
	"context"
	"net/http"
	"slices"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso aos roles informados
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.UserRole) {
				logrus.Warningf("Acesso negado para usuário %s, Role=%s", userClaims.UserID(), userClaims.UserRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleUser})
}

// MenteeResolver encontra o mentorado vinculado ao usuário autenticado
type MenteeResolver interface {
	ResolveMentee(ctx context.Context, claims *domain.Claims) (*domain.Mentee, error)
}

// AdminOrSelf libera admins e o próprio mentorado do parâmetro de rota informado.
// Tokens sem mentee_id são resolvidos pelo usuário antes da comparação.
func AdminOrSelf(param string, resolver MenteeResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			menteeID, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName(param), 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de mentorado inválido", nil)
				return
			}

			if !canAccessMentee(r.Context(), userClaims, menteeID, resolver) {
				logrus.WithFields(logrus.Fields{
					"user_id":   userClaims.UserID(),
					"mentee_id": menteeID,
				}).Warning("Acesso negado a dados de outro mentorado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este mentorado", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func canAccessMentee(ctx context.Context, claims *domain.Claims, menteeID int64, resolver MenteeResolver) bool {
	if claims.CanAccessMentee(menteeID) {
		return true
	}
	if claims.MenteeID != nil || resolver == nil {
		return false
	}

	mentee, err := resolver.ResolveMentee(ctx, claims)
	if err != nil || mentee == nil {
		logrus.WithError(err).WithField("user_id", claims.UserID()).Warning("Usuário sem mentorado vinculado")
		return false
	}
	return mentee.ID == menteeID
}
