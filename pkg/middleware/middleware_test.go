package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/authenticating/mocks"
	mentoringMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware(t *testing.T) {
	menteeID := int64(3)
	validClaims := &domain.Claims{UserRole: domain.RoleUser, MenteeID: &menteeID}

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *authMocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "rota pública dispensa token",
			path:       "/healthcheck",
			setup:      func(*authMocks.MockAuthenticator) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem header",
			path:       "/v1/me",
			setup:      func(*authMocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "sem prefixo Bearer",
			path:       "/v1/me",
			header:     "Token abc",
			setup:      func(*authMocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/v1/me",
			header: "Bearer expirado",
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expirado").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			path:   "/v1/me",
			header: "Bearer valido",
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(validClaims, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authMocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var gotClaims *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.name == "token válido" {
				assert.Equal(t, validClaims, gotClaims)
			}
		})
	}
}

func TestAdminOrSelf(t *testing.T) {
	own := int64(5)
	subjectOnly := func(subject string) *domain.Claims {
		claims := &domain.Claims{UserRole: domain.RoleUser}
		claims.Subject = subject
		return claims
	}

	tests := []struct {
		name       string
		claims     *domain.Claims
		setup      func(resolver *mentoringMocks.MockMenteeManager)
		wantStatus int
	}{
		{
			name:       "admin acessa qualquer mentorado",
			claims:     &domain.Claims{UserRole: domain.RoleAdmin},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "mentorado acessa os próprios dados",
			claims:     &domain.Claims{UserRole: domain.RoleUser, MenteeID: &own},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "mentorado de outro id",
			claims:     &domain.Claims{UserRole: domain.RoleUser, MenteeID: ptrInt64(6)},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "token sem mentee_id é resolvido pelo usuário",
			claims: subjectOnly("user-5"),
			setup: func(resolver *mentoringMocks.MockMenteeManager) {
				resolver.EXPECT().ResolveMentee(gomock.Any(), subjectOnly("user-5")).Return(&domain.Mentee{ID: 5}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "token sem mentee_id vinculado a outro mentorado",
			claims: subjectOnly("user-6"),
			setup: func(resolver *mentoringMocks.MockMenteeManager) {
				resolver.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(&domain.Mentee{ID: 6}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "token sem mentee_id e sem vínculo",
			claims: subjectOnly("user-9"),
			setup: func(resolver *mentoringMocks.MockMenteeManager) {
				resolver.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(nil, errors.New("mentorado não vinculado"))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "sem autenticação",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := mentoringMocks.NewMockMenteeManager(ctrl)
			if tt.setup != nil {
				tt.setup(resolver)
			}

			rt := httprouter.New()
			rt.Handler(http.MethodGet, "/v1/mentees/:id/streak", AdminOrSelf("id", resolver)(okHandler))

			req := httptest.NewRequest(http.MethodGet, "/v1/mentees/5/streak", nil)
			if tt.claims != nil {
				req = req.WithContext(withClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/mentees", nil)
	req = req.WithContext(withClaims(req, &domain.Claims{UserRole: domain.RoleUser}))
	rec := httptest.NewRecorder()

	AdminOnly()(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
}

func TestCors(t *testing.T) {
	handler := Cors("https://app.mentoria.com")(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/v1/me", nil)
	req.Header.Set("Origin", "https://app.mentoria.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.mentoria.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)

	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Origin", "https://outro.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/mentees", nil)
	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))

	incoming := "0b7c3c4e-3f5b-4d8f-9a52-6d2f1f3c9e11"
	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set(CorrelationIDHeader, incoming)
	rec = httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, incoming, seen)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func withClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

func ptrInt64(v int64) *int64 {
	return &v
}
