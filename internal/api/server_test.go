package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	authMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/authenticating/mocks"
	rankingMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestNewHandler_Chain(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authMocks.NewMockAuthenticator(ctrl)
	ranker := rankingMocks.NewMockRanker(ctrl)

	cfg := &config.Config{Server: config.Server{CorsOrigins: []string{"http://localhost:3000"}}}
	h := NewHandler(cfg, Services{Authenticator: auth, Ranker: ranker})

	// healthcheck é público
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))

	// sem token
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ranking?year=2025&month=1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// com token válido
	period := domain.Period{Year: 2025, Month: 1}
	auth.EXPECT().ValidateToken("abc").Return(&domain.Claims{UserRole: domain.RoleUser}, nil)
	ranker.EXPECT().GetRanking(gomock.Any(), period).Return(&domain.RankingResponse{Period: period}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/ranking?year=2025&month=1", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
