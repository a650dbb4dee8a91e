package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	schedulerMocks "github.com/vfg2006/mentoria-dashboard-api/internal/scheduler/mocks"
	gamifyingMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/gamifying/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
	mentoringMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
	notifyingMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying/mocks"
	rankingMocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func menteeClaims(menteeID int64) *domain.Claims {
	claims := &domain.Claims{UserRole: domain.RoleUser, MenteeID: ptr(menteeID)}
	claims.Subject = "user-1"
	return claims
}

func adminClaims() *domain.Claims {
	claims := &domain.Claims{UserRole: domain.RoleAdmin}
	claims.Subject = "admin-1"
	return claims
}

// serve monta o router com as rotas informadas e injeta as claims como o AuthMiddleware faria
func serve(routes []router.Route, claims *domain.Claims, method, path, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = time.Now }()

	rec := serve(Healthcheck(), nil, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	rec := serve(Healthcheck(), nil, http.MethodGet, "/nao-existe", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeAPIError(t, rec).Code)

	rec = serve(Healthcheck(), nil, http.MethodPost, "/healthcheck", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decodeAPIError(t, rec).Code)
}

func TestSubmitMyMetrics(t *testing.T) {
	mentee := &domain.Mentee{ID: 7, UserID: "user-1"}
	period := domain.Period{Year: 2025, Month: 2}

	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(mentees *mentoringMocks.MockMenteeManager, metrics *mentoringMocks.MockMetricsManager)
		wantStatus int
		wantCode   string
	}{
		{
			name: "salva e retorna o id",
			path: "/v1/me/metrics/2025/2",
			body: `{"revenue": 20000, "leads": 40, "procedures": 8, "posts": 10, "stories": 50}`,
			setup: func(mentees *mentoringMocks.MockMenteeManager, metrics *mentoringMocks.MockMetricsManager) {
				mentees.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(mentee, nil)
				metrics.EXPECT().
					SubmitMetrics(gomock.Any(), int64(7), period, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, _ domain.Period, req *domain.SubmitMetricsRequest) (*domain.MonthlyMetric, error) {
						assert.Equal(t, 20000.0, req.Revenue)
						assert.Equal(t, 40, req.Leads)
						return &domain.MonthlyMetric{ID: 99}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "mês inválido",
			path:       "/v1/me/metrics/2025/13",
			body:       `{}`,
			setup:      func(*mentoringMocks.MockMenteeManager, *mentoringMocks.MockMetricsManager) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidPeriod,
		},
		{
			name: "corpo inválido",
			path: "/v1/me/metrics/2025/2",
			body: `{"revenue":`,
			setup: func(mentees *mentoringMocks.MockMenteeManager, _ *mentoringMocks.MockMetricsManager) {
				mentees.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(mentee, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "valor negativo",
			path: "/v1/me/metrics/2025/2",
			body: `{"revenue": -1}`,
			setup: func(mentees *mentoringMocks.MockMenteeManager, metrics *mentoringMocks.MockMetricsManager) {
				mentees.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(mentee, nil)
				metrics.EXPECT().SubmitMetrics(gomock.Any(), int64(7), period, gomock.Any()).
					Return(nil, mentoring.NewMenteeMetricsError(mentoring.ErrNegativeValue, apiErrors.ErrNegativeValue, 7, "revenue"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrNegativeValue,
		},
		{
			name: "usuário sem mentorado",
			path: "/v1/me/metrics/2025/2",
			body: `{}`,
			setup: func(mentees *mentoringMocks.MockMenteeManager, _ *mentoringMocks.MockMetricsManager) {
				mentees.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).
					Return(nil, mentoring.NewMetricsError(mentoring.ErrMenteeNotLinked, apiErrors.ErrMenteeNotLinked, ""))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrMenteeNotLinked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mentees := mentoringMocks.NewMockMenteeManager(ctrl)
			metrics := mentoringMocks.NewMockMetricsManager(ctrl)
			tt.setup(mentees, metrics)

			rec := serve(Metrics(mentees, metrics), menteeClaims(7), http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			} else {
				assert.JSONEq(t, `{"id": 99, "success": true}`, rec.Body.String())
			}
		})
	}
}

func TestAutoSaveMyMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	metrics := mentoringMocks.NewMockMetricsManager(ctrl)

	mentees.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(&domain.Mentee{ID: 7}, nil)
	metrics.EXPECT().
		UpdateMetricField(gomock.Any(), int64(7), domain.Period{Year: 2025, Month: 4}, &domain.UpdateMetricFieldRequest{Field: "leads", Value: 12}).
		Return(int64(31), nil)

	rec := serve(Metrics(mentees, metrics), menteeClaims(7), http.MethodPatch, "/v1/me/metrics/2025/4", `{"field":"leads","value":12}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id": 31, "success": true}`, rec.Body.String())
}

func TestGetMyPreviousMonthMetric_NotFilled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	metrics := mentoringMocks.NewMockMetricsManager(ctrl)

	mentees.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(&domain.Mentee{ID: 7}, nil)
	metrics.EXPECT().GetPreviousMonthMetric(gomock.Any(), int64(7), domain.Period{Year: 2025, Month: 1}).Return(nil, nil)

	rec := serve(Metrics(mentees, metrics), menteeClaims(7), http.MethodGet, "/v1/me/metrics/2025/1/previous", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestGetMenteeEvolution_Access(t *testing.T) {
	ctrl := gomock.NewController(t)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	metrics := mentoringMocks.NewMockMetricsManager(ctrl)

	metrics.EXPECT().GetEvolution(gomock.Any(), int64(7)).Return([]*domain.MonthlyMetric{}, nil).Times(2)

	rec := serve(Metrics(mentees, metrics), menteeClaims(7), http.MethodGet, "/v1/mentees/7/metrics/evolution", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Metrics(mentees, metrics), adminClaims(), http.MethodGet, "/v1/mentees/7/metrics/evolution", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Metrics(mentees, metrics), menteeClaims(8), http.MethodGet, "/v1/mentees/7/metrics/evolution", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
}

func TestGetMenteeStreak_SubjectOnlyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	ranker := rankingMocks.NewMockRanker(ctrl)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	gamifier := gamifyingMocks.NewMockGamifier(ctrl)
	processor := gamifyingMocks.NewMockMonthProcessor(ctrl)

	claims := &domain.Claims{UserRole: domain.RoleUser}
	claims.Subject = "user-7"

	mentees.EXPECT().ResolveMentee(gomock.Any(), claims).Return(&domain.Mentee{ID: 7}, nil).Times(2)
	gamifier.EXPECT().GetStreak(gomock.Any(), int64(7)).Return(domain.Streak{Current: 2, NextMilestone: 3})

	routes := Gamification(mentees, gamifier, processor, ranker)

	rec := serve(routes, claims, http.MethodGet, "/v1/mentees/7/streak", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(routes, claims, http.MethodGet, "/v1/mentees/8/streak", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateGlobalMonthlyGoals_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	metrics := mentoringMocks.NewMockMetricsManager(ctrl)

	body := `{"revenue": 20000, "leads": 60, "procedures": 12, "posts": 15, "stories": 70}`

	rec := serve(Metrics(mentees, metrics), menteeClaims(7), http.MethodPut, "/v1/metrics/2025/5/goals", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	metrics.EXPECT().UpdateGlobalMonthlyGoals(gomock.Any(), domain.Period{Year: 2025, Month: 5}, gomock.Any()).Return(int64(4), nil)

	rec = serve(Metrics(mentees, metrics), adminClaims(), http.MethodPut, "/v1/metrics/2025/5/goals", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "mentees": 4}`, rec.Body.String())
}

func TestGetRanking_DefaultsToCurrentMonth(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	ctrl := gomock.NewController(t)
	ranker := rankingMocks.NewMockRanker(ctrl)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	gamifier := gamifyingMocks.NewMockGamifier(ctrl)
	processor := gamifyingMocks.NewMockMonthProcessor(ctrl)

	period := domain.Period{Year: 2025, Month: 6}
	ranker.EXPECT().GetRanking(gomock.Any(), period).Return(&domain.RankingResponse{Period: period, Ranking: []*domain.RankingEntry{}}, nil)

	rec := serve(Gamification(mentees, gamifier, processor, ranker), menteeClaims(1), http.MethodGet, "/v1/ranking", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(Gamification(mentees, gamifier, processor, ranker), menteeClaims(1), http.MethodGet, "/v1/ranking?year=2025&month=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessGamification(t *testing.T) {
	ctrl := gomock.NewController(t)
	ranker := rankingMocks.NewMockRanker(ctrl)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	gamifier := gamifyingMocks.NewMockGamifier(ctrl)
	processor := gamifyingMocks.NewMockMonthProcessor(ctrl)

	period := domain.Period{Year: 2025, Month: 3}
	processor.EXPECT().
		ProcessMonth(gomock.Any(), period, ptr(int64(5))).
		Return(&domain.ProcessResult{Period: period, MenteeID: ptr(int64(5)), BadgesAwarded: 2}, nil)

	routes := Gamification(mentees, gamifier, processor, ranker)

	rec := serve(routes, menteeClaims(5), http.MethodPost, "/v1/gamification/process", `{"year":2025,"month":3,"mentee_id":5}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(routes, adminClaims(), http.MethodPost, "/v1/gamification/process", `{"year":2025,"month":3,"mentee_id":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"badges_awarded":2`)
}

func TestMarkNotificationRead_Foreign(t *testing.T) {
	ctrl := gomock.NewController(t)
	mentees := mentoringMocks.NewMockMenteeManager(ctrl)
	notifier := notifyingMocks.NewMockNotifier(ctrl)

	mentees.EXPECT().ResolveMentee(gomock.Any(), gomock.Any()).Return(&domain.Mentee{ID: 7}, nil)
	notifier.EXPECT().MarkRead(gomock.Any(), int64(7), int64(40)).
		Return(notifying.NewNotificationError(notifying.ErrNotificationForeign, apiErrors.ErrNotificationForeign, ""))

	rec := serve(Notifications(mentees, notifier), menteeClaims(7), http.MethodPut, "/v1/notifications/40/read", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrNotificationForeign, decodeAPIError(t, rec).Code)
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		setup      func(gj, rj *schedulerMocks.MockJob)
		wantStatus int
	}{
		{
			name:     "gamificação",
			cronType: CronJobTypeGamification,
			setup: func(gj, _ *schedulerMocks.MockJob) {
				gj.EXPECT().TriggerManualSync()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:     "todas",
			cronType: CronJobTypeAll,
			setup: func(gj, rj *schedulerMocks.MockJob) {
				gj.EXPECT().TriggerManualSync()
				rj.EXPECT().TriggerManualSync()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "tipo desconhecido",
			cronType:   "ssotica",
			setup:      func(_, _ *schedulerMocks.MockJob) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gj := schedulerMocks.NewMockJob(ctrl)
			rj := schedulerMocks.NewMockJob(ctrl)
			tt.setup(gj, rj)

			services := CronJobServices{GamificationJob: gj, RemindersJob: rj}
			rec := serve(CronJobs(services), adminClaims(), http.MethodPost, "/v1/cron/"+tt.cronType+"/run", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	gj := schedulerMocks.NewMockJob(ctrl)
	rj := schedulerMocks.NewMockJob(ctrl)

	gj.EXPECT().GetStatus().Return(map[string]any{"sync_running": false})
	rj.EXPECT().GetStatus().Return(map[string]any{"sync_running": true})

	rec := serve(CronJobs(CronJobServices{GamificationJob: gj, RemindersJob: rj}), adminClaims(), http.MethodGet, "/v1/cron/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"gamification": {"sync_running": false}, "reminders": {"sync_running": true}}`, rec.Body.String())
}
