package mentoring

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	mentoringmocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring/mocks"
	"go.uber.org/mock/gomock"
)

type menteeMocks struct {
	menteeRepo      *mocks.MockMenteeRepository
	metricRepo      *mocks.MockMonthlyMetricRepository
	menteeBadgeRepo *mocks.MockMenteeBadgeRepository
	streaks         *mentoringmocks.MockStreakProvider
	rankings        *mentoringmocks.MockRankingInvalidator
}

func newTestMenteeService(t *testing.T) (*MenteeService, *menteeMocks) {
	ctrl := gomock.NewController(t)
	m := &menteeMocks{
		menteeRepo:      mocks.NewMockMenteeRepository(ctrl),
		metricRepo:      mocks.NewMockMonthlyMetricRepository(ctrl),
		menteeBadgeRepo: mocks.NewMockMenteeBadgeRepository(ctrl),
		streaks:         mentoringmocks.NewMockStreakProvider(ctrl),
		rankings:        mentoringmocks.NewMockRankingInvalidator(ctrl),
	}
	return NewMenteeService(m.menteeRepo, m.metricRepo, m.menteeBadgeRepo, m.streaks, m.rankings), m
}

func TestMenteeService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *domain.CreateMenteeRequest
		setup       func(m *menteeMocks)
		expectedErr error
	}{
		{
			name: "Aplica metas padrão",
			req:  &domain.CreateMenteeRequest{UserID: "user_1", FullName: " Ana Souza ", RevenueGoal: ptr(30000.0)},
			setup: func(m *menteeMocks) {
				m.menteeRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, mentee *domain.Mentee) (*domain.Mentee, error) {
					assert.Equal(t, "Ana Souza", mentee.FullName)
					assert.Equal(t, 30000.0, mentee.RevenueGoal)
					assert.Equal(t, domain.DefaultLeadsGoal, mentee.LeadsGoal)
					assert.Equal(t, domain.DefaultStoriesGoal, mentee.StoriesGoal)
					assert.True(t, mentee.Active)
					mentee.ID = 1
					return mentee, nil
				})
			},
		},
		{
			name:        "Sem user_id",
			req:         &domain.CreateMenteeRequest{FullName: "Ana"},
			setup:       func(m *menteeMocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name: "Usuário já possui mentorado",
			req:  &domain.CreateMenteeRequest{UserID: "user_1", FullName: "Ana"},
			setup: func(m *menteeMocks) {
				m.menteeRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, repository.ErrMenteeAlreadyExists)
			},
			expectedErr: ErrMenteeAlreadyExists,
		},
		{
			name: "Erro no banco",
			req:  &domain.CreateMenteeRequest{UserID: "user_1", FullName: "Ana"},
			setup: func(m *menteeMocks) {
				m.menteeRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestMenteeService(t)
			tt.setup(m)

			mentee, err := service.Create(ctx, tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, mentee)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), mentee.ID)
		})
	}
}

func TestMenteeService_Update(t *testing.T) {
	ctx := context.Background()
	req := &domain.UpdateMenteeRequest{ID: 3, Cohort: ptr("neon-2")}

	t.Run("Mentorado inexistente", func(t *testing.T) {
		service, m := newTestMenteeService(t)
		m.menteeRepo.EXPECT().GetByID(ctx, int64(3)).Return(nil, nil)

		_, err := service.Update(ctx, req)
		assert.ErrorIs(t, err, ErrMenteeNotFound)
	})

	t.Run("Retorna o mentorado atualizado", func(t *testing.T) {
		service, m := newTestMenteeService(t)
		gomock.InOrder(
			m.menteeRepo.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Mentee{ID: 3, Cohort: "neon"}, nil),
			m.menteeRepo.EXPECT().Update(ctx, req).Return(nil),
			m.rankings.EXPECT().InvalidateAll(ctx).Return(nil),
			m.menteeRepo.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Mentee{ID: 3, Cohort: "neon-2"}, nil),
		)

		mentee, err := service.Update(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "neon-2", mentee.Cohort)
	})

	tests := []struct {
		name       string
		req        *domain.UpdateMenteeRequest
		invalidate bool
	}{
		{"Novo nome invalida o ranking em cache", &domain.UpdateMenteeRequest{ID: 3, FullName: ptr("Ana Souza Lima")}, true},
		{"Nova foto invalida o ranking em cache", &domain.UpdateMenteeRequest{ID: 3, PhotoURL: ptr("https://cdn.mentoria.com/ana.jpg")}, true},
		{"Só metas mantém o ranking em cache", &domain.UpdateMenteeRequest{ID: 3, LeadsGoal: ptr(80)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestMenteeService(t)
			m.menteeRepo.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Mentee{ID: 3}, nil).Times(2)
			m.menteeRepo.EXPECT().Update(ctx, tt.req).Return(nil)
			if tt.invalidate {
				m.rankings.EXPECT().InvalidateAll(ctx).Return(nil)
			}

			_, err := service.Update(ctx, tt.req)
			require.NoError(t, err)
		})
	}

	t.Run("Falha no cache não impede a atualização", func(t *testing.T) {
		service, m := newTestMenteeService(t)
		update := &domain.UpdateMenteeRequest{ID: 3, FullName: ptr("Ana")}
		m.menteeRepo.EXPECT().GetByID(ctx, int64(3)).Return(&domain.Mentee{ID: 3, FullName: "Ana"}, nil).Times(2)
		m.menteeRepo.EXPECT().Update(ctx, update).Return(nil)
		m.rankings.EXPECT().InvalidateAll(ctx).Return(errors.New("redis fora do ar"))

		mentee, err := service.Update(ctx, update)
		require.NoError(t, err)
		assert.Equal(t, "Ana", mentee.FullName)
	})
}

func TestMenteeService_ResolveMentee(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		claims      *domain.Claims
		setup       func(m *menteeMocks)
		expectedID  int64
		expectedErr error
	}{
		{
			name:   "Usa o mentee_id do token",
			claims: &domain.Claims{MenteeID: ptr(int64(5))},
			setup: func(m *menteeMocks) {
				m.menteeRepo.EXPECT().GetByID(ctx, int64(5)).Return(&domain.Mentee{ID: 5}, nil)
			},
			expectedID: 5,
		},
		{
			name:   "Busca pelo usuário do provedor",
			claims: &domain.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user_9"}},
			setup: func(m *menteeMocks) {
				m.menteeRepo.EXPECT().GetByUserID(ctx, "user_9").Return(&domain.Mentee{ID: 9}, nil)
			},
			expectedID: 9,
		},
		{
			name:   "Usuário sem mentorado",
			claims: &domain.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user_9"}},
			setup: func(m *menteeMocks) {
				m.menteeRepo.EXPECT().GetByUserID(ctx, "user_9").Return(nil, nil)
			},
			expectedErr: ErrMenteeNotLinked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestMenteeService(t)
			tt.setup(m)

			mentee, err := service.ResolveMentee(ctx, tt.claims)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, mentee.ID)
		})
	}
}

func TestMenteeService_GetOverview(t *testing.T) {
	ctx := context.Background()
	mentee := &domain.Mentee{ID: 4, FullName: "Bia"}

	t.Run("Mentorado sem métricas está em onboarding", func(t *testing.T) {
		service, m := newTestMenteeService(t)
		m.metricRepo.EXPECT().CountByMentee(ctx, int64(4)).Return(0, nil)

		overview, err := service.GetOverview(ctx, mentee)
		require.NoError(t, err)
		assert.Equal(t, domain.OnboardingNew, overview.OnboardingState)
		assert.Nil(t, overview.LatestMetric)
	})

	t.Run("Mentorado ativo recebe resumo completo", func(t *testing.T) {
		service, m := newTestMenteeService(t)
		m.metricRepo.EXPECT().CountByMentee(ctx, int64(4)).Return(5, nil)
		m.metricRepo.EXPECT().ListByMentee(ctx, int64(4), uint64(1)).Return([]*domain.MonthlyMetric{{ID: 50}}, nil)
		m.menteeBadgeRepo.EXPECT().ListByMentee(ctx, int64(4)).Return([]*domain.MenteeBadge{{}, {}}, nil)
		m.streaks.EXPECT().GetStreak(ctx, int64(4)).Return(domain.Streak{Current: 4, NextMilestone: 6})

		overview, err := service.GetOverview(ctx, mentee)
		require.NoError(t, err)
		assert.Equal(t, domain.OnboardingActive, overview.OnboardingState)
		assert.Equal(t, 5, overview.MonthsRecorded)
		assert.Equal(t, int64(50), overview.LatestMetric.ID)
		assert.Equal(t, 2, overview.BadgesCount)
		assert.Equal(t, 4, overview.Streak.Current)
	})

	t.Run("Falha nas badges não derruba o resumo", func(t *testing.T) {
		service, m := newTestMenteeService(t)
		m.metricRepo.EXPECT().CountByMentee(ctx, int64(4)).Return(1, nil)
		m.metricRepo.EXPECT().ListByMentee(ctx, int64(4), uint64(1)).Return(nil, errors.New("db error"))
		m.menteeBadgeRepo.EXPECT().ListByMentee(ctx, int64(4)).Return(nil, errors.New("db error"))
		m.streaks.EXPECT().GetStreak(ctx, int64(4)).Return(domain.Streak{})

		overview, err := service.GetOverview(ctx, mentee)
		require.NoError(t, err)
		assert.Zero(t, overview.BadgesCount)
	})
}
