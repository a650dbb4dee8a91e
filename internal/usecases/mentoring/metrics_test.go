package mentoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMetricsService_SubmitMetrics(t *testing.T) {
	ctx := context.Background()
	period := domain.Period{Year: 2025, Month: 3}

	tests := []struct {
		name         string
		period       domain.Period
		req          *domain.SubmitMetricsRequest
		setup        func(m *mocks.MockMonthlyMetricRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:   "Grava o formulário do mês",
			period: period,
			req:    &domain.SubmitMetricsRequest{Revenue: 20000, Leads: 40, Posts: 12, Stories: 60},
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, metric *domain.MonthlyMetric) (*domain.MonthlyMetric, error) {
					assert.Equal(t, int64(7), metric.MenteeID)
					assert.Equal(t, 2025, metric.Year)
					assert.Equal(t, 3, metric.Month)
					assert.Equal(t, 20000.0, metric.Revenue)
					metric.ID = 99
					return metric, nil
				})
			},
		},
		{
			name:         "Mês inválido",
			period:       domain.Period{Year: 2025, Month: 13},
			req:          &domain.SubmitMetricsRequest{},
			setup:        func(m *mocks.MockMonthlyMetricRepository) {},
			expectedErr:  ErrInvalidPeriod,
			expectedCode: apiErrors.ErrInvalidPeriod,
		},
		{
			name:         "Valor negativo",
			period:       period,
			req:          &domain.SubmitMetricsRequest{Leads: -1},
			setup:        func(m *mocks.MockMonthlyMetricRepository) {},
			expectedErr:  ErrNegativeValue,
			expectedCode: apiErrors.ErrNegativeValue,
		},
		{
			name:   "Erro no banco",
			period: period,
			req:    &domain.SubmitMetricsRequest{Revenue: 1},
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().Upsert(ctx, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr:  ErrDatabaseOperation,
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)
			tt.setup(metricRepo)

			service := NewMetricsService(metricRepo, mocks.NewMockMenteeRepository(ctrl))
			metric, err := service.SubmitMetrics(ctx, 7, tt.period, tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				var metricsErr *MetricsError
				require.ErrorAs(t, err, &metricsErr)
				assert.Equal(t, tt.expectedCode, metricsErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(99), metric.ID)
		})
	}
}

func TestMetricsService_UpdateMetricField(t *testing.T) {
	ctx := context.Background()
	period := domain.Period{Year: 2025, Month: 3}

	tests := []struct {
		name        string
		req         *domain.UpdateMetricFieldRequest
		setup       func(m *mocks.MockMonthlyMetricRepository)
		expectedID  int64
		expectedErr error
	}{
		{
			name: "Aceita o nome exibido no painel",
			req:  &domain.UpdateMetricFieldRequest{Field: "faturamento", Value: 15000},
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().UpsertField(ctx, int64(7), period, domain.MetricRevenue, 15000.0).Return(int64(42), nil)
			},
			expectedID: 42,
		},
		{
			name: "Aceita o nome da coluna",
			req:  &domain.UpdateMetricFieldRequest{Field: "posts", Value: 3},
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().UpsertField(ctx, int64(7), period, domain.MetricPosts, 3.0).Return(int64(43), nil)
			},
			expectedID: 43,
		},
		{
			name:        "Campo desconhecido",
			req:         &domain.UpdateMetricFieldRequest{Field: "seguidores", Value: 10},
			setup:       func(m *mocks.MockMonthlyMetricRepository) {},
			expectedErr: ErrInvalidMetricField,
		},
		{
			name:        "Valor negativo",
			req:         &domain.UpdateMetricFieldRequest{Field: "leads", Value: -5},
			setup:       func(m *mocks.MockMonthlyMetricRepository) {},
			expectedErr: ErrNegativeValue,
		},
		{
			name:        "Leads fracionado é rejeitado",
			req:         &domain.UpdateMetricFieldRequest{Field: "leads", Value: 1.5},
			setup:       func(m *mocks.MockMonthlyMetricRepository) {},
			expectedErr: ErrInvalidMetricField,
		},
		{
			name:        "Procedimentos fracionado é rejeitado",
			req:         &domain.UpdateMetricFieldRequest{Field: "procedimentos", Value: 0.2},
			setup:       func(m *mocks.MockMonthlyMetricRepository) {},
			expectedErr: ErrInvalidMetricField,
		},
		{
			name: "Lucro aceita centavos",
			req:  &domain.UpdateMetricFieldRequest{Field: "lucro", Value: 1234.56},
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().UpsertField(ctx, int64(7), period, domain.MetricProfit, 1234.56).Return(int64(44), nil)
			},
			expectedID: 44,
		},
		{
			name: "Falha ao salvar não retorna id",
			req:  &domain.UpdateMetricFieldRequest{Field: "stories", Value: 1},
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().UpsertField(ctx, int64(7), period, domain.MetricStories, 1.0).Return(int64(0), errors.New("db error"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)
			tt.setup(metricRepo)

			service := NewMetricsService(metricRepo, mocks.NewMockMenteeRepository(ctrl))
			id, err := service.UpdateMetricField(ctx, 7, period, tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Zero(t, id)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestMetricsService_GetEvolution(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	metricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)

	history := []*domain.MonthlyMetric{
		{ID: 3, Year: 2025, Month: 3},
		{ID: 2, Year: 2025, Month: 2},
		{ID: 1, Year: 2025, Month: 1},
	}
	metricRepo.EXPECT().ListByMentee(ctx, int64(7), uint64(0)).Return(history, nil)

	service := NewMetricsService(metricRepo, mocks.NewMockMenteeRepository(ctrl))
	evolution, err := service.GetEvolution(ctx, 7)

	require.NoError(t, err)
	require.Len(t, evolution, 3)
	assert.Equal(t, int64(1), evolution[0].ID)
	assert.Equal(t, int64(3), evolution[2].ID)
	assert.Equal(t, int64(3), history[0].ID, "histórico original não deve ser alterado")
}

func TestMetricsService_GetPreviousMonthMetric(t *testing.T) {
	ctx := context.Background()
	submittedAt := time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(m *mocks.MockMonthlyMetricRepository)
		expected *domain.MonthlyMetric
		wantErr  bool
	}{
		{
			name: "Janeiro busca dezembro do ano anterior",
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().Get(ctx, int64(7), domain.Period{Year: 2024, Month: 12}).Return(&domain.MonthlyMetric{ID: 5, SubmittedAt: &submittedAt}, nil)
			},
			expected: &domain.MonthlyMetric{ID: 5, SubmittedAt: &submittedAt},
		},
		{
			name: "Mês anterior só com metas retorna nil",
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().Get(ctx, int64(7), domain.Period{Year: 2024, Month: 12}).
					Return(&domain.MonthlyMetric{ID: 6, Goals: domain.Goals{Leads: ptr(40)}}, nil)
			},
		},
		{
			name: "Sem registro retorna nil sem erro",
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().Get(ctx, int64(7), domain.Period{Year: 2024, Month: 12}).Return(nil, nil)
			},
		},
		{
			name: "Erro no banco",
			setup: func(m *mocks.MockMonthlyMetricRepository) {
				m.EXPECT().Get(ctx, int64(7), domain.Period{Year: 2024, Month: 12}).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)
			tt.setup(metricRepo)

			service := NewMetricsService(metricRepo, mocks.NewMockMenteeRepository(ctrl))
			metric, err := service.GetPreviousMonthMetric(ctx, 7, domain.Period{Year: 2025, Month: 1})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, metric)
		})
	}
}

func TestMetricsService_UpdateMonthlyGoals(t *testing.T) {
	ctx := context.Background()
	period := domain.Period{Year: 2025, Month: 4}
	goals := domain.Goals{Revenue: ptr(25000.0)}

	t.Run("Mentorado inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		menteeRepo := mocks.NewMockMenteeRepository(ctrl)
		menteeRepo.EXPECT().GetByID(ctx, int64(7)).Return(nil, nil)

		service := NewMetricsService(mocks.NewMockMonthlyMetricRepository(ctrl), menteeRepo)
		err := service.UpdateMonthlyGoals(ctx, 7, period, goals)

		assert.ErrorIs(t, err, ErrMenteeNotFound)
	})

	t.Run("Grava metas do mês", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		menteeRepo := mocks.NewMockMenteeRepository(ctrl)
		metricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)
		menteeRepo.EXPECT().GetByID(ctx, int64(7)).Return(&domain.Mentee{ID: 7}, nil)
		metricRepo.EXPECT().UpsertGoals(ctx, int64(7), period, goals).Return(nil)

		service := NewMetricsService(metricRepo, menteeRepo)
		assert.NoError(t, service.UpdateMonthlyGoals(ctx, 7, period, goals))
	})

	t.Run("Sem metas informadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewMetricsService(mocks.NewMockMonthlyMetricRepository(ctrl), mocks.NewMockMenteeRepository(ctrl))

		err := service.UpdateMonthlyGoals(ctx, 7, period, domain.Goals{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("Meta negativa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewMetricsService(mocks.NewMockMonthlyMetricRepository(ctrl), mocks.NewMockMenteeRepository(ctrl))

		err := service.UpdateMonthlyGoals(ctx, 7, period, domain.Goals{Leads: ptr(-3)})
		assert.ErrorIs(t, err, ErrNegativeValue)
	})
}

func TestMetricsService_UpdateGlobalMonthlyGoals(t *testing.T) {
	ctx := context.Background()
	period := domain.Period{Year: 2025, Month: 4}
	goals := domain.Goals{Posts: ptr(15)}

	ctrl := gomock.NewController(t)
	metricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)
	metricRepo.EXPECT().UpsertGoalsForActive(ctx, period, goals).Return(int64(12), nil)

	service := NewMetricsService(metricRepo, mocks.NewMockMenteeRepository(ctrl))
	affected, err := service.UpdateGlobalMonthlyGoals(ctx, period, goals)

	require.NoError(t, err)
	assert.Equal(t, int64(12), affected)
}
