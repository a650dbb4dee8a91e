package gamifying

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	gamifyingmocks "github.com/vfg2006/mentoria-dashboard-api/internal/usecases/gamifying/mocks"
	"go.uber.org/mock/gomock"
)

type fakeRanking struct {
	calls   []domain.Period
	entries []*domain.RankingEntry
}

func (f *fakeRanking) CalculateMonthlyRanking(_ context.Context, period domain.Period) []*domain.RankingEntry {
	f.calls = append(f.calls, period)
	return f.entries
}

func TestProcessor_ProcessMonth(t *testing.T) {
	ctx := context.Background()
	period := domain.Period{Year: 2025, Month: 1}

	t.Run("Período inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		processor := NewProcessor(gamifyingmocks.NewMockGamifier(ctrl), &fakeRanking{}, mocks.NewMockMonthlyMetricRepository(ctrl))

		_, err := processor.ProcessMonth(ctx, domain.Period{Year: 2025, Month: 13}, nil)

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("Com mentorado avalia badges e metas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gamifier := gamifyingmocks.NewMockGamifier(ctrl)
		ranking := &fakeRanking{}
		processor := NewProcessor(gamifier, ranking, mocks.NewMockMonthlyMetricRepository(ctrl))
		menteeID := int64(7)

		gamifier.EXPECT().CheckAndAwardBadges(ctx, menteeID, period).Return([]*domain.Badge{{ID: 1}, {ID: 2}})
		gamifier.EXPECT().UpdateProgressiveGoals(ctx, menteeID, period).Return([]*domain.ProgressiveGoal{{ID: 1}})

		result, err := processor.ProcessMonth(ctx, period, &menteeID)

		require.NoError(t, err)
		assert.Equal(t, 2, result.BadgesAwarded)
		assert.Equal(t, 1, result.GoalsUpdated)
		assert.Empty(t, ranking.calls)
	})

	t.Run("Sem mentorado calcula ranking e alertas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gamifier := gamifyingmocks.NewMockGamifier(ctrl)
		ranking := &fakeRanking{entries: []*domain.RankingEntry{{MenteeID: 1}, {MenteeID: 2}}}
		processor := NewProcessor(gamifier, ranking, mocks.NewMockMonthlyMetricRepository(ctrl))

		gamifier.EXPECT().CheckUnmetGoalsAlerts(ctx, period).Return(1, nil)

		result, err := processor.ProcessMonth(ctx, period, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.RankedMentees)
		assert.Equal(t, 1, result.AlertsSent)
		assert.Equal(t, []domain.Period{period}, ranking.calls)
	})
}

func TestProcessor_ProcessAll(t *testing.T) {
	ctx := context.Background()
	period := domain.Period{Year: 2025, Month: 1}
	ctrl := gomock.NewController(t)
	gamifier := gamifyingmocks.NewMockGamifier(ctrl)
	metricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)
	ranking := &fakeRanking{entries: []*domain.RankingEntry{{MenteeID: 1}, {MenteeID: 2}}}
	processor := NewProcessor(gamifier, ranking, metricRepo)

	metricRepo.EXPECT().ListByPeriod(ctx, period).Return([]*domain.MonthlyMetric{{MenteeID: 1}, {MenteeID: 2}}, nil)

	gomock.InOrder(
		gamifier.EXPECT().CheckAndAwardBadges(ctx, int64(1), period).Return([]*domain.Badge{{ID: 1}}),
		gamifier.EXPECT().UpdateProgressiveGoals(ctx, int64(1), period).Return(nil),
		gamifier.EXPECT().CheckAndAwardBadges(ctx, int64(2), period).Return([]*domain.Badge{{ID: 1}, {ID: 3}}),
		gamifier.EXPECT().UpdateProgressiveGoals(ctx, int64(2), period).Return([]*domain.ProgressiveGoal{{ID: 9}}),
		gamifier.EXPECT().CheckUnmetGoalsAlerts(ctx, period).Return(0, nil),
	)

	result, err := processor.ProcessAll(ctx, period)

	require.NoError(t, err)
	assert.Equal(t, 3, result.BadgesAwarded)
	assert.Equal(t, 1, result.GoalsUpdated)
	assert.Equal(t, 2, result.RankedMentees)
}
