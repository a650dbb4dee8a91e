package gamifying

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

func TestUnmetGoals(t *testing.T) {
	goals := domain.ResolvedGoals{Revenue: 10000, Leads: 50, Posts: 12}

	tests := []struct {
		name     string
		metric   *domain.MonthlyMetric
		expected []string
	}{
		{
			name:     "Todas as metas acima de 80%",
			metric:   &domain.MonthlyMetric{Revenue: 8000, Leads: 40, Posts: 10},
			expected: []string{},
		},
		{
			name:     "Faturamento e posts abaixo",
			metric:   &domain.MonthlyMetric{Revenue: 5000, Leads: 45, Posts: 6},
			expected: []string{"Faturamento (50% da meta)", "Posts (50% da meta)"},
		},
		{
			name:     "Tudo zerado",
			metric:   &domain.MonthlyMetric{},
			expected: []string{"Faturamento (0% da meta)", "Leads (0% da meta)", "Posts (0% da meta)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnmetGoals(tt.metric, goals, 0.8))
		})
	}
}

func TestService_CheckUnmetGoalsAlerts(t *testing.T) {
	ctx := context.Background()
	period := domain.Period{Year: 2025, Month: 1}
	service, m := newTestService(t)

	m.mentee.EXPECT().ListActive(ctx).Return([]*domain.Mentee{
		{ID: 1, RevenueGoal: 10000, LeadsGoal: 50, PostsGoal: 12},
		{ID: 2, RevenueGoal: 10000, LeadsGoal: 50, PostsGoal: 12},
		{ID: 3},
	}, nil)
	m.metric.EXPECT().ListByPeriod(ctx, period).Return([]*domain.MonthlyMetric{
		{MenteeID: 1, Revenue: 2000, Leads: 50, Posts: 12},
		{MenteeID: 2, Revenue: 10000, Leads: 50, Posts: 12},
	}, nil)
	m.notifier.EXPECT().SendGoalAlert(ctx, int64(1), period, []string{"Faturamento (20% da meta)"}).Return(&domain.DeliveryResult{InApp: true}, nil)

	sent, err := service.CheckUnmetGoalsAlerts(ctx, period)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestService_SendMetricsReminders(t *testing.T) {
	ctx := context.Background()
	previous := domain.Period{Year: 2025, Month: 2}

	t.Run("Fora dos dias configurados não envia", func(t *testing.T) {
		service, _ := newTestService(t)

		summary, err := service.SendMetricsReminders(ctx, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, &domain.ReminderSummary{Period: previous}, summary)
	})

	t.Run("Envia para quem não registrou e respeita o lembrete do dia", func(t *testing.T) {
		service, m := newTestService(t)
		today := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
		remindedToday := today.Add(-time.Hour)
		remindedBefore := today.AddDate(0, 0, -4)

		mentees := []*domain.Mentee{
			{ID: 1, LastMetricsReminder: &remindedBefore},
			{ID: 2, LastMetricsReminder: &remindedToday},
			{ID: 3},
		}

		m.mentee.EXPECT().ListActiveWithoutMetrics(ctx, previous).Return(mentees, nil)
		m.notifier.EXPECT().SendMetricsReminder(ctx, mentees[0], previous).Return(&domain.DeliveryResult{InApp: true}, nil)
		m.notifier.EXPECT().SendMetricsReminder(ctx, mentees[2], previous).Return(&domain.DeliveryResult{}, errors.New("db error"))

		summary, err := service.SendMetricsReminders(ctx, today)

		require.NoError(t, err)
		assert.Equal(t, &domain.ReminderSummary{Period: previous, Total: 3, Sent: 1, Skipped: 1, Failed: 1}, summary)
	})
}

func TestService_SendReminderNow(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Mentorado inexistente", func(t *testing.T) {
		service, m := newTestService(t)
		m.mentee.EXPECT().GetByID(ctx, int64(9)).Return(nil, nil)

		_, err := service.SendReminderNow(ctx, 9, today)

		assert.ErrorIs(t, err, ErrMenteeNotFound)
	})

	t.Run("Lembra o mês anterior", func(t *testing.T) {
		service, m := newTestService(t)
		mentee := &domain.Mentee{ID: 9}
		m.mentee.EXPECT().GetByID(ctx, int64(9)).Return(mentee, nil)
		m.notifier.EXPECT().SendMetricsReminder(ctx, mentee, domain.Period{Year: 2024, Month: 12}).
			Return(&domain.DeliveryResult{NotificationID: 4, InApp: true}, nil)

		result, err := service.SendReminderNow(ctx, 9, today)

		require.NoError(t, err)
		assert.Equal(t, int64(4), result.NotificationID)
	})
}

func TestRemindedOn(t *testing.T) {
	day := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	sameDay := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	lastYear := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	assert.True(t, remindedOn(&domain.Mentee{LastMetricsReminder: &sameDay}, day))
	assert.False(t, remindedOn(&domain.Mentee{LastMetricsReminder: &lastYear}, day))
	assert.False(t, remindedOn(&domain.Mentee{}, day))
}
