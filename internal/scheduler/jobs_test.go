package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func fixedNow(t *testing.T, now time.Time) {
	previous := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = previous })
}

func testConfig() *config.Config {
	return &config.Config{
		GamificationJob: config.GamificationJob{CronSchedule: "0 6 1 * *", SyncEnabled: true},
		RemindersJob:    config.RemindersJob{CronSchedule: "0 9 * * *", SyncEnabled: true},
		Gamification:    config.Gamification{ReminderDays: []int{1, 5, 10}},
	}
}

func TestGamificationJob_run(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		expected      domain.Period
		processErr    error
		wantCompleted bool
	}{
		{
			name:          "Processa o mês anterior",
			now:           time.Date(2025, 6, 1, 6, 0, 0, 0, time.Local),
			expected:      domain.Period{Year: 2025, Month: 5},
			wantCompleted: true,
		},
		{
			name:          "Janeiro processa dezembro do ano anterior",
			now:           time.Date(2025, 1, 1, 6, 0, 0, 0, time.Local),
			expected:      domain.Period{Year: 2024, Month: 12},
			wantCompleted: true,
		},
		{
			name:       "Erro no processamento não marca conclusão",
			now:        time.Date(2025, 6, 1, 6, 0, 0, 0, time.Local),
			expected:   domain.Period{Year: 2025, Month: 5},
			processErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixedNow(t, tt.now)
			ctrl := gomock.NewController(t)
			processor := mocks.NewMockMonthProcessor(ctrl)

			var result *domain.ProcessResult
			if tt.processErr == nil {
				result = &domain.ProcessResult{Period: tt.expected, RankedMentees: 4}
			}
			processor.EXPECT().ProcessAll(gomock.Any(), tt.expected).Return(result, tt.processErr)

			job := NewGamificationJob(processor, testConfig())
			job.run()

			status := job.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			assert.Equal(t, tt.wantCompleted, !status["last_sync_completed_at"].(time.Time).IsZero())
			if tt.wantCompleted {
				assert.Equal(t, result, status["last_result"])
			}
		})
	}
}

func TestGamificationJob_runIgnoredWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := mocks.NewMockMonthProcessor(ctrl)
	processor.EXPECT().ProcessAll(gomock.Any(), gomock.Any()).Times(0)

	job := NewGamificationJob(processor, testConfig())
	job.syncRunning = true

	job.run()
	job.TriggerManualSync()

	assert.Equal(t, true, job.GetStatus()["sync_running"])
}

func TestGamificationJob_StartDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.GamificationJob.SyncEnabled = false

	job := NewGamificationJob(nil, cfg)
	require.NoError(t, job.Start(context.Background()))
	assert.Equal(t, false, job.GetStatus()["sync_enabled"])
}

func TestGamificationJob_StartInvalidCron(t *testing.T) {
	cfg := testConfig()
	cfg.GamificationJob.CronSchedule = "isso não é cron"

	job := NewGamificationJob(nil, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, job.Start(ctx))
}

func TestRemindersJob_run(t *testing.T) {
	now := time.Date(2025, 6, 5, 9, 0, 0, 0, time.Local)
	fixedNow(t, now)

	t.Run("Repassa o dia atual ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mocks.NewMockReminderSender(ctrl)
		summary := &domain.ReminderSummary{Period: domain.Period{Year: 2025, Month: 5}, Total: 3, Sent: 2, Skipped: 1}
		sender.EXPECT().SendMetricsReminders(gomock.Any(), now).Return(summary, nil)

		job := NewRemindersJob(sender, testConfig())
		job.run()

		status := job.GetStatus()
		assert.Equal(t, summary, status["last_summary"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Erro no envio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mocks.NewMockReminderSender(ctrl)
		sender.EXPECT().SendMetricsReminders(gomock.Any(), now).Return(nil, errors.New("db error"))

		job := NewRemindersJob(sender, testConfig())
		job.run()

		status := job.GetStatus()
		assert.Nil(t, status["last_summary"])
		assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
		assert.Equal(t, false, status["sync_running"])
	})
}
