package scheduler

import (
	"context"
	"time"

	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

//go:generate mockgen -source=jobs.go -destination=mocks/mock_jobs.go -package=mocks

// Job é o contrato comum dos jobs agendados, usado pelo handler de cron
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync()
	GetStatus() map[string]any
}

// MonthProcessor processa a gamificação de um mês fechado
type MonthProcessor interface {
	ProcessAll(ctx context.Context, period domain.Period) (*domain.ProcessResult, error)
}

// ReminderSender dispara os lembretes de métricas do dia
type ReminderSender interface {
	SendMetricsReminders(ctx context.Context, today time.Time) (*domain.ReminderSummary, error)
}

var nowFunc = time.Now

// jobTimeout limita uma execução para o job não ficar preso em uma consulta lenta
const jobTimeout = 30 * time.Minute
