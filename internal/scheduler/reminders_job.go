package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/log"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/utils"
)

const remindersJobName = "reminders"

type RemindersJobConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RemindersJob roda diariamente. O serviço de gamificação decide se hoje é dia de lembrete.
type RemindersJob struct {
	scheduler           *gocron.Scheduler
	config              RemindersJobConfig
	sender              ReminderSender
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.ReminderSummary
}

func NewRemindersJob(sender ReminderSender, appConfig *config.Config) *RemindersJob {
	jobConfig := RemindersJobConfig{
		CronSchedule: appConfig.RemindersJob.CronSchedule,
		SyncEnabled:  appConfig.RemindersJob.SyncEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
		"sync_enabled":  jobConfig.SyncEnabled,
		"reminder_days": appConfig.Gamification.ReminderDays,
	}).Info("Configuração do job de lembretes carregada")

	return &RemindersJob{
		scheduler: gocron.NewScheduler(time.Local),
		config:    jobConfig,
		sender:    sender,
	}
}

// Start inicia o agendador
func (j *RemindersJob) Start(ctx context.Context) error {
	if !j.config.SyncEnabled {
		logrus.Info("Job de lembretes desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", j.config.CronSchedule).Info("Iniciando agendador do job de lembretes")

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		j.run()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de lembretes: %w", err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do job de lembretes")
		j.scheduler.Stop()
	}()

	return nil
}

func (j *RemindersJob) run() {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.Info("Job de lembretes já em andamento, ignorando")
		return
	}
	j.syncRunning = true
	j.lastSyncStartedAt = time.Now()
	j.syncMutex.Unlock()

	defer func() {
		j.syncMutex.Lock()
		j.syncRunning = false
		j.syncMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()
	logger := log.ForJob(remindersJobName, runID)

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	summary, err := j.sender.SendMetricsReminders(ctx, nowFunc())
	if err != nil {
		logger.WithError(err).Error("Erro ao enviar lembretes de métricas")
		return
	}

	logger.WithFields(log.Fields{
		"period":  summary.Period.String(),
		"total":   summary.Total,
		"sent":    summary.Sent,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
	}).Info("Lembretes de métricas processados")

	j.syncMutex.Lock()
	j.lastSyncCompletedAt = time.Now()
	j.lastSummary = summary
	j.syncMutex.Unlock()
}

// TriggerManualSync dispara os lembretes do dia fora do horário agendado
func (j *RemindersJob) TriggerManualSync() {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.Info("Job de lembretes já em andamento, ignorando solicitação manual")
		return
	}
	j.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do job de lembretes")
	go j.run()
}

func (j *RemindersJob) GetStatus() map[string]any {
	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           j.syncRunning,
		"sync_cron":              j.config.CronSchedule,
		"sync_enabled":           j.config.SyncEnabled,
		"last_sync_started_at":   j.lastSyncStartedAt,
		"last_sync_completed_at": j.lastSyncCompletedAt,
		"last_summary":           j.lastSummary,
	}
}
