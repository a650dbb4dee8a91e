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

const gamificationJobName = "gamification"

// GamificationJobConfig representa a configuração do processamento mensal da gamificação
type GamificationJobConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// GamificationJob fecha o mês anterior: badges, metas progressivas, ranking e alertas
type GamificationJob struct {
	scheduler           *gocron.Scheduler
	config              GamificationJobConfig
	processor           MonthProcessor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.ProcessResult
}

func NewGamificationJob(processor MonthProcessor, appConfig *config.Config) *GamificationJob {
	jobConfig := GamificationJobConfig{
		CronSchedule: appConfig.GamificationJob.CronSchedule,
		SyncEnabled:  appConfig.GamificationJob.SyncEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": jobConfig.CronSchedule,
		"sync_enabled":  jobConfig.SyncEnabled,
	}).Info("Configuração do job de gamificação carregada")

	return &GamificationJob{
		scheduler: gocron.NewScheduler(time.Local),
		config:    jobConfig,
		processor: processor,
	}
}

// Start inicia o agendador
func (j *GamificationJob) Start(ctx context.Context) error {
	if !j.config.SyncEnabled {
		logrus.Info("Job de gamificação desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", j.config.CronSchedule).Info("Iniciando agendador do job de gamificação")

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		j.run()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de gamificação: %w", err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do job de gamificação")
		j.scheduler.Stop()
	}()

	return nil
}

func (j *GamificationJob) run() {
	if !j.acquire() {
		logrus.Info("Job de gamificação já em andamento, ignorando")
		return
	}
	defer j.release()

	runID, _ := utils.GenerateID()
	logger := log.ForJob(gamificationJobName, runID)

	period := domain.PeriodOf(nowFunc()).Previous()
	logger = logger.WithField("period", period.String())
	logger.Info("Iniciando processamento mensal da gamificação")

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	startTime := time.Now()
	result, err := j.processor.ProcessAll(ctx, period)
	if err != nil {
		logger.WithError(err).Error("Erro no processamento mensal da gamificação")
		return
	}

	logger.WithFields(log.Fields{
		"duration":       time.Since(startTime).String(),
		"badges_awarded": result.BadgesAwarded,
		"goals_updated":  result.GoalsUpdated,
		"ranked_mentees": result.RankedMentees,
		"alerts_sent":    result.AlertsSent,
	}).Info("Processamento mensal da gamificação concluído")

	j.syncMutex.Lock()
	j.lastSyncCompletedAt = time.Now()
	j.lastResult = result
	j.syncMutex.Unlock()
}

func (j *GamificationJob) acquire() bool {
	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()

	if j.syncRunning {
		return false
	}
	j.syncRunning = true
	j.lastSyncStartedAt = time.Now()
	return true
}

func (j *GamificationJob) release() {
	j.syncMutex.Lock()
	j.syncRunning = false
	j.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente o processamento do mês anterior
func (j *GamificationJob) TriggerManualSync() {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.Info("Job de gamificação já em andamento, ignorando solicitação manual")
		return
	}
	j.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do job de gamificação")
	go j.run()
}

// GetStatus retorna o status atual do job
func (j *GamificationJob) GetStatus() map[string]any {
	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           j.syncRunning,
		"sync_cron":              j.config.CronSchedule,
		"sync_enabled":           j.config.SyncEnabled,
		"last_sync_started_at":   j.lastSyncStartedAt,
		"last_sync_completed_at": j.lastSyncCompletedAt,
		"last_result":            j.lastResult,
	}
}
