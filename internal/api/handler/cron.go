package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/scheduler"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeGamification = "gamification"
	CronJobTypeReminders    = "reminders"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os jobs agendados que podem ser disparados manualmente
type CronJobServices struct {
	GamificationJob scheduler.Job
	RemindersJob    scheduler.Job
}

func (s CronJobServices) byType() map[string]scheduler.Job {
	jobs := map[string]scheduler.Job{}
	if s.GamificationJob != nil {
		jobs[CronJobTypeGamification] = s.GamificationJob
	}
	if s.RemindersJob != nil {
		jobs[CronJobTypeReminders] = s.RemindersJob
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		if cronType == CronJobTypeAll {
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		} else {
			job, ok := jobs[cronType]
			if !ok {
				accepted := []string{CronJobTypeGamification, CronJobTypeReminders, CronJobTypeAll}
				apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido", map[string]any{
					"accepted": accepted,
				})
				return
			}
			job.TriggerManualSync()
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
