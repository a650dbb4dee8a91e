package gamifying

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

// UnmetGoals lista os indicadores abaixo do limite percentual da meta
func UnmetGoals(metric *domain.MonthlyMetric, goals domain.ResolvedGoals, threshold float64) []string {
	alerts := []string{}

	check := func(label string, value, goal float64) {
		if goal > 0 && value < goal*threshold {
			alerts = append(alerts, fmt.Sprintf("%s (%.0f%% da meta)", label, value/goal*100))
		}
	}

	check("Faturamento", metric.Revenue, goals.Revenue)
	check("Leads", float64(metric.Leads), float64(goals.Leads))
	check("Posts", float64(metric.Posts), float64(goals.Posts))

	return alerts
}

// CheckUnmetGoalsAlerts envia alerta_meta aos mentorados ativos abaixo do limite no período
func (s *Service) CheckUnmetGoalsAlerts(ctx context.Context, period domain.Period) (int, error) {
	mentees, err := s.menteeRepo.ListActive(ctx)
	if err != nil {
		return 0, NewGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar mentorados ativos")
	}

	metrics, err := s.metricRepo.ListByPeriod(ctx, period)
	if err != nil {
		return 0, NewGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas do período")
	}

	byMentee := make(map[int64]*domain.MonthlyMetric, len(metrics))
	for _, m := range metrics {
		byMentee[m.MenteeID] = m
	}

	sent := 0
	for _, mentee := range mentees {
		metric, ok := byMentee[mentee.ID]
		if !ok {
			continue
		}

		alerts := UnmetGoals(metric, domain.EffectiveGoals(metric, mentee), s.cfg.AlertThreshold)
		if len(alerts) == 0 {
			continue
		}

		if _, err := s.notifier.SendGoalAlert(ctx, mentee.ID, period, alerts); err != nil {
			logrus.WithError(err).WithField("mentee_id", mentee.ID).Error("Erro ao enviar alerta de metas")
			continue
		}
		sent++
	}

	logrus.WithFields(logrus.Fields{
		"period": period.String(),
		"alerts": sent,
	}).Info("Alertas de metas não atingidas enviados")

	return sent, nil
}

// SendMetricsReminders lembra os mentorados sem métricas do mês anterior.
// Só envia nos dias configurados e no máximo um lembrete por dia para cada mentorado.
func (s *Service) SendMetricsReminders(ctx context.Context, today time.Time) (*domain.ReminderSummary, error) {
	period := domain.PeriodOf(today).Previous()
	summary := &domain.ReminderSummary{Period: period}

	if !slices.Contains(s.cfg.ReminderDays, today.Day()) {
		logrus.WithField("day", today.Day()).Debug("Fora dos dias de lembrete de métricas")
		return summary, nil
	}

	mentees, err := s.menteeRepo.ListActiveWithoutMetrics(ctx, period)
	if err != nil {
		return summary, NewGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar mentorados sem métricas")
	}

	summary.Total = len(mentees)
	for _, mentee := range mentees {
		if remindedOn(mentee, today) {
			summary.Skipped++
			continue
		}

		result, err := s.notifier.SendMetricsReminder(ctx, mentee, period)
		if err != nil || result == nil || !result.InApp {
			logrus.WithError(err).WithField("mentee_id", mentee.ID).Error("Erro ao enviar lembrete de métricas")
			summary.Failed++
			continue
		}
		summary.Sent++
	}

	logrus.WithFields(logrus.Fields{
		"period":  period.String(),
		"total":   summary.Total,
		"sent":    summary.Sent,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
	}).Info("Lembretes de métricas processados")

	return summary, nil
}

// SendReminderNow envia o lembrete do mês anterior sem checar o calendário
func (s *Service) SendReminderNow(ctx context.Context, menteeID int64, today time.Time) (*domain.DeliveryResult, error) {
	mentee, err := s.menteeRepo.GetByID(ctx, menteeID)
	if err != nil {
		return nil, NewMenteeGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao buscar mentorado")
	}
	if mentee == nil {
		return nil, NewMenteeGamificationError(ErrMenteeNotFound, apiErrors.ErrMenteeNotFound, menteeID, "")
	}

	return s.notifier.SendMetricsReminder(ctx, mentee, domain.PeriodOf(today).Previous())
}

func remindedOn(mentee *domain.Mentee, day time.Time) bool {
	if mentee.LastMetricsReminder == nil {
		return false
	}
	last := mentee.LastMetricsReminder.In(day.Location())
	return last.Year() == day.Year() && last.YearDay() == day.YearDay()
}
