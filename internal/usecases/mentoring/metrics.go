package mentoring

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

type MetricsManager interface {
	SubmitMetrics(ctx context.Context, menteeID int64, period domain.Period, req *domain.SubmitMetricsRequest) (*domain.MonthlyMetric, error)
	UpdateMetricField(ctx context.Context, menteeID int64, period domain.Period, req *domain.UpdateMetricFieldRequest) (int64, error)
	GetMetrics(ctx context.Context, menteeID int64) ([]*domain.MonthlyMetric, error)
	GetEvolution(ctx context.Context, menteeID int64) ([]*domain.MonthlyMetric, error)
	GetMonthMetric(ctx context.Context, menteeID int64, period domain.Period) (*domain.MonthlyMetric, error)
	GetPreviousMonthMetric(ctx context.Context, menteeID int64, period domain.Period) (*domain.MonthlyMetric, error)
	UpdateMonthlyGoals(ctx context.Context, menteeID int64, period domain.Period, goals domain.Goals) error
	UpdateGlobalMonthlyGoals(ctx context.Context, period domain.Period, goals domain.Goals) (int64, error)
}

type MetricsService struct {
	metricRepo repository.MonthlyMetricRepository
	menteeRepo repository.MenteeRepository
}

func NewMetricsService(metricRepo repository.MonthlyMetricRepository, menteeRepo repository.MenteeRepository) *MetricsService {
	return &MetricsService{
		metricRepo: metricRepo,
		menteeRepo: menteeRepo,
	}
}

// SubmitMetrics grava o formulário completo do mês, substituindo os valores existentes
func (s *MetricsService) SubmitMetrics(ctx context.Context, menteeID int64, period domain.Period, req *domain.SubmitMetricsRequest) (*domain.MonthlyMetric, error) {
	if err := period.Validate(); err != nil {
		return nil, NewMetricsError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}
	if req == nil {
		return nil, NewMetricsError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}
	if err := req.Validate(); err != nil {
		return nil, NewMetricsError(ErrNegativeValue, apiErrors.ErrNegativeValue, err.Error())
	}

	metric, err := s.metricRepo.Upsert(ctx, &domain.MonthlyMetric{
		MenteeID:   menteeID,
		Year:       period.Year,
		Month:      period.Month,
		Revenue:    req.Revenue,
		Profit:     req.Profit,
		Leads:      req.Leads,
		Procedures: req.Procedures,
		Posts:      req.Posts,
		Stories:    req.Stories,
		Notes:      req.Notes,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"mentee_id": menteeID,
			"period":    period.String(),
		}).Error("Erro ao salvar métricas do mês")
		return nil, NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao salvar métricas")
	}

	return metric, nil
}

// UpdateMetricField salva um único campo. O id só é retornado depois da escrita no banco.
func (s *MetricsService) UpdateMetricField(ctx context.Context, menteeID int64, period domain.Period, req *domain.UpdateMetricFieldRequest) (int64, error) {
	if err := period.Validate(); err != nil {
		return 0, NewMetricsError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}
	if req == nil {
		return 0, NewMetricsError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	field, err := domain.ParseMetricField(req.Field)
	if err != nil {
		return 0, NewMetricsError(ErrInvalidMetricField, apiErrors.ErrInvalidMetricField, err.Error())
	}
	if req.Value < 0 {
		return 0, NewMetricsError(ErrNegativeValue, apiErrors.ErrNegativeValue, string(field))
	}
	if field.IsInteger() && req.Value != math.Trunc(req.Value) {
		return 0, NewMetricsError(ErrInvalidMetricField, apiErrors.ErrInvalidMetricField, string(field)+" aceita apenas números inteiros")
	}

	id, err := s.metricRepo.UpsertField(ctx, menteeID, period, field, req.Value)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"mentee_id": menteeID,
			"period":    period.String(),
			"field":     field,
		}).Error("Erro no salvamento automático da métrica")
		return 0, NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao salvar campo")
	}

	return id, nil
}

// GetMetrics retorna o histórico do mais recente para o mais antigo
func (s *MetricsService) GetMetrics(ctx context.Context, menteeID int64) ([]*domain.MonthlyMetric, error) {
	metrics, err := s.metricRepo.ListByMentee(ctx, menteeID, 0)
	if err != nil {
		return nil, NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao listar métricas")
	}
	if metrics == nil {
		metrics = []*domain.MonthlyMetric{}
	}
	return metrics, nil
}

// GetEvolution retorna o histórico em ordem cronológica
func (s *MetricsService) GetEvolution(ctx context.Context, menteeID int64) ([]*domain.MonthlyMetric, error) {
	metrics, err := s.GetMetrics(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	evolution := slices.Clone(metrics)
	slices.Reverse(evolution)
	return evolution, nil
}

func (s *MetricsService) GetMonthMetric(ctx context.Context, menteeID int64, period domain.Period) (*domain.MonthlyMetric, error) {
	if err := period.Validate(); err != nil {
		return nil, NewMetricsError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}

	metric, err := s.metricRepo.Get(ctx, menteeID, period)
	if err != nil {
		return nil, NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao buscar métrica")
	}
	if metric == nil {
		return nil, NewMenteeMetricsError(ErrMetricNotFound, apiErrors.ErrMetricNotFound, menteeID, period.String())
	}
	return metric, nil
}

// GetPreviousMonthMetric retorna o mês anterior ao período, ou nil se não houver envio
func (s *MetricsService) GetPreviousMonthMetric(ctx context.Context, menteeID int64, period domain.Period) (*domain.MonthlyMetric, error) {
	metric, err := s.GetMonthMetric(ctx, menteeID, period.Previous())
	if errors.Is(err, ErrMetricNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !metric.Submitted() {
		return nil, nil
	}
	return metric, nil
}

func (s *MetricsService) UpdateMonthlyGoals(ctx context.Context, menteeID int64, period domain.Period, goals domain.Goals) error {
	if err := validateGoals(period, goals); err != nil {
		return err
	}

	mentee, err := s.menteeRepo.GetByID(ctx, menteeID)
	if err != nil {
		return NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao buscar mentorado")
	}
	if mentee == nil {
		return NewMenteeMetricsError(ErrMenteeNotFound, apiErrors.ErrMenteeNotFound, menteeID, "")
	}

	if err := s.metricRepo.UpsertGoals(ctx, menteeID, period, goals); err != nil {
		logrus.WithError(err).WithField("mentee_id", menteeID).Error("Erro ao salvar metas do mês")
		return NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao salvar metas")
	}
	return nil
}

// UpdateGlobalMonthlyGoals aplica as metas do mês a todos os mentorados ativos
func (s *MetricsService) UpdateGlobalMonthlyGoals(ctx context.Context, period domain.Period, goals domain.Goals) (int64, error) {
	if err := validateGoals(period, goals); err != nil {
		return 0, err
	}

	affected, err := s.metricRepo.UpsertGoalsForActive(ctx, period, goals)
	if err != nil {
		logrus.WithError(err).WithField("period", period.String()).Error("Erro ao salvar metas globais do mês")
		return 0, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar metas globais")
	}

	logrus.WithFields(logrus.Fields{
		"period":  period.String(),
		"mentees": affected,
	}).Info("Metas globais do mês atualizadas")

	return affected, nil
}

func validateGoals(period domain.Period, goals domain.Goals) error {
	if err := period.Validate(); err != nil {
		return NewMetricsError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}
	if goals.IsEmpty() {
		return NewMetricsError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "Informe ao menos uma meta")
	}

	negative := (goals.Revenue != nil && *goals.Revenue < 0) ||
		(goals.Leads != nil && *goals.Leads < 0) ||
		(goals.Procedures != nil && *goals.Procedures < 0) ||
		(goals.Posts != nil && *goals.Posts < 0) ||
		(goals.Stories != nil && *goals.Stories < 0)
	if negative {
		return NewMetricsError(ErrNegativeValue, apiErrors.ErrNegativeValue, "Metas não podem ser negativas")
	}
	return nil
}
