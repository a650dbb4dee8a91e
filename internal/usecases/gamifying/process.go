package gamifying

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=process.go -destination=mocks/mock_processor.go -package=mocks

// MonthProcessor fecha a gamificação de um mês
type MonthProcessor interface {
	ProcessMonth(ctx context.Context, period domain.Period, menteeID *int64) (*domain.ProcessResult, error)
	ProcessAll(ctx context.Context, period domain.Period) (*domain.ProcessResult, error)
}

// RankingCalculator recalcula o ranking de um período
type RankingCalculator interface {
	CalculateMonthlyRanking(ctx context.Context, period domain.Period) []*domain.RankingEntry
}

// Processor orquestra o fechamento de um mês
type Processor struct {
	gamifier   Gamifier
	ranking    RankingCalculator
	metricRepo repository.MonthlyMetricRepository
}

func NewProcessor(gamifier Gamifier, ranking RankingCalculator, metricRepo repository.MonthlyMetricRepository) *Processor {
	return &Processor{
		gamifier:   gamifier,
		ranking:    ranking,
		metricRepo: metricRepo,
	}
}

// ProcessMonth com mentorado avalia badges e metas progressivas.
// Sem mentorado recalcula o ranking e envia os alertas de metas.
func (p *Processor) ProcessMonth(ctx context.Context, period domain.Period, menteeID *int64) (*domain.ProcessResult, error) {
	if err := period.Validate(); err != nil {
		return nil, NewGamificationError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}

	result := &domain.ProcessResult{Period: period, MenteeID: menteeID}

	if menteeID != nil {
		result.BadgesAwarded = len(p.gamifier.CheckAndAwardBadges(ctx, *menteeID, period))
		result.GoalsUpdated = len(p.gamifier.UpdateProgressiveGoals(ctx, *menteeID, period))
		return result, nil
	}

	result.RankedMentees = len(p.ranking.CalculateMonthlyRanking(ctx, period))

	alerts, err := p.gamifier.CheckUnmetGoalsAlerts(ctx, period)
	if err != nil {
		return result, err
	}
	result.AlertsSent = alerts

	return result, nil
}

// ProcessAll processa cada mentorado com métricas no período e depois o ranking
func (p *Processor) ProcessAll(ctx context.Context, period domain.Period) (*domain.ProcessResult, error) {
	metrics, err := p.metricRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, NewGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar métricas do período")
	}

	badges, goals := 0, 0
	for _, m := range metrics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		menteeID := m.MenteeID
		partial, err := p.ProcessMonth(ctx, period, &menteeID)
		if err != nil {
			logrus.WithError(err).WithField("mentee_id", menteeID).Error("Erro ao processar gamificação do mentorado")
			continue
		}
		badges += partial.BadgesAwarded
		goals += partial.GoalsUpdated
	}

	result, err := p.ProcessMonth(ctx, period, nil)
	if result != nil {
		result.BadgesAwarded = badges
		result.GoalsUpdated = goals
	}
	return result, err
}
