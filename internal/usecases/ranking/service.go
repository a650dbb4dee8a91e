// Package ranking calcula e consulta o ranking mensal dos mentorados
package ranking

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_ranker.go -package=mocks

type Ranker interface {
	CalculateMonthlyRanking(ctx context.Context, period domain.Period) []*domain.RankingEntry
	GetRanking(ctx context.Context, period domain.Period) (*domain.RankingResponse, error)
}

// BadgeAwarder concede as badges de ranking a uma posição
type BadgeAwarder interface {
	AwardRankingBadges(ctx context.Context, menteeID int64, period domain.Period, position int) []*domain.Badge
}

type Service struct {
	menteeRepo      repository.MenteeRepository
	metricRepo      repository.MonthlyMetricRepository
	menteeBadgeRepo repository.MenteeBadgeRepository
	rankingRepo     repository.RankingRepository
	cache           cache.RankingCache
	awarder         BadgeAwarder
	notifier        notifying.Notifier
	weights         Weights
	cfg             config.Scoring
}

func NewService(
	menteeRepo repository.MenteeRepository,
	metricRepo repository.MonthlyMetricRepository,
	menteeBadgeRepo repository.MenteeBadgeRepository,
	rankingRepo repository.RankingRepository,
	rankingCache cache.RankingCache,
	awarder BadgeAwarder,
	notifier notifying.Notifier,
	cfg *config.Config,
) *Service {
	return &Service{
		menteeRepo:      menteeRepo,
		metricRepo:      metricRepo,
		menteeBadgeRepo: menteeBadgeRepo,
		rankingRepo:     rankingRepo,
		cache:           rankingCache,
		awarder:         awarder,
		notifier:        notifier,
		weights:         WeightsFrom(cfg.Scoring),
		cfg:             cfg.Scoring,
	}
}

// CalculateMonthlyRanking recalcula e substitui o ranking do período.
// Falhas são registradas em log e resultam em ranking vazio.
func (s *Service) CalculateMonthlyRanking(ctx context.Context, period domain.Period) []*domain.RankingEntry {
	logger := logrus.WithField("period", period.String())
	entries := []*domain.RankingEntry{}

	mentees, err := s.menteeRepo.ListActive(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar mentorados ativos para o ranking")
		return entries
	}

	metrics, err := s.metricRepo.ListByPeriod(ctx, period)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar métricas do período para o ranking")
		return entries
	}

	bonuses, err := s.menteeBadgeRepo.PointsByPeriod(ctx, period, domain.CriterionRankingTop)
	if err != nil {
		logger.WithError(err).Error("Erro ao somar pontos de badges do período")
		return entries
	}

	byID := make(map[int64]*domain.Mentee, len(mentees))
	for _, m := range mentees {
		byID[m.ID] = m
	}

	scores := make([]domain.ScoreBreakdown, 0, len(metrics))
	for _, metric := range metrics {
		mentee, ok := byID[metric.MenteeID]
		if !ok {
			continue
		}
		scores = append(scores, Score(metric, domain.EffectiveGoals(metric, mentee), bonuses[mentee.ID], s.weights))
	}

	for i, score := range Rank(scores) {
		mentee := byID[score.MenteeID]
		entries = append(entries, &domain.RankingEntry{
			MenteeID:    score.MenteeID,
			MenteeName:  mentee.FullName,
			PhotoURL:    mentee.PhotoURL,
			Year:        period.Year,
			Month:       period.Month,
			Cohort:      s.cohortOf(mentee),
			Position:    i + 1,
			TotalScore:  score.Total,
			BonusPoints: score.Bonus,
		})
	}

	previous, err := s.rankingRepo.GetByPeriod(ctx, period)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar ranking anterior do período")
	}
	firstCalculation := err == nil && len(previous) == 0

	if err := s.rankingRepo.ReplacePeriod(ctx, period, entries); err != nil {
		logger.WithError(err).Error("Erro ao salvar ranking do período")
		return []*domain.RankingEntry{}
	}

	if err := s.cache.Invalidate(ctx, period); err != nil {
		logger.WithError(err).Warn("Erro ao invalidar ranking em cache")
	}

	for _, entry := range entries {
		if entry.Position > s.cfg.PodiumSize {
			break
		}
		s.awarder.AwardRankingBadges(ctx, entry.MenteeID, period, entry.Position)

		if firstCalculation {
			if _, err := s.notifier.SendRankingPosition(ctx, entry.MenteeID, period, entry.Position); err != nil {
				logger.WithError(err).WithField("mentee_id", entry.MenteeID).Warn("Erro ao notificar posição no ranking")
			}
		}
	}

	logger.WithField("mentees", len(entries)).Info("Ranking mensal calculado")

	return entries
}

// GetRanking busca o ranking do período, usando o cache quando disponível
func (s *Service) GetRanking(ctx context.Context, period domain.Period) (*domain.RankingResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, NewRankingError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}

	cached, err := s.cache.Get(ctx, period)
	if err == nil {
		return &domain.RankingResponse{Period: period, Ranking: cached}, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logrus.WithError(err).Warn("Erro ao ler ranking do cache")
	}

	entries, err := s.rankingRepo.GetByPeriod(ctx, period)
	if err != nil {
		logrus.WithError(err).WithField("period", period.String()).Error("Erro ao buscar ranking")
		return nil, NewRankingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar ranking")
	}
	if entries == nil {
		entries = []*domain.RankingEntry{}
	}

	if len(entries) > 0 {
		if err := s.cache.Set(ctx, period, entries); err != nil {
			logrus.WithError(err).Warn("Erro ao gravar ranking no cache")
		}
	}

	return &domain.RankingResponse{Period: period, Ranking: entries}, nil
}

func (s *Service) cohortOf(mentee *domain.Mentee) string {
	if mentee.Cohort != "" {
		return mentee.Cohort
	}
	return s.cfg.RankingCohort
}
