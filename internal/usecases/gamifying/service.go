// Package gamifying concentra as regras de badges, streaks, metas progressivas e lembretes
package gamifying

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_gamifier.go -package=mocks

type Gamifier interface {
	SeedCatalog(ctx context.Context) (int64, error)
	ListBadges(ctx context.Context) ([]*domain.Badge, error)
	ListMenteeBadges(ctx context.Context, menteeID int64) ([]*domain.MenteeBadge, error)
	CheckAndAwardBadges(ctx context.Context, menteeID int64, period domain.Period) []*domain.Badge
	AwardRankingBadges(ctx context.Context, menteeID int64, period domain.Period, position int) []*domain.Badge
	GetStreak(ctx context.Context, menteeID int64) domain.Streak
	UpdateProgressiveGoals(ctx context.Context, menteeID int64, period domain.Period) []*domain.ProgressiveGoal
	GetProgressiveGoals(ctx context.Context, menteeID int64) ([]*domain.ProgressiveGoal, error)
	CheckUnmetGoalsAlerts(ctx context.Context, period domain.Period) (int, error)
	SendMetricsReminders(ctx context.Context, today time.Time) (*domain.ReminderSummary, error)
	SendReminderNow(ctx context.Context, menteeID int64, today time.Time) (*domain.DeliveryResult, error)
}

type Service struct {
	menteeRepo          repository.MenteeRepository
	metricRepo          repository.MonthlyMetricRepository
	badgeRepo           repository.BadgeRepository
	menteeBadgeRepo     repository.MenteeBadgeRepository
	rankingRepo         repository.RankingRepository
	progressiveGoalRepo repository.ProgressiveGoalRepository
	playbookRepo        repository.PlaybookRepository
	notifier            notifying.Notifier
	cfg                 config.Gamification
}

func NewService(
	menteeRepo repository.MenteeRepository,
	metricRepo repository.MonthlyMetricRepository,
	badgeRepo repository.BadgeRepository,
	menteeBadgeRepo repository.MenteeBadgeRepository,
	rankingRepo repository.RankingRepository,
	progressiveGoalRepo repository.ProgressiveGoalRepository,
	playbookRepo repository.PlaybookRepository,
	notifier notifying.Notifier,
	cfg *config.Config,
) *Service {
	return &Service{
		menteeRepo:          menteeRepo,
		metricRepo:          metricRepo,
		badgeRepo:           badgeRepo,
		menteeBadgeRepo:     menteeBadgeRepo,
		rankingRepo:         rankingRepo,
		progressiveGoalRepo: progressiveGoalRepo,
		playbookRepo:        playbookRepo,
		notifier:            notifier,
		cfg:                 cfg.Gamification,
	}
}

// SeedCatalog grava as badges padrão que ainda não existem
func (s *Service) SeedCatalog(ctx context.Context) (int64, error) {
	inserted, err := s.badgeRepo.SeedCatalog(ctx, domain.BadgeCatalog())
	if err != nil {
		logrus.WithError(err).Error("Erro ao inicializar catálogo de badges")
		return 0, NewGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao inicializar badges")
	}

	logrus.WithField("inserted", inserted).Info("Catálogo de badges inicializado")
	return inserted, nil
}

func (s *Service) ListBadges(ctx context.Context) ([]*domain.Badge, error) {
	badges, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, NewGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar badges")
	}
	if badges == nil {
		badges = []*domain.Badge{}
	}
	return badges, nil
}

func (s *Service) ListMenteeBadges(ctx context.Context, menteeID int64) ([]*domain.MenteeBadge, error) {
	badges, err := s.menteeBadgeRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		return nil, NewMenteeGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao listar badges do mentorado")
	}
	if badges == nil {
		badges = []*domain.MenteeBadge{}
	}
	return badges, nil
}

// CheckAndAwardBadges avalia o catálogo para o mentorado no período e concede as badges novas.
// Falhas de leitura são registradas em log e resultam em lista vazia.
func (s *Service) CheckAndAwardBadges(ctx context.Context, menteeID int64, period domain.Period) []*domain.Badge {
	logger := logrus.WithFields(logrus.Fields{
		"mentee_id": menteeID,
		"period":    period.String(),
	})
	awarded := []*domain.Badge{}

	mentee, err := s.menteeRepo.GetByID(ctx, menteeID)
	if err != nil || mentee == nil {
		logger.WithError(err).Warn("Mentorado não encontrado para avaliação de badges")
		return awarded
	}

	metric, err := s.metricRepo.Get(ctx, menteeID, period)
	if err != nil || !metric.Submitted() {
		logger.WithError(err).Info("Mentorado sem métricas no período, nenhuma badge avaliada")
		return awarded
	}

	badges, err := s.badgeRepo.List(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar catálogo de badges")
		return awarded
	}

	earned, err := s.menteeBadgeRepo.EarnedBadgeIDs(ctx, menteeID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar badges já conquistadas")
		return awarded
	}

	pending := make([]*domain.Badge, 0, len(badges))
	for _, b := range badges {
		if !earned[b.ID] {
			pending = append(pending, b)
		}
	}
	if len(pending) == 0 {
		return awarded
	}

	facts, err := s.loadFacts(ctx, mentee, metric, pending)
	if err != nil {
		logger.WithError(err).Error("Erro ao montar dados para avaliação de badges")
		return awarded
	}

	for _, badge := range pending {
		if !Evaluate(badge.Criterion, *facts) {
			continue
		}
		if s.award(ctx, menteeID, badge, period) {
			awarded = append(awarded, badge)
		}
	}

	if len(awarded) > 0 {
		logger.WithField("badges", len(awarded)).Info("Novas badges concedidas")
	}

	return awarded
}

// AwardRankingBadges concede as badges de ranking compatíveis com a posição
func (s *Service) AwardRankingBadges(ctx context.Context, menteeID int64, period domain.Period, position int) []*domain.Badge {
	awarded := []*domain.Badge{}

	badges, err := s.badgeRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar catálogo de badges para o ranking")
		return awarded
	}

	facts := Facts{RankingPosition: position}
	for _, badge := range badges {
		if badge.Criterion.Kind != domain.CriterionRankingTop || !Evaluate(badge.Criterion, facts) {
			continue
		}
		if s.award(ctx, menteeID, badge, period) {
			awarded = append(awarded, badge)
		}
	}

	return awarded
}

// award grava a conquista e notifica apenas quando ela é nova
func (s *Service) award(ctx context.Context, menteeID int64, badge *domain.Badge, period domain.Period) bool {
	inserted, err := s.menteeBadgeRepo.Award(ctx, &domain.MenteeBadge{
		MenteeID: menteeID,
		BadgeID:  badge.ID,
		Year:     period.Year,
		Month:    period.Month,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"mentee_id":  menteeID,
			"badge_code": badge.Code,
		}).Error("Erro ao conceder badge")
		return false
	}
	if !inserted {
		return false
	}

	if _, err := s.notifier.SendBadgeUnlocked(ctx, menteeID, badge); err != nil {
		logrus.WithError(err).WithField("mentee_id", menteeID).Warn("Erro ao notificar badge conquistada")
	}
	return true
}

func (s *Service) loadFacts(ctx context.Context, mentee *domain.Mentee, metric *domain.MonthlyMetric, pending []*domain.Badge) (*Facts, error) {
	period := metric.Period()

	previous, err := s.metricRepo.Get(ctx, mentee.ID, period.Previous())
	if err != nil {
		return nil, err
	}
	if !previous.Submitted() {
		previous = nil
	}

	recent, err := s.metricRepo.ListByMentee(ctx, mentee.ID, uint64(requiredMonths(pending, s.cfg.StreakLookbackMonths)))
	if err != nil {
		return nil, err
	}

	total, err := s.metricRepo.CountByMentee(ctx, mentee.ID)
	if err != nil {
		return nil, err
	}

	facts := &Facts{
		Metric:      metric,
		Previous:    previous,
		Recent:      recent,
		Goals:       domain.EffectiveGoals(metric, mentee),
		TotalMonths: total,
		Streak:      CalculateStreak(lookback(recent, s.cfg.StreakLookbackMonths), s.cfg.StreakDeadlineDay),
	}

	kinds := make(map[domain.CriterionKind]bool, len(pending))
	for _, b := range pending {
		kinds[b.Criterion.Kind] = true
	}

	if kinds[domain.CriterionAboveAverage] {
		periods := make([]domain.Period, 0, len(recent))
		for _, m := range recent {
			periods = append(periods, m.Period())
		}
		facts.CohortAverages, err = s.metricRepo.CohortAverages(ctx, periods)
		if err != nil {
			return nil, err
		}
	}

	if kinds[domain.CriterionPlaybookComplete] {
		progress, err := s.playbookRepo.Progress(ctx, mentee.ID)
		if err != nil {
			return nil, err
		}
		if progress != nil {
			facts.Playbook = *progress
		}
	}

	if kinds[domain.CriterionRankingTop] {
		entry, err := s.rankingRepo.GetEntry(ctx, mentee.ID, period)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			facts.RankingPosition = entry.Position
		}
	}

	return facts, nil
}

// GetStreak calcula a sequência atual do mentorado
func (s *Service) GetStreak(ctx context.Context, menteeID int64) domain.Streak {
	metrics, err := s.metricRepo.ListByMentee(ctx, menteeID, uint64(s.cfg.StreakLookbackMonths))
	if err != nil {
		logrus.WithError(err).WithField("mentee_id", menteeID).Error("Erro ao buscar métricas para cálculo do streak")
		return CalculateStreak(nil, s.cfg.StreakDeadlineDay)
	}
	return CalculateStreak(metrics, s.cfg.StreakDeadlineDay)
}

// UpdateProgressiveGoals eleva as metas atingidas no período.
// Uma meta já ajustada no mesmo período não é ajustada novamente.
func (s *Service) UpdateProgressiveGoals(ctx context.Context, menteeID int64, period domain.Period) []*domain.ProgressiveGoal {
	logger := logrus.WithFields(logrus.Fields{
		"mentee_id": menteeID,
		"period":    period.String(),
	})
	updated := []*domain.ProgressiveGoal{}

	mentee, err := s.menteeRepo.GetByID(ctx, menteeID)
	if err != nil || mentee == nil {
		logger.WithError(err).Warn("Mentorado não encontrado para metas progressivas")
		return updated
	}

	metric, err := s.metricRepo.Get(ctx, menteeID, period)
	if err != nil || !metric.Submitted() {
		logger.WithError(err).Info("Mentorado sem métricas no período, metas progressivas mantidas")
		return updated
	}

	existing, err := s.progressiveGoalRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar metas progressivas")
		return updated
	}

	byType := make(map[domain.GoalType]*domain.ProgressiveGoal, len(existing))
	for _, g := range existing {
		byType[g.Type] = g
	}

	base := domain.EffectiveGoals(metric, mentee)
	for _, goalType := range domain.GoalTypes {
		goal, ok := advanceGoal(byType[goalType], goalType, base.For(goalType), metric.ValueFor(goalType), period, s.cfg.ProgressiveIncrementPct)
		if !ok {
			continue
		}
		goal.MenteeID = menteeID

		if err := s.progressiveGoalRepo.Save(ctx, goal); err != nil {
			logger.WithError(err).WithField("type", goalType).Error("Erro ao salvar meta progressiva")
			continue
		}
		updated = append(updated, goal)
	}

	return updated
}

// advanceGoal cria ou eleva a meta quando o valor realizado atinge a meta vigente
func advanceGoal(current *domain.ProgressiveGoal, goalType domain.GoalType, base, value float64, period domain.Period, incrementPct int) (*domain.ProgressiveGoal, bool) {
	factor := 1 + float64(incrementPct)/100

	if current == nil {
		if base <= 0 || value < base {
			return nil, false
		}
		return &domain.ProgressiveGoal{
			Type:         goalType,
			InitialGoal:  base,
			CurrentGoal:  math.Round(base * factor),
			IncrementPct: incrementPct,
			TimesMet:     1,
			LastYear:     period.Year,
			LastMonth:    period.Month,
		}, true
	}

	if current.AppliedIn(period) || current.CurrentGoal <= 0 || value < current.CurrentGoal {
		return nil, false
	}

	next := *current
	next.TimesMet++
	next.CurrentGoal = math.Round(next.InitialGoal * math.Pow(factor, float64(next.TimesMet)))
	next.IncrementPct = incrementPct
	next.LastYear = period.Year
	next.LastMonth = period.Month
	return &next, true
}

func (s *Service) GetProgressiveGoals(ctx context.Context, menteeID int64) ([]*domain.ProgressiveGoal, error) {
	goals, err := s.progressiveGoalRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		return nil, NewMenteeGamificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, menteeID, "Falha ao buscar metas progressivas")
	}
	if goals == nil {
		goals = []*domain.ProgressiveGoal{}
	}
	return goals, nil
}

func lookback(metrics []*domain.MonthlyMetric, months int) []*domain.MonthlyMetric {
	if months > 0 && len(metrics) > months {
		return metrics[:months]
	}
	return metrics
}
