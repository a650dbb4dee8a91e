package mentoring

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=mentees.go -destination=mocks/mock_mentees.go -package=mocks

type MenteeManager interface {
	Create(ctx context.Context, req *domain.CreateMenteeRequest) (*domain.Mentee, error)
	Update(ctx context.Context, req *domain.UpdateMenteeRequest) (*domain.Mentee, error)
	List(ctx context.Context) ([]*domain.Mentee, error)
	Get(ctx context.Context, id int64) (*domain.Mentee, error)
	ResolveMentee(ctx context.Context, claims *domain.Claims) (*domain.Mentee, error)
	GetOverview(ctx context.Context, mentee *domain.Mentee) (*domain.MenteeOverview, error)
}

// StreakProvider calcula o streak atual de um mentorado
type StreakProvider interface {
	GetStreak(ctx context.Context, menteeID int64) domain.Streak
}

// RankingInvalidator descarta os rankings em cache, que guardam nome, foto e turma
type RankingInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

type MenteeService struct {
	menteeRepo      repository.MenteeRepository
	metricRepo      repository.MonthlyMetricRepository
	menteeBadgeRepo repository.MenteeBadgeRepository
	streaks         StreakProvider
	rankings        RankingInvalidator
}

func NewMenteeService(
	menteeRepo repository.MenteeRepository,
	metricRepo repository.MonthlyMetricRepository,
	menteeBadgeRepo repository.MenteeBadgeRepository,
	streaks StreakProvider,
	rankings RankingInvalidator,
) *MenteeService {
	return &MenteeService{
		menteeRepo:      menteeRepo,
		metricRepo:      metricRepo,
		menteeBadgeRepo: menteeBadgeRepo,
		streaks:         streaks,
		rankings:        rankings,
	}
}

func (s *MenteeService) Create(ctx context.Context, req *domain.CreateMenteeRequest) (*domain.Mentee, error) {
	if req == nil || strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, NewMetricsError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "user_id e full_name são obrigatórios")
	}

	mentee := &domain.Mentee{
		UserID:   req.UserID,
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		PhotoURL: req.PhotoURL,
		Cohort:   req.Cohort,
		Active:   true,
	}
	if req.RevenueGoal != nil {
		mentee.RevenueGoal = *req.RevenueGoal
	}
	if req.LeadsGoal != nil {
		mentee.LeadsGoal = *req.LeadsGoal
	}
	if req.ProceduresGoal != nil {
		mentee.ProceduresGoal = *req.ProceduresGoal
	}
	if req.PostsGoal != nil {
		mentee.PostsGoal = *req.PostsGoal
	}
	if req.StoriesGoal != nil {
		mentee.StoriesGoal = *req.StoriesGoal
	}
	mentee.ApplyDefaultGoals()

	created, err := s.menteeRepo.Create(ctx, mentee)
	if err != nil {
		if errors.Is(err, repository.ErrMenteeAlreadyExists) {
			return nil, NewMetricsError(ErrMenteeAlreadyExists, apiErrors.ErrMenteeAlreadyExists, req.UserID)
		}
		logrus.WithError(err).WithField("user_id", req.UserID).Error("Erro ao criar mentorado")
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar mentorado")
	}

	return created, nil
}

func (s *MenteeService) Update(ctx context.Context, req *domain.UpdateMenteeRequest) (*domain.Mentee, error) {
	if req == nil {
		return nil, NewMetricsError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio")
	}

	if _, err := s.Get(ctx, req.ID); err != nil {
		return nil, err
	}

	if err := s.menteeRepo.Update(ctx, req); err != nil {
		logrus.WithError(err).WithField("mentee_id", req.ID).Error("Erro ao atualizar mentorado")
		return nil, NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.ID, "Falha ao atualizar mentorado")
	}

	if req.FullName != nil || req.PhotoURL != nil || req.Cohort != nil {
		if err := s.rankings.InvalidateAll(ctx); err != nil {
			logrus.WithError(err).WithField("mentee_id", req.ID).Warn("Erro ao invalidar rankings em cache")
		}
	}

	return s.Get(ctx, req.ID)
}

func (s *MenteeService) List(ctx context.Context) ([]*domain.Mentee, error) {
	mentees, err := s.menteeRepo.List(ctx)
	if err != nil {
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar mentorados")
	}
	if mentees == nil {
		mentees = []*domain.Mentee{}
	}
	return mentees, nil
}

func (s *MenteeService) Get(ctx context.Context, id int64) (*domain.Mentee, error) {
	mentee, err := s.menteeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar mentorado")
	}
	if mentee == nil {
		return nil, NewMenteeMetricsError(ErrMenteeNotFound, apiErrors.ErrMenteeNotFound, id, "")
	}
	return mentee, nil
}

// ResolveMentee encontra o mentorado do usuário autenticado. O id presente no token tem precedência.
func (s *MenteeService) ResolveMentee(ctx context.Context, claims *domain.Claims) (*domain.Mentee, error) {
	if claims == nil {
		return nil, NewMetricsError(ErrMenteeNotLinked, apiErrors.ErrMenteeNotLinked, "")
	}

	if claims.MenteeID != nil {
		return s.Get(ctx, *claims.MenteeID)
	}

	mentee, err := s.menteeRepo.GetByUserID(ctx, claims.UserID())
	if err != nil {
		return nil, NewMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar mentorado do usuário")
	}
	if mentee == nil {
		return nil, NewMetricsError(ErrMenteeNotLinked, apiErrors.ErrMenteeNotLinked, claims.UserID())
	}
	return mentee, nil
}

// GetOverview monta o resumo do dashboard. Falhas nas partes secundárias não impedem a resposta.
func (s *MenteeService) GetOverview(ctx context.Context, mentee *domain.Mentee) (*domain.MenteeOverview, error) {
	logger := logrus.WithField("mentee_id", mentee.ID)

	count, err := s.metricRepo.CountByMentee(ctx, mentee.ID)
	if err != nil {
		return nil, NewMenteeMetricsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, mentee.ID, "Falha ao contar métricas")
	}

	overview := &domain.MenteeOverview{
		Mentee:          mentee,
		OnboardingState: domain.OnboardingNew,
		MonthsRecorded:  count,
	}
	if count == 0 {
		return overview, nil
	}
	overview.OnboardingState = domain.OnboardingActive

	latest, err := s.metricRepo.ListByMentee(ctx, mentee.ID, 1)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar última métrica")
	} else if len(latest) > 0 {
		overview.LatestMetric = latest[0]
	}

	badges, err := s.menteeBadgeRepo.ListByMentee(ctx, mentee.ID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao contar badges")
	} else {
		overview.BadgesCount = len(badges)
	}

	overview.Streak = s.streaks.GetStreak(ctx, mentee.ID)

	return overview, nil
}
