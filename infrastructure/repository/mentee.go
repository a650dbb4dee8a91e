package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

var ErrMenteeAlreadyExists = errors.New("mentorado já cadastrado")

var menteeColumns = []string{
	"m.id",
	"m.user_id",
	"m.full_name",
	"m.email",
	"m.photo_url",
	"m.cohort",
	"m.revenue_goal",
	"m.leads_goal",
	"m.procedures_goal",
	"m.posts_goal",
	"m.stories_goal",
	"m.active",
	"m.onboarding_completed",
	"m.instagram_connected",
	"m.last_metrics_reminder",
	"m.created_at",
	"m.updated_at",
}

type MenteeRepository interface {
	Create(ctx context.Context, mentee *domain.Mentee) (*domain.Mentee, error)
	Update(ctx context.Context, req *domain.UpdateMenteeRequest) error
	GetByID(ctx context.Context, id int64) (*domain.Mentee, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Mentee, error)
	List(ctx context.Context) ([]*domain.Mentee, error)
	ListActive(ctx context.Context) ([]*domain.Mentee, error)
	ListActiveWithoutMetrics(ctx context.Context, period domain.Period) ([]*domain.Mentee, error)
	TouchMetricsReminder(ctx context.Context, id int64, at time.Time) error
	SetInstagramConnected(ctx context.Context, id int64, connected bool) error
}

type menteeRepository struct {
	conn *postgres.Connection
}

func NewMenteeRepository(conn *postgres.Connection) MenteeRepository {
	return &menteeRepository{
		conn: conn,
	}
}

func (r *menteeRepository) Create(ctx context.Context, mentee *domain.Mentee) (*domain.Mentee, error) {
	query, args, err := squirrel.
		Insert(menteesTable).
		Columns(
			"user_id",
			"full_name",
			"email",
			"photo_url",
			"cohort",
			"revenue_goal",
			"leads_goal",
			"procedures_goal",
			"posts_goal",
			"stories_goal",
			"active",
		).
		Values(
			mentee.UserID,
			mentee.FullName,
			mentee.Email,
			mentee.PhotoURL,
			mentee.Cohort,
			mentee.RevenueGoal,
			mentee.LeadsGoal,
			mentee.ProceduresGoal,
			mentee.PostsGoal,
			mentee.StoriesGoal,
			mentee.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&mentee.ID, &mentee.CreatedAt, &mentee.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrMenteeAlreadyExists
		}
		return nil, fmt.Errorf("erro ao inserir mentorado: %w", err)
	}

	return mentee, nil
}

func (r *menteeRepository) Update(ctx context.Context, req *domain.UpdateMenteeRequest) error {
	queryBuilder := squirrel.
		Update(menteesTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.FullName != nil {
		queryBuilder = queryBuilder.Set("full_name", *req.FullName)
	}
	if req.Email != nil {
		queryBuilder = queryBuilder.Set("email", *req.Email)
	}
	if req.PhotoURL != nil {
		queryBuilder = queryBuilder.Set("photo_url", *req.PhotoURL)
	}
	if req.Cohort != nil {
		queryBuilder = queryBuilder.Set("cohort", *req.Cohort)
	}
	if req.RevenueGoal != nil {
		queryBuilder = queryBuilder.Set("revenue_goal", *req.RevenueGoal)
	}
	if req.LeadsGoal != nil {
		queryBuilder = queryBuilder.Set("leads_goal", *req.LeadsGoal)
	}
	if req.ProceduresGoal != nil {
		queryBuilder = queryBuilder.Set("procedures_goal", *req.ProceduresGoal)
	}
	if req.PostsGoal != nil {
		queryBuilder = queryBuilder.Set("posts_goal", *req.PostsGoal)
	}
	if req.StoriesGoal != nil {
		queryBuilder = queryBuilder.Set("stories_goal", *req.StoriesGoal)
	}
	if req.Active != nil {
		queryBuilder = queryBuilder.Set("active", *req.Active)
	}
	if req.OnboardingCompleted != nil {
		queryBuilder = queryBuilder.Set("onboarding_completed", *req.OnboardingCompleted)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar mentorado %d: %w", req.ID, err)
	}

	return nil
}

func (r *menteeRepository) GetByID(ctx context.Context, id int64) (*domain.Mentee, error) {
	return r.getOne(ctx, squirrel.Eq{"m.id": id})
}

func (r *menteeRepository) GetByUserID(ctx context.Context, userID string) (*domain.Mentee, error) {
	return r.getOne(ctx, squirrel.Eq{"m.user_id": userID})
}

func (r *menteeRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Mentee, error) {
	query, args, err := squirrel.
		Select(menteeColumns...).
		From(menteesTable + " m").
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	mentee, err := scanMentee(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear mentorado: %w", err)
	}

	return mentee, nil
}

func (r *menteeRepository) List(ctx context.Context) ([]*domain.Mentee, error) {
	return r.list(ctx, squirrel.
		Select(menteeColumns...).
		From(menteesTable+" m").
		OrderBy("m.full_name ASC"))
}

func (r *menteeRepository) ListActive(ctx context.Context) ([]*domain.Mentee, error) {
	return r.list(ctx, squirrel.
		Select(menteeColumns...).
		From(menteesTable+" m").
		Where(squirrel.Eq{"m.active": true}).
		OrderBy("m.id ASC"))
}

// ListActiveWithoutMetrics retorna os mentorados ativos que ainda não enviaram valores no período.
// Linhas que só têm metas não contam como envio.
func (r *menteeRepository) ListActiveWithoutMetrics(ctx context.Context, period domain.Period) ([]*domain.Mentee, error) {
	return r.list(ctx, activeWithoutMetricsQuery(period))
}

func activeWithoutMetricsQuery(period domain.Period) squirrel.SelectBuilder {
	return squirrel.
		Select(menteeColumns...).
		From(menteesTable+" m").
		LeftJoin(monthlyMetricsTable+" mm ON mm.mentee_id = m.id AND mm.year = ? AND mm.month = ? AND mm.submitted_at IS NOT NULL", period.Year, period.Month).
		Where(squirrel.Eq{"m.active": true, "mm.id": nil}).
		OrderBy("m.id ASC")
}

func (r *menteeRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Mentee, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	mentees := make([]*domain.Mentee, 0)
	for rows.Next() {
		mentee, err := scanMentee(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear mentorado: %w", err)
		}
		mentees = append(mentees, mentee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return mentees, nil
}

func (r *menteeRepository) TouchMetricsReminder(ctx context.Context, id int64, at time.Time) error {
	query, args, err := squirrel.
		Update(menteesTable).
		Set("last_metrics_reminder", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar lembrete do mentorado %d: %w", id, err)
	}
	return nil
}

func (r *menteeRepository) SetInstagramConnected(ctx context.Context, id int64, connected bool) error {
	query, args, err := squirrel.
		Update(menteesTable).
		Set("instagram_connected", connected).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar conexão do instagram: %w", err)
	}
	return nil
}

func scanMentee(s scanner) (*domain.Mentee, error) {
	m := &domain.Mentee{}

	err := s.Scan(
		&m.ID,
		&m.UserID,
		&m.FullName,
		&m.Email,
		&m.PhotoURL,
		&m.Cohort,
		&m.RevenueGoal,
		&m.LeadsGoal,
		&m.ProceduresGoal,
		&m.PostsGoal,
		&m.StoriesGoal,
		&m.Active,
		&m.OnboardingCompleted,
		&m.InstagramConnected,
		&m.LastMetricsReminder,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}
