package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

var monthlyMetricColumns = []string{
	"mm.id",
	"mm.mentee_id",
	"mm.year",
	"mm.month",
	"mm.revenue",
	"mm.profit",
	"mm.leads",
	"mm.procedures",
	"mm.posts",
	"mm.stories",
	"mm.notes",
	"mm.revenue_goal",
	"mm.leads_goal",
	"mm.procedures_goal",
	"mm.posts_goal",
	"mm.stories_goal",
	"mm.submitted_at",
	"mm.created_at",
	"mm.updated_at",
}

type MonthlyMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.MonthlyMetric) (*domain.MonthlyMetric, error)
	UpsertField(ctx context.Context, menteeID int64, period domain.Period, field domain.MetricField, value float64) (int64, error)
	Get(ctx context.Context, menteeID int64, period domain.Period) (*domain.MonthlyMetric, error)
	ListByMentee(ctx context.Context, menteeID int64, limit uint64) ([]*domain.MonthlyMetric, error)
	ListByPeriod(ctx context.Context, period domain.Period) ([]*domain.MonthlyMetric, error)
	CountByMentee(ctx context.Context, menteeID int64) (int, error)
	CohortAverages(ctx context.Context, periods []domain.Period) (map[domain.Period]float64, error)
	UpsertGoals(ctx context.Context, menteeID int64, period domain.Period, goals domain.Goals) error
	UpsertGoalsForActive(ctx context.Context, period domain.Period, goals domain.Goals) (int64, error)
}

type monthlyMetricRepository struct {
	conn *postgres.Connection
}

func NewMonthlyMetricRepository(conn *postgres.Connection) MonthlyMetricRepository {
	return &monthlyMetricRepository{
		conn: conn,
	}
}

// Upsert grava o formulário completo do mês, uma linha por (mentorado, ano, mês).
// submitted_at guarda o primeiro envio e não muda nas edições seguintes.
func (r *monthlyMetricRepository) Upsert(ctx context.Context, metric *domain.MonthlyMetric) (*domain.MonthlyMetric, error) {
	query, args, err := upsertMetricQuery(metric).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&metric.ID, &metric.SubmittedAt, &metric.CreatedAt, &metric.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar métricas do mentorado %d: %w", metric.MenteeID, err)
	}

	return metric, nil
}

func upsertMetricQuery(metric *domain.MonthlyMetric) squirrel.InsertBuilder {
	return squirrel.
		Insert(monthlyMetricsTable).
		Columns(
			"mentee_id",
			"year",
			"month",
			"revenue",
			"profit",
			"leads",
			"procedures",
			"posts",
			"stories",
			"notes",
			"submitted_at",
		).
		Values(
			metric.MenteeID,
			metric.Year,
			metric.Month,
			metric.Revenue,
			metric.Profit,
			metric.Leads,
			metric.Procedures,
			metric.Posts,
			metric.Stories,
			metric.Notes,
			squirrel.Expr("CURRENT_TIMESTAMP"),
		).
		Suffix(`
			ON CONFLICT (mentee_id, year, month) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				profit = EXCLUDED.profit,
				leads = EXCLUDED.leads,
				procedures = EXCLUDED.procedures,
				posts = EXCLUDED.posts,
				stories = EXCLUDED.stories,
				notes = EXCLUDED.notes,
				submitted_at = COALESCE(monthly_metrics.submitted_at, EXCLUDED.submitted_at),
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, submitted_at, created_at, updated_at
		`)
}

// UpsertField salva um único campo, criando a linha do mês se ainda não existir
func (r *monthlyMetricRepository) UpsertField(
	ctx context.Context,
	menteeID int64,
	period domain.Period,
	field domain.MetricField,
	value float64,
) (int64, error) {
	query, args, err := upsertFieldQuery(menteeID, period, field, value)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao salvar campo %s: %w", field.Column(), err)
	}

	return id, nil
}

func upsertFieldQuery(menteeID int64, period domain.Period, field domain.MetricField, value float64) (string, []any, error) {
	column := field.Column()
	if column == "" {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrInvalidMetricField, field)
	}

	var fieldValue any = value
	if field.IsInteger() {
		if value != math.Trunc(value) {
			return "", nil, fmt.Errorf("%w: %s não aceita valor fracionado", domain.ErrInvalidMetricField, field)
		}
		fieldValue = int64(value)
	}

	query, args, err := squirrel.
		Insert(monthlyMetricsTable).
		Columns("mentee_id", "year", "month", column, "submitted_at").
		Values(menteeID, period.Year, period.Month, fieldValue, squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix(fmt.Sprintf(`
			ON CONFLICT (mentee_id, year, month) DO UPDATE SET
				%[1]s = EXCLUDED.%[1]s,
				submitted_at = COALESCE(monthly_metrics.submitted_at, EXCLUDED.submitted_at),
				updated_at = CURRENT_TIMESTAMP
			RETURNING id
		`, column)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}
	return query, args, nil
}

func (r *monthlyMetricRepository) Get(ctx context.Context, menteeID int64, period domain.Period) (*domain.MonthlyMetric, error) {
	query, args, err := squirrel.
		Select(monthlyMetricColumns...).
		From(monthlyMetricsTable + " mm").
		Where(squirrel.Eq{"mm.mentee_id": menteeID, "mm.year": period.Year, "mm.month": period.Month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metric, err := scanMonthlyMetric(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
	}

	return metric, nil
}

// ListByMentee retorna os meses enviados do mais recente para o mais antigo. limit 0 retorna tudo.
func (r *monthlyMetricRepository) ListByMentee(ctx context.Context, menteeID int64, limit uint64) ([]*domain.MonthlyMetric, error) {
	return r.list(ctx, listByMenteeQuery(menteeID, limit))
}

func listByMenteeQuery(menteeID int64, limit uint64) squirrel.SelectBuilder {
	builder := squirrel.
		Select(monthlyMetricColumns...).
		From(monthlyMetricsTable + " mm").
		Where(squirrel.Eq{"mm.mentee_id": menteeID}).
		Where(submittedOnly).
		OrderBy("mm.year DESC", "mm.month DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}
	return builder
}

// ListByPeriod retorna as métricas enviadas no período pelos mentorados ativos
func (r *monthlyMetricRepository) ListByPeriod(ctx context.Context, period domain.Period) ([]*domain.MonthlyMetric, error) {
	return r.list(ctx, listByPeriodQuery(period))
}

func listByPeriodQuery(period domain.Period) squirrel.SelectBuilder {
	return squirrel.
		Select(monthlyMetricColumns...).
		From(monthlyMetricsTable+" mm").
		Join(menteesTable+" m ON m.id = mm.mentee_id").
		Where(squirrel.Eq{"mm.year": period.Year, "mm.month": period.Month, "m.active": true}).
		Where(submittedOnly).
		OrderBy("mm.mentee_id ASC")
}

func (r *monthlyMetricRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.MonthlyMetric, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.MonthlyMetric, 0)
	for rows.Next() {
		metric, err := scanMonthlyMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *monthlyMetricRepository) CountByMentee(ctx context.Context, menteeID int64) (int, error) {
	query, args, err := countByMenteeQuery(menteeID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar métricas: %w", err)
	}
	return count, nil
}

func countByMenteeQuery(menteeID int64) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*)").
		From(monthlyMetricsTable + " mm").
		Where(squirrel.Eq{"mm.mentee_id": menteeID}).
		Where(submittedOnly)
}

// CohortAverages calcula a média de faturamento dos mentorados ativos em cada período
func (r *monthlyMetricRepository) CohortAverages(ctx context.Context, periods []domain.Period) (map[domain.Period]float64, error) {
	averages := make(map[domain.Period]float64, len(periods))
	if len(periods) == 0 {
		return averages, nil
	}

	query, args, err := cohortAveragesQuery(periods).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular média da turma: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Period
		var avg float64
		if err := rows.Scan(&p.Year, &p.Month, &avg); err != nil {
			return nil, fmt.Errorf("erro ao escanear média: %w", err)
		}
		averages[p] = avg
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return averages, nil
}

func cohortAveragesQuery(periods []domain.Period) squirrel.SelectBuilder {
	or := squirrel.Or{}
	for _, p := range periods {
		or = append(or, squirrel.Eq{"mm.year": p.Year, "mm.month": p.Month})
	}

	return squirrel.
		Select("mm.year", "mm.month", "AVG(mm.revenue)").
		From(monthlyMetricsTable + " mm").
		Join(menteesTable + " m ON m.id = mm.mentee_id").
		Where(squirrel.Eq{"m.active": true}).
		Where(submittedOnly).
		Where(or).
		GroupBy("mm.year", "mm.month")
}

// UpsertGoals define as metas do mês, mantendo as que não foram informadas
func (r *monthlyMetricRepository) UpsertGoals(ctx context.Context, menteeID int64, period domain.Period, goals domain.Goals) error {
	query, args, err := upsertGoalsQuery(menteeID, period, goals).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de metas: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar metas do mentorado %d: %w", menteeID, err)
	}
	return nil
}

// upsertGoalsQuery não toca em submitted_at: metas sozinhas não contam como envio
func upsertGoalsQuery(menteeID int64, period domain.Period, goals domain.Goals) squirrel.InsertBuilder {
	return squirrel.
		Insert(monthlyMetricsTable).
		Columns("mentee_id", "year", "month", "revenue_goal", "leads_goal", "procedures_goal", "posts_goal", "stories_goal").
		Values(menteeID, period.Year, period.Month, goals.Revenue, goals.Leads, goals.Procedures, goals.Posts, goals.Stories).
		Suffix(goalsConflictClause)
}

// UpsertGoalsForActive aplica as mesmas metas para todos os mentorados ativos
func (r *monthlyMetricRepository) UpsertGoalsForActive(ctx context.Context, period domain.Period, goals domain.Goals) (int64, error) {
	selectActive := squirrel.
		Select("id").
		Column("?::int", period.Year).
		Column("?::int", period.Month).
		Column("?::numeric", goals.Revenue).
		Column("?::int", goals.Leads).
		Column("?::int", goals.Procedures).
		Column("?::int", goals.Posts).
		Column("?::int", goals.Stories).
		From(menteesTable).
		Where(squirrel.Eq{"active": true})

	query, args, err := squirrel.
		Insert(monthlyMetricsTable).
		Columns("mentee_id", "year", "month", "revenue_goal", "leads_goal", "procedures_goal", "posts_goal", "stories_goal").
		Select(selectActive).
		Suffix(goalsConflictClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de metas: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao salvar metas globais: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	return affected, nil
}

// submittedOnly descarta linhas que só têm metas
var submittedOnly = squirrel.NotEq{"mm.submitted_at": nil}

const goalsConflictClause = `
	ON CONFLICT (mentee_id, year, month) DO UPDATE SET
		revenue_goal = COALESCE(EXCLUDED.revenue_goal, monthly_metrics.revenue_goal),
		leads_goal = COALESCE(EXCLUDED.leads_goal, monthly_metrics.leads_goal),
		procedures_goal = COALESCE(EXCLUDED.procedures_goal, monthly_metrics.procedures_goal),
		posts_goal = COALESCE(EXCLUDED.posts_goal, monthly_metrics.posts_goal),
		stories_goal = COALESCE(EXCLUDED.stories_goal, monthly_metrics.stories_goal),
		updated_at = CURRENT_TIMESTAMP
`

func scanMonthlyMetric(s scanner) (*domain.MonthlyMetric, error) {
	m := &domain.MonthlyMetric{}

	err := s.Scan(
		&m.ID,
		&m.MenteeID,
		&m.Year,
		&m.Month,
		&m.Revenue,
		&m.Profit,
		&m.Leads,
		&m.Procedures,
		&m.Posts,
		&m.Stories,
		&m.Notes,
		&m.Goals.Revenue,
		&m.Goals.Leads,
		&m.Goals.Procedures,
		&m.Goals.Posts,
		&m.Goals.Stories,
		&m.SubmittedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}
