package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

type ProgressiveGoalRepository interface {
	ListByMentee(ctx context.Context, menteeID int64) ([]*domain.ProgressiveGoal, error)
	Save(ctx context.Context, goal *domain.ProgressiveGoal) error
}

type progressiveGoalRepository struct {
	conn *postgres.Connection
}

func NewProgressiveGoalRepository(conn *postgres.Connection) ProgressiveGoalRepository {
	return &progressiveGoalRepository{
		conn: conn,
	}
}

func (r *progressiveGoalRepository) ListByMentee(ctx context.Context, menteeID int64) ([]*domain.ProgressiveGoal, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"mentee_id",
			"type",
			"current_goal",
			"initial_goal",
			"increment_pct",
			"times_met",
			"last_year",
			"last_month",
			"updated_at",
		).
		From(progressiveGoalsTable).
		Where(squirrel.Eq{"mentee_id": menteeID}).
		OrderBy("type ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.ProgressiveGoal, 0)
	for rows.Next() {
		g := &domain.ProgressiveGoal{}
		var goalType string
		err := rows.Scan(
			&g.ID,
			&g.MenteeID,
			&goalType,
			&g.CurrentGoal,
			&g.InitialGoal,
			&g.IncrementPct,
			&g.TimesMet,
			&g.LastYear,
			&g.LastMonth,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta progressiva: %w", err)
		}
		g.Type = domain.GoalType(goalType)
		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

// Save grava a meta por (mentorado, tipo). Em concorrência vale a última escrita.
func (r *progressiveGoalRepository) Save(ctx context.Context, goal *domain.ProgressiveGoal) error {
	query, args, err := squirrel.
		Insert(progressiveGoalsTable).
		Columns("mentee_id", "type", "current_goal", "initial_goal", "increment_pct", "times_met", "last_year", "last_month").
		Values(
			goal.MenteeID,
			string(goal.Type),
			goal.CurrentGoal,
			goal.InitialGoal,
			goal.IncrementPct,
			goal.TimesMet,
			goal.LastYear,
			goal.LastMonth,
		).
		Suffix(`
			ON CONFLICT (mentee_id, type) DO UPDATE SET
				current_goal = EXCLUDED.current_goal,
				times_met = EXCLUDED.times_met,
				last_year = EXCLUDED.last_year,
				last_month = EXCLUDED.last_month,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&goal.ID, &goal.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao salvar meta progressiva %s do mentorado %d: %w", goal.Type, goal.MenteeID, err)
	}
	return nil
}
