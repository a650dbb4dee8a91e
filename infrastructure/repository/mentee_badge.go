package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

type MenteeBadgeRepository interface {
	Award(ctx context.Context, award *domain.MenteeBadge) (bool, error)
	EarnedBadgeIDs(ctx context.Context, menteeID int64) (map[int64]bool, error)
	ListByMentee(ctx context.Context, menteeID int64) ([]*domain.MenteeBadge, error)
	PointsByPeriod(ctx context.Context, period domain.Period, excluded domain.CriterionKind) (map[int64]int, error)
}

type menteeBadgeRepository struct {
	conn *postgres.Connection
}

func NewMenteeBadgeRepository(conn *postgres.Connection) MenteeBadgeRepository {
	return &menteeBadgeRepository{
		conn: conn,
	}
}

// Award registra a conquista. Retorna false quando o mentorado já possui a badge.
func (r *menteeBadgeRepository) Award(ctx context.Context, award *domain.MenteeBadge) (bool, error) {
	query, args, err := squirrel.
		Insert(menteeBadgesTable).
		Columns("mentee_id", "badge_id", "year", "month").
		Values(award.MenteeID, award.BadgeID, award.Year, award.Month).
		Suffix("ON CONFLICT (mentee_id, badge_id) DO NOTHING RETURNING id, earned_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&award.ID, &award.EarnedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao registrar badge %d do mentorado %d: %w", award.BadgeID, award.MenteeID, err)
	}

	return true, nil
}

func (r *menteeBadgeRepository) EarnedBadgeIDs(ctx context.Context, menteeID int64) (map[int64]bool, error) {
	query, args, err := squirrel.
		Select("badge_id").
		From(menteeBadgesTable).
		Where(squirrel.Eq{"mentee_id": menteeID}).
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

	earned := make(map[int64]bool)
	for rows.Next() {
		var badgeID int64
		if err := rows.Scan(&badgeID); err != nil {
			return nil, fmt.Errorf("erro ao escanear badge: %w", err)
		}
		earned[badgeID] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return earned, nil
}

// ListByMentee retorna as conquistas com os dados da badge, mais recentes primeiro
func (r *menteeBadgeRepository) ListByMentee(ctx context.Context, menteeID int64) ([]*domain.MenteeBadge, error) {
	columns := append([]string{"mb.id", "mb.mentee_id", "mb.badge_id", "mb.year", "mb.month", "mb.earned_at"}, badgeColumns...)

	query, args, err := squirrel.
		Select(columns...).
		From(menteeBadgesTable + " mb").
		Join(badgesTable + " b ON b.id = mb.badge_id").
		Where(squirrel.Eq{"mb.mentee_id": menteeID}).
		OrderBy("mb.earned_at DESC").
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

	awards := make([]*domain.MenteeBadge, 0)
	for rows.Next() {
		award := &domain.MenteeBadge{Badge: &domain.Badge{}}
		var category, criterion string

		err := rows.Scan(
			&award.ID,
			&award.MenteeID,
			&award.BadgeID,
			&award.Year,
			&award.Month,
			&award.EarnedAt,
			&award.Badge.ID,
			&award.Badge.Code,
			&award.Badge.Name,
			&award.Badge.Description,
			&award.Badge.Icon,
			&award.Badge.Color,
			&category,
			&criterion,
			&award.Badge.Points,
			&award.Badge.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conquista: %w", err)
		}

		award.Badge.Category = domain.BadgeCategory(category)
		// Conquistas já registradas continuam visíveis mesmo se o critério mudar
		award.Badge.Criterion, _ = domain.ParseCriterion(criterion)

		awards = append(awards, award)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return awards, nil
}

// PointsByPeriod soma os pontos das badges conquistadas no período por mentorado,
// ignorando as badges cujo critério é do tipo informado
func (r *menteeBadgeRepository) PointsByPeriod(
	ctx context.Context,
	period domain.Period,
	excluded domain.CriterionKind,
) (map[int64]int, error) {
	query, args, err := pointsByPeriodQuery(period, excluded).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar pontos de badges: %w", err)
	}
	defer rows.Close()

	points := make(map[int64]int)
	for rows.Next() {
		var menteeID int64
		var total int
		if err := rows.Scan(&menteeID, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear pontos: %w", err)
		}
		points[menteeID] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func pointsByPeriodQuery(period domain.Period, excluded domain.CriterionKind) squirrel.SelectBuilder {
	return squirrel.
		Select("mb.mentee_id", "COALESCE(SUM(b.points), 0)").
		From(menteeBadgesTable+" mb").
		Join(badgesTable+" b ON b.id = mb.badge_id").
		Where(squirrel.Eq{"mb.year": period.Year, "mb.month": period.Month}).
		Where("(b.criterion::jsonb ->> 'tipo') IS DISTINCT FROM ?", string(excluded)).
		GroupBy("mb.mentee_id")
}
