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

var rankingColumns = []string{
	"r.id",
	"r.mentee_id",
	"m.full_name",
	"m.photo_url",
	"r.year",
	"r.month",
	"r.cohort",
	"r.position",
	"r.total_score",
	"r.bonus_points",
	"r.created_at",
}

type RankingRepository interface {
	ReplacePeriod(ctx context.Context, period domain.Period, entries []*domain.RankingEntry) error
	GetByPeriod(ctx context.Context, period domain.Period) ([]*domain.RankingEntry, error)
	GetEntry(ctx context.Context, menteeID int64, period domain.Period) (*domain.RankingEntry, error)
}

type rankingRepository struct {
	conn *postgres.Connection
}

func NewRankingRepository(conn *postgres.Connection) RankingRepository {
	return &rankingRepository{
		conn: conn,
	}
}

// ReplacePeriod apaga o ranking do período e grava o novo na mesma transação
func (r *rankingRepository) ReplacePeriod(ctx context.Context, period domain.Period, entries []*domain.RankingEntry) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(monthlyRankingTable).
		Where(squirrel.Eq{"year": period.Year, "month": period.Month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover ranking de %s: %w", period, err)
		}

		if len(entries) == 0 {
			return nil
		}

		query := squirrel.StatementBuilder.
			Insert(monthlyRankingTable).
			Columns("mentee_id", "year", "month", "cohort", "position", "total_score", "bonus_points").
			PlaceholderFormat(squirrel.Dollar)

		for _, entry := range entries {
			query = query.Values(
				entry.MenteeID,
				period.Year,
				period.Month,
				entry.Cohort,
				entry.Position,
				entry.TotalScore,
				entry.BonusPoints,
			)
		}

		insertSQL, insertArgs, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir ranking de %s: %w", period, err)
		}

		return nil
	})
}

func (r *rankingRepository) GetByPeriod(ctx context.Context, period domain.Period) ([]*domain.RankingEntry, error) {
	query, args, err := squirrel.
		Select(rankingColumns...).
		From(monthlyRankingTable + " r").
		Join(menteesTable + " m ON m.id = r.mentee_id").
		Where(squirrel.Eq{"r.year": period.Year, "r.month": period.Month}).
		OrderBy("r.position ASC").
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

	entries := make([]*domain.RankingEntry, 0)
	for rows.Next() {
		entry, err := scanRankingEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *rankingRepository) GetEntry(ctx context.Context, menteeID int64, period domain.Period) (*domain.RankingEntry, error) {
	query, args, err := squirrel.
		Select(rankingColumns...).
		From(monthlyRankingTable + " r").
		Join(menteesTable + " m ON m.id = r.mentee_id").
		Where(squirrel.Eq{"r.mentee_id": menteeID, "r.year": period.Year, "r.month": period.Month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanRankingEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return entry, nil
}

func scanRankingEntry(s scanner) (*domain.RankingEntry, error) {
	e := &domain.RankingEntry{}

	err := s.Scan(
		&e.ID,
		&e.MenteeID,
		&e.MenteeName,
		&e.PhotoURL,
		&e.Year,
		&e.Month,
		&e.Cohort,
		&e.Position,
		&e.TotalScore,
		&e.BonusPoints,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return e, nil
}
