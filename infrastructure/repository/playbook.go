package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

type PlaybookRepository interface {
	Progress(ctx context.Context, menteeID int64) (*domain.PlaybookProgress, error)
}

type playbookRepository struct {
	conn *postgres.Connection
}

func NewPlaybookRepository(conn *postgres.Connection) PlaybookRepository {
	return &playbookRepository{
		conn: conn,
	}
}

// Progress conta os itens do playbook e quantos o mentorado concluiu
func (r *playbookRepository) Progress(ctx context.Context, menteeID int64) (*domain.PlaybookProgress, error) {
	query, args, err := squirrel.
		Select("COUNT(pi.id)", "COUNT(pp.item_id)").
		From(playbookItemsTable+" pi").
		LeftJoin(playbookProgressTable+" pp ON pp.item_id = pi.id AND pp.mentee_id = ? AND pp.completed", menteeID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	progress := &domain.PlaybookProgress{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&progress.Total, &progress.Completed); err != nil {
		return nil, fmt.Errorf("erro ao consultar progresso do playbook: %w", err)
	}

	return progress, nil
}
