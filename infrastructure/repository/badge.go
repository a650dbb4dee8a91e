package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

var badgeColumns = []string{
	"b.id",
	"b.code",
	"b.name",
	"b.description",
	"b.icon",
	"b.color",
	"b.category",
	"b.criterion",
	"b.points",
	"b.created_at",
}

type BadgeRepository interface {
	SeedCatalog(ctx context.Context, badges []domain.Badge) (int64, error)
	List(ctx context.Context) ([]*domain.Badge, error)
	GetByCode(ctx context.Context, code string) (*domain.Badge, error)
}

type badgeRepository struct {
	conn *postgres.Connection
}

func NewBadgeRepository(conn *postgres.Connection) BadgeRepository {
	return &badgeRepository{
		conn: conn,
	}
}

// SeedCatalog insere as badges que ainda não existem e retorna quantas foram criadas
func (r *badgeRepository) SeedCatalog(ctx context.Context, badges []domain.Badge) (int64, error) {
	if len(badges) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert(badgesTable).
		Columns("code", "name", "description", "icon", "color", "category", "criterion", "points").
		PlaceholderFormat(squirrel.Dollar)

	for _, b := range badges {
		if err := b.Criterion.Validate(); err != nil {
			return 0, fmt.Errorf("badge %s: %w", b.Code, err)
		}
		query = query.Values(b.Code, b.Name, b.Description, b.Icon, b.Color, string(b.Category), b.Criterion.Encode(), b.Points)
	}

	sqlQuery, args, err := query.Suffix("ON CONFLICT (code) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir catálogo de badges: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	return inserted, nil
}

// List retorna o catálogo ordenado por categoria e pontos.
// Badges com critério inválido são descartadas.
func (r *badgeRepository) List(ctx context.Context) ([]*domain.Badge, error) {
	query, args, err := squirrel.
		Select(badgeColumns...).
		From(badgesTable+" b").
		OrderBy("b.category ASC", "b.points ASC").
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

	badges := make([]*domain.Badge, 0)
	for rows.Next() {
		badge, err := scanBadge(rows)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCriterion) {
				logrus.WithError(err).Warn("Badge ignorada por critério inválido")
				continue
			}
			return nil, fmt.Errorf("erro ao escanear badge: %w", err)
		}
		badges = append(badges, badge)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return badges, nil
}

func (r *badgeRepository) GetByCode(ctx context.Context, code string) (*domain.Badge, error) {
	query, args, err := squirrel.
		Select(badgeColumns...).
		From(badgesTable + " b").
		Where(squirrel.Eq{"b.code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	badge, err := scanBadge(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear badge %s: %w", code, err)
	}
	return badge, nil
}

func scanBadge(s scanner) (*domain.Badge, error) {
	b := &domain.Badge{}
	var category, criterion string

	err := s.Scan(
		&b.ID,
		&b.Code,
		&b.Name,
		&b.Description,
		&b.Icon,
		&b.Color,
		&category,
		&criterion,
		&b.Points,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Category = domain.BadgeCategory(category)
	b.Criterion, err = domain.ParseCriterion(criterion)
	if err != nil {
		return nil, fmt.Errorf("badge %s: %w", b.Code, err)
	}

	return b, nil
}
