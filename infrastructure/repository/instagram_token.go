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

type InstagramTokenRepository interface {
	Save(ctx context.Context, token *domain.InstagramToken) error
	Get(ctx context.Context, menteeID int64) (*domain.InstagramToken, error)
	Delete(ctx context.Context, menteeID int64) error
}

type instagramTokenRepository struct {
	conn *postgres.Connection
}

func NewInstagramTokenRepository(conn *postgres.Connection) InstagramTokenRepository {
	return &instagramTokenRepository{
		conn: conn,
	}
}

func (r *instagramTokenRepository) Save(ctx context.Context, token *domain.InstagramToken) error {
	query, args, err := squirrel.
		Insert(instagramTokensTable).
		Columns("mentee_id", "encrypted_token", "expires_at").
		Values(token.MenteeID, token.EncryptedToken, token.ExpiresAt).
		Suffix(`
			ON CONFLICT (mentee_id) DO UPDATE SET
				encrypted_token = EXCLUDED.encrypted_token,
				expires_at = EXCLUDED.expires_at,
				updated_at = CURRENT_TIMESTAMP
			RETURNING created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&token.CreatedAt, &token.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao salvar token do instagram: %w", err)
	}
	return nil
}

func (r *instagramTokenRepository) Get(ctx context.Context, menteeID int64) (*domain.InstagramToken, error) {
	query, args, err := squirrel.
		Select("mentee_id", "encrypted_token", "expires_at", "created_at", "updated_at").
		From(instagramTokensTable).
		Where(squirrel.Eq{"mentee_id": menteeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	token := &domain.InstagramToken{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&token.MenteeID,
		&token.EncryptedToken,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear token do instagram: %w", err)
	}
	return token, nil
}

func (r *instagramTokenRepository) Delete(ctx context.Context, menteeID int64) error {
	query, args, err := squirrel.
		Delete(instagramTokensTable).
		Where(squirrel.Eq{"mentee_id": menteeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover token do instagram: %w", err)
	}
	return nil
}
