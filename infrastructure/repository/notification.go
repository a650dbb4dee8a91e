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

var notificationColumns = []string{
	"id",
	"mentee_id",
	"type",
	"title",
	"message",
	"read",
	"sent_by_email",
	"created_at",
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByMentee(ctx context.Context, menteeID int64, onlyUnread bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	MarkSentByEmail(ctx context.Context, id int64) error
}

type notificationRepository struct {
	conn *postgres.Connection
}

func NewNotificationRepository(conn *postgres.Connection) NotificationRepository {
	return &notificationRepository{
		conn: conn,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query, args, err := squirrel.
		Insert(notificationsTable).
		Columns("mentee_id", "type", "title", "message").
		Values(n.MenteeID, string(n.Type), n.Title, n.Message).
		Suffix("RETURNING id, read, sent_by_email, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.Read, &n.SentByEmail, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar notificação para o mentorado %d: %w", n.MenteeID, err)
	}

	return n, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	query, args, err := squirrel.
		Select(notificationColumns...).
		From(notificationsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	n, err := scanNotification(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear notificação: %w", err)
	}
	return n, nil
}

// ListByMentee retorna as notificações mais recentes primeiro
func (r *notificationRepository) ListByMentee(ctx context.Context, menteeID int64, onlyUnread bool) ([]*domain.Notification, error) {
	builder := squirrel.
		Select(notificationColumns...).
		From(notificationsTable).
		Where(squirrel.Eq{"mentee_id": menteeID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyUnread {
		builder = builder.Where(squirrel.Eq{"read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear notificação: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	return r.setFlag(ctx, id, "read")
}

func (r *notificationRepository) MarkSentByEmail(ctx context.Context, id int64) error {
	return r.setFlag(ctx, id, "sent_by_email")
}

func (r *notificationRepository) setFlag(ctx context.Context, id int64, column string) error {
	query, args, err := squirrel.
		Update(notificationsTable).
		Set(column, true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar %s da notificação %d: %w", column, id, err)
	}
	return nil
}

func scanNotification(s scanner) (*domain.Notification, error) {
	n := &domain.Notification{}
	var notificationType string

	err := s.Scan(
		&n.ID,
		&n.MenteeID,
		&notificationType,
		&n.Title,
		&n.Message,
		&n.Read,
		&n.SentByEmail,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.Type = domain.NotificationType(notificationType)
	return n, nil
}
