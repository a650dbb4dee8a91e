// Package notifying entrega notificações no painel e por e-mail
package notifying

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/integrator/email"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_notifier.go -package=mocks

type Notifier interface {
	Send(ctx context.Context, menteeID int64, notificationType domain.NotificationType, payload Payload) (*domain.DeliveryResult, error)
	SendBadgeUnlocked(ctx context.Context, menteeID int64, badge *domain.Badge) (*domain.DeliveryResult, error)
	SendMetricsReminder(ctx context.Context, mentee *domain.Mentee, period domain.Period) (*domain.DeliveryResult, error)
	SendGoalAlert(ctx context.Context, menteeID int64, period domain.Period, alerts []string) (*domain.DeliveryResult, error)
	SendRankingPosition(ctx context.Context, menteeID int64, period domain.Period, position int) (*domain.DeliveryResult, error)
	SendInstagramReconnectNeeded(ctx context.Context, menteeID int64) (*domain.DeliveryResult, error)
	List(ctx context.Context, menteeID int64, onlyUnread bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, menteeID, notificationID int64) error
}

var nowFunc = time.Now

// Payload é o conteúdo de uma notificação nos dois canais
type Payload struct {
	Title        string
	Message      string
	EmailSubject string
	EmailBody    string
}

type Service struct {
	notificationRepo repository.NotificationRepository
	menteeRepo       repository.MenteeRepository
	sender           email.Sender
}

func NewService(
	notificationRepo repository.NotificationRepository,
	menteeRepo repository.MenteeRepository,
	sender email.Sender,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		menteeRepo:       menteeRepo,
		sender:           sender,
	}
}

// Send grava a notificação no painel e tenta o e-mail em seguida.
// Falha no e-mail não desfaz a notificação gravada.
func (s *Service) Send(ctx context.Context, menteeID int64, notificationType domain.NotificationType, payload Payload) (*domain.DeliveryResult, error) {
	logger := logrus.WithFields(logrus.Fields{
		"mentee_id": menteeID,
		"type":      notificationType,
	})

	notification, err := s.notificationRepo.Create(ctx, &domain.Notification{
		MenteeID: menteeID,
		Type:     notificationType,
		Title:    payload.Title,
		Message:  payload.Message,
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao criar notificação")
		return &domain.DeliveryResult{}, NewNotificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar notificação")
	}

	result := &domain.DeliveryResult{NotificationID: notification.ID, InApp: true}
	logger = logger.WithField("notification_id", notification.ID)

	mentee, err := s.menteeRepo.GetByID(ctx, menteeID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar mentorado para envio de e-mail")
		return result, nil
	}
	if mentee == nil || strings.TrimSpace(mentee.Email) == "" {
		logger.Info("Mentorado sem e-mail, envio ignorado")
		return result, nil
	}

	subject := payload.EmailSubject
	if subject == "" {
		subject = payload.Title
	}
	body := payload.EmailBody
	if body == "" {
		body = fmt.Sprintf("Olá %s,\n\n%s\n\nAbraços,\nEquipe Neon", firstName(mentee.FullName), payload.Message)
	}

	err = s.sender.Send(ctx, email.Message{To: mentee.Email, Subject: subject, Body: body})
	if err != nil {
		logger.WithError(err).Warn("Falha no envio de e-mail da notificação")
		return result, nil
	}

	result.Email = true
	if err := s.notificationRepo.MarkSentByEmail(ctx, notification.ID); err != nil {
		logger.WithError(err).Warn("Erro ao marcar notificação como enviada por e-mail")
	}

	return result, nil
}

func (s *Service) SendBadgeUnlocked(ctx context.Context, menteeID int64, badge *domain.Badge) (*domain.DeliveryResult, error) {
	return s.Send(ctx, menteeID, domain.NotificationAchievement, Payload{
		Title:        fmt.Sprintf("%s Parabéns! Você conquistou: %s", badge.Icon, badge.Name),
		Message:      fmt.Sprintf("%s (+%d pontos)", badge.Description, badge.Points),
		EmailSubject: fmt.Sprintf("Parabéns! Você conquistou uma nova badge: %s", badge.Name),
	})
}

// SendMetricsReminder lembra o mentorado de registrar as métricas do período
// e atualiza a data do último lembrete
func (s *Service) SendMetricsReminder(ctx context.Context, mentee *domain.Mentee, period domain.Period) (*domain.DeliveryResult, error) {
	result, err := s.Send(ctx, mentee.ID, domain.NotificationMetricsReminder, Payload{
		Title:        "Lembrete: Envie suas métricas!",
		Message:      fmt.Sprintf("Não se esqueça de enviar suas métricas de %d/%d. Acesse o dashboard para registrar seu desempenho.", period.Month, period.Year),
		EmailSubject: "Lembrete: Envie suas métricas mensais",
		EmailBody: fmt.Sprintf(
			"Olá %s,\n\nNão se esqueça de enviar suas métricas de %d/%d.\n\nAcesse o dashboard para registrar seu desempenho e acompanhar sua evolução.\n\nAbraços,\nEquipe Neon",
			firstName(mentee.FullName), period.Month, period.Year,
		),
	})
	if err != nil {
		return result, err
	}

	if err := s.menteeRepo.TouchMetricsReminder(ctx, mentee.ID, nowFunc()); err != nil {
		logrus.WithError(err).WithField("mentee_id", mentee.ID).Warn("Erro ao atualizar data do último lembrete")
	}

	return result, nil
}

func (s *Service) SendGoalAlert(ctx context.Context, menteeID int64, period domain.Period, alerts []string) (*domain.DeliveryResult, error) {
	return s.Send(ctx, menteeID, domain.NotificationGoalAlert, Payload{
		Title:   "Atenção: Metas abaixo do esperado",
		Message: fmt.Sprintf("Suas métricas de %d/%d estão abaixo de 80%% em: %s. Vamos focar para o próximo mês!", period.Month, period.Year, strings.Join(alerts, ", ")),
	})
}

func (s *Service) SendRankingPosition(ctx context.Context, menteeID int64, period domain.Period, position int) (*domain.DeliveryResult, error) {
	return s.Send(ctx, menteeID, domain.NotificationRanking, Payload{
		Title:   fmt.Sprintf("Você ficou em %dº lugar no ranking!", position),
		Message: fmt.Sprintf("Confira o ranking de %d/%d no dashboard.", period.Month, period.Year),
	})
}

func (s *Service) SendInstagramReconnectNeeded(ctx context.Context, menteeID int64) (*domain.DeliveryResult, error) {
	return s.Send(ctx, menteeID, domain.NotificationGoalAlert, Payload{
		Title:   "Reconecte sua conta do Instagram",
		Message: "Seu token do Instagram expirou. Reconecte sua conta para continuar sincronizando suas métricas automaticamente.",
	})
}

func (s *Service) List(ctx context.Context, menteeID int64, onlyUnread bool) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepo.ListByMentee(ctx, menteeID, onlyUnread)
	if err != nil {
		logrus.WithError(err).WithField("mentee_id", menteeID).Error("Erro ao listar notificações")
		return nil, NewNotificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar notificações")
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return notifications, nil
}

// MarkRead marca a notificação como lida se ela pertencer ao mentorado
func (s *Service) MarkRead(ctx context.Context, menteeID, notificationID int64) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return NewNotificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar notificação")
	}
	if notification == nil {
		return NewNotificationError(ErrNotificationNotFound, apiErrors.ErrNotificationNotFound, "")
	}
	if notification.MenteeID != menteeID {
		return NewNotificationError(ErrNotificationForeign, apiErrors.ErrNotificationForeign, "")
	}
	if notification.Read {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return NewNotificationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao marcar notificação como lida")
	}
	return nil
}

func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return "Mentorado"
	}
	return fields[0]
}
