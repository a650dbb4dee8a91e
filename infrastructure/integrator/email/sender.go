// Package email envia as notificações por e-mail dos mentorados
package email

//go:generate mockgen -source=sender.go -destination=mocks/mock_sender.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
)

var (
	ErrEmailDisabled  = errors.New("envio de e-mail desabilitado")
	ErrEmptyRecipient = errors.New("destinatário do e-mail vazio")
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender registra os e-mails no log. Não há provedor SMTP configurado neste serviço.
type LogSender struct {
	cfg config.Email
}

func NewLogSender(cfg config.Email) *LogSender {
	return &LogSender{cfg: cfg}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if !s.cfg.Enabled {
		return ErrEmailDisabled
	}

	if strings.TrimSpace(msg.To) == "" {
		return ErrEmptyRecipient
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"from":    s.cfg.From,
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("E-mail enviado")

	return nil
}
