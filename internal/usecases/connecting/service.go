// Package connecting gerencia a conexão da conta do Instagram do mentorado
package connecting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Connector interface {
	Connect(ctx context.Context, menteeID int64, req *domain.InstagramConnectRequest) (*domain.InstagramStatus, error)
	Disconnect(ctx context.Context, menteeID int64) error
	Status(ctx context.Context, menteeID int64) (*domain.InstagramStatus, error)
}

// TokenCipher protege o token antes de ir para o banco
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

// ReconnectNotifier avisa o mentorado quando o token deixa de valer
type ReconnectNotifier interface {
	SendInstagramReconnectNeeded(ctx context.Context, menteeID int64) (*domain.DeliveryResult, error)
}

var nowFunc = time.Now

type Service struct {
	client     instagram.Client
	tokenRepo  repository.InstagramTokenRepository
	menteeRepo repository.MenteeRepository
	cipher     TokenCipher
	notifier   ReconnectNotifier
}

func NewService(
	client instagram.Client,
	tokenRepo repository.InstagramTokenRepository,
	menteeRepo repository.MenteeRepository,
	cipher TokenCipher,
	notifier ReconnectNotifier,
) *Service {
	return &Service{
		client:     client,
		tokenRepo:  tokenRepo,
		menteeRepo: menteeRepo,
		cipher:     cipher,
		notifier:   notifier,
	}
}

// Connect troca o código OAuth por um token de longa duração e grava o token criptografado
func (s *Service) Connect(ctx context.Context, menteeID int64, req *domain.InstagramConnectRequest) (*domain.InstagramStatus, error) {
	if req == nil || req.Code == "" {
		return nil, NewConnectionError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "")
	}

	logger := logrus.WithField("mentee_id", menteeID)

	shortLived, err := s.client.ExchangeCode(ctx, req.Code, req.RedirectURI)
	if err != nil {
		logger.WithError(err).Error("Erro ao trocar código OAuth do instagram")
		return nil, NewConnectionError(ErrExchangeFailed, apiErrors.ErrExternalService, err.Error())
	}

	longLived, err := s.client.GetLongLivedToken(ctx, shortLived.AccessToken)
	if err != nil {
		logger.WithError(err).Error("Erro ao obter token de longa duração do instagram")
		return nil, NewConnectionError(ErrExchangeFailed, apiErrors.ErrExternalService, err.Error())
	}

	encrypted, err := s.cipher.Encrypt(longLived.AccessToken)
	if err != nil {
		logger.WithError(err).Error("Erro ao criptografar token do instagram")
		return nil, NewConnectionError(ErrEncryptionFailed, apiErrors.ErrInternalServer, "")
	}

	token := &domain.InstagramToken{
		MenteeID:       menteeID,
		EncryptedToken: encrypted,
		ExpiresAt:      instagram.TokenExpiration(nowFunc(), longLived.ExpiresIn),
	}
	if err := s.tokenRepo.Save(ctx, token); err != nil {
		logger.WithError(err).Error("Erro ao salvar token do instagram")
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	if err := s.menteeRepo.SetInstagramConnected(ctx, menteeID, true); err != nil {
		logger.WithError(err).Error("Erro ao marcar instagram como conectado")
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	logger.WithField("expires_at", token.ExpiresAt).Info("Instagram conectado")

	return &domain.InstagramStatus{Connected: true, ExpiresAt: &token.ExpiresAt}, nil
}

func (s *Service) Disconnect(ctx context.Context, menteeID int64) error {
	if err := s.tokenRepo.Delete(ctx, menteeID); err != nil {
		logrus.WithError(err).WithField("mentee_id", menteeID).Error("Erro ao remover token do instagram")
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	if err := s.menteeRepo.SetInstagramConnected(ctx, menteeID, false); err != nil {
		logrus.WithError(err).WithField("mentee_id", menteeID).Error("Erro ao marcar instagram como desconectado")
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	return nil
}

// Status verifica o token salvo. Token vencido ou recusado pela Graph API desconecta o mentorado e pede reconexão.
func (s *Service) Status(ctx context.Context, menteeID int64) (*domain.InstagramStatus, error) {
	token, err := s.tokenRepo.Get(ctx, menteeID)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	if token == nil {
		return &domain.InstagramStatus{Connected: false}, nil
	}

	logger := logrus.WithField("mentee_id", menteeID)

	if !nowFunc().Before(token.ExpiresAt) {
		logger.Info("Token do instagram expirado")
		s.requestReconnect(ctx, menteeID)
		return &domain.InstagramStatus{Connected: false, ExpiresAt: &token.ExpiresAt}, nil
	}

	plain, err := s.cipher.Decrypt(token.EncryptedToken)
	if err != nil {
		logger.WithError(err).Warn("Token do instagram não pôde ser lido")
		s.requestReconnect(ctx, menteeID)
		return &domain.InstagramStatus{Connected: false}, nil
	}

	valid, err := s.client.CheckTokenValidity(ctx, plain)
	if err != nil {
		// Graph API indisponível: mantém o estado salvo
		logger.WithError(err).Warn("Não foi possível validar token do instagram")
		return &domain.InstagramStatus{Connected: true, ExpiresAt: &token.ExpiresAt}, nil
	}
	if !valid {
		s.requestReconnect(ctx, menteeID)
		return &domain.InstagramStatus{Connected: false, ExpiresAt: &token.ExpiresAt}, nil
	}

	return &domain.InstagramStatus{Connected: true, ExpiresAt: &token.ExpiresAt}, nil
}

func (s *Service) requestReconnect(ctx context.Context, menteeID int64) {
	logger := logrus.WithField("mentee_id", menteeID)

	if err := s.tokenRepo.Delete(ctx, menteeID); err != nil {
		logger.WithError(err).Error("Erro ao remover token inválido do instagram")
	}
	if err := s.menteeRepo.SetInstagramConnected(ctx, menteeID, false); err != nil {
		logger.WithError(err).Error("Erro ao marcar instagram como desconectado")
	}
	if _, err := s.notifier.SendInstagramReconnectNeeded(ctx, menteeID); err != nil {
		logger.WithError(err).Warn("Erro ao avisar mentorado sobre reconexão do instagram")
	}
}
