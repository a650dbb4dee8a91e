package notifying

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/integrator/email"
	emailmocks "github.com/vfg2006/mentoria-dashboard-api/infrastructure/integrator/email/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Send(t *testing.T) {
	ctx := context.Background()
	payload := Payload{Title: "Título", Message: "Mensagem"}

	tests := []struct {
		name     string
		setup    func(n *mocks.MockNotificationRepository, m *mocks.MockMenteeRepository, s *emailmocks.MockSender)
		expected *domain.DeliveryResult
		wantErr  bool
	}{
		{
			name: "Entrega nos dois canais",
			setup: func(n *mocks.MockNotificationRepository, m *mocks.MockMenteeRepository, s *emailmocks.MockSender) {
				n.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{ID: 10, MenteeID: 1}, nil)
				m.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Mentee{ID: 1, FullName: "Ana Souza", Email: "ana@neon.com"}, nil)
				s.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg email.Message) error {
					assert.Equal(t, "ana@neon.com", msg.To)
					assert.Equal(t, "Título", msg.Subject)
					assert.Contains(t, msg.Body, "Olá Ana")
					return nil
				})
				n.EXPECT().MarkSentByEmail(ctx, int64(10)).Return(nil)
			},
			expected: &domain.DeliveryResult{NotificationID: 10, InApp: true, Email: true},
		},
		{
			name: "Falha no e-mail mantém a notificação no painel",
			setup: func(n *mocks.MockNotificationRepository, m *mocks.MockMenteeRepository, s *emailmocks.MockSender) {
				n.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{ID: 11, MenteeID: 1}, nil)
				m.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Mentee{ID: 1, Email: "ana@neon.com"}, nil)
				s.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp fora do ar"))
			},
			expected: &domain.DeliveryResult{NotificationID: 11, InApp: true},
		},
		{
			name: "Mentorado sem e-mail não tenta envio",
			setup: func(n *mocks.MockNotificationRepository, m *mocks.MockMenteeRepository, s *emailmocks.MockSender) {
				n.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Notification{ID: 12, MenteeID: 1}, nil)
				m.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Mentee{ID: 1}, nil)
			},
			expected: &domain.DeliveryResult{NotificationID: 12, InApp: true},
		},
		{
			name: "Erro ao gravar notificação",
			setup: func(n *mocks.MockNotificationRepository, m *mocks.MockMenteeRepository, s *emailmocks.MockSender) {
				n.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expected: &domain.DeliveryResult{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notificationRepo := mocks.NewMockNotificationRepository(ctrl)
			menteeRepo := mocks.NewMockMenteeRepository(ctrl)
			sender := emailmocks.NewMockSender(ctrl)
			tt.setup(notificationRepo, menteeRepo, sender)

			service := NewService(notificationRepo, menteeRepo, sender)
			result, err := service.Send(ctx, 1, domain.NotificationAchievement, payload)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestService_SendMetricsReminder(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	notificationRepo := mocks.NewMockNotificationRepository(ctrl)
	menteeRepo := mocks.NewMockMenteeRepository(ctrl)
	sender := emailmocks.NewMockSender(ctrl)

	mentee := &domain.Mentee{ID: 3, FullName: "Bruno Lima"}

	notificationRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
		assert.Equal(t, domain.NotificationMetricsReminder, n.Type)
		assert.Contains(t, n.Message, "1/2025")
		n.ID = 5
		return n, nil
	})
	menteeRepo.EXPECT().GetByID(ctx, int64(3)).Return(mentee, nil)
	menteeRepo.EXPECT().TouchMetricsReminder(ctx, int64(3), gomock.Any()).Return(nil)

	service := NewService(notificationRepo, menteeRepo, sender)
	result, err := service.SendMetricsReminder(ctx, mentee, domain.Period{Year: 2025, Month: 1})

	require.NoError(t, err)
	assert.True(t, result.InApp)
	assert.False(t, result.Email)
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(n *mocks.MockNotificationRepository)
		wantErr error
	}{
		{
			name: "Marca notificação própria",
			setup: func(n *mocks.MockNotificationRepository) {
				n.EXPECT().GetByID(ctx, int64(7)).Return(&domain.Notification{ID: 7, MenteeID: 1}, nil)
				n.EXPECT().MarkRead(ctx, int64(7)).Return(nil)
			},
		},
		{
			name: "Notificação já lida não é atualizada",
			setup: func(n *mocks.MockNotificationRepository) {
				n.EXPECT().GetByID(ctx, int64(7)).Return(&domain.Notification{ID: 7, MenteeID: 1, Read: true}, nil)
			},
		},
		{
			name: "Notificação inexistente",
			setup: func(n *mocks.MockNotificationRepository) {
				n.EXPECT().GetByID(ctx, int64(7)).Return(nil, nil)
			},
			wantErr: ErrNotificationNotFound,
		},
		{
			name: "Notificação de outro mentorado",
			setup: func(n *mocks.MockNotificationRepository) {
				n.EXPECT().GetByID(ctx, int64(7)).Return(&domain.Notification{ID: 7, MenteeID: 2}, nil)
			},
			wantErr: ErrNotificationForeign,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notificationRepo := mocks.NewMockNotificationRepository(ctrl)
			tt.setup(notificationRepo)

			service := NewService(notificationRepo, mocks.NewMockMenteeRepository(ctrl), emailmocks.NewMockSender(ctrl))
			err := service.MarkRead(ctx, 1, 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Ana", firstName("Ana Paula Souza"))
	assert.Equal(t, "Mentorado", firstName("  "))
}
