package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
)

func TestLogSender_Send(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Email
		msg     Message
		wantErr error
	}{
		{
			name: "envia quando habilitado",
			cfg:  config.Email{Enabled: true, From: "mentoria@neon.com.br"},
			msg:  Message{To: "ana@exemplo.com", Subject: "Olá"},
		},
		{
			name:    "desabilitado",
			cfg:     config.Email{Enabled: false},
			msg:     Message{To: "ana@exemplo.com"},
			wantErr: ErrEmailDisabled,
		},
		{
			name:    "sem destinatário",
			cfg:     config.Email{Enabled: true},
			msg:     Message{To: "  "},
			wantErr: ErrEmptyRecipient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLogSender(tt.cfg).Send(context.Background(), tt.msg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
