package instagram

import (
	"errors"
	"fmt"
	"time"
)

var ErrTokenExpired = errors.New("token do instagram expirado")

// ErrorResponse representa a estrutura de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado". Subcódigos 460, 463 e 467 também indicam token inválido.
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// TokenExpiration calcula quando o token deve ser renovado, com um dia de folga
func TokenExpiration(now time.Time, expiresIn int64) time.Time {
	buffer := int64(24 * 60 * 60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2 // Se for muito curto, usamos metade do tempo
	}

	return now.Add(time.Duration(safeExpiresIn) * time.Second)
}
