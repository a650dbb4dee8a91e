package notifying

import (
	"errors"
	"fmt"
)

var (
	ErrNotificationNotFound = errors.New("notificação não encontrada")
	ErrNotificationForeign  = errors.New("notificação pertence a outro mentorado")
	ErrMenteeNotFound       = errors.New("mentorado não encontrado")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// NotificationError é um erro com o código da API associado
type NotificationError struct {
	Err     error
	Code    string
	Details string
}

func (e *NotificationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

func NewNotificationError(err error, code string, details string) *NotificationError {
	return &NotificationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
