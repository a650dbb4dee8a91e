package connecting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCode       = errors.New("código de autorização não informado")
	ErrExchangeFailed    = errors.New("falha ao trocar código do instagram")
	ErrEncryptionFailed  = errors.New("falha ao proteger token do instagram")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ConnectionError carrega o código de API do erro de integração
type ConnectionError struct {
	Err     error
	Code    string
	Details string
}

func (e *ConnectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(err error, code string, details string) *ConnectionError {
	return &ConnectionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
