package gamifying

import (
	"errors"
	"fmt"
)

var (
	ErrMenteeNotFound    = errors.New("mentorado não encontrado")
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// GamificationError é um erro com contexto adicional para a gamificação
type GamificationError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	MenteeID int64  // Mentorado envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *GamificationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *GamificationError) Unwrap() error {
	return e.Err
}

func NewGamificationError(err error, code string, details string) *GamificationError {
	return &GamificationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewMenteeGamificationError(err error, code string, menteeID int64, details string) *GamificationError {
	return &GamificationError{
		Err:      err,
		Code:     code,
		MenteeID: menteeID,
		Details:  details,
	}
}
