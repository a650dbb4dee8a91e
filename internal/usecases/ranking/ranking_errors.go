package ranking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// RankingError é um erro com o código da API associado
type RankingError struct {
	Err     error
	Code    string
	Details string
}

func (e *RankingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RankingError) Unwrap() error {
	return e.Err
}

func NewRankingError(err error, code string, details string) *RankingError {
	return &RankingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
