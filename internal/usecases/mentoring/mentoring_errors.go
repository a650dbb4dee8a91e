package mentoring

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidRequest     = errors.New("requisição inválida")
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrInvalidMetricField = errors.New("campo de métrica inválido")
	ErrNegativeValue      = errors.New("valor não pode ser negativo")

	// Erros de recurso
	ErrMenteeNotFound      = errors.New("mentorado não encontrado")
	ErrMenteeNotLinked     = errors.New("usuário sem mentorado vinculado")
	ErrMetricNotFound      = errors.New("métrica mensal não encontrada")
	ErrMenteeAlreadyExists = errors.New("mentorado já cadastrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// MetricsError é um erro com contexto adicional para mentorados e métricas
type MetricsError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	MenteeID int64  // Mentorado envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *MetricsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

func NewMetricsError(err error, code string, details string) *MetricsError {
	return &MetricsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewMenteeMetricsError(err error, code string, menteeID int64, details string) *MetricsError {
	return &MetricsError{
		Err:      err,
		Code:     code,
		MenteeID: menteeID,
		Details:  details,
	}
}
