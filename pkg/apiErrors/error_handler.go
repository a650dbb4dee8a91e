package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes
	ErrMenteeNotLinked       = "AUTH_004" // Usuário sem mentorado vinculado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPeriod       = "VAL_004" // Ano ou mês inválido
	ErrInvalidMetricField  = "VAL_005" // Campo de métrica inválido
	ErrNegativeValue       = "VAL_006" // Valor negativo
	ErrMethodNotAllowed    = "VAL_007" // Método HTTP não suportado na rota

	// Erros de recurso (4000-4999)
	ErrMenteeNotFound       = "RES_001" // Mentorado não encontrado
	ErrMetricNotFound       = "RES_002" // Métrica mensal não encontrada
	ErrNotificationNotFound = "RES_003" // Notificação não encontrada
	ErrNotificationForeign  = "RES_004" // Notificação de outro mentorado
	ErrMenteeAlreadyExists  = "RES_005" // Mentorado já cadastrado
	ErrJobNotFound          = "RES_006" // Job agendado não encontrado
	ErrRouteNotFound        = "RES_007" // Rota inexistente

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrMenteeNotLinked:       http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrInvalidMetricField:    http.StatusBadRequest,
	ErrNegativeValue:         http.StatusBadRequest,
	ErrMenteeNotFound:        http.StatusNotFound,
	ErrMetricNotFound:        http.StatusNotFound,
	ErrNotificationNotFound:  http.StatusNotFound,
	ErrNotificationForeign:   http.StatusForbidden,
	ErrMenteeAlreadyExists:   http.StatusConflict,
	ErrJobNotFound:           http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
