package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_002" // Token inválido
	ErrExpiredToken       = "AUTH_003" // Token expirado
	ErrSessionNotFound    = "AUTH_004" // Sessão encerrada ou inexistente
	ErrSessionRejected    = "AUTH_005" // Sessão rejeitada pelo backend de varejo
	ErrInsufficientRole   = "AUTH_006" // Perfil sem permissão para a operação

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidCompetency   = "VAL_004" // Competência fora do formato mm-aaaa

	// Erros de negócio (3000-3999)
	ErrResourceNotFound    = "BUS_001" // Recurso não encontrado no snapshot
	ErrInvalidState        = "BUS_002" // Estado não permite a operação
	ErrInvalidTransition   = "BUS_003" // Transição de status não permitida
	ErrInsufficientStock   = "BUS_004" // Quantidade excede o estoque físico
	ErrStockConflict       = "BUS_005" // Estoque livre insuficiente por reservas
	ErrBackendRejection    = "BUS_006" // Mutação rejeitada pelo backend de varejo
	ErrSnapshotUnavailable = "BUS_007" // Snapshot ainda não carregado

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Erro em serviço externo
	ErrCommunication   = "SRV_003" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrSessionNotFound:     http.StatusUnauthorized,
	ErrSessionRejected:     http.StatusUnauthorized,
	ErrInsufficientRole:    http.StatusForbidden,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidCompetency:   http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrInvalidState:        http.StatusUnprocessableEntity,
	ErrInvalidTransition:   http.StatusUnprocessableEntity,
	ErrInsufficientStock:   http.StatusUnprocessableEntity,
	ErrStockConflict:       http.StatusConflict,
	ErrBackendRejection:    http.StatusUnprocessableEntity,
	ErrSnapshotUnavailable: http.StatusServiceUnavailable,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
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
