package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Capability ausente ou insuficiente
	ErrUserAlreadyExists     = "AUTH_007" // Usuário já existe

	// Erros do registro de anunciantes (3000-3999)
	ErrAlreadyRegistered  = "ADV_001" // Identidade já possui conta de anunciante
	ErrAdvertiserNotFound = "ADV_002" // Conta de anunciante não encontrada

	// Erros do ledger de campanhas (4000-4999)
	ErrCampaignNotFound  = "CMP_001" // Campanha não encontrada
	ErrInvalidState      = "CMP_002" // Operação ilegal a partir do status atual
	ErrInvalidAmount     = "CMP_003" // Valor monetário zero ou inválido
	ErrInsufficientFunds = "CMP_004" // Saldo menor que o valor bruto exigido
	ErrNotOwner          = "CMP_005" // Chamador não é o dono do registro

	// Erros do medidor de engajamento (6000-6999)
	ErrInvalidEngagementType = "ENG_001" // Tipo de engajamento desconhecido

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrAlreadyRegistered:     http.StatusConflict,
	ErrAdvertiserNotFound:    http.StatusNotFound,
	ErrCampaignNotFound:      http.StatusNotFound,
	ErrInvalidState:          http.StatusConflict,
	ErrInvalidAmount:         http.StatusBadRequest,
	ErrInsufficientFunds:     http.StatusPaymentRequired,
	ErrNotOwner:              http.StatusForbidden,
	ErrInvalidEngagementType: http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
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
