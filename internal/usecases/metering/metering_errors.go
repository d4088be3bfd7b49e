package metering

import (
	"errors"
	"fmt"
)

// Erros do medidor de engajamento
var (
	// A capability de medição é obrigatória para registrar eventos
	ErrUnauthorized = errors.New("capability de medição ausente")

	// Estados terminais não aceitam novos eventos
	ErrInvalidState = errors.New("campanha encerrada não aceita engajamentos")

	// Tipo numérico fora dos quatro reconhecidos
	ErrInvalidEngagementType = errors.New("tipo de engajamento desconhecido")

	// Registros inexistentes
	ErrCampaignNotFound = errors.New("campanha não encontrada")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// MeteringError é um erro com contexto adicional do medidor
type MeteringError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // Campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MeteringError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MeteringError) Unwrap() error {
	return e.Err
}

// NewMeteringError cria um novo erro do medidor
func NewMeteringError(baseErr error, code string, campaignID string, details string) *MeteringError {
	return &MeteringError{
		Err:        baseErr,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
