package advertising

import (
	"errors"
	"fmt"
)

// Erros do registro de anunciantes e do ledger de campanhas
var (
	// Autorização: o chamador não é o dono do registro ou não apresentou a
	// capability exigida pela operação
	ErrUnauthorized = errors.New("chamador não autorizado para esta operação")

	// Ciclo de vida: a operação é ilegal a partir do status atual
	ErrInvalidState = errors.New("operação ilegal para o status atual da campanha")

	// Valores monetários devem ser positivos
	ErrInvalidAmount = errors.New("valor monetário inválido")

	// A identidade já possui uma conta de anunciante
	ErrAlreadyRegistered = errors.New("identidade já registrada como anunciante")

	// O saldo apresentado não cobre o valor bruto exigido
	ErrInsufficientFunds = errors.New("saldo insuficiente para o valor exigido")

	// Registros inexistentes
	ErrAdvertiserNotFound = errors.New("conta de anunciante não encontrada")
	ErrCampaignNotFound   = errors.New("campanha não encontrada")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidBidModel     = errors.New("modelo de cobrança desconhecido")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// LedgerError é um erro com contexto adicional das operações do ledger
type LedgerError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // Campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// IsStateError verifica se o erro é de transição ilegal do ciclo de vida
func IsStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsOwnershipError verifica se o erro é de autorização sobre o registro
func IsOwnershipError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// NewLedgerError cria um novo erro do ledger
func NewLedgerError(baseErr error, code string, details string) *LedgerError {
	return &LedgerError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewCampaignError cria um novo erro do ledger com contexto de campanha
func NewCampaignError(baseErr error, code string, campaignID string, details string) *LedgerError {
	return &LedgerError{
		Err:        baseErr,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
