package treasury

import (
	"errors"
	"fmt"
)

// Erros da tesouraria
var (
	// Operações de carteira alheia e saque do pool exigem a capability de admin
	ErrUnauthorized = errors.New("capability de administração ausente")

	// Valores monetários devem ser positivos
	ErrInvalidAmount = errors.New("valor monetário inválido")

	// Registros inexistentes
	ErrWalletNotFound = errors.New("carteira não encontrada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// TreasuryError é um erro com contexto adicional da tesouraria
type TreasuryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // Dono da carteira envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TreasuryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TreasuryError) Unwrap() error {
	return e.Err
}

// NewTreasuryError cria um novo erro da tesouraria
func NewTreasuryError(baseErr error, code string, details string) *TreasuryError {
	return &TreasuryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewWalletError cria um novo erro da tesouraria com contexto de carteira
func NewWalletError(baseErr error, code string, userID int, details string) *TreasuryError {
	return &TreasuryError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
