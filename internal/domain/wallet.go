package domain

import (
	"time"
)

// Wallet é o saldo gastável de um usuário na menor denominação de MYS.
// O ledger de campanhas nunca custodia valor fora destas primitivas:
// débito guardado (saldo suficiente) e crédito.
type Wallet struct {
	UserID    int       `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepositRequest credita valor externo na carteira de um usuário (admin)
type DepositRequest struct {
	Amount int64 `json:"amount"`
}
