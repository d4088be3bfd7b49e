package domain

import (
	"math"
	"time"
)

// MaxDepositGross limita o valor bruto de um depósito. Acima dele o produto
// gross * feeBPS estoura int64 e a divisão do SplitDeposit deixa de valer.
const MaxDepositGross = math.MaxInt64 / 10000

// FeePool é o acumulador da fatia da plataforma: creditado em todo depósito
// (criação ou aporte) e drenado a zero apenas pela operação de saque do admin
type FeePool struct {
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeeBreakdown descreve a divisão de um depósito bruto entre a taxa da
// plataforma e o orçamento líquido. Invariante: Fee + Net == Gross.
type FeeBreakdown struct {
	Gross int64 `json:"gross"`
	Fee   int64 `json:"fee"`
	Net   int64 `json:"net"`
}

// SplitDeposit aplica a taxa em pontos-base sobre o valor bruto usando
// divisão inteira (piso), como em toda criação e aporte de campanha:
// fee = floor(gross * feeBPS / 10000)
func SplitDeposit(gross, feeBPS int64) FeeBreakdown {
	fee := gross * feeBPS / 10000
	return FeeBreakdown{
		Gross: gross,
		Fee:   fee,
		Net:   gross - fee,
	}
}
