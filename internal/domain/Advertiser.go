package domain

import (
	"time"
)

// AdvertiserAccount é o registro por identidade do histórico de anúncios.
// TotalSpent acumula apenas o gasto líquido consumido por engajamento
// (não os depósitos brutos) e nunca diminui; CampaignCount é cumulativo,
// incluindo campanhas canceladas.
type AdvertiserAccount struct {
	ID            string    `json:"id"`
	OwnerUserID   int       `json:"owner_user_id"`
	TotalSpent    int64     `json:"total_spent"`
	CampaignCount int64     `json:"campaign_count"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SetVerificationRequest é o payload do flip de verificação (somente admin)
type SetVerificationRequest struct {
	Verified bool `json:"verified"`
}

// WithdrawFeesResponse devolve o valor drenado do pool de taxas
type WithdrawFeesResponse struct {
	Amount int64 `json:"amount"`
}
