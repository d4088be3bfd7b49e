package domain

import (
	"time"
)

// CampaignStatus representa o estado do ciclo de vida de uma campanha
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusCanceled  CampaignStatus = "CANCELED"
)

// BidModel define qual tipo de engajamento debita o orçamento da campanha
type BidModel string

const (
	BidModelCPI BidModel = "CPI" // custo por impressão
	BidModelCPC BidModel = "CPC" // custo por clique
	BidModelCPE BidModel = "CPE" // custo por engajamento
	BidModelCPA BidModel = "CPA" // custo por conversão
)

// Valid retorna verdadeiro se o modelo de cobrança é reconhecido
func (m BidModel) Valid() bool {
	switch m {
	case BidModelCPI, BidModelCPC, BidModelCPE, BidModelCPA:
		return true
	}
	return false
}

// Charges retorna verdadeiro se o tipo de engajamento informado é o tipo
// cobrado por este modelo. Tipos que não casam são apenas analíticos.
func (m BidModel) Charges(t EngagementType) bool {
	switch m {
	case BidModelCPI:
		return t == EngagementTypeImpression
	case BidModelCPC:
		return t == EngagementTypeClick
	case BidModelCPE:
		return t == EngagementTypeEngagement
	case BidModelCPA:
		return t == EngagementTypeConversion
	}
	return false
}

// Schedule é metadado descritivo da veiculação; não é imposto pelo ledger
type Schedule struct {
	StartTime    time.Time `json:"start_time"`
	DurationSecs int64     `json:"duration_secs"`
}

// Pricing é imutável após a criação da campanha
type Pricing struct {
	BidModel  BidModel `json:"bid_model"`
	BidAmount int64    `json:"bid_amount"`
}

// TargetingPair é um par ordenado (critério, valor) de segmentação
type TargetingPair struct {
	Criterion string `json:"criterion"`
	Value     string `json:"value"`
}

// Creative agrupa os atributos imutáveis do anúncio em si
type Creative struct {
	Title          string `json:"title"`
	Body           string `json:"body"`
	MediaURL       string `json:"media_url"`
	CallToAction   string `json:"call_to_action"`
	DestinationURL string `json:"destination_url"`
}

// CampaignMetrics são contadores monotônicos alimentados pelo medidor de engajamento
type CampaignMetrics struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Engagements int64 `json:"engagements"`
	Conversions int64 `json:"conversions"`
}

// Campaign é o registro central do ledger: orçamento líquido acumulado,
// saldo restante e estado do ciclo de vida. Os campos de dinheiro estão
// na menor denominação de MYS. Invariante: 0 <= RemainingBudget <= TotalBudget.
type Campaign struct {
	ID              string          `json:"id"`
	AdvertiserID    string          `json:"advertiser_id"`
	OwnerUserID     int             `json:"owner_user_id"`
	ContentRef      string          `json:"content_ref"`
	Status          CampaignStatus  `json:"status"`
	TotalBudget     int64           `json:"total_budget"`
	RemainingBudget int64           `json:"remaining_budget"`
	Schedule        Schedule        `json:"schedule"`
	Pricing         Pricing         `json:"pricing"`
	Targeting       []TargetingPair `json:"targeting"`
	Metrics         CampaignMetrics `json:"metrics"`
	Creative        Creative        `json:"creative"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsTerminal retorna verdadeiro para os estados finais e irreversíveis
func (c *Campaign) IsTerminal() bool {
	return c.Status == CampaignStatusCompleted || c.Status == CampaignStatusCanceled
}

// CanActivate retorna verdadeiro se a transição para ACTIVE é legal
func (c *Campaign) CanActivate() bool {
	return c.Status == CampaignStatusDraft || c.Status == CampaignStatusPaused
}

// CanPause retorna verdadeiro se a transição para PAUSED é legal
func (c *Campaign) CanPause() bool {
	return c.Status == CampaignStatusActive
}

// CanCancel retorna verdadeiro se a transição para CANCELED é legal
func (c *Campaign) CanCancel() bool {
	switch c.Status {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused:
		return true
	}
	return false
}

// CanReceiveFunds retorna verdadeiro se a campanha aceita novos aportes
func (c *Campaign) CanReceiveFunds() bool {
	switch c.Status {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused:
		return true
	}
	return false
}

// AcceptsEngagements retorna verdadeiro se eventos de engajamento podem ser
// registrados contra a campanha (somente estados terminais rejeitam)
func (c *Campaign) AcceptsEngagements() bool {
	return !c.IsTerminal()
}

// CreateCampaignRequest é o payload de criação; Amount é o valor bruto que
// será debitado da carteira do anunciante antes do desconto da taxa
type CreateCampaignRequest struct {
	ContentRef string          `json:"content_ref"`
	Amount     int64           `json:"amount"`
	Schedule   Schedule        `json:"schedule"`
	Pricing    Pricing         `json:"pricing"`
	Targeting  []TargetingPair `json:"targeting"`
	Creative   Creative        `json:"creative"`
}

// FundCampaignRequest aporta um novo valor bruto em uma campanha existente
type FundCampaignRequest struct {
	Amount int64 `json:"amount"`
}

// CancelCampaignResponse devolve o valor efetivamente reembolsado
type CancelCampaignResponse struct {
	CampaignID string         `json:"campaign_id"`
	Refunded   int64          `json:"refunded"`
	Status     CampaignStatus `json:"status"`
}
