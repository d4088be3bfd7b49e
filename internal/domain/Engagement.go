package domain

import (
	"time"
)

// EngagementType é o tipo numérico do evento medido, conforme o contrato
// da autoridade de medição (0=impressão, 1=clique, 2=engajamento, 3=conversão)
type EngagementType int

const (
	EngagementTypeImpression EngagementType = 0
	EngagementTypeClick      EngagementType = 1
	EngagementTypeEngagement EngagementType = 2
	EngagementTypeConversion EngagementType = 3
)

// Valid retorna verdadeiro se o valor está entre os quatro tipos reconhecidos
func (t EngagementType) Valid() bool {
	return t >= EngagementTypeImpression && t <= EngagementTypeConversion
}

func (t EngagementType) String() string {
	switch t {
	case EngagementTypeImpression:
		return "impression"
	case EngagementTypeClick:
		return "click"
	case EngagementTypeEngagement:
		return "engagement"
	case EngagementTypeConversion:
		return "conversion"
	}
	return "unknown"
}

// Engagement é o registro de auditoria imutável de um evento medido.
// Charged guarda quanto o evento debitou do orçamento (0 quando o tipo
// não casa com o modelo de cobrança da campanha).
type Engagement struct {
	ID         string         `json:"id"`
	CampaignID string         `json:"campaign_id"`
	ViewerRef  string         `json:"viewer_ref"`
	Type       EngagementType `json:"engagement_type"`
	Charged    int64          `json:"charged"`
	RecordedAt time.Time      `json:"recorded_at"`
}

// RecordEngagementRequest é o payload da autoridade de medição
type RecordEngagementRequest struct {
	ViewerRef string         `json:"viewer_ref"`
	Type      EngagementType `json:"engagement_type"`
}

// RecordEngagementResponse devolve o resultado contábil do evento
type RecordEngagementResponse struct {
	Engagement      *Engagement    `json:"engagement"`
	Charged         int64          `json:"charged"`
	RemainingBudget int64          `json:"remaining_budget"`
	CampaignStatus  CampaignStatus `json:"campaign_status"`
}

// CampaignDailyStat é a linha agregada produzida pelo job de consolidação
type CampaignDailyStat struct {
	CampaignID  string    `json:"campaign_id"`
	Day         time.Time `json:"day"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Engagements int64     `json:"engagements"`
	Conversions int64     `json:"conversions"`
	Spend       int64     `json:"spend"`
}
