package domain

// Escopos de auditoria do ledger
const (
	AuditScopeCampaign   = "campaign"
	AuditScopeAdvertiser = "advertiser"
)

// LedgerDiscrepancy é uma divergência encontrada pelo job de auditoria entre
// o valor derivado dos registros imutáveis de engajamento e o valor mantido
// incrementalmente no registro (orçamento consumido ou gasto acumulado)
type LedgerDiscrepancy struct {
	Scope    string `json:"scope"`
	RefID    string `json:"ref_id"`
	Expected int64  `json:"expected"`
	Actual   int64  `json:"actual"`
}
