package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaign_LifecyclePredicates(t *testing.T) {
	tests := []struct {
		name               string
		status             CampaignStatus
		canActivate        bool
		canPause           bool
		canCancel          bool
		canReceiveFunds    bool
		acceptsEngagements bool
		isTerminal         bool
	}{
		{
			name:               "DRAFT aceita ativação, cancelamento, aporte e eventos",
			status:             CampaignStatusDraft,
			canActivate:        true,
			canPause:           false,
			canCancel:          true,
			canReceiveFunds:    true,
			acceptsEngagements: true,
			isTerminal:         false,
		},
		{
			name:               "ACTIVE aceita pausa, cancelamento, aporte e eventos",
			status:             CampaignStatusActive,
			canActivate:        false,
			canPause:           true,
			canCancel:          true,
			canReceiveFunds:    true,
			acceptsEngagements: true,
			isTerminal:         false,
		},
		{
			name:               "PAUSED aceita reativação, cancelamento, aporte e eventos",
			status:             CampaignStatusPaused,
			canActivate:        true,
			canPause:           false,
			canCancel:          true,
			canReceiveFunds:    true,
			acceptsEngagements: true,
			isTerminal:         false,
		},
		{
			name:               "COMPLETED é terminal e rejeita qualquer operação",
			status:             CampaignStatusCompleted,
			canActivate:        false,
			canPause:           false,
			canCancel:          false,
			canReceiveFunds:    false,
			acceptsEngagements: false,
			isTerminal:         true,
		},
		{
			name:               "CANCELED é terminal e rejeita qualquer operação",
			status:             CampaignStatusCanceled,
			canActivate:        false,
			canPause:           false,
			canCancel:          false,
			canReceiveFunds:    false,
			acceptsEngagements: false,
			isTerminal:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := &Campaign{Status: tt.status}

			assert.Equal(t, tt.canActivate, campaign.CanActivate())
			assert.Equal(t, tt.canPause, campaign.CanPause())
			assert.Equal(t, tt.canCancel, campaign.CanCancel())
			assert.Equal(t, tt.canReceiveFunds, campaign.CanReceiveFunds())
			assert.Equal(t, tt.acceptsEngagements, campaign.AcceptsEngagements())
			assert.Equal(t, tt.isTerminal, campaign.IsTerminal())
		})
	}
}

func TestBidModel_Valid(t *testing.T) {
	tests := []struct {
		name     string
		model    BidModel
		expected bool
	}{
		{name: "CPI é reconhecido", model: BidModelCPI, expected: true},
		{name: "CPC é reconhecido", model: BidModelCPC, expected: true},
		{name: "CPE é reconhecido", model: BidModelCPE, expected: true},
		{name: "CPA é reconhecido", model: BidModelCPA, expected: true},
		{name: "Modelo desconhecido é rejeitado", model: BidModel("CPM"), expected: false},
		{name: "Modelo vazio é rejeitado", model: BidModel(""), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.model.Valid())
		})
	}
}

func TestBidModel_Charges(t *testing.T) {
	tests := []struct {
		name     string
		model    BidModel
		event    EngagementType
		expected bool
	}{
		{name: "CPI cobra impressão", model: BidModelCPI, event: EngagementTypeImpression, expected: true},
		{name: "CPI não cobra clique", model: BidModelCPI, event: EngagementTypeClick, expected: false},
		{name: "CPC cobra clique", model: BidModelCPC, event: EngagementTypeClick, expected: true},
		{name: "CPC não cobra impressão", model: BidModelCPC, event: EngagementTypeImpression, expected: false},
		{name: "CPE cobra engajamento", model: BidModelCPE, event: EngagementTypeEngagement, expected: true},
		{name: "CPE não cobra conversão", model: BidModelCPE, event: EngagementTypeConversion, expected: false},
		{name: "CPA cobra conversão", model: BidModelCPA, event: EngagementTypeConversion, expected: true},
		{name: "CPA não cobra engajamento", model: BidModelCPA, event: EngagementTypeEngagement, expected: false},
		{name: "Modelo desconhecido nunca cobra", model: BidModel("CPM"), event: EngagementTypeImpression, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.model.Charges(tt.event))
		})
	}
}
