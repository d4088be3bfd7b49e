package metering

import (
	"context"
	"database/sql"
	"testing"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	postgresmocks "github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres/mocks"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository/mocks"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_RecordEngagement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockEngagementRepo := mocks.NewMockEngagementRepository(ctrl)
	mockAdvertiserRepo := mocks.NewMockAdvertiserRepository(ctrl)

	service := &Service{
		db:             mockDB,
		campaignRepo:   mockCampaignRepo,
		engagementRepo: mockEngagementRepo,
		advertiserRepo: mockAdvertiserRepo,
	}

	meteringCapability := domain.Capability{UserID: 2, RoleID: domain.RoleMetering}

	// Campanha CPC: apenas cliques debitam o lance
	cpcCampaign := func(status domain.CampaignStatus, remaining int64) *domain.Campaign {
		return &domain.Campaign{
			ID:              "CMP001",
			AdvertiserID:    "ADV123",
			OwnerUserID:     10,
			Status:          status,
			TotalBudget:     90_000,
			RemainingBudget: remaining,
			Pricing:         domain.Pricing{BidModel: domain.BidModelCPC, BidAmount: 100},
		}
	}

	tests := []struct {
		name       string
		capability domain.Capability
		request    *domain.RecordEngagementRequest
		setup      func()
		validate   func(t *testing.T, response *domain.RecordEngagementResponse, err error)
	}{
		{
			name:       "Clique em campanha CPC debita o lance e mantém ACTIVE",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-1", Type: domain.EngagementTypeClick},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(cpcCampaign(domain.CampaignStatusActive, 500), nil)

				mockEngagementRepo.EXPECT().
					CreateEngagement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ postgres.Queryer, engagement *domain.Engagement) (*domain.Engagement, error) {
						assert.Equal(t, int64(100), engagement.Charged)
						assert.Equal(t, "viewer-1", engagement.ViewerRef)
						return engagement, nil
					})

				mockCampaignRepo.EXPECT().
					ApplyCharge(gomock.Any(), "CMP001", int64(100), domain.EngagementTypeClick, domain.CampaignStatusActive).
					Return(nil)

				mockAdvertiserRepo.EXPECT().
					AddSpent(gomock.Any(), "ADV123", int64(100)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(100), response.Charged)
				assert.Equal(t, int64(400), response.RemainingBudget)
				assert.Equal(t, domain.CampaignStatusActive, response.CampaignStatus)
			},
		},
		{
			name:       "Débito limitado ao saldo restante zera e encerra em COMPLETED",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-2", Type: domain.EngagementTypeClick},
			setup: func() {
				expectTransaction(mockDB)

				// Saldo de 80 contra lance de 100: cobra apenas 80
				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(cpcCampaign(domain.CampaignStatusActive, 80), nil)

				mockEngagementRepo.EXPECT().
					CreateEngagement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ postgres.Queryer, engagement *domain.Engagement) (*domain.Engagement, error) {
						assert.Equal(t, int64(80), engagement.Charged)
						return engagement, nil
					})

				mockCampaignRepo.EXPECT().
					ApplyCharge(gomock.Any(), "CMP001", int64(80), domain.EngagementTypeClick, domain.CampaignStatusCompleted).
					Return(nil)

				mockAdvertiserRepo.EXPECT().
					AddSpent(gomock.Any(), "ADV123", int64(80)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(80), response.Charged)
				assert.Equal(t, int64(0), response.RemainingBudget)
				assert.Equal(t, domain.CampaignStatusCompleted, response.CampaignStatus)
			},
		},
		{
			name:       "Exaustão a partir de PAUSED também encerra em COMPLETED",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-3", Type: domain.EngagementTypeClick},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(cpcCampaign(domain.CampaignStatusPaused, 100), nil)

				mockEngagementRepo.EXPECT().
					CreateEngagement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ postgres.Queryer, engagement *domain.Engagement) (*domain.Engagement, error) {
						return engagement, nil
					})

				mockCampaignRepo.EXPECT().
					ApplyCharge(gomock.Any(), "CMP001", int64(100), domain.EngagementTypeClick, domain.CampaignStatusCompleted).
					Return(nil)

				mockAdvertiserRepo.EXPECT().
					AddSpent(gomock.Any(), "ADV123", int64(100)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusCompleted, response.CampaignStatus)
			},
		},
		{
			name:       "Tipo não cobrado apenas incrementa o contador",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-4", Type: domain.EngagementTypeImpression},
			setup: func() {
				expectTransaction(mockDB)

				// Impressão contra CPC: débito zero e nenhum gasto acumulado
				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(cpcCampaign(domain.CampaignStatusActive, 500), nil)

				mockEngagementRepo.EXPECT().
					CreateEngagement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ postgres.Queryer, engagement *domain.Engagement) (*domain.Engagement, error) {
						assert.Equal(t, int64(0), engagement.Charged)
						return engagement, nil
					})

				mockCampaignRepo.EXPECT().
					ApplyCharge(gomock.Any(), "CMP001", int64(0), domain.EngagementTypeImpression, domain.CampaignStatusActive).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), response.Charged)
				assert.Equal(t, int64(500), response.RemainingBudget)
				assert.Equal(t, domain.CampaignStatusActive, response.CampaignStatus)
			},
		},
		{
			name:       "Campanha em estado terminal rejeita o evento",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-5", Type: domain.EngagementTypeClick},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(cpcCampaign(domain.CampaignStatusCompleted, 0), nil)
			},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
				assert.Nil(t, response)
			},
		},
		{
			name:       "Campanha inexistente",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-6", Type: domain.EngagementTypeClick},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.ErrorIs(t, err, ErrCampaignNotFound)
				assert.Nil(t, response)
			},
		},
		{
			name:       "Tipo fora do intervalo reconhecido é rejeitado antes da transação",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-7", Type: domain.EngagementType(4)},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.ErrorIs(t, err, ErrInvalidEngagementType)
				assert.Nil(t, response)

				var meteringErr *MeteringError
				assert.ErrorAs(t, err, &meteringErr)
				assert.Equal(t, apiErrors.ErrInvalidEngagementType, meteringErr.Code)
			},
		},
		{
			name:       "viewer_ref é obrigatório",
			capability: meteringCapability,
			request:    &domain.RecordEngagementRequest{Type: domain.EngagementTypeClick},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.Nil(t, response)
			},
		},
		{
			name:       "Capability de anunciante não registra eventos",
			capability: domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser},
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-8", Type: domain.EngagementTypeClick},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.ErrorIs(t, err, ErrUnauthorized)
				assert.Nil(t, response)
			},
		},
		{
			name:       "Admin também opera como autoridade de medição",
			capability: domain.Capability{UserID: 1, RoleID: domain.RoleAdmin},
			request:    &domain.RecordEngagementRequest{ViewerRef: "viewer-9", Type: domain.EngagementTypeClick},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(cpcCampaign(domain.CampaignStatusActive, 500), nil)

				mockEngagementRepo.EXPECT().
					CreateEngagement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ postgres.Queryer, engagement *domain.Engagement) (*domain.Engagement, error) {
						return engagement, nil
					})

				mockCampaignRepo.EXPECT().
					ApplyCharge(gomock.Any(), "CMP001", int64(100), domain.EngagementTypeClick, domain.CampaignStatusActive).
					Return(nil)

				mockAdvertiserRepo.EXPECT().
					AddSpent(gomock.Any(), "ADV123", int64(100)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.RecordEngagementResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(100), response.Charged)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			response, err := service.RecordEngagement(context.Background(), tt.capability, "CMP001", tt.request)

			tt.validate(t, response, err)
		})
	}
}

func TestService_ListEngagements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockEngagementRepo := mocks.NewMockEngagementRepository(ctrl)

	service := &Service{
		campaignRepo:   mockCampaignRepo,
		engagementRepo: mockEngagementRepo,
	}

	t.Run("Eventos da campanha são devolvidos com o limite pedido", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetCampaignByID("CMP001").
			Return(&domain.Campaign{ID: "CMP001"}, nil)

		mockEngagementRepo.EXPECT().
			ListEngagementsByCampaign("CMP001", uint64(50)).
			Return([]*domain.Engagement{
				{ID: "evt-1", CampaignID: "CMP001", Charged: 100},
				{ID: "evt-2", CampaignID: "CMP001", Charged: 0},
			}, nil)

		engagements, err := service.ListEngagements("CMP001", 50)

		assert.NoError(t, err)
		assert.Len(t, engagements, 2)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetCampaignByID("CMP404").
			Return(nil, nil)

		engagements, err := service.ListEngagements("CMP404", 50)

		assert.ErrorIs(t, err, ErrCampaignNotFound)
		assert.Nil(t, engagements)
	})
}

func TestService_ListDailyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockStatsRepo := mocks.NewMockStatsRepository(ctrl)

	service := &Service{
		campaignRepo: mockCampaignRepo,
		statsRepo:    mockStatsRepo,
	}

	t.Run("Linhas consolidadas da campanha são devolvidas", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetCampaignByID("CMP001").
			Return(&domain.Campaign{ID: "CMP001"}, nil)

		mockStatsRepo.EXPECT().
			ListDailyStats("CMP001", nil, nil).
			Return([]*domain.CampaignDailyStat{
				{CampaignID: "CMP001", Clicks: 12, Spend: 1_200},
			}, nil)

		stats, err := service.ListDailyStats("CMP001", nil, nil)

		assert.NoError(t, err)
		assert.Len(t, stats, 1)
		assert.Equal(t, int64(1_200), stats[0].Spend)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetCampaignByID("CMP404").
			Return(nil, nil)

		stats, err := service.ListDailyStats("CMP404", nil, nil)

		assert.ErrorIs(t, err, ErrCampaignNotFound)
		assert.Nil(t, stats)
	})
}

// expectTransaction faz o mock da transação executar o corpo diretamente,
// entregando um *sql.Tx nulo que os repositórios mockados ignoram
func expectTransaction(mockDB *postgresmocks.MockConn) {
	mockDB.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})
}
