package advertising

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	postgresmocks "github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres/mocks"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository/mocks"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/config"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_RegisterAdvertiser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockAdvertiserRepo := mocks.NewMockAdvertiserRepository(ctrl)

	service := &Service{
		db:             mockDB,
		advertiserRepo: mockAdvertiserRepo,
		now:            time.Now,
	}

	capability := domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, advertiser *domain.AdvertiserAccount, err error)
	}{
		{
			name: "Identidade sem conta - registro cria a conta zerada",
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByOwner(10).
					Return(nil, nil)

				mockAdvertiserRepo.EXPECT().
					CreateAdvertiser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ postgres.Queryer, advertiser *domain.AdvertiserAccount) (*domain.AdvertiserAccount, error) {
						return advertiser, nil
					})
			},
			validate: func(t *testing.T, advertiser *domain.AdvertiserAccount, err error) {
				assert.NoError(t, err)
				assert.True(t, strings.HasPrefix(advertiser.ID, "adv_"))
				assert.Len(t, advertiser.ID, 16)
				assert.Equal(t, 10, advertiser.OwnerUserID)
				assert.Equal(t, int64(0), advertiser.TotalSpent)
				assert.Equal(t, int64(0), advertiser.CampaignCount)
				assert.False(t, advertiser.Verified)
			},
		},
		{
			name: "Identidade já registrada - segunda tentativa falha",
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByOwner(10).
					Return(&domain.AdvertiserAccount{ID: "ADV123", OwnerUserID: 10}, nil)
			},
			validate: func(t *testing.T, advertiser *domain.AdvertiserAccount, err error) {
				assert.ErrorIs(t, err, ErrAlreadyRegistered)
				assert.Nil(t, advertiser)

				var ledgerErr *LedgerError
				assert.ErrorAs(t, err, &ledgerErr)
				assert.Equal(t, apiErrors.ErrAlreadyRegistered, ledgerErr.Code)
			},
		},
		{
			name: "Registro concorrente vence a corrida - responde como duplicado, não como erro de banco",
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByOwner(10).
					Return(nil, nil)

				mockAdvertiserRepo.EXPECT().
					CreateAdvertiser(gomock.Any(), gomock.Any()).
					Return(nil, repository.ErrAdvertiserExists)
			},
			validate: func(t *testing.T, advertiser *domain.AdvertiserAccount, err error) {
				assert.ErrorIs(t, err, ErrAlreadyRegistered)
				assert.Nil(t, advertiser)

				var ledgerErr *LedgerError
				assert.ErrorAs(t, err, &ledgerErr)
				assert.Equal(t, apiErrors.ErrAlreadyRegistered, ledgerErr.Code)
			},
		},
		{
			name: "Falha na consulta é propagada como erro de banco",
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByOwner(10).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, advertiser *domain.AdvertiserAccount, err error) {
				assert.ErrorIs(t, err, assert.AnError)
				assert.Nil(t, advertiser)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			advertiser, err := service.RegisterAdvertiser(context.Background(), capability)

			tt.validate(t, advertiser, err)
		})
	}
}

func TestService_CreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockAdvertiserRepo := mocks.NewMockAdvertiserRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockFeePoolRepo := mocks.NewMockFeePoolRepository(ctrl)

	// Taxa de 1000 bps (10%) sobre todo depósito bruto
	service := &Service{
		db:             mockDB,
		advertiserRepo: mockAdvertiserRepo,
		campaignRepo:   mockCampaignRepo,
		walletRepo:     mockWalletRepo,
		feePoolRepo:    mockFeePoolRepo,
		cfg:            &config.Config{Fees: config.Fees{BPS: 1000}},
		now:            time.Now,
	}

	capability := domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser}
	advertiser := &domain.AdvertiserAccount{ID: "ADV123", OwnerUserID: 10}

	tests := []struct {
		name     string
		request  *domain.CreateCampaignRequest
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name: "Depósito de 100 milhões - 10 milhões para o pool e 90 milhões de orçamento",
			request: &domain.CreateCampaignRequest{
				ContentRef: "post-abc",
				Amount:     100_000_000,
				Pricing:    domain.Pricing{BidModel: domain.BidModelCPC, BidAmount: 250},
			},
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByOwner(10).
					Return(advertiser, nil)

				expectTransaction(mockDB)

				// Débito do bruto, crédito da taxa e criação na mesma transação
				mockWalletRepo.EXPECT().
					Debit(gomock.Any(), 10, int64(100_000_000)).
					Return(true, nil)

				mockFeePoolRepo.EXPECT().
					Credit(gomock.Any(), int64(10_000_000)).
					Return(nil)

				mockCampaignRepo.EXPECT().
					CreateCampaign(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ postgres.Queryer, campaign *domain.Campaign) (*domain.Campaign, error) {
						return campaign, nil
					})

				mockAdvertiserRepo.EXPECT().
					IncrementCampaignCount(gomock.Any(), "ADV123").
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.True(t, strings.HasPrefix(campaign.ID, "cmp_"))
				assert.Len(t, campaign.ID, 16)
				assert.Equal(t, "ADV123", campaign.AdvertiserID)
				assert.Equal(t, 10, campaign.OwnerUserID)
				assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
				assert.Equal(t, int64(90_000_000), campaign.TotalBudget)
				assert.Equal(t, int64(90_000_000), campaign.RemainingBudget)
			},
		},
		{
			name: "Saldo insuficiente - transação aborta sem criar nada",
			request: &domain.CreateCampaignRequest{
				ContentRef: "post-abc",
				Amount:     100_000_000,
				Pricing:    domain.Pricing{BidModel: domain.BidModelCPC, BidAmount: 250},
			},
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByOwner(10).
					Return(advertiser, nil)

				expectTransaction(mockDB)

				mockWalletRepo.EXPECT().
					Debit(gomock.Any(), 10, int64(100_000_000)).
					Return(false, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInsufficientFunds)
				assert.Nil(t, campaign)
			},
		},
		{
			name: "Identidade sem conta de anunciante não cria campanha",
			request: &domain.CreateCampaignRequest{
				ContentRef: "post-abc",
				Amount:     1_000,
				Pricing:    domain.Pricing{BidModel: domain.BidModelCPI, BidAmount: 10},
			},
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByOwner(10).
					Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrAdvertiserNotFound)
				assert.Nil(t, campaign)
			},
		},
		{
			name: "Depósito bruto não positivo é rejeitado",
			request: &domain.CreateCampaignRequest{
				ContentRef: "post-abc",
				Amount:     0,
				Pricing:    domain.Pricing{BidModel: domain.BidModelCPC, BidAmount: 250},
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, campaign)
			},
		},
		{
			name: "Depósito bruto acima do teto é rejeitado antes da divisão de taxa",
			request: &domain.CreateCampaignRequest{
				ContentRef: "post-abc",
				Amount:     domain.MaxDepositGross + 1,
				Pricing:    domain.Pricing{BidModel: domain.BidModelCPC, BidAmount: 250},
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, campaign)
			},
		},
		{
			name: "content_ref é obrigatório",
			request: &domain.CreateCampaignRequest{
				Amount:  1_000,
				Pricing: domain.Pricing{BidModel: domain.BidModelCPC, BidAmount: 250},
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.Nil(t, campaign)
			},
		},
		{
			name: "Modelo de cobrança desconhecido é rejeitado",
			request: &domain.CreateCampaignRequest{
				ContentRef: "post-abc",
				Amount:     1_000,
				Pricing:    domain.Pricing{BidModel: domain.BidModel("CPM"), BidAmount: 250},
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidBidModel)
				assert.Nil(t, campaign)
			},
		},
		{
			name: "Lance não positivo é rejeitado",
			request: &domain.CreateCampaignRequest{
				ContentRef: "post-abc",
				Amount:     1_000,
				Pricing:    domain.Pricing{BidModel: domain.BidModelCPC, BidAmount: 0},
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, campaign)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			campaign, err := service.CreateCampaign(context.Background(), capability, tt.request)

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_ActivateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		db:           mockDB,
		campaignRepo: mockCampaignRepo,
		cfg:          &config.Config{},
		now:          time.Now,
	}

	capability := domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name: "DRAFT vira ACTIVE",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{ID: "CMP001", OwnerUserID: 10, Status: domain.CampaignStatusDraft}, nil)

				mockCampaignRepo.EXPECT().
					UpdateStatus(gomock.Any(), "CMP001", domain.CampaignStatusActive).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name: "PAUSED volta para ACTIVE",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{ID: "CMP001", OwnerUserID: 10, Status: domain.CampaignStatusPaused}, nil)

				mockCampaignRepo.EXPECT().
					UpdateStatus(gomock.Any(), "CMP001", domain.CampaignStatusActive).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name: "Campanha já ACTIVE não pode ser reativada",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{ID: "CMP001", OwnerUserID: 10, Status: domain.CampaignStatusActive}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
				assert.Nil(t, campaign)
			},
		},
		{
			name: "Somente o dono ativa a campanha",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{ID: "CMP001", OwnerUserID: 99, Status: domain.CampaignStatusDraft}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrUnauthorized)
				assert.Nil(t, campaign)

				var ledgerErr *LedgerError
				assert.ErrorAs(t, err, &ledgerErr)
				assert.Equal(t, apiErrors.ErrNotOwner, ledgerErr.Code)
			},
		},
		{
			name: "Campanha inexistente",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrCampaignNotFound)
				assert.Nil(t, campaign)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.ActivateCampaign(context.Background(), capability, "CMP001")

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_ActivateCampaign_EnforceStartTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	// Relógio congelado para tornar a guarda de agenda determinística
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	service := &Service{
		db:           mockDB,
		campaignRepo: mockCampaignRepo,
		cfg:          &config.Config{Campaign: config.Campaign{EnforceStartTime: true}},
		now:          func() time.Time { return now },
	}

	capability := domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser}

	t.Run("Guarda ligada bloqueia ativação antes do start_time", func(t *testing.T) {
		expectTransaction(mockDB)

		mockCampaignRepo.EXPECT().
			GetCampaignForUpdate(gomock.Any(), "CMP001").
			Return(&domain.Campaign{
				ID:          "CMP001",
				OwnerUserID: 10,
				Status:      domain.CampaignStatusDraft,
				Schedule:    domain.Schedule{StartTime: now.Add(24 * time.Hour)},
			}, nil)

		campaign, err := service.ActivateCampaign(context.Background(), capability, "CMP001")

		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Nil(t, campaign)
	})

	t.Run("Start_time já alcançado permite a ativação", func(t *testing.T) {
		expectTransaction(mockDB)

		mockCampaignRepo.EXPECT().
			GetCampaignForUpdate(gomock.Any(), "CMP001").
			Return(&domain.Campaign{
				ID:          "CMP001",
				OwnerUserID: 10,
				Status:      domain.CampaignStatusDraft,
				Schedule:    domain.Schedule{StartTime: now.Add(-time.Hour)},
			}, nil)

		mockCampaignRepo.EXPECT().
			UpdateStatus(gomock.Any(), "CMP001", domain.CampaignStatusActive).
			Return(nil)

		campaign, err := service.ActivateCampaign(context.Background(), capability, "CMP001")

		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
	})
}

func TestService_PauseCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		db:           mockDB,
		campaignRepo: mockCampaignRepo,
		cfg:          &config.Config{},
		now:          time.Now,
	}

	capability := domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name: "ACTIVE vira PAUSED",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{ID: "CMP001", OwnerUserID: 10, Status: domain.CampaignStatusActive}, nil)

				mockCampaignRepo.EXPECT().
					UpdateStatus(gomock.Any(), "CMP001", domain.CampaignStatusPaused).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
			},
		},
		{
			name: "DRAFT não pode ser pausada",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{ID: "CMP001", OwnerUserID: 10, Status: domain.CampaignStatusDraft}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
				assert.Nil(t, campaign)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.PauseCampaign(context.Background(), capability, "CMP001")

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_CancelCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)

	service := &Service{
		db:           mockDB,
		campaignRepo: mockCampaignRepo,
		walletRepo:   mockWalletRepo,
		cfg:          &config.Config{},
		now:          time.Now,
	}

	capability := domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, response *domain.CancelCampaignResponse, err error)
	}{
		{
			name: "Cancelamento devolve exatamente o saldo restante",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{
						ID:              "CMP001",
						OwnerUserID:     10,
						Status:          domain.CampaignStatusActive,
						TotalBudget:     90_000,
						RemainingBudget: 5_000,
					}, nil)

				mockCampaignRepo.EXPECT().
					MarkCanceled(gomock.Any(), "CMP001").
					Return(nil)

				mockWalletRepo.EXPECT().
					Credit(gomock.Any(), 10, int64(5_000)).
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.CancelCampaignResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "CMP001", response.CampaignID)
				assert.Equal(t, int64(5_000), response.Refunded)
				assert.Equal(t, domain.CampaignStatusCanceled, response.Status)
			},
		},
		{
			name: "Saldo já exaurido - cancelamento sem reembolso",
			setup: func() {
				expectTransaction(mockDB)

				// Sem crédito na carteira quando não há o que devolver
				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{
						ID:              "CMP001",
						OwnerUserID:     10,
						Status:          domain.CampaignStatusActive,
						TotalBudget:     90_000,
						RemainingBudget: 0,
					}, nil)

				mockCampaignRepo.EXPECT().
					MarkCanceled(gomock.Any(), "CMP001").
					Return(nil)
			},
			validate: func(t *testing.T, response *domain.CancelCampaignResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), response.Refunded)
			},
		},
		{
			name: "Segundo cancelamento é rejeitado",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{
						ID:          "CMP001",
						OwnerUserID: 10,
						Status:      domain.CampaignStatusCanceled,
					}, nil)
			},
			validate: func(t *testing.T, response *domain.CancelCampaignResponse, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
				assert.Nil(t, response)
			},
		},
		{
			name: "Somente o dono cancela a campanha",
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{
						ID:              "CMP001",
						OwnerUserID:     99,
						Status:          domain.CampaignStatusActive,
						RemainingBudget: 5_000,
					}, nil)
			},
			validate: func(t *testing.T, response *domain.CancelCampaignResponse, err error) {
				assert.ErrorIs(t, err, ErrUnauthorized)
				assert.Nil(t, response)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			response, err := service.CancelCampaign(context.Background(), capability, "CMP001")

			tt.validate(t, response, err)
		})
	}
}

func TestService_FundCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockWalletRepo := mocks.NewMockWalletRepository(ctrl)
	mockFeePoolRepo := mocks.NewMockFeePoolRepository(ctrl)

	service := &Service{
		db:           mockDB,
		campaignRepo: mockCampaignRepo,
		walletRepo:   mockWalletRepo,
		feePoolRepo:  mockFeePoolRepo,
		cfg:          &config.Config{Fees: config.Fees{BPS: 1000}},
		now:          time.Now,
	}

	capability := domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser}

	tests := []struct {
		name     string
		request  *domain.FundCampaignRequest
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:    "Aporte divide a taxa e soma o líquido nos dois saldos",
			request: &domain.FundCampaignRequest{Amount: 1_001},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{
						ID:              "CMP001",
						OwnerUserID:     10,
						Status:          domain.CampaignStatusActive,
						TotalBudget:     90_000_000,
						RemainingBudget: 90_000_000,
					}, nil)

				// floor(1001 * 1000 / 10000) = 100 de taxa, 901 líquidos
				mockWalletRepo.EXPECT().
					Debit(gomock.Any(), 10, int64(1_001)).
					Return(true, nil)

				mockFeePoolRepo.EXPECT().
					Credit(gomock.Any(), int64(100)).
					Return(nil)

				mockCampaignRepo.EXPECT().
					AddBudget(gomock.Any(), "CMP001", int64(901)).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(90_000_901), campaign.TotalBudget)
				assert.Equal(t, int64(90_000_901), campaign.RemainingBudget)
			},
		},
		{
			name:    "Campanha terminal não recebe aporte",
			request: &domain.FundCampaignRequest{Amount: 1_000},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{
						ID:          "CMP001",
						OwnerUserID: 10,
						Status:      domain.CampaignStatusCompleted,
					}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
				assert.Nil(t, campaign)
			},
		},
		{
			name:    "Saldo insuficiente para o aporte",
			request: &domain.FundCampaignRequest{Amount: 1_000},
			setup: func() {
				expectTransaction(mockDB)

				mockCampaignRepo.EXPECT().
					GetCampaignForUpdate(gomock.Any(), "CMP001").
					Return(&domain.Campaign{
						ID:              "CMP001",
						OwnerUserID:     10,
						Status:          domain.CampaignStatusDraft,
						TotalBudget:     900,
						RemainingBudget: 900,
					}, nil)

				mockWalletRepo.EXPECT().
					Debit(gomock.Any(), 10, int64(1_000)).
					Return(false, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInsufficientFunds)
				assert.Nil(t, campaign)
			},
		},
		{
			name:    "Aporte não positivo é rejeitado antes da transação",
			request: &domain.FundCampaignRequest{Amount: 0},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, campaign)
			},
		},
		{
			name:    "Aporte acima do teto é rejeitado antes da transação",
			request: &domain.FundCampaignRequest{Amount: domain.MaxDepositGross + 1},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, campaign)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			campaign, err := service.FundCampaign(context.Background(), capability, "CMP001", tt.request)

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_SetVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockAdvertiserRepo := mocks.NewMockAdvertiserRepository(ctrl)

	service := &Service{
		db:             mockDB,
		advertiserRepo: mockAdvertiserRepo,
		now:            time.Now,
	}

	adminCapability := domain.Capability{UserID: 1, RoleID: domain.RoleAdmin}

	tests := []struct {
		name       string
		capability domain.Capability
		setup      func()
		validate   func(t *testing.T, advertiser *domain.AdvertiserAccount, err error)
	}{
		{
			name:       "Admin liga o selo de verificação",
			capability: adminCapability,
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					SetVerification(gomock.Any(), "ADV123", true).
					Return(nil)

				mockAdvertiserRepo.EXPECT().
					GetAdvertiserByID("ADV123").
					Return(&domain.AdvertiserAccount{ID: "ADV123", Verified: true}, nil)
			},
			validate: func(t *testing.T, advertiser *domain.AdvertiserAccount, err error) {
				assert.NoError(t, err)
				assert.True(t, advertiser.Verified)
			},
		},
		{
			name:       "Capability de anunciante não altera verificação",
			capability: domain.Capability{UserID: 10, RoleID: domain.RoleAdvertiser},
			validate: func(t *testing.T, advertiser *domain.AdvertiserAccount, err error) {
				assert.ErrorIs(t, err, ErrUnauthorized)
				assert.Nil(t, advertiser)
			},
		},
		{
			name:       "Anunciante inexistente",
			capability: adminCapability,
			setup: func() {
				mockAdvertiserRepo.EXPECT().
					SetVerification(gomock.Any(), "ADV123", true).
					Return(sql.ErrNoRows)
			},
			validate: func(t *testing.T, advertiser *domain.AdvertiserAccount, err error) {
				assert.ErrorIs(t, err, ErrAdvertiserNotFound)
				assert.Nil(t, advertiser)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			advertiser, err := service.SetVerification(context.Background(), tt.capability, "ADV123", true)

			tt.validate(t, advertiser, err)
		})
	}
}

func TestService_GetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		campaignRepo: mockCampaignRepo,
		now:          time.Now,
	}

	t.Run("Campanha existente é devolvida", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetCampaignByID("CMP001").
			Return(&domain.Campaign{ID: "CMP001"}, nil)

		campaign, err := service.GetCampaign("CMP001")

		assert.NoError(t, err)
		assert.Equal(t, "CMP001", campaign.ID)
	})

	t.Run("Campanha inexistente devolve erro com o ID", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetCampaignByID("CMP404").
			Return(nil, nil)

		campaign, err := service.GetCampaign("CMP404")

		assert.ErrorIs(t, err, ErrCampaignNotFound)
		assert.Nil(t, campaign)

		var ledgerErr *LedgerError
		assert.ErrorAs(t, err, &ledgerErr)
		assert.Equal(t, "CMP404", ledgerErr.CampaignID)
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
