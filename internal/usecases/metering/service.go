package metering

import (
	"context"
	"database/sql"
	"time"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/log"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/utils"
	"github.com/google/uuid"
)

// MeteringService registra eventos de engajamento contra campanhas e mantém
// a contabilidade derivada: débito de orçamento, gasto acumulado do anunciante
// e o encerramento por exaustão
type MeteringService interface {
	RecordEngagement(ctx context.Context, capability domain.Capability, campaignID string, req *domain.RecordEngagementRequest) (*domain.RecordEngagementResponse, error)
	ListEngagements(campaignID string, limit uint64) ([]*domain.Engagement, error)
	ListDailyStats(campaignID string, from, to *time.Time) ([]*domain.CampaignDailyStat, error)
}

type Service struct {
	db             postgres.Conn
	campaignRepo   repository.CampaignRepository
	engagementRepo repository.EngagementRepository
	advertiserRepo repository.AdvertiserRepository
	statsRepo      repository.StatsRepository
}

func NewService(
	db postgres.Conn,
	campaignRepo repository.CampaignRepository,
	engagementRepo repository.EngagementRepository,
	advertiserRepo repository.AdvertiserRepository,
	statsRepo repository.StatsRepository,
) MeteringService {
	return &Service{
		db:             db,
		campaignRepo:   campaignRepo,
		engagementRepo: engagementRepo,
		advertiserRepo: advertiserRepo,
		statsRepo:      statsRepo,
	}
}

// RecordEngagement grava o evento imutável e aplica a contabilidade na mesma
// transação. Um evento cujo tipo casa com o modelo de cobrança debita o lance
// (limitado ao saldo restante); os demais tipos apenas incrementam contadores.
// Quando o saldo chega a zero pelo débito, a campanha encerra em COMPLETED.
func (s *Service) RecordEngagement(ctx context.Context, capability domain.Capability, campaignID string, req *domain.RecordEngagementRequest) (*domain.RecordEngagementResponse, error) {
	if !capability.CanMeter() {
		return nil, NewMeteringError(ErrUnauthorized, apiErrors.ErrInsufficientPrivilege, campaignID, "Somente a autoridade de medição registra engajamentos")
	}

	if req.ViewerRef == "" {
		return nil, NewMeteringError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, campaignID, "viewer_ref é obrigatório")
	}

	if !req.Type.Valid() {
		return nil, NewMeteringError(ErrInvalidEngagementType, apiErrors.ErrInvalidEngagementType, campaignID, "Tipo deve estar entre 0 e 3")
	}

	var response *domain.RecordEngagementResponse

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		campaign, err := s.campaignRepo.GetCampaignForUpdate(tx, campaignID)
		if err != nil {
			return NewMeteringError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao consultar campanha")
		}

		if campaign == nil {
			return NewMeteringError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
		}

		if !campaign.AcceptsEngagements() {
			return NewMeteringError(ErrInvalidState, apiErrors.ErrInvalidState, campaignID, "Campanha em estado terminal")
		}

		var charge int64
		if campaign.Pricing.BidModel.Charges(req.Type) {
			charge = utils.MinInt64(campaign.Pricing.BidAmount, campaign.RemainingBudget)
		}

		remaining := campaign.RemainingBudget - charge

		status := campaign.Status
		if charge > 0 && remaining == 0 {
			status = domain.CampaignStatusCompleted
		}

		engagement := &domain.Engagement{
			ID:         uuid.New().String(),
			CampaignID: campaignID,
			ViewerRef:  req.ViewerRef,
			Type:       req.Type,
			Charged:    charge,
		}

		if _, err := s.engagementRepo.CreateEngagement(tx, engagement); err != nil {
			return NewMeteringError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao gravar engajamento")
		}

		if err := s.campaignRepo.ApplyCharge(tx, campaignID, charge, req.Type, status); err != nil {
			return NewMeteringError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao aplicar cobrança")
		}

		if charge > 0 {
			if err := s.advertiserRepo.AddSpent(tx, campaign.AdvertiserID, charge); err != nil {
				return NewMeteringError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao acumular gasto do anunciante")
			}
		}

		response = &domain.RecordEngagementResponse{
			Engagement:      engagement,
			Charged:         charge,
			RemainingBudget: remaining,
			CampaignStatus:  status,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id":     campaignID,
		"engagement_type": req.Type.String(),
		"charged":         response.Charged,
	})

	if response.CampaignStatus == domain.CampaignStatusCompleted {
		logger.Info("Engajamento registrado e campanha encerrada por exaustão")
	} else {
		logger.Debug("Engajamento registrado")
	}

	return response, nil
}

func (s *Service) ListEngagements(campaignID string, limit uint64) ([]*domain.Engagement, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		return nil, NewMeteringError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return s.engagementRepo.ListEngagementsByCampaign(campaignID, limit)
}

func (s *Service) ListDailyStats(campaignID string, from, to *time.Time) ([]*domain.CampaignDailyStat, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		return nil, NewMeteringError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return s.statsRepo.ListDailyStats(campaignID, from, to)
}
