package advertising

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/config"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/log"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/utils"
)

// AdvertisingService expõe o registro de anunciantes e o ledger de campanhas.
// Toda operação que movimenta dinheiro ou muda status é tudo-ou-nada: executa
// dentro de uma única transação com a linha da campanha travada.
type AdvertisingService interface {
	RegisterAdvertiser(ctx context.Context, capability domain.Capability) (*domain.AdvertiserAccount, error)
	GetAdvertiser(advertiserID string) (*domain.AdvertiserAccount, error)
	GetAdvertiserByOwner(ownerUserID int) (*domain.AdvertiserAccount, error)
	ListAdvertisers() ([]*domain.AdvertiserAccount, error)
	SetVerification(ctx context.Context, capability domain.Capability, advertiserID string, verified bool) (*domain.AdvertiserAccount, error)

	CreateCampaign(ctx context.Context, capability domain.Capability, req *domain.CreateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(campaignID string) (*domain.Campaign, error)
	ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error)
	ListCampaignsByAdvertiser(advertiserID string) ([]*domain.Campaign, error)
	ActivateCampaign(ctx context.Context, capability domain.Capability, campaignID string) (*domain.Campaign, error)
	PauseCampaign(ctx context.Context, capability domain.Capability, campaignID string) (*domain.Campaign, error)
	CancelCampaign(ctx context.Context, capability domain.Capability, campaignID string) (*domain.CancelCampaignResponse, error)
	FundCampaign(ctx context.Context, capability domain.Capability, campaignID string, req *domain.FundCampaignRequest) (*domain.Campaign, error)
}

type Service struct {
	db             postgres.Conn
	advertiserRepo repository.AdvertiserRepository
	campaignRepo   repository.CampaignRepository
	walletRepo     repository.WalletRepository
	feePoolRepo    repository.FeePoolRepository
	cfg            *config.Config
	now            func() time.Time
}

func NewService(
	db postgres.Conn,
	advertiserRepo repository.AdvertiserRepository,
	campaignRepo repository.CampaignRepository,
	walletRepo repository.WalletRepository,
	feePoolRepo repository.FeePoolRepository,
	cfg *config.Config,
) AdvertisingService {
	return &Service{
		db:             db,
		advertiserRepo: advertiserRepo,
		campaignRepo:   campaignRepo,
		walletRepo:     walletRepo,
		feePoolRepo:    feePoolRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

// RegisterAdvertiser cria a conta de anunciante da identidade autenticada.
// Uma identidade possui no máximo uma conta; a segunda tentativa falha.
func (s *Service) RegisterAdvertiser(ctx context.Context, capability domain.Capability) (*domain.AdvertiserAccount, error) {
	existing, err := s.advertiserRepo.GetAdvertiserByOwner(capability.UserID)
	if err != nil {
		return nil, NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar conta de anunciante")
	}

	if existing != nil {
		return nil, NewLedgerError(ErrAlreadyRegistered, apiErrors.ErrAlreadyRegistered, "Identidade já possui conta de anunciante")
	}

	advertiserID, err := utils.NewAdvertiserID()
	if err != nil {
		return nil, err
	}

	advertiser := &domain.AdvertiserAccount{
		ID:          advertiserID,
		OwnerUserID: capability.UserID,
	}

	advertiser, err = s.advertiserRepo.CreateAdvertiser(s.db, advertiser)
	if err != nil {
		// registro concorrente venceu a corrida entre a checagem e o insert
		if errors.Is(err, repository.ErrAdvertiserExists) {
			return nil, NewLedgerError(ErrAlreadyRegistered, apiErrors.ErrAlreadyRegistered, "Identidade já possui conta de anunciante")
		}
		return nil, NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar conta de anunciante")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"advertiser_id": advertiser.ID,
		"user_id":       capability.UserID,
	}).Info("Conta de anunciante registrada")

	return advertiser, nil
}

func (s *Service) GetAdvertiser(advertiserID string) (*domain.AdvertiserAccount, error) {
	advertiser, err := s.advertiserRepo.GetAdvertiserByID(advertiserID)
	if err != nil {
		return nil, err
	}

	if advertiser == nil {
		return nil, NewLedgerError(ErrAdvertiserNotFound, apiErrors.ErrAdvertiserNotFound, "")
	}

	return advertiser, nil
}

func (s *Service) GetAdvertiserByOwner(ownerUserID int) (*domain.AdvertiserAccount, error) {
	advertiser, err := s.advertiserRepo.GetAdvertiserByOwner(ownerUserID)
	if err != nil {
		return nil, err
	}

	if advertiser == nil {
		return nil, NewLedgerError(ErrAdvertiserNotFound, apiErrors.ErrAdvertiserNotFound, "")
	}

	return advertiser, nil
}

func (s *Service) ListAdvertisers() ([]*domain.AdvertiserAccount, error) {
	return s.advertiserRepo.ListAdvertisers()
}

// SetVerification liga ou desliga o selo de verificação de um anunciante.
// Exige a capability de administração; a flag não interfere no ledger.
func (s *Service) SetVerification(ctx context.Context, capability domain.Capability, advertiserID string, verified bool) (*domain.AdvertiserAccount, error) {
	if !capability.CanAdministrate() {
		return nil, NewLedgerError(ErrUnauthorized, apiErrors.ErrInsufficientPrivilege, "Somente o admin altera verificação")
	}

	err := s.advertiserRepo.SetVerification(s.db, advertiserID, verified)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, NewLedgerError(ErrAdvertiserNotFound, apiErrors.ErrAdvertiserNotFound, "")
		}
		return nil, NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar verificação")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"advertiser_id": advertiserID,
		"verified":      verified,
	}).Info("Verificação de anunciante atualizada")

	return s.GetAdvertiser(advertiserID)
}

func validateCreateCampaignRequest(req *domain.CreateCampaignRequest) error {
	if req.ContentRef == "" {
		return NewLedgerError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "content_ref é obrigatório")
	}

	if req.Amount <= 0 {
		return NewLedgerError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Depósito bruto deve ser positivo")
	}

	if req.Amount > domain.MaxDepositGross {
		return NewLedgerError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Depósito bruto excede o valor máximo aceito")
	}

	if !req.Pricing.BidModel.Valid() {
		return NewLedgerError(ErrInvalidBidModel, apiErrors.ErrInvalidFormat, "Modelo de cobrança desconhecido")
	}

	if req.Pricing.BidAmount <= 0 {
		return NewLedgerError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Lance deve ser positivo")
	}

	return nil
}

// CreateCampaign debita o valor bruto da carteira do dono, credita a taxa no
// pool e abre a campanha em DRAFT com o orçamento líquido. Débito, crédito da
// taxa, criação e o incremento do contador do anunciante acontecem na mesma
// transação: ou tudo, ou nada.
func (s *Service) CreateCampaign(ctx context.Context, capability domain.Capability, req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := validateCreateCampaignRequest(req); err != nil {
		return nil, err
	}

	advertiser, err := s.advertiserRepo.GetAdvertiserByOwner(capability.UserID)
	if err != nil {
		return nil, NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar conta de anunciante")
	}

	if advertiser == nil {
		return nil, NewLedgerError(ErrAdvertiserNotFound, apiErrors.ErrAdvertiserNotFound, "Registre-se como anunciante antes de criar campanhas")
	}

	campaignID, err := utils.NewCampaignID()
	if err != nil {
		return nil, err
	}

	breakdown := domain.SplitDeposit(req.Amount, s.cfg.Fees.BPS)

	campaign := &domain.Campaign{
		ID:              campaignID,
		AdvertiserID:    advertiser.ID,
		OwnerUserID:     capability.UserID,
		ContentRef:      req.ContentRef,
		Status:          domain.CampaignStatusDraft,
		TotalBudget:     breakdown.Net,
		RemainingBudget: breakdown.Net,
		Schedule:        req.Schedule,
		Pricing:         req.Pricing,
		Targeting:       req.Targeting,
		Creative:        req.Creative,
	}

	err = s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		debited, err := s.walletRepo.Debit(tx, capability.UserID, breakdown.Gross)
		if err != nil {
			return NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao debitar carteira")
		}

		if !debited {
			return NewLedgerError(ErrInsufficientFunds, apiErrors.ErrInsufficientFunds, "Saldo não cobre o depósito bruto")
		}

		if err := s.feePoolRepo.Credit(tx, breakdown.Fee); err != nil {
			return NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao creditar pool de taxas")
		}

		if _, err := s.campaignRepo.CreateCampaign(tx, campaign); err != nil {
			return NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar campanha")
		}

		if err := s.advertiserRepo.IncrementCampaignCount(tx, advertiser.ID); err != nil {
			return NewLedgerError(err, apiErrors.ErrDatabaseOperation, "Erro ao incrementar contador de campanhas")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id":   campaign.ID,
		"advertiser_id": advertiser.ID,
		"gross":         breakdown.Gross,
		"fee":           breakdown.Fee,
		"net":           breakdown.Net,
	}).Info("Campanha criada")

	return campaign, nil
}

func (s *Service) GetCampaign(campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return campaign, nil
}

func (s *Service) ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error) {
	return s.campaignRepo.ListCampaigns(availableStatus)
}

func (s *Service) ListCampaignsByAdvertiser(advertiserID string) ([]*domain.Campaign, error) {
	return s.campaignRepo.ListCampaignsByAdvertiser(advertiserID)
}

// lockOwnedCampaign trava a linha da campanha e valida a posse do chamador.
// Falha de autorização não muda estado algum: o erro aborta a transação.
func (s *Service) lockOwnedCampaign(tx *sql.Tx, capability domain.Capability, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetCampaignForUpdate(tx, campaignID)
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao consultar campanha")
	}

	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	if campaign.OwnerUserID != capability.UserID {
		return nil, NewCampaignError(ErrUnauthorized, apiErrors.ErrNotOwner, campaignID, "Somente o dono da campanha opera sobre ela")
	}

	return campaign, nil
}

// ActivateCampaign move DRAFT ou PAUSED para ACTIVE
func (s *Service) ActivateCampaign(ctx context.Context, capability domain.Capability, campaignID string) (*domain.Campaign, error) {
	var campaign *domain.Campaign

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		campaign, err = s.lockOwnedCampaign(tx, capability, campaignID)
		if err != nil {
			return err
		}

		if !campaign.CanActivate() {
			return NewCampaignError(ErrInvalidState, apiErrors.ErrInvalidState, campaignID, "Ativação exige DRAFT ou PAUSED")
		}

		// Guarda opcional de agenda: desligada por padrão, o início da
		// veiculação é metadado consumido por validadores externos
		if s.cfg.Campaign.EnforceStartTime && s.now().Before(campaign.Schedule.StartTime) {
			return NewCampaignError(ErrInvalidState, apiErrors.ErrInvalidState, campaignID, "Campanha ainda não atingiu o horário de início")
		}

		if err := s.campaignRepo.UpdateStatus(tx, campaignID, domain.CampaignStatusActive); err != nil {
			return NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao ativar campanha")
		}

		campaign.Status = domain.CampaignStatusActive
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("campaign_id", campaignID).Info("Campanha ativada")

	return campaign, nil
}

// PauseCampaign move ACTIVE para PAUSED
func (s *Service) PauseCampaign(ctx context.Context, capability domain.Capability, campaignID string) (*domain.Campaign, error) {
	var campaign *domain.Campaign

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		campaign, err = s.lockOwnedCampaign(tx, capability, campaignID)
		if err != nil {
			return err
		}

		if !campaign.CanPause() {
			return NewCampaignError(ErrInvalidState, apiErrors.ErrInvalidState, campaignID, "Pausa exige ACTIVE")
		}

		if err := s.campaignRepo.UpdateStatus(tx, campaignID, domain.CampaignStatusPaused); err != nil {
			return NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao pausar campanha")
		}

		campaign.Status = domain.CampaignStatusPaused
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("campaign_id", campaignID).Info("Campanha pausada")

	return campaign, nil
}

// CancelCampaign devolve exatamente o saldo restante à carteira do dono, zera
// o saldo e grava o status terminal. O total histórico permanece intacto.
func (s *Service) CancelCampaign(ctx context.Context, capability domain.Capability, campaignID string) (*domain.CancelCampaignResponse, error) {
	var refunded int64

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		campaign, err := s.lockOwnedCampaign(tx, capability, campaignID)
		if err != nil {
			return err
		}

		if !campaign.CanCancel() {
			return NewCampaignError(ErrInvalidState, apiErrors.ErrInvalidState, campaignID, "Cancelamento exige estado não terminal")
		}

		refunded = campaign.RemainingBudget

		if err := s.campaignRepo.MarkCanceled(tx, campaignID); err != nil {
			return NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao cancelar campanha")
		}

		if refunded > 0 {
			if err := s.walletRepo.Credit(tx, campaign.OwnerUserID, refunded); err != nil {
				return NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao reembolsar carteira")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"refunded":    refunded,
	}).Info("Campanha cancelada")

	return &domain.CancelCampaignResponse{
		CampaignID: campaignID,
		Refunded:   refunded,
		Status:     domain.CampaignStatusCanceled,
	}, nil
}

// FundCampaign aporta um novo depósito bruto em campanha não terminal com a
// mesma divisão de taxa da criação; o delta líquido entra em passo único no
// total e no saldo restante
func (s *Service) FundCampaign(ctx context.Context, capability domain.Capability, campaignID string, req *domain.FundCampaignRequest) (*domain.Campaign, error) {
	if req.Amount <= 0 {
		return nil, NewCampaignError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, campaignID, "Aporte bruto deve ser positivo")
	}

	if req.Amount > domain.MaxDepositGross {
		return nil, NewCampaignError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, campaignID, "Aporte bruto excede o valor máximo aceito")
	}

	breakdown := domain.SplitDeposit(req.Amount, s.cfg.Fees.BPS)

	var campaign *domain.Campaign

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		campaign, err = s.lockOwnedCampaign(tx, capability, campaignID)
		if err != nil {
			return err
		}

		if !campaign.CanReceiveFunds() {
			return NewCampaignError(ErrInvalidState, apiErrors.ErrInvalidState, campaignID, "Aporte exige estado não terminal")
		}

		debited, err := s.walletRepo.Debit(tx, capability.UserID, breakdown.Gross)
		if err != nil {
			return NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao debitar carteira")
		}

		if !debited {
			return NewCampaignError(ErrInsufficientFunds, apiErrors.ErrInsufficientFunds, campaignID, "Saldo não cobre o aporte bruto")
		}

		if err := s.feePoolRepo.Credit(tx, breakdown.Fee); err != nil {
			return NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao creditar pool de taxas")
		}

		if err := s.campaignRepo.AddBudget(tx, campaignID, breakdown.Net); err != nil {
			return NewCampaignError(err, apiErrors.ErrDatabaseOperation, campaignID, "Erro ao aportar orçamento")
		}

		campaign.TotalBudget += breakdown.Net
		campaign.RemainingBudget += breakdown.Net
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"gross":       breakdown.Gross,
		"fee":         breakdown.Fee,
		"net":         breakdown.Net,
	}).Info("Campanha aportada")

	return campaign, nil
}
