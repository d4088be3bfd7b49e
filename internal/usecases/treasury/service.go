package treasury

import (
	"context"
	"database/sql"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/log"
)

// TreasuryService cuida do valor externo ao ledger: carteiras dos usuários e
// o saque do pool de taxas da plataforma
type TreasuryService interface {
	Deposit(ctx context.Context, capability domain.Capability, userID int, req *domain.DepositRequest) (*domain.Wallet, error)
	GetWallet(capability domain.Capability, userID int) (*domain.Wallet, error)
	GetFeePool(capability domain.Capability) (*domain.FeePool, error)
	WithdrawFees(ctx context.Context, capability domain.Capability) (*domain.WithdrawFeesResponse, error)
}

type Service struct {
	db          postgres.Conn
	walletRepo  repository.WalletRepository
	feePoolRepo repository.FeePoolRepository
}

func NewService(
	db postgres.Conn,
	walletRepo repository.WalletRepository,
	feePoolRepo repository.FeePoolRepository,
) TreasuryService {
	return &Service{
		db:          db,
		walletRepo:  walletRepo,
		feePoolRepo: feePoolRepo,
	}
}

// Deposit credita valor externo na carteira de um usuário. Somente o admin
// movimenta valor para dentro da plataforma.
func (s *Service) Deposit(ctx context.Context, capability domain.Capability, userID int, req *domain.DepositRequest) (*domain.Wallet, error) {
	if !capability.CanAdministrate() {
		return nil, NewTreasuryError(ErrUnauthorized, apiErrors.ErrInsufficientPrivilege, "Somente o admin credita carteiras")
	}

	if req.Amount <= 0 {
		return nil, NewWalletError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, userID, "Depósito deve ser positivo")
	}

	if err := s.walletRepo.Credit(s.db, userID, req.Amount); err != nil {
		return nil, NewWalletError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao creditar carteira")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": userID,
		"amount":  req.Amount,
	}).Info("Depósito creditado em carteira")

	return s.walletRepo.GetWalletByUserID(userID)
}

// GetWallet devolve a carteira do próprio chamador; o admin enxerga qualquer uma
func (s *Service) GetWallet(capability domain.Capability, userID int) (*domain.Wallet, error) {
	if capability.UserID != userID && !capability.CanAdministrate() {
		return nil, NewWalletError(ErrUnauthorized, apiErrors.ErrInsufficientPrivilege, userID, "Carteira alheia exige capability de admin")
	}

	wallet, err := s.walletRepo.GetWalletByUserID(userID)
	if err != nil {
		return nil, NewWalletError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar carteira")
	}

	if wallet == nil {
		// Carteira ainda não criada equivale a saldo zero
		return &domain.Wallet{UserID: userID}, nil
	}

	return wallet, nil
}

func (s *Service) GetFeePool(capability domain.Capability) (*domain.FeePool, error) {
	if !capability.CanAdministrate() {
		return nil, NewTreasuryError(ErrUnauthorized, apiErrors.ErrInsufficientPrivilege, "Somente o admin consulta o pool de taxas")
	}

	pool, err := s.feePoolRepo.GetFeePool()
	if err != nil {
		return nil, NewTreasuryError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar pool de taxas")
	}

	if pool == nil {
		return &domain.FeePool{}, nil
	}

	return pool, nil
}

// WithdrawFees drena o saldo inteiro do pool para a carteira do admin que
// apresentou a capability. Pool zerado é um no-op que devolve zero; o débito
// e o crédito acontecem com a linha do pool travada.
func (s *Service) WithdrawFees(ctx context.Context, capability domain.Capability) (*domain.WithdrawFeesResponse, error) {
	if !capability.CanAdministrate() {
		return nil, NewTreasuryError(ErrUnauthorized, apiErrors.ErrInsufficientPrivilege, "Somente o admin saca o pool de taxas")
	}

	var amount int64

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		pool, err := s.feePoolRepo.GetFeePoolForUpdate(tx)
		if err != nil {
			return NewTreasuryError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar pool de taxas")
		}

		if pool == nil || pool.Balance == 0 {
			amount = 0
			return nil
		}

		amount = pool.Balance

		if err := s.feePoolRepo.SetBalance(tx, 0); err != nil {
			return NewTreasuryError(err, apiErrors.ErrDatabaseOperation, "Erro ao zerar pool de taxas")
		}

		if err := s.walletRepo.Credit(tx, capability.UserID, amount); err != nil {
			return NewTreasuryError(err, apiErrors.ErrDatabaseOperation, "Erro ao creditar carteira do admin")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": capability.UserID,
		"amount":  amount,
	}).Info("Pool de taxas sacado")

	return &domain.WithdrawFeesResponse{Amount: amount}, nil
}
