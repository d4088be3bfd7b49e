package repository

import (
	"database/sql"
	"fmt"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
)

type WalletRepository interface {
	GetWalletByUserID(userID int) (*domain.Wallet, error)
	Credit(q postgres.Queryer, userID int, amount int64) error
	Debit(q postgres.Queryer, userID int, amount int64) (bool, error)
}

type walletRepository struct {
	conn *postgres.Connection
}

func NewWalletRepository(conn *postgres.Connection) WalletRepository {
	return &walletRepository{
		conn: conn,
	}
}

func (r *walletRepository) GetWalletByUserID(userID int) (*domain.Wallet, error) {
	return scanWallet(r.conn.QueryRow(
		"SELECT user_id, balance, updated_at FROM wallets WHERE user_id = $1",
		userID,
	))
}

func scanWallet(row *sql.Row) (*domain.Wallet, error) {
	wallet := &domain.Wallet{}

	if err := row.Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return wallet, nil
}

// Credit cria a carteira na primeira necessidade e acumula o valor
func (r *walletRepository) Credit(q postgres.Queryer, userID int, amount int64) error {
	_, err := q.Exec(`
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = wallets.balance + EXCLUDED.balance,
			updated_at = NOW()`,
		userID,
		amount,
	)
	if err != nil {
		return fmt.Errorf("erro ao creditar carteira: %w", err)
	}

	return nil
}

// Debit debita somente se o saldo cobre o valor; retorna falso quando a
// guarda de saldo rejeita o débito (nenhuma linha afetada)
func (r *walletRepository) Debit(q postgres.Queryer, userID int, amount int64) (bool, error) {
	result, err := q.Exec(
		"UPDATE wallets SET balance = balance - $1, updated_at = NOW() WHERE user_id = $2 AND balance >= $1",
		amount,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("erro ao debitar carteira: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
