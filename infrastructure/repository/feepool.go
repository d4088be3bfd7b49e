package repository

import (
	"database/sql"
	"fmt"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
)

// O pool de taxas é uma linha única (id = 1), criada na migração e nunca
// removida. Crédito acontece em todo depósito; o saque zera o saldo.
const feePoolRowID = 1

type FeePoolRepository interface {
	GetFeePool() (*domain.FeePool, error)
	GetFeePoolForUpdate(q postgres.Queryer) (*domain.FeePool, error)
	Credit(q postgres.Queryer, amount int64) error
	SetBalance(q postgres.Queryer, balance int64) error
}

type feePoolRepository struct {
	conn *postgres.Connection
}

func NewFeePoolRepository(conn *postgres.Connection) FeePoolRepository {
	return &feePoolRepository{
		conn: conn,
	}
}

func (r *feePoolRepository) GetFeePool() (*domain.FeePool, error) {
	return scanFeePool(r.conn.QueryRow(
		"SELECT balance, updated_at FROM fee_pool WHERE id = $1",
		feePoolRowID,
	))
}

// GetFeePoolForUpdate trava a linha única do pool, serializando créditos e
// saques concorrentes
func (r *feePoolRepository) GetFeePoolForUpdate(q postgres.Queryer) (*domain.FeePool, error) {
	return scanFeePool(q.QueryRow(
		"SELECT balance, updated_at FROM fee_pool WHERE id = $1 FOR UPDATE",
		feePoolRowID,
	))
}

func scanFeePool(row *sql.Row) (*domain.FeePool, error) {
	pool := &domain.FeePool{}

	if err := row.Scan(&pool.Balance, &pool.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return pool, nil
}

func (r *feePoolRepository) Credit(q postgres.Queryer, amount int64) error {
	_, err := q.Exec(
		"UPDATE fee_pool SET balance = balance + $1, updated_at = NOW() WHERE id = $2",
		amount,
		feePoolRowID,
	)
	if err != nil {
		return fmt.Errorf("erro ao creditar pool de taxas: %w", err)
	}

	return nil
}

func (r *feePoolRepository) SetBalance(q postgres.Queryer, balance int64) error {
	_, err := q.Exec(
		"UPDATE fee_pool SET balance = $1, updated_at = NOW() WHERE id = $2",
		balance,
		feePoolRowID,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar saldo do pool de taxas: %w", err)
	}

	return nil
}
