package repository

import (
	"fmt"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
)

type AuditRepository interface {
	FindCampaignDiscrepancies() ([]*domain.LedgerDiscrepancy, error)
	FindAdvertiserDiscrepancies() ([]*domain.LedgerDiscrepancy, error)
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

// FindCampaignDiscrepancies compara o orçamento consumido mantido no registro
// (total - restante) com a soma derivada dos eventos imutáveis. Campanhas
// canceladas ficam de fora: o cancelamento zera o saldo restante sem tocar no
// total histórico, então a derivação não se aplica.
func (r *auditRepository) FindCampaignDiscrepancies() ([]*domain.LedgerDiscrepancy, error) {
	rows, err := r.conn.Query(`
		SELECT
			c.id,
			COALESCE(SUM(e.charged), 0) AS expected,
			c.total_budget - c.remaining_budget AS actual
		FROM campaigns c
		LEFT JOIN engagements e ON e.campaign_id = c.id
		WHERE c.status <> $1
		GROUP BY c.id, c.total_budget, c.remaining_budget
		HAVING COALESCE(SUM(e.charged), 0) <> c.total_budget - c.remaining_budget
		ORDER BY c.id`,
		domain.CampaignStatusCanceled,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao auditar campanhas: %w", err)
	}
	defer rows.Close()

	return scanDiscrepancies(rows, domain.AuditScopeCampaign)
}

// FindAdvertiserDiscrepancies compara o gasto acumulado de cada anunciante com
// a soma de tudo que os eventos das suas campanhas efetivamente debitaram
func (r *auditRepository) FindAdvertiserDiscrepancies() ([]*domain.LedgerDiscrepancy, error) {
	rows, err := r.conn.Query(`
		SELECT
			a.id,
			COALESCE(SUM(e.charged), 0) AS expected,
			a.total_spent AS actual
		FROM advertisers a
		LEFT JOIN campaigns c ON c.advertiser_id = a.id
		LEFT JOIN engagements e ON e.campaign_id = c.id
		GROUP BY a.id, a.total_spent
		HAVING COALESCE(SUM(e.charged), 0) <> a.total_spent
		ORDER BY a.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao auditar anunciantes: %w", err)
	}
	defer rows.Close()

	return scanDiscrepancies(rows, domain.AuditScopeAdvertiser)
}

type discrepancyRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanDiscrepancies(rows discrepancyRows, scope string) ([]*domain.LedgerDiscrepancy, error) {
	discrepancies := make([]*domain.LedgerDiscrepancy, 0)

	for rows.Next() {
		discrepancy := domain.LedgerDiscrepancy{Scope: scope}
		if err := rows.Scan(
			&discrepancy.RefID,
			&discrepancy.Expected,
			&discrepancy.Actual,
		); err != nil {
			return nil, err
		}

		discrepancies = append(discrepancies, &discrepancy)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return discrepancies, nil
}
