package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/lib/pq"
)

const (
	advertisersTable = "advertisers"
)

// ErrAdvertiserExists indica que o owner_user_id já possui conta de anunciante
var ErrAdvertiserExists = errors.New("advertiser already exists for owner")

type AdvertiserRepository interface {
	CreateAdvertiser(q postgres.Queryer, advertiser *domain.AdvertiserAccount) (*domain.AdvertiserAccount, error)
	GetAdvertiserByID(advertiserID string) (*domain.AdvertiserAccount, error)
	GetAdvertiserByOwner(ownerUserID int) (*domain.AdvertiserAccount, error)
	ListAdvertisers() ([]*domain.AdvertiserAccount, error)
	SetVerification(q postgres.Queryer, advertiserID string, verified bool) error
	IncrementCampaignCount(q postgres.Queryer, advertiserID string) error
	AddSpent(q postgres.Queryer, advertiserID string, amount int64) error
}

type advertiserRepository struct {
	conn *postgres.Connection
}

func NewAdvertiserRepository(conn *postgres.Connection) AdvertiserRepository {
	return &advertiserRepository{
		conn: conn,
	}
}

func (r *advertiserRepository) CreateAdvertiser(q postgres.Queryer, advertiser *domain.AdvertiserAccount) (*domain.AdvertiserAccount, error) {
	queryBuilder := squirrel.
		Insert(advertisersTable).
		Columns("id", "owner_user_id", "total_spent", "campaign_count", "verified").
		Values(advertiser.ID, advertiser.OwnerUserID, advertiser.TotalSpent, advertiser.CampaignCount, advertiser.Verified).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	advertiserSQL, advertiserArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = q.QueryRow(advertiserSQL, advertiserArgs...).Scan(&advertiser.CreatedAt, &advertiser.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			// 23505: violação da unicidade de owner_user_id
			if pqErr.Code == "23505" {
				return nil, ErrAdvertiserExists
			}
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return advertiser, nil
}

func (r *advertiserRepository) GetAdvertiserByID(advertiserID string) (*domain.AdvertiserAccount, error) {
	row := r.conn.QueryRow(
		"SELECT id, owner_user_id, total_spent, campaign_count, verified, created_at, updated_at FROM advertisers WHERE id = $1",
		advertiserID,
	)

	return deserializeAdvertiser(row)
}

func (r *advertiserRepository) GetAdvertiserByOwner(ownerUserID int) (*domain.AdvertiserAccount, error) {
	row := r.conn.QueryRow(
		"SELECT id, owner_user_id, total_spent, campaign_count, verified, created_at, updated_at FROM advertisers WHERE owner_user_id = $1",
		ownerUserID,
	)

	return deserializeAdvertiser(row)
}

func deserializeAdvertiser(row *sql.Row) (*domain.AdvertiserAccount, error) {
	advertiser := &domain.AdvertiserAccount{}

	if err := row.Scan(
		&advertiser.ID,
		&advertiser.OwnerUserID,
		&advertiser.TotalSpent,
		&advertiser.CampaignCount,
		&advertiser.Verified,
		&advertiser.CreatedAt,
		&advertiser.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return advertiser, nil
}

func (r *advertiserRepository) ListAdvertisers() ([]*domain.AdvertiserAccount, error) {
	queryBuilder := squirrel.
		Select("id", "owner_user_id", "total_spent", "campaign_count", "verified", "created_at", "updated_at").
		From(advertisersTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	advertisersSQL, advertisersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(advertisersSQL, advertisersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	advertisers := make([]*domain.AdvertiserAccount, 0)
	for rows.Next() {
		advertiser := domain.AdvertiserAccount{}
		if err := rows.Scan(
			&advertiser.ID,
			&advertiser.OwnerUserID,
			&advertiser.TotalSpent,
			&advertiser.CampaignCount,
			&advertiser.Verified,
			&advertiser.CreatedAt,
			&advertiser.UpdatedAt,
		); err != nil {
			return nil, err
		}

		advertisers = append(advertisers, &advertiser)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return advertisers, nil
}

func (r *advertiserRepository) SetVerification(q postgres.Queryer, advertiserID string, verified bool) error {
	queryBuilder := squirrel.
		Update(advertisersTable).
		Set("verified", verified).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": advertiserID}).
		PlaceholderFormat(squirrel.Dollar)

	advertiserSQL, advertiserArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := q.Exec(advertiserSQL, advertiserArgs...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *advertiserRepository) IncrementCampaignCount(q postgres.Queryer, advertiserID string) error {
	_, err := q.Exec(
		"UPDATE advertisers SET campaign_count = campaign_count + 1, updated_at = NOW() WHERE id = $1",
		advertiserID,
	)
	if err != nil {
		return fmt.Errorf("erro ao incrementar contador de campanhas: %w", err)
	}

	return nil
}

// AddSpent acumula gasto líquido consumido; o contador nunca diminui
func (r *advertiserRepository) AddSpent(q postgres.Queryer, advertiserID string, amount int64) error {
	_, err := q.Exec(
		"UPDATE advertisers SET total_spent = total_spent + $1, updated_at = NOW() WHERE id = $2",
		amount,
		advertiserID,
	)
	if err != nil {
		return fmt.Errorf("erro ao acumular gasto do anunciante: %w", err)
	}

	return nil
}
