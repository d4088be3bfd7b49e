package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

const (
	campaignsTable = "campaigns"

	campaignColumns = "id, advertiser_id, owner_user_id, content_ref, status, total_budget, remaining_budget, " +
		"start_time, duration_secs, bid_model, bid_amount, targeting, creative, " +
		"impressions, clicks, engagements, conversions, created_at, updated_at"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CampaignRepository interface {
	CreateCampaign(q postgres.Queryer, campaign *domain.Campaign) (*domain.Campaign, error)
	GetCampaignByID(campaignID string) (*domain.Campaign, error)
	GetCampaignForUpdate(q postgres.Queryer, campaignID string) (*domain.Campaign, error)
	ListCampaignsByAdvertiser(advertiserID string) ([]*domain.Campaign, error)
	ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error)
	UpdateStatus(q postgres.Queryer, campaignID string, status domain.CampaignStatus) error
	AddBudget(q postgres.Queryer, campaignID string, netAmount int64) error
	ApplyCharge(q postgres.Queryer, campaignID string, charge int64, engagementType domain.EngagementType, status domain.CampaignStatus) error
	MarkCanceled(q postgres.Queryer, campaignID string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) CreateCampaign(q postgres.Queryer, campaign *domain.Campaign) (*domain.Campaign, error) {
	targetingJSON, err := json.Marshal(campaign.Targeting)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar segmentação: %w", err)
	}

	creativeJSON, err := json.Marshal(campaign.Creative)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar criativo: %w", err)
	}

	queryBuilder := squirrel.
		Insert(campaignsTable).
		Columns(
			"id", "advertiser_id", "owner_user_id", "content_ref", "status",
			"total_budget", "remaining_budget", "start_time", "duration_secs",
			"bid_model", "bid_amount", "targeting", "creative",
		).
		Values(
			campaign.ID,
			campaign.AdvertiserID,
			campaign.OwnerUserID,
			campaign.ContentRef,
			campaign.Status,
			campaign.TotalBudget,
			campaign.RemainingBudget,
			campaign.Schedule.StartTime,
			campaign.Schedule.DurationSecs,
			campaign.Pricing.BidModel,
			campaign.Pricing.BidAmount,
			targetingJSON,
			creativeJSON,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	campaignSQL, campaignArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = q.QueryRow(campaignSQL, campaignArgs...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	row := r.conn.QueryRow(
		fmt.Sprintf("SELECT %s FROM campaigns WHERE id = $1", campaignColumns),
		campaignID,
	)

	return deserializeCampaign(row)
}

// GetCampaignForUpdate trava a linha da campanha até o fim da transação.
// Toda mutação de orçamento ou de status passa por este lock: duas operações
// sobre o mesmo registro são serializadas uma após a outra.
func (r *campaignRepository) GetCampaignForUpdate(q postgres.Queryer, campaignID string) (*domain.Campaign, error) {
	row := q.QueryRow(
		fmt.Sprintf("SELECT %s FROM campaigns WHERE id = $1 FOR UPDATE", campaignColumns),
		campaignID,
	)

	return deserializeCampaign(row)
}

type campaignScanner interface {
	Scan(dest ...interface{}) error
}

func deserializeCampaign(row campaignScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var targetingJSON, creativeJSON []byte

	if err := row.Scan(
		&campaign.ID,
		&campaign.AdvertiserID,
		&campaign.OwnerUserID,
		&campaign.ContentRef,
		&campaign.Status,
		&campaign.TotalBudget,
		&campaign.RemainingBudget,
		&campaign.Schedule.StartTime,
		&campaign.Schedule.DurationSecs,
		&campaign.Pricing.BidModel,
		&campaign.Pricing.BidAmount,
		&targetingJSON,
		&creativeJSON,
		&campaign.Metrics.Impressions,
		&campaign.Metrics.Clicks,
		&campaign.Metrics.Engagements,
		&campaign.Metrics.Conversions,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(targetingJSON) > 0 {
		if err := json.Unmarshal(targetingJSON, &campaign.Targeting); err != nil {
			return nil, fmt.Errorf("erro ao deserializar segmentação: %w", err)
		}
	}

	if len(creativeJSON) > 0 {
		if err := json.Unmarshal(creativeJSON, &campaign.Creative); err != nil {
			return nil, fmt.Errorf("erro ao deserializar criativo: %w", err)
		}
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaignsByAdvertiser(advertiserID string) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"advertiser_id": advertiserID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listCampaigns(queryBuilder)
}

func (r *campaignRepository) ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": availableStatus})
	}

	return r.listCampaigns(queryBuilder)
}

func (r *campaignRepository) listCampaigns(queryBuilder squirrel.SelectBuilder) ([]*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(campaignsSQL, campaignsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := deserializeCampaign(rows)
		if err != nil {
			return nil, err
		}

		if campaign == nil {
			continue
		}

		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *campaignRepository) UpdateStatus(q postgres.Queryer, campaignID string, status domain.CampaignStatus) error {
	_, err := q.Exec(
		"UPDATE campaigns SET status = $1, updated_at = NOW() WHERE id = $2",
		status,
		campaignID,
	)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da campanha: %w", err)
	}

	return nil
}

// AddBudget incrementa total e saldo restante em passo único com o mesmo
// delta líquido, preservando remaining_budget <= total_budget
func (r *campaignRepository) AddBudget(q postgres.Queryer, campaignID string, netAmount int64) error {
	_, err := q.Exec(
		"UPDATE campaigns SET total_budget = total_budget + $1, remaining_budget = remaining_budget + $1, updated_at = NOW() WHERE id = $2",
		netAmount,
		campaignID,
	)
	if err != nil {
		return fmt.Errorf("erro ao aportar orçamento na campanha: %w", err)
	}

	return nil
}

// ApplyCharge debita o valor cobrado, incrementa o contador do tipo medido e
// grava o status resultante em um único UPDATE
func (r *campaignRepository) ApplyCharge(q postgres.Queryer, campaignID string, charge int64, engagementType domain.EngagementType, status domain.CampaignStatus) error {
	metricColumn, err := metricColumnFor(engagementType)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Update(campaignsTable).
		Set("remaining_budget", squirrel.Expr("remaining_budget - ?", charge)).
		Set(metricColumn, squirrel.Expr(metricColumn+" + 1")).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	campaignSQL, campaignArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(campaignSQL, campaignArgs...)
	if err != nil {
		return fmt.Errorf("erro ao aplicar cobrança na campanha: %w", err)
	}

	return nil
}

func metricColumnFor(engagementType domain.EngagementType) (string, error) {
	switch engagementType {
	case domain.EngagementTypeImpression:
		return "impressions", nil
	case domain.EngagementTypeClick:
		return "clicks", nil
	case domain.EngagementTypeEngagement:
		return "engagements", nil
	case domain.EngagementTypeConversion:
		return "conversions", nil
	}

	return "", fmt.Errorf("tipo de engajamento desconhecido: %d", engagementType)
}

// MarkCanceled zera o saldo restante e grava o status terminal; total_budget
// permanece intacto como registro histórico
func (r *campaignRepository) MarkCanceled(q postgres.Queryer, campaignID string) error {
	_, err := q.Exec(
		"UPDATE campaigns SET status = $1, remaining_budget = 0, updated_at = NOW() WHERE id = $2",
		domain.CampaignStatusCanceled,
		campaignID,
	)
	if err != nil {
		return fmt.Errorf("erro ao cancelar campanha: %w", err)
	}

	return nil
}
