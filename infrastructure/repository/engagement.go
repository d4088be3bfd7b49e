package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/lib/pq"
)

const (
	engagementsTable = "engagements"
)

type EngagementRepository interface {
	CreateEngagement(q postgres.Queryer, engagement *domain.Engagement) (*domain.Engagement, error)
	ListEngagementsByCampaign(campaignID string, limit uint64) ([]*domain.Engagement, error)
	AggregateDaily(from, to time.Time) ([]*domain.CampaignDailyStat, error)
}

type engagementRepository struct {
	conn *postgres.Connection
}

func NewEngagementRepository(conn *postgres.Connection) EngagementRepository {
	return &engagementRepository{
		conn: conn,
	}
}

func (r *engagementRepository) CreateEngagement(q postgres.Queryer, engagement *domain.Engagement) (*domain.Engagement, error) {
	queryBuilder := squirrel.
		Insert(engagementsTable).
		Columns("id", "campaign_id", "viewer_ref", "engagement_type", "charged").
		Values(engagement.ID, engagement.CampaignID, engagement.ViewerRef, engagement.Type, engagement.Charged).
		Suffix("RETURNING recorded_at").
		PlaceholderFormat(squirrel.Dollar)

	engagementSQL, engagementArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = q.QueryRow(engagementSQL, engagementArgs...).Scan(&engagement.RecordedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return engagement, nil
}

func (r *engagementRepository) ListEngagementsByCampaign(campaignID string, limit uint64) ([]*domain.Engagement, error) {
	queryBuilder := squirrel.
		Select("id", "campaign_id", "viewer_ref", "engagement_type", "charged", "recorded_at").
		From(engagementsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("recorded_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	engagementsSQL, engagementsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(engagementsSQL, engagementsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	engagements := make([]*domain.Engagement, 0)
	for rows.Next() {
		engagement := domain.Engagement{}
		if err := rows.Scan(
			&engagement.ID,
			&engagement.CampaignID,
			&engagement.ViewerRef,
			&engagement.Type,
			&engagement.Charged,
			&engagement.RecordedAt,
		); err != nil {
			return nil, err
		}

		engagements = append(engagements, &engagement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return engagements, nil
}

// AggregateDaily agrega os eventos imutáveis por campanha e por dia dentro da
// janela informada. É a fonte do job de consolidação diária.
func (r *engagementRepository) AggregateDaily(from, to time.Time) ([]*domain.CampaignDailyStat, error) {
	rows, err := r.conn.Query(`
		SELECT
			campaign_id,
			DATE_TRUNC('day', recorded_at) AS day,
			COUNT(*) FILTER (WHERE engagement_type = 0) AS impressions,
			COUNT(*) FILTER (WHERE engagement_type = 1) AS clicks,
			COUNT(*) FILTER (WHERE engagement_type = 2) AS engagements,
			COUNT(*) FILTER (WHERE engagement_type = 3) AS conversions,
			COALESCE(SUM(charged), 0) AS spend
		FROM engagements
		WHERE recorded_at >= $1 AND recorded_at < $2
		GROUP BY campaign_id, DATE_TRUNC('day', recorded_at)
		ORDER BY campaign_id, day`,
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar engajamentos: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.CampaignDailyStat, 0)
	for rows.Next() {
		stat := domain.CampaignDailyStat{}
		if err := rows.Scan(
			&stat.CampaignID,
			&stat.Day,
			&stat.Impressions,
			&stat.Clicks,
			&stat.Engagements,
			&stat.Conversions,
			&stat.Spend,
		); err != nil {
			return nil, err
		}

		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
