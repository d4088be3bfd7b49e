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
	campaignStatsTable = "campaign_stats_daily"
)

type StatsRepository interface {
	UpsertDailyStats(q postgres.Queryer, stats []*domain.CampaignDailyStat) error
	ListDailyStats(campaignID string, from, to *time.Time) ([]*domain.CampaignDailyStat, error)
}

type statsRepository struct {
	conn *postgres.Connection
}

func NewStatsRepository(conn *postgres.Connection) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

// UpsertDailyStats regrava as linhas consolidadas do período; a reexecução do
// job sobre a mesma janela é idempotente
func (r *statsRepository) UpsertDailyStats(q postgres.Queryer, stats []*domain.CampaignDailyStat) error {
	if len(stats) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(campaignStatsTable).
		Columns("campaign_id", "day", "impressions", "clicks", "engagements", "conversions", "spend").
		PlaceholderFormat(squirrel.Dollar)

	for _, stat := range stats {
		query = query.Values(
			stat.CampaignID,
			stat.Day,
			stat.Impressions,
			stat.Clicks,
			stat.Engagements,
			stat.Conversions,
			stat.Spend,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (campaign_id, day) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				engagements = EXCLUDED.engagements,
				conversions = EXCLUDED.conversions,
				spend = EXCLUDED.spend
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = q.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *statsRepository) ListDailyStats(campaignID string, from, to *time.Time) ([]*domain.CampaignDailyStat, error) {
	queryBuilder := squirrel.
		Select("campaign_id", "day", "impressions", "clicks", "engagements", "conversions", "spend").
		From(campaignStatsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar)

	if from != nil && !from.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"day": *from})
	}

	if to != nil && !to.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"day": *to})
	}

	statsSQL, statsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(statsSQL, statsArgs...)
	if err != nil {
		return nil, err
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
