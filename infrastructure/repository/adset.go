package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/database/postgres"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

type AdSetRepository interface {
	SaveOrUpdate(adSet *domain.AdSet) error
	GetByID(adSetID string) (*domain.AdSet, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

func (r *adSetRepository) SaveOrUpdate(adSet *domain.AdSet) error {
	var targeting interface{}
	if adSet.Targeting != nil {
		targeting = []byte(adSet.Targeting)
	}

	query := squirrel.StatementBuilder.
		Insert("adsets").
		Columns("adset_id", "campaign_id", "name", "status", "budget", "targeting", "optimization_goal", "billing_event", "bid_strategy").
		Values(
			adSet.ID,
			adSet.CampaignID,
			adSet.Name,
			adSet.Status,
			adSet.Budget,
			targeting,
			adSet.OptimizationGoal,
			adSet.BillingEvent,
			adSet.BidStrategy,
		).
		Suffix(`
			ON CONFLICT (adset_id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				budget = EXCLUDED.budget,
				targeting = EXCLUDED.targeting,
				optimization_goal = EXCLUDED.optimization_goal,
				billing_event = EXCLUDED.billing_event,
				bid_strategy = EXCLUDED.bid_strategy,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adSetRepository) GetByID(adSetID string) (*domain.AdSet, error) {
	query, args, err := squirrel.
		Select("a.adset_id, a.campaign_id, a.name, a.status, a.budget, a.targeting, a.optimization_goal, a.billing_event, a.bid_strategy, a.updated_at").
		From("adsets a").
		Where(squirrel.Eq{"a.adset_id": adSetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	adSet := &domain.AdSet{}
	var targeting []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&adSet.ID,
		&adSet.CampaignID,
		&adSet.Name,
		&adSet.Status,
		&adSet.Budget,
		&targeting,
		&adSet.OptimizationGoal,
		&adSet.BillingEvent,
		&adSet.BidStrategy,
		&adSet.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear adset: %w", err)
	}

	if targeting != nil {
		adSet.Targeting = targeting
	}

	return adSet, nil
}
