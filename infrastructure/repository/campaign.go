package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/database/postgres"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

type CampaignRepository interface {
	SaveOrUpdate(campaign *domain.Campaign) error
	GetByID(campaignID string) (*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava a campanha com upsert pela chave campaign_id:
// re-sincronizar sempre sobrescreve para o último estado buscado.
func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("campaign_id", "name", "status", "effective_status", "objective", "daily_budget", "lifetime_budget").
		Values(
			campaign.ID,
			campaign.Name,
			campaign.Status,
			campaign.EffectiveStatus,
			campaign.Objective,
			campaign.DailyBudget,
			campaign.LifetimeBudget,
		).
		Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				objective = EXCLUDED.objective,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
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

func (r *campaignRepository) GetByID(campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.campaign_id, c.name, c.status, c.effective_status, c.objective, c.daily_budget, c.lifetime_budget, c.updated_at").
		From("campaigns c").
		Where(squirrel.Eq{"c.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.Campaign{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Status,
		&campaign.EffectiveStatus,
		&campaign.Objective,
		&campaign.DailyBudget,
		&campaign.LifetimeBudget,
		&campaign.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}
