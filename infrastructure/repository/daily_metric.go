package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/database/postgres"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

type DailyMetricRepository interface {
	SaveOrUpdate(metric *domain.DailyMetric) error
	GetByEntityAndDate(entityID string, entityType domain.EntityType, date time.Time) (*domain.DailyMetric, error)
	CountByDateRange(startDate, endDate time.Time) (int64, error)
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava a métrica diária com upsert pela chave composta
// (entity_id, entity_type, date): re-sincronizar uma janela sobreposta
// sobrescreve a linha existente em vez de duplicar.
func (r *dailyMetricRepository) SaveOrUpdate(metric *domain.DailyMetric) error {
	query := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns(
			"entity_id", "entity_type", "date",
			"spend", "impressions", "clicks", "conversions",
			"cpc", "ctr", "cpm", "roas",
			"frequency", "reach",
		).
		Values(
			metric.EntityID,
			string(metric.EntityType),
			metric.Date.Format(time.DateOnly),
			metric.Spend,
			metric.Impressions,
			metric.Clicks,
			metric.Conversions,
			metric.CPC,
			metric.CTR,
			metric.CPM,
			metric.ROAS,
			metric.Frequency,
			metric.Reach,
		).
		Suffix(`
			ON CONFLICT (entity_id, entity_type, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				cpc = EXCLUDED.cpc,
				ctr = EXCLUDED.ctr,
				cpm = EXCLUDED.cpm,
				roas = EXCLUDED.roas,
				frequency = EXCLUDED.frequency,
				reach = EXCLUDED.reach,
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

func (r *dailyMetricRepository) GetByEntityAndDate(entityID string, entityType domain.EntityType, date time.Time) (*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select("dm.entity_id, dm.entity_type, dm.date, dm.spend, dm.impressions, dm.clicks, dm.conversions, dm.cpc, dm.ctr, dm.cpm, dm.roas, dm.frequency, dm.reach, dm.updated_at").
		From("daily_metrics dm").
		Where(squirrel.Eq{
			"dm.entity_id":   entityID,
			"dm.entity_type": string(entityType),
			"dm.date":        date.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metric := &domain.DailyMetric{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&metric.EntityID,
		&metric.EntityType,
		&metric.Date,
		&metric.Spend,
		&metric.Impressions,
		&metric.Clicks,
		&metric.Conversions,
		&metric.CPC,
		&metric.CTR,
		&metric.CPM,
		&metric.ROAS,
		&metric.Frequency,
		&metric.Reach,
		&metric.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica diária: %w", err)
	}

	return metric, nil
}

// CountByDateRange conta as métricas gravadas na janela, útil para verificar
// idempotência entre execuções.
func (r *dailyMetricRepository) CountByDateRange(startDate, endDate time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("daily_metrics").
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count, nil
}
