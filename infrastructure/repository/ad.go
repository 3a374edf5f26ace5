package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/database/postgres"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

type AdRepository interface {
	SaveOrUpdate(ad *domain.Ad) error
	GetByID(adID string) (*domain.Ad, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) SaveOrUpdate(ad *domain.Ad) error {
	query := squirrel.StatementBuilder.
		Insert("ads").
		Columns("ad_id", "adset_id", "name", "status", "creative_id", "thumbnail_url", "image_url", "creative_body", "creative_title").
		Values(
			ad.ID,
			ad.AdSetID,
			ad.Name,
			ad.Status,
			ad.CreativeID,
			ad.ThumbnailURL,
			ad.ImageURL,
			ad.CreativeBody,
			ad.CreativeTitle,
		).
		Suffix(`
			ON CONFLICT (ad_id) DO UPDATE SET
				adset_id = EXCLUDED.adset_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				creative_id = EXCLUDED.creative_id,
				thumbnail_url = EXCLUDED.thumbnail_url,
				image_url = EXCLUDED.image_url,
				creative_body = EXCLUDED.creative_body,
				creative_title = EXCLUDED.creative_title,
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

func (r *adRepository) GetByID(adID string) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select("a.ad_id, a.adset_id, a.name, a.status, a.creative_id, a.thumbnail_url, a.image_url, a.creative_body, a.creative_title, a.updated_at").
		From("ads a").
		Where(squirrel.Eq{"a.ad_id": adID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ad := &domain.Ad{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&ad.ID,
		&ad.AdSetID,
		&ad.Name,
		&ad.Status,
		&ad.CreativeID,
		&ad.ThumbnailURL,
		&ad.ImageURL,
		&ad.CreativeBody,
		&ad.CreativeTitle,
		&ad.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}
