package syncing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

// syncAds lista os anúncios da conta, grava os metadados (com os atributos do
// criativo achatados) e sincroniza as métricas diárias de cada um.
func (s *Service) syncAds(filters *domain.InsightFilters) (int, []domain.SkippedRecord, error) {
	logrus.Info("Iniciando sincronização de anúncios")
	count := 0
	skipped := []domain.SkippedRecord{}

	ads, err := s.meta.GetAdsByAccountID(s.cfg.Meta.AdAccountID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar anúncios da conta")
		return 0, nil, fmt.Errorf("erro ao listar anúncios: %w", err)
	}

	for i := range ads {
		ad := mapAd(&ads[i])

		// Leitura consultiva: registrar transições de status entre execuções
		existing, err := s.adRepo.GetByID(ad.ID)
		if err != nil {
			logrus.WithError(err).Debug("Não foi possível consultar o anúncio existente")
		} else if existing != nil && existing.Status != ad.Status {
			logrus.WithFields(logrus.Fields{
				"ad_id":         ad.ID,
				"status_antes":  existing.Status,
				"status_depois": ad.Status,
			}).Info("Status do anúncio alterado desde a última sincronização")
		}

		if err := s.adRepo.SaveOrUpdate(ad); err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id": ad.ID,
				"error": err.Error(),
			}).Error("Falha ao sincronizar anúncio")
			skipped = append(skipped, domain.SkippedRecord{
				EntityID:   ad.ID,
				EntityType: domain.EntityTypeAd,
				Reason:     err.Error(),
			})
			continue
		}

		skipped = append(skipped, s.syncEntityMetrics(ad.ID, domain.EntityTypeAd, filters)...)

		count++
		logrus.WithField("ad_name", ad.Name).Info("Anúncio sincronizado")
	}

	logrus.WithField("ads", count).Info("Sincronização de anúncios concluída")
	return count, skipped, nil
}

// mapAd converte o formato bruto da API para o registro persistido, achatando
// o objeto aninhado do criativo.
func mapAd(raw *metadomain.Ad) *domain.Ad {
	ad := &domain.Ad{
		ID:      raw.ID,
		AdSetID: raw.AdSetID,
		Name:    raw.Name,
		Status:  raw.Status,
	}

	if raw.Creative != nil {
		ad.CreativeID = raw.Creative.ID
		ad.ThumbnailURL = raw.Creative.ThumbnailURL
		ad.ImageURL = raw.Creative.ImageURL
		ad.CreativeBody = raw.Creative.Body
		ad.CreativeTitle = raw.Creative.Title
	}

	return ad
}
