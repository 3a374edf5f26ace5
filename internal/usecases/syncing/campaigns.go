package syncing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

// syncCampaigns lista as campanhas da conta, grava os metadados de cada uma e
// sincroniza suas métricas diárias. Falha por campanha pula apenas aquela
// campanha; falha na listagem aborta e propaga.
func (s *Service) syncCampaigns(filters *domain.InsightFilters) (int, []domain.SkippedRecord, error) {
	logrus.Info("Iniciando sincronização de campanhas")
	count := 0
	skipped := []domain.SkippedRecord{}

	campaigns, err := s.meta.GetCampaignsByAccountID(s.cfg.Meta.AdAccountID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas da conta")
		return 0, nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}

	for i := range campaigns {
		campaign := mapCampaign(&campaigns[i])

		// Leitura consultiva: registrar transições de status entre execuções
		existing, err := s.campaignRepo.GetByID(campaign.ID)
		if err != nil {
			logrus.WithError(err).Debug("Não foi possível consultar a campanha existente")
		} else if existing != nil && existing.Status != campaign.Status {
			logrus.WithFields(logrus.Fields{
				"campaign_id":   campaign.ID,
				"status_antes":  existing.Status,
				"status_depois": campaign.Status,
			}).Info("Status da campanha alterado desde a última sincronização")
		}

		if err := s.campaignRepo.SaveOrUpdate(campaign); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Falha ao sincronizar campanha")
			skipped = append(skipped, domain.SkippedRecord{
				EntityID:   campaign.ID,
				EntityType: domain.EntityTypeCampaign,
				Reason:     err.Error(),
			})
			continue
		}

		skipped = append(skipped, s.syncEntityMetrics(campaign.ID, domain.EntityTypeCampaign, filters)...)

		count++
		logrus.WithField("campaign_name", campaign.Name).Info("Campanha sincronizada")
	}

	logrus.WithField("campaigns", count).Info("Sincronização de campanhas concluída")
	return count, skipped, nil
}

// mapCampaign converte o formato bruto da API para o registro persistido,
// convertendo os orçamentos de centavos para unidades monetárias.
func mapCampaign(raw *metadomain.Campaign) *domain.Campaign {
	campaign := &domain.Campaign{
		ID:              raw.ID,
		Name:            raw.Name,
		Status:          raw.Status,
		EffectiveStatus: raw.EffectiveStatus,
		Objective:       raw.Objective,
	}

	if raw.DailyBudget != nil && *raw.DailyBudget != "" {
		campaign.DailyBudget = minorToMajor(raw.DailyBudget)
	}
	if raw.LifetimeBudget != nil && *raw.LifetimeBudget != "" {
		campaign.LifetimeBudget = minorToMajor(raw.LifetimeBudget)
	}

	return campaign
}
