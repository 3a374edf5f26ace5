package syncing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

// syncAdSets lista os conjuntos de anúncios da conta, grava os metadados de
// cada um e sincroniza suas métricas diárias.
func (s *Service) syncAdSets(filters *domain.InsightFilters) (int, []domain.SkippedRecord, error) {
	logrus.Info("Iniciando sincronização de adsets")
	count := 0
	skipped := []domain.SkippedRecord{}

	adSets, err := s.meta.GetAdSetsByAccountID(s.cfg.Meta.AdAccountID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar adsets da conta")
		return 0, nil, fmt.Errorf("erro ao listar adsets: %w", err)
	}

	for i := range adSets {
		adSet := mapAdSet(&adSets[i])

		// Leitura consultiva: registrar transições de status entre execuções
		existing, err := s.adSetRepo.GetByID(adSet.ID)
		if err != nil {
			logrus.WithError(err).Debug("Não foi possível consultar o adset existente")
		} else if existing != nil && existing.Status != adSet.Status {
			logrus.WithFields(logrus.Fields{
				"adset_id":      adSet.ID,
				"status_antes":  existing.Status,
				"status_depois": adSet.Status,
			}).Info("Status do adset alterado desde a última sincronização")
		}

		if err := s.adSetRepo.SaveOrUpdate(adSet); err != nil {
			logrus.WithFields(logrus.Fields{
				"adset_id": adSet.ID,
				"error":    err.Error(),
			}).Error("Falha ao sincronizar adset")
			skipped = append(skipped, domain.SkippedRecord{
				EntityID:   adSet.ID,
				EntityType: domain.EntityTypeAdSet,
				Reason:     err.Error(),
			})
			continue
		}

		skipped = append(skipped, s.syncEntityMetrics(adSet.ID, domain.EntityTypeAdSet, filters)...)

		count++
		logrus.WithField("adset_name", adSet.Name).Info("AdSet sincronizado")
	}

	logrus.WithField("adsets", count).Info("Sincronização de adsets concluída")
	return count, skipped, nil
}

// mapAdSet converte o formato bruto da API para o registro persistido. O
// orçamento único do adset usa o daily_budget quando presente, senão o
// lifetime_budget.
func mapAdSet(raw *metadomain.AdSet) *domain.AdSet {
	adSet := &domain.AdSet{
		ID:               raw.ID,
		CampaignID:       raw.CampaignID,
		Name:             raw.Name,
		Status:           raw.Status,
		Targeting:        raw.Targeting,
		OptimizationGoal: raw.OptimizationGoal,
		BillingEvent:     raw.BillingEvent,
		BidStrategy:      raw.BidStrategy,
	}

	budget := raw.DailyBudget
	if budget == nil || *budget == "" {
		budget = raw.LifetimeBudget
	}
	if budget != nil && *budget != "" {
		adSet.Budget = minorToMajor(budget)
	}

	return adSet
}
