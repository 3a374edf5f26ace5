package syncing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/validator"
	"github.com/ScuderiaAirlines/meta-analytics-dash/pkg/utils"
)

// syncEntityMetrics busca os insights diários de uma entidade na janela
// informada e grava uma métrica por dia. Falha ao buscar a lista de insights
// não aborta: a entidade fica sem métricas nesta execução e o chamador segue
// para a próxima. Falha em um dia pula apenas aquele dia.
func (s *Service) syncEntityMetrics(entityID string, entityType domain.EntityType, filters *domain.InsightFilters) []domain.SkippedRecord {
	insights, err := s.meta.GetInsightsByEntityID(entityID, entityType, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":   entityID,
			"entity_type": entityType,
			"error":       err.Error(),
		}).Error("Erro ao buscar insights da entidade")
		return nil
	}

	skipped := []domain.SkippedRecord{}

	for i := range insights {
		metric, err := buildDailyMetric(entityID, entityType, &insights[i])
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"entity_id":   entityID,
				"entity_type": entityType,
				"date_start":  insights[i].DateStart,
				"error":       err.Error(),
			}).Error("Falha ao processar insight do dia")
			skipped = append(skipped, domain.SkippedRecord{
				EntityID:   entityID,
				EntityType: entityType,
				Reason:     err.Error(),
			})
			continue
		}

		// Aviso de qualidade de dados: a API pode retornar dias
		// internamente inconsistentes; o registro é gravado mesmo assim.
		if metric.Impressions < metric.Clicks {
			logrus.WithFields(logrus.Fields{
				"entity_id":   entityID,
				"entity_type": entityType,
				"date":        metric.Date.Format(time.DateOnly),
				"impressions": metric.Impressions,
				"clicks":      metric.Clicks,
			}).Warn("Problema de qualidade de dados: impressões menores que cliques")
		}

		// A plataforma revisa a atribuição de dias passados; registrar
		// quando uma re-sincronização altera um valor já gravado.
		existing, err := s.metricRepo.GetByEntityAndDate(entityID, entityType, metric.Date)
		if err != nil {
			logrus.WithError(err).Debug("Não foi possível consultar a métrica existente")
		} else if existing != nil && (existing.Spend != metric.Spend || existing.Conversions != metric.Conversions) {
			logrus.WithFields(logrus.Fields{
				"entity_id":        entityID,
				"entity_type":      entityType,
				"date":             metric.Date.Format(time.DateOnly),
				"spend_antes":      existing.Spend,
				"spend_depois":     metric.Spend,
				"conversoes_antes": existing.Conversions,
				"conversoes_depois": metric.Conversions,
			}).Info("Métrica diária revisada pela plataforma")
		}

		if err := s.metricRepo.SaveOrUpdate(metric); err != nil {
			date := metric.Date
			logrus.WithFields(logrus.Fields{
				"entity_id":   entityID,
				"entity_type": entityType,
				"date":        date.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("Falha ao gravar métrica diária")
			skipped = append(skipped, domain.SkippedRecord{
				EntityID:   entityID,
				EntityType: entityType,
				Date:       &date,
				Reason:     err.Error(),
			})
			continue
		}
	}

	return skipped
}

// buildDailyMetric aplica o validator sobre um insight bruto: coerção dos
// contadores, extração de conversões e receita por prioridade e cálculo das
// métricas derivadas com divisão segura.
func buildDailyMetric(entityID string, entityType domain.EntityType, insight *metadomain.Insight) (*domain.DailyMetric, error) {
	date, err := utils.ParseDate(insight.DateStart)
	if err != nil {
		return nil, fmt.Errorf("data inválida no insight: %w", err)
	}

	spend := validator.SafeFloat(insight.Spend, 0)
	impressions := validator.SafeInt(insight.Impressions, 0)
	clicks := validator.SafeInt(insight.Clicks, 0)

	conversions := validator.ExtractConversions(insight.Actions)
	revenue := validator.ExtractRevenue(insight.ActionValues)

	return &domain.DailyMetric{
		EntityID:    entityID,
		EntityType:  entityType,
		Date:        date,
		Spend:       utils.RoundWithFourDecimalPlace(spend),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		CTR:         validator.CalculateCTR(clicks, impressions),
		CPC:         validator.CalculateCPC(spend, clicks),
		CPM:         validator.CalculateCPM(spend, impressions),
		ROAS:        validator.CalculateROAS(revenue, spend),
		Frequency:   validator.SafeFloat(insight.Frequency, 0),
		Reach:       validator.SafeInt(insight.Reach, 0),
	}, nil
}
