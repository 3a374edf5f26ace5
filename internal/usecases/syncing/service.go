// Package syncing implementa o motor de sincronização: busca campanhas,
// conjuntos de anúncios e anúncios da conta configurada, normaliza os campos
// numéricos e grava entidades e métricas diárias com upserts idempotentes.
package syncing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/metaclient"
	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/repository"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/config"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/validator"
	"github.com/ScuderiaAirlines/meta-analytics-dash/pkg/utils"
)

const StatusSuccess = "success"

type Service struct {
	cfg          *config.Config
	meta         metaclient.Client
	campaignRepo repository.CampaignRepository
	adSetRepo    repository.AdSetRepository
	adRepo       repository.AdRepository
	metricRepo   repository.DailyMetricRepository
}

func NewService(
	cfg *config.Config,
	meta metaclient.Client,
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	metricRepo repository.DailyMetricRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		meta:         meta,
		campaignRepo: campaignRepo,
		adSetRepo:    adSetRepo,
		adRepo:       adRepo,
		metricRepo:   metricRepo,
	}
}

// RunSync executa a sincronização completa na ordem fixa campanha → adset →
// anúncio sobre a janela [hoje-days, hoje]. Uma falha ao listar entidades de
// um tipo aborta a execução inteira e descarta as contagens parciais; falhas
// por registro apenas entram na lista de pulados do resultado.
func (s *Service) RunSync(days int) (*domain.SyncResult, error) {
	if days <= 0 {
		days = s.cfg.Sync.DaysToSync
	}

	endDate := utils.Truncate(time.Now())
	startDate := endDate.AddDate(0, 0, -days)
	filters := &domain.InsightFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar o ID da execução")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando sincronização")

	startTime := time.Now()
	skipped := []domain.SkippedRecord{}

	campaignsCount, campaignsSkipped, err := s.syncCampaigns(filters)
	if err != nil {
		logrus.WithError(err).Error("Sincronização falhou")
		return nil, fmt.Errorf("sincronização de campanhas falhou: %w", err)
	}
	skipped = append(skipped, campaignsSkipped...)

	adSetsCount, adSetsSkipped, err := s.syncAdSets(filters)
	if err != nil {
		logrus.WithError(err).Error("Sincronização falhou")
		return nil, fmt.Errorf("sincronização de adsets falhou: %w", err)
	}
	skipped = append(skipped, adSetsSkipped...)

	adsCount, adsSkipped, err := s.syncAds(filters)
	if err != nil {
		logrus.WithError(err).Error("Sincronização falhou")
		return nil, fmt.Errorf("sincronização de anúncios falhou: %w", err)
	}
	skipped = append(skipped, adsSkipped...)

	completedAt := time.Now()
	duration := completedAt.Sub(startTime)

	result := &domain.SyncResult{
		RunID:           runID,
		Status:          StatusSuccess,
		StartDate:       startDate.Format(time.DateOnly),
		EndDate:         endDate.Format(time.DateOnly),
		DurationSeconds: utils.RoundWithTwoDecimalPlace(duration.Seconds()),
		Campaigns:       campaignsCount,
		AdSets:          adSetsCount,
		Ads:             adsCount,
		Skipped:         skipped,
		StartedAt:       startTime,
		CompletedAt:     completedAt,
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"duration":  duration.String(),
		"campaigns": campaignsCount,
		"adsets":    adSetsCount,
		"ads":       adsCount,
		"skipped":   len(skipped),
	}).Info("Sincronização concluída com sucesso")

	return result, nil
}

// minorToMajor converte um valor monetário em centavos (como a API retorna)
// para unidades monetárias.
func minorToMajor(value *string) *float64 {
	major := validator.SafeFloat(value, 0) / 100
	return &major
}
