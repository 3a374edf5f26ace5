package syncing

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	metamocks "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/mocks"
	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/repository/mocks"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/config"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/pkg/utils"
)

func stringPtr(s string) *string {
	return &s
}

func newTestService(t *testing.T) (*Service, *metamocks.MockClient, *mocks.MockCampaignRepository, *mocks.MockAdSetRepository, *mocks.MockAdRepository, *mocks.MockDailyMetricRepository) {
	ctrl := gomock.NewController(t)

	mockMeta := metamocks.NewMockClient(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)

	cfg := &config.Config{
		Meta: config.Meta{AdAccountID: "act_123"},
		Sync: config.Sync{DaysToSync: 7},
	}

	service := NewService(cfg, mockMeta, mockCampaignRepo, mockAdSetRepo, mockAdRepo, mockMetricRepo)

	return service, mockMeta, mockCampaignRepo, mockAdSetRepo, mockAdRepo, mockMetricRepo
}

func TestService_RunSync(t *testing.T) {
	insight := metadomain.Insight{
		Spend:       stringPtr("100"),
		Impressions: stringPtr("1000"),
		Clicks:      stringPtr("20"),
		Frequency:   stringPtr("1.5"),
		Reach:       stringPtr("800"),
		DateStart:   "2024-06-01",
	}

	t.Run("Execução completa sincroniza campanhas, adsets e anúncios com métricas", func(t *testing.T) {
		service, mockMeta, mockCampaignRepo, mockAdSetRepo, mockAdRepo, mockMetricRepo := newTestService(t)

		mockMeta.EXPECT().
			GetCampaignsByAccountID("act_123").
			Return([]metadomain.Campaign{
				{ID: "c1", Name: "Campanha A", Status: "ACTIVE"},
				{ID: "c2", Name: "Campanha B", Status: "ACTIVE"},
			}, nil)
		mockMeta.EXPECT().
			GetAdSetsByAccountID("act_123").
			Return([]metadomain.AdSet{
				{ID: "as1", CampaignID: "c1", Name: "AdSet A1", Status: "ACTIVE"},
				{ID: "as2", CampaignID: "c1", Name: "AdSet A2", Status: "ACTIVE"},
				{ID: "as3", CampaignID: "c2", Name: "AdSet B1", Status: "ACTIVE"},
			}, nil)
		mockMeta.EXPECT().
			GetAdsByAccountID("act_123").
			Return([]metadomain.Ad{{ID: "ad1", AdSetID: "as1", Name: "Anúncio A", Status: "ACTIVE"}}, nil)

		mockCampaignRepo.EXPECT().GetByID(gomock.Any()).Return(nil, nil).Times(2)
		mockAdSetRepo.EXPECT().GetByID(gomock.Any()).Return(nil, nil).Times(3)
		mockAdRepo.EXPECT().GetByID(gomock.Any()).Return(nil, nil).Times(1)

		mockCampaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)
		mockAdSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(3)
		mockAdRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(1)

		var saved []*domain.DailyMetric
		mockMeta.EXPECT().
			GetInsightsByEntityID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]metadomain.Insight{insight}, nil).
			Times(6)
		mockMetricRepo.EXPECT().
			GetByEntityAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(6)
		mockMetricRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(m *domain.DailyMetric) error {
				saved = append(saved, m)
				return nil
			}).
			Times(6)

		result, err := service.RunSync(7)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, StatusSuccess, result.Status)
		assert.Equal(t, 2, result.Campaigns)
		assert.Equal(t, 3, result.AdSets)
		assert.Equal(t, 1, result.Ads)
		assert.Empty(t, result.Skipped)
		assert.NotEmpty(t, result.RunID)

		require.Len(t, saved, 6)
		for _, metric := range saved {
			assert.Equal(t, 100.0, metric.Spend)
			assert.Equal(t, 1000, metric.Impressions)
			assert.Equal(t, 20, metric.Clicks)
			assert.Equal(t, 0, metric.Conversions)
			assert.Equal(t, 2.0, metric.CTR)
			assert.Equal(t, 5.0, metric.CPC)
			assert.Equal(t, 100.0, metric.CPM)
			assert.Equal(t, 0.0, metric.ROAS)
			assert.Equal(t, 1.5, metric.Frequency)
			assert.Equal(t, 800, metric.Reach)
		}
		assert.Equal(t, domain.EntityTypeCampaign, saved[0].EntityType)
		assert.Equal(t, domain.EntityTypeCampaign, saved[1].EntityType)
		assert.Equal(t, domain.EntityTypeAdSet, saved[2].EntityType)
		assert.Equal(t, domain.EntityTypeAdSet, saved[3].EntityType)
		assert.Equal(t, domain.EntityTypeAdSet, saved[4].EntityType)
		assert.Equal(t, domain.EntityTypeAd, saved[5].EntityType)
	})

	t.Run("Falha ao listar campanhas aborta a execução inteira", func(t *testing.T) {
		service, mockMeta, _, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetCampaignsByAccountID("act_123").
			Return(nil, errors.New("erro de rede"))

		result, err := service.RunSync(7)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "campanhas")
	})

	t.Run("Falha ao listar adsets aborta e descarta as contagens parciais", func(t *testing.T) {
		service, mockMeta, mockCampaignRepo, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetCampaignsByAccountID("act_123").
			Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha A", Status: "ACTIVE"}}, nil)
		mockCampaignRepo.EXPECT().GetByID("c1").Return(nil, nil)
		mockCampaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		mockMeta.EXPECT().
			GetInsightsByEntityID("c1", domain.EntityTypeCampaign, gomock.Any()).
			Return(nil, nil)

		mockMeta.EXPECT().
			GetAdSetsByAccountID("act_123").
			Return(nil, errors.New("erro de rede"))

		result, err := service.RunSync(7)

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Dias não positivos usam a janela padrão da configuração", func(t *testing.T) {
		service, mockMeta, _, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetCampaignsByAccountID("act_123").
			DoAndReturn(func(string) ([]metadomain.Campaign, error) {
				return nil, errors.New("parar aqui")
			})

		// O teste só valida que a execução chega ao cliente mesmo com days=0
		_, err := service.RunSync(0)
		require.Error(t, err)
	})
}

func TestService_RunSync_PartialFailures(t *testing.T) {
	t.Run("Falha ao gravar uma campanha pula a campanha e não busca suas métricas", func(t *testing.T) {
		service, mockMeta, mockCampaignRepo, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetCampaignsByAccountID("act_123").
			Return([]metadomain.Campaign{
				{ID: "c1", Name: "Campanha A", Status: "ACTIVE"},
				{ID: "c2", Name: "Campanha B", Status: "ACTIVE"},
			}, nil)

		mockCampaignRepo.EXPECT().GetByID(gomock.Any()).Return(nil, nil).Times(2)

		mockCampaignRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(c *domain.Campaign) error {
				if c.ID == "c1" {
					return errors.New("violação de constraint")
				}
				return nil
			}).
			Times(2)

		// Métricas buscadas apenas para a campanha gravada com sucesso
		mockMeta.EXPECT().
			GetInsightsByEntityID("c2", domain.EntityTypeCampaign, gomock.Any()).
			Return(nil, nil)

		count, skipped, err := service.syncCampaigns(&domain.InsightFilters{})

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.Len(t, skipped, 1)
		assert.Equal(t, "c1", skipped[0].EntityID)
		assert.Equal(t, domain.EntityTypeCampaign, skipped[0].EntityType)
		assert.Nil(t, skipped[0].Date)
		assert.Contains(t, skipped[0].Reason, "constraint")
	})

	t.Run("Falha ao buscar insights não aborta a entidade", func(t *testing.T) {
		service, mockMeta, _, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetInsightsByEntityID("c1", domain.EntityTypeCampaign, gomock.Any()).
			Return(nil, errors.New("timeout"))

		skipped := service.syncEntityMetrics("c1", domain.EntityTypeCampaign, &domain.InsightFilters{})

		assert.Empty(t, skipped)
	})

	t.Run("Falha ao gravar um dia pula apenas aquele dia", func(t *testing.T) {
		service, mockMeta, _, _, _, mockMetricRepo := newTestService(t)

		mockMeta.EXPECT().
			GetInsightsByEntityID("ad1", domain.EntityTypeAd, gomock.Any()).
			Return([]metadomain.Insight{
				{Spend: stringPtr("10"), Impressions: stringPtr("100"), Clicks: stringPtr("5"), DateStart: "2024-06-01"},
				{Spend: stringPtr("20"), Impressions: stringPtr("200"), Clicks: stringPtr("8"), DateStart: "2024-06-02"},
			}, nil)

		mockMetricRepo.EXPECT().
			GetByEntityAndDate("ad1", domain.EntityTypeAd, gomock.Any()).
			Return(nil, nil).
			Times(2)

		mockMetricRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(m *domain.DailyMetric) error {
				if m.Date.Format(time.DateOnly) == "2024-06-01" {
					return errors.New("deadlock detectado")
				}
				return nil
			}).
			Times(2)

		skipped := service.syncEntityMetrics("ad1", domain.EntityTypeAd, &domain.InsightFilters{})

		require.Len(t, skipped, 1)
		assert.Equal(t, "ad1", skipped[0].EntityID)
		require.NotNil(t, skipped[0].Date)
		assert.Equal(t, "2024-06-01", skipped[0].Date.Format(time.DateOnly))
	})

	t.Run("Insight sem data válida vira registro pulado sem data", func(t *testing.T) {
		service, mockMeta, _, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetInsightsByEntityID("as1", domain.EntityTypeAdSet, gomock.Any()).
			Return([]metadomain.Insight{
				{Spend: stringPtr("10"), DateStart: ""},
			}, nil)

		skipped := service.syncEntityMetrics("as1", domain.EntityTypeAdSet, &domain.InsightFilters{})

		require.Len(t, skipped, 1)
		assert.Nil(t, skipped[0].Date)
		assert.Contains(t, skipped[0].Reason, "data inválida")
	})

	t.Run("Dia com impressões menores que cliques é gravado mesmo assim", func(t *testing.T) {
		service, mockMeta, _, _, _, mockMetricRepo := newTestService(t)

		mockMeta.EXPECT().
			GetInsightsByEntityID("c1", domain.EntityTypeCampaign, gomock.Any()).
			Return([]metadomain.Insight{
				{Spend: stringPtr("10"), Impressions: stringPtr("5"), Clicks: stringPtr("50"), DateStart: "2024-06-01"},
			}, nil)

		mockMetricRepo.EXPECT().
			GetByEntityAndDate("c1", domain.EntityTypeCampaign, gomock.Any()).
			Return(nil, nil)
		mockMetricRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		skipped := service.syncEntityMetrics("c1", domain.EntityTypeCampaign, &domain.InsightFilters{})

		assert.Empty(t, skipped)
	})
}

func TestService_DeteccaoDeMudancas(t *testing.T) {
	t.Run("Transição de status é detectada sem impedir a gravação", func(t *testing.T) {
		service, mockMeta, mockCampaignRepo, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetCampaignsByAccountID("act_123").
			Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha A", Status: "PAUSED"}}, nil)

		mockCampaignRepo.EXPECT().
			GetByID("c1").
			Return(&domain.Campaign{ID: "c1", Name: "Campanha A", Status: "ACTIVE"}, nil)
		mockCampaignRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(c *domain.Campaign) error {
				assert.Equal(t, "PAUSED", c.Status)
				return nil
			})
		mockMeta.EXPECT().
			GetInsightsByEntityID("c1", domain.EntityTypeCampaign, gomock.Any()).
			Return(nil, nil)

		count, skipped, err := service.syncCampaigns(&domain.InsightFilters{})

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Empty(t, skipped)
	})

	t.Run("Falha na leitura consultiva não impede a gravação", func(t *testing.T) {
		service, mockMeta, mockCampaignRepo, _, _, _ := newTestService(t)

		mockMeta.EXPECT().
			GetCampaignsByAccountID("act_123").
			Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha A", Status: "ACTIVE"}}, nil)

		mockCampaignRepo.EXPECT().GetByID("c1").Return(nil, errors.New("timeout"))
		mockCampaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		mockMeta.EXPECT().
			GetInsightsByEntityID("c1", domain.EntityTypeCampaign, gomock.Any()).
			Return(nil, nil)

		count, skipped, err := service.syncCampaigns(&domain.InsightFilters{})

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Empty(t, skipped)
	})

	t.Run("Métrica revisada pela plataforma é sobrescrita e não pulada", func(t *testing.T) {
		service, mockMeta, _, _, _, mockMetricRepo := newTestService(t)

		date, _ := utils.ParseDate("2024-06-01")

		mockMeta.EXPECT().
			GetInsightsByEntityID("c1", domain.EntityTypeCampaign, gomock.Any()).
			Return([]metadomain.Insight{
				{
					Spend:       stringPtr("120"),
					Impressions: stringPtr("1000"),
					Clicks:      stringPtr("20"),
					Actions:     []domain.Action{{ActionType: "purchase", Value: "7"}},
					DateStart:   "2024-06-01",
				},
			}, nil)

		mockMetricRepo.EXPECT().
			GetByEntityAndDate("c1", domain.EntityTypeCampaign, date).
			Return(&domain.DailyMetric{
				EntityID:    "c1",
				EntityType:  domain.EntityTypeCampaign,
				Date:        date,
				Spend:       100.0,
				Conversions: 5,
			}, nil)

		mockMetricRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(m *domain.DailyMetric) error {
				assert.Equal(t, 120.0, m.Spend)
				assert.Equal(t, 7, m.Conversions)
				return nil
			})

		skipped := service.syncEntityMetrics("c1", domain.EntityTypeCampaign, &domain.InsightFilters{})

		assert.Empty(t, skipped)
	})
}

func TestService_Idempotence(t *testing.T) {
	// Duas execuções idênticas devem produzir exatamente as mesmas chamadas de
	// upsert, com os mesmos valores.
	service, mockMeta, mockCampaignRepo, _, _, mockMetricRepo := newTestService(t)

	campaigns := []metadomain.Campaign{{ID: "c1", Name: "Campanha A", Status: "ACTIVE"}}
	insights := []metadomain.Insight{
		{Spend: stringPtr("33.3333"), Impressions: stringPtr("3"), Clicks: stringPtr("1"), DateStart: "2024-06-01"},
	}

	mockMeta.EXPECT().GetCampaignsByAccountID("act_123").Return(campaigns, nil).Times(2)
	mockMeta.EXPECT().
		GetInsightsByEntityID("c1", domain.EntityTypeCampaign, gomock.Any()).
		Return(insights, nil).
		Times(2)
	mockCampaignRepo.EXPECT().GetByID("c1").Return(nil, nil).Times(2)
	mockCampaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

	var saved []*domain.DailyMetric

	// Na segunda execução a métrica já existe no banco, com os mesmos valores
	mockMetricRepo.EXPECT().
		GetByEntityAndDate("c1", domain.EntityTypeCampaign, gomock.Any()).
		DoAndReturn(func(string, domain.EntityType, time.Time) (*domain.DailyMetric, error) {
			if len(saved) == 0 {
				return nil, nil
			}
			return saved[len(saved)-1], nil
		}).
		Times(2)

	mockMetricRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(m *domain.DailyMetric) error {
			saved = append(saved, m)
			return nil
		}).
		Times(2)

	_, _, err := service.syncCampaigns(&domain.InsightFilters{})
	require.NoError(t, err)
	_, _, err = service.syncCampaigns(&domain.InsightFilters{})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, *saved[0], *saved[1])
	assert.Equal(t, 33.3333, saved[0].Spend)
}

func TestMapCampaign(t *testing.T) {
	tests := []struct {
		name     string
		raw      metadomain.Campaign
		validate func(t *testing.T, c *domain.Campaign)
	}{
		{
			name: "Orçamentos em centavos convertidos para unidades monetárias",
			raw: metadomain.Campaign{
				ID:             "c1",
				Name:           "Campanha A",
				Status:         "ACTIVE",
				DailyBudget:    stringPtr("5000"),
				LifetimeBudget: stringPtr("120000"),
			},
			validate: func(t *testing.T, c *domain.Campaign) {
				require.NotNil(t, c.DailyBudget)
				assert.Equal(t, 50.0, *c.DailyBudget)
				require.NotNil(t, c.LifetimeBudget)
				assert.Equal(t, 1200.0, *c.LifetimeBudget)
			},
		},
		{
			name: "Orçamentos ausentes ficam nulos",
			raw:  metadomain.Campaign{ID: "c2", Name: "Campanha B", Status: "PAUSED"},
			validate: func(t *testing.T, c *domain.Campaign) {
				assert.Nil(t, c.DailyBudget)
				assert.Nil(t, c.LifetimeBudget)
			},
		},
		{
			name: "Orçamento vazio é tratado como ausente",
			raw:  metadomain.Campaign{ID: "c3", Name: "Campanha C", Status: "ACTIVE", DailyBudget: stringPtr("")},
			validate: func(t *testing.T, c *domain.Campaign) {
				assert.Nil(t, c.DailyBudget)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, mapCampaign(&tt.raw))
		})
	}
}

func TestMapAdSet(t *testing.T) {
	targeting := json.RawMessage(`{"geo_locations":{"countries":["BR"]}}`)

	tests := []struct {
		name     string
		raw      metadomain.AdSet
		validate func(t *testing.T, a *domain.AdSet)
	}{
		{
			name: "Orçamento diário tem precedência sobre o vitalício",
			raw: metadomain.AdSet{
				ID:             "as1",
				CampaignID:     "c1",
				Name:           "AdSet A",
				Status:         "ACTIVE",
				DailyBudget:    stringPtr("3000"),
				LifetimeBudget: stringPtr("90000"),
			},
			validate: func(t *testing.T, a *domain.AdSet) {
				require.NotNil(t, a.Budget)
				assert.Equal(t, 30.0, *a.Budget)
			},
		},
		{
			name: "Sem orçamento diário usa o vitalício",
			raw: metadomain.AdSet{
				ID:             "as2",
				CampaignID:     "c1",
				Name:           "AdSet B",
				Status:         "ACTIVE",
				LifetimeBudget: stringPtr("90000"),
			},
			validate: func(t *testing.T, a *domain.AdSet) {
				require.NotNil(t, a.Budget)
				assert.Equal(t, 900.0, *a.Budget)
			},
		},
		{
			name: "Sem nenhum orçamento fica nulo e o targeting é repassado",
			raw: metadomain.AdSet{
				ID:         "as3",
				CampaignID: "c1",
				Name:       "AdSet C",
				Status:     "PAUSED",
				Targeting:  targeting,
			},
			validate: func(t *testing.T, a *domain.AdSet) {
				assert.Nil(t, a.Budget)
				assert.Equal(t, targeting, a.Targeting)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, mapAdSet(&tt.raw))
		})
	}
}

func TestMapAd(t *testing.T) {
	t.Run("Criativo aninhado é achatado no registro do anúncio", func(t *testing.T) {
		ad := mapAd(&metadomain.Ad{
			ID:      "ad1",
			AdSetID: "as1",
			Name:    "Anúncio A",
			Status:  "ACTIVE",
			Creative: &metadomain.Creative{
				ID:           stringPtr("cr1"),
				ThumbnailURL: stringPtr("https://example.com/thumb.jpg"),
				ImageURL:     stringPtr("https://example.com/full.jpg"),
				Body:         stringPtr("Compre agora"),
				Title:        stringPtr("Oferta"),
			},
		})

		require.NotNil(t, ad.CreativeID)
		assert.Equal(t, "cr1", *ad.CreativeID)
		require.NotNil(t, ad.ThumbnailURL)
		assert.Equal(t, "https://example.com/thumb.jpg", *ad.ThumbnailURL)
		require.NotNil(t, ad.CreativeBody)
		assert.Equal(t, "Compre agora", *ad.CreativeBody)
	})

	t.Run("Anúncio sem criativo mantém os campos nulos", func(t *testing.T) {
		ad := mapAd(&metadomain.Ad{ID: "ad2", AdSetID: "as1", Name: "Anúncio B", Status: "PAUSED"})

		assert.Nil(t, ad.CreativeID)
		assert.Nil(t, ad.ThumbnailURL)
		assert.Nil(t, ad.ImageURL)
	})
}

func TestBuildDailyMetric(t *testing.T) {
	t.Run("Conversões e receita extraídas por prioridade geram o ROAS", func(t *testing.T) {
		metric, err := buildDailyMetric("c1", domain.EntityTypeCampaign, &metadomain.Insight{
			Spend:       stringPtr("50"),
			Impressions: stringPtr("1000"),
			Clicks:      stringPtr("10"),
			Actions: []domain.Action{
				{ActionType: "purchase", Value: "3"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "5"},
			},
			ActionValues: []domain.Action{
				{ActionType: "purchase", Value: "150"},
			},
			DateStart: "2024-06-01",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, metric.Conversions)
		assert.Equal(t, 3.0, metric.ROAS)
		assert.Equal(t, 5.0, metric.CPC)
		assert.Equal(t, 1.0, metric.CTR)
		assert.Equal(t, 50.0, metric.CPM)
	})

	t.Run("Valores malformados são coagidos para zero", func(t *testing.T) {
		metric, err := buildDailyMetric("c1", domain.EntityTypeCampaign, &metadomain.Insight{
			Spend:       stringPtr("abc"),
			Impressions: nil,
			Clicks:      stringPtr(""),
			DateStart:   "2024-06-01",
		})

		require.NoError(t, err)
		assert.Equal(t, 0.0, metric.Spend)
		assert.Equal(t, 0, metric.Impressions)
		assert.Equal(t, 0, metric.Clicks)
		assert.Equal(t, 0.0, metric.CTR)
		assert.Equal(t, 0.0, metric.CPC)
	})

	t.Run("Data inválida retorna erro", func(t *testing.T) {
		_, err := buildDailyMetric("c1", domain.EntityTypeCampaign, &metadomain.Insight{
			Spend:     stringPtr("10"),
			DateStart: "01/06/2024",
		})

		require.Error(t, err)
	})
}
