package domain

import "time"

// EntityType identifica o nível da hierarquia de anúncios a que uma métrica pertence.
type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "adset"
	EntityTypeAd       EntityType = "ad"
)

// DailyMetric representa uma linha da tabela daily_metrics: o desempenho de
// uma entidade em um dia. A chave de conflito é (entity_id, entity_type, date),
// então re-sincronizar uma janela sobreposta sobrescreve em vez de duplicar.
type DailyMetric struct {
	EntityID    string     `json:"entity_id"`
	EntityType  EntityType `json:"entity_type"`
	Date        time.Time  `json:"date"`
	Spend       float64    `json:"spend"`
	Impressions int        `json:"impressions"`
	Clicks      int        `json:"clicks"`
	Conversions int        `json:"conversions"`
	CPC         float64    `json:"cpc"`
	CTR         float64    `json:"ctr"`
	CPM         float64    `json:"cpm"`
	ROAS        float64    `json:"roas"`
	Frequency   float64    `json:"frequency"`
	Reach       int        `json:"reach"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
}
