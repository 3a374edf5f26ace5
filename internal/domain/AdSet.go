package domain

import (
	"encoding/json"
	"time"
)

// AdSet representa um conjunto de anúncios sincronizado na tabela adsets.
// Budget recebe o daily_budget quando presente, senão o lifetime_budget.
type AdSet struct {
	ID               string          `json:"adset_id"`
	CampaignID       string          `json:"campaign_id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	Budget           *float64        `json:"budget,omitempty"`
	Targeting        json.RawMessage `json:"targeting,omitempty"`
	OptimizationGoal *string         `json:"optimization_goal,omitempty"`
	BillingEvent     *string         `json:"billing_event,omitempty"`
	BidStrategy      *string         `json:"bid_strategy,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at,omitempty"`
}
