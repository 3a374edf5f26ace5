package metadomain

import "encoding/json"

// AdSet é o formato bruto retornado por /act_{id}/adsets. O targeting é
// repassado como blob opaco.
type AdSet struct {
	ID               string          `json:"id"`
	CampaignID       string          `json:"campaign_id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	DailyBudget      *string         `json:"daily_budget"`
	LifetimeBudget   *string         `json:"lifetime_budget"`
	Targeting        json.RawMessage `json:"targeting"`
	OptimizationGoal *string         `json:"optimization_goal"`
	BillingEvent     *string         `json:"billing_event"`
	BidStrategy      *string         `json:"bid_strategy"`
}
