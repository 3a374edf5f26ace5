package domain

import "time"

// Campaign representa uma campanha sincronizada na tabela campaigns.
// Os orçamentos são armazenados em unidades monetárias (a API retorna centavos)
// e ficam nulos quando a plataforma não informa o valor.
type Campaign struct {
	ID              string    `json:"campaign_id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	EffectiveStatus *string   `json:"effective_status,omitempty"`
	Objective       *string   `json:"objective,omitempty"`
	DailyBudget     *float64  `json:"daily_budget,omitempty"`
	LifetimeBudget  *float64  `json:"lifetime_budget,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}
