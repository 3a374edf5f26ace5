package metadomain

// Campaign é o formato bruto retornado por /act_{id}/campaigns. Os orçamentos
// vêm como strings em centavos e podem estar ausentes.
type Campaign struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	EffectiveStatus *string `json:"effective_status"`
	Objective       *string `json:"objective"`
	DailyBudget     *string `json:"daily_budget"`
	LifetimeBudget  *string `json:"lifetime_budget"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}
