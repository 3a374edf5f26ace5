package metadomain

import "github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"

// Insight é uma linha diária retornada por /{id}/insights com
// time_increment=1. Os campos numéricos vêm como strings e podem estar
// ausentes ou malformados; a coerção acontece no validator.
type Insight struct {
	Spend        *string         `json:"spend"`
	Impressions  *string         `json:"impressions"`
	Clicks       *string         `json:"clicks"`
	Actions      []domain.Action `json:"actions"`
	ActionValues []domain.Action `json:"action_values"`
	Frequency    *string         `json:"frequency"`
	Reach        *string         `json:"reach"`
	DateStart    string          `json:"date_start"`
	DateStop     string          `json:"date_stop"`
}
