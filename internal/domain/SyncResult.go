package domain

import "time"

// SkippedRecord registra um item pulado durante a sincronização com o motivo.
// Date fica nulo quando o item pulado é o metadado de uma entidade e não uma
// métrica diária.
type SkippedRecord struct {
	EntityID   string     `json:"entity_id"`
	EntityType EntityType `json:"entity_type"`
	Date       *time.Time `json:"date,omitempty"`
	Reason     string     `json:"reason"`
}

// SyncResult é o resumo de uma execução completa da sincronização.
type SyncResult struct {
	RunID           string          `json:"run_id"`
	Status          string          `json:"status"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	DurationSeconds float64         `json:"duration_seconds"`
	Campaigns       int             `json:"campaigns"`
	AdSets          int             `json:"adsets"`
	Ads             int             `json:"ads"`
	Skipped         []SkippedRecord `json:"skipped,omitempty"`
	StartedAt       time.Time       `json:"started_at"`
	CompletedAt     time.Time       `json:"completed_at"`
}
