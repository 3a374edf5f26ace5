package domain

import "time"

// InsightFilters delimita a janela de sincronização (datas inclusivas, sem
// componente de hora).
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Action é um par action_type/value retornado nas listas actions e
// action_values dos insights da API. O valor vem como string e pode ser
// inválido; a coerção fica a cargo do validator.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}
