package utils

import (
	"fmt"
	"time"
)

// ParseDate converte uma data no formato YYYY-MM-DD (o date_start dos
// insights da API) em time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// Truncate remove o componente de hora de uma data, mantendo apenas o dia.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
