package domain

import "time"

// PeriodFilters delimita a janela de datas de uma consulta de métricas
type PeriodFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
