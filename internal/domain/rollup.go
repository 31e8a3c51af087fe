package domain

import "time"

// TeamActivityRollup é o agregado pré-computado de um time em um dia: a
// soma dos contadores de todos os registros diários do time naquele dia.
// Produzido pelo agendador noturno para acelerar janelas longas de
// avaliação de dashboards de time.
type TeamActivityRollup struct {
	TeamID        string                  `json:"team_id"`
	Date          time.Time               `json:"date"`
	Counters      map[ActivityField]int64 `json:"counters"`
	DealsWon      int64                   `json:"deals_won"`
	DealValue     int64                   `json:"deal_value"`
	MembersLogged int                     `json:"members_logged"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// RollupFromLogs soma os registros de um time em um dia em um único agregado
func RollupFromLogs(teamID string, date time.Time, logs []*DailyLog) *TeamActivityRollup {
	rollup := &TeamActivityRollup{
		TeamID:   teamID,
		Date:     date,
		Counters: make(map[ActivityField]int64),
	}

	users := make(map[int]bool)
	for _, log := range logs {
		for field, value := range log.Counters {
			rollup.Counters[field] += value
		}
		rollup.DealsWon += log.DealsWon
		rollup.DealValue += log.DealValue
		users[log.UserID] = true
	}

	rollup.MembersLogged = len(users)

	return rollup
}
