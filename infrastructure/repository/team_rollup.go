package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/salespulse/salespulse-api/infrastructure/database/postgres"
	"github.com/salespulse/salespulse-api/internal/domain"
)

const teamRollupsTable = "team_activity_rollups tr"

type TeamRollupRepository interface {
	SaveOrUpdate(rollup *domain.TeamActivityRollup) error
	GetByTeamAndDateRange(teamID string, startDate, endDate time.Time) ([]*domain.TeamActivityRollup, error)
	DeleteOlderThan(days int) (int64, error)
}

type teamRollupRepository struct {
	conn *postgres.Connection
}

func NewTeamRollupRepository(conn *postgres.Connection) TeamRollupRepository {
	return &teamRollupRepository{
		conn: conn,
	}
}

func (r *teamRollupRepository) SaveOrUpdate(rollup *domain.TeamActivityRollup) error {
	counters, err := json.Marshal(rollup.Counters)
	if err != nil {
		return fmt.Errorf("erro ao serializar contadores: %w", err)
	}

	query, args, err := squirrel.
		Insert("team_activity_rollups").
		Columns("team_id", "date", "counters", "deals_won", "deal_value", "members_logged").
		Values(rollup.TeamID, rollup.Date.Format(time.DateOnly), counters, rollup.DealsWon, rollup.DealValue, rollup.MembersLogged).
		Suffix(`ON CONFLICT (team_id, date) DO UPDATE SET
			counters = EXCLUDED.counters,
			deals_won = EXCLUDED.deals_won,
			deal_value = EXCLUDED.deal_value,
			members_logged = EXCLUDED.members_logged,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar agregado do time: %w", err)
	}

	return nil
}

func (r *teamRollupRepository) GetByTeamAndDateRange(teamID string, startDate, endDate time.Time) ([]*domain.TeamActivityRollup, error) {
	query, args, err := squirrel.
		Select("tr.team_id, tr.date, tr.counters, tr.deals_won, tr.deal_value, tr.members_logged, tr.updated_at").
		From(teamRollupsTable).
		Where(squirrel.Eq{"tr.team_id": teamID}).
		Where(squirrel.GtOrEq{"tr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"tr.date": endDate.Format(time.DateOnly)}).
		OrderBy("tr.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rollups := make([]*domain.TeamActivityRollup, 0)
	for rows.Next() {
		var rollup domain.TeamActivityRollup
		var counters []byte

		if err := rows.Scan(
			&rollup.TeamID,
			&rollup.Date,
			&counters,
			&rollup.DealsWon,
			&rollup.DealValue,
			&rollup.MembersLogged,
			&rollup.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregados: %w", err)
		}

		if err := json.Unmarshal(counters, &rollup.Counters); err != nil {
			return nil, fmt.Errorf("erro ao desserializar contadores: %w", err)
		}

		rollups = append(rollups, &rollup)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rollups, nil
}

// DeleteOlderThan remove agregados mais antigos que o número de dias
func (r *teamRollupRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("team_activity_rollups").
		Where(squirrel.Lt{"date": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover agregados antigos: %w", err)
	}

	return result.RowsAffected()
}
