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

const dailyLogsTable = "daily_logs dl"

type DailyLogRepository interface {
	GetByKey(userID int, teamID string, date time.Time) (*domain.DailyLog, error)
	SaveOrUpdate(log *domain.DailyLog) error
	GetByTeamAndDateRange(teamID string, startDate, endDate time.Time) ([]*domain.DailyLog, error)
	GetByTeamUserAndDateRange(teamID string, userID int, startDate, endDate time.Time) ([]*domain.DailyLog, error)
	GetByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.DailyLog, error)
}

type dailyLogRepository struct {
	conn *postgres.Connection
}

func NewDailyLogRepository(conn *postgres.Connection) DailyLogRepository {
	return &dailyLogRepository{
		conn: conn,
	}
}

const dailyLogColumns = "dl.id, dl.user_id, dl.team_id, dl.date, dl.counters, dl.deals_won, dl.deal_value, dl.created_at, dl.updated_at"

func (r *dailyLogRepository) GetByKey(userID int, teamID string, date time.Time) (*domain.DailyLog, error) {
	query, args, err := squirrel.
		Select(dailyLogColumns).
		From(dailyLogsTable).
		Where(squirrel.Eq{
			"dl.user_id": userID,
			"dl.team_id": teamID,
			"dl.date":    date.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	log, err := scanDailyLog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro diário: %w", err)
	}

	return log, nil
}

// SaveOrUpdate insere ou substitui o registro da chave (user, team, date).
// O merge campo a campo acontece no usecase; aqui a linha inteira é gravada.
func (r *dailyLogRepository) SaveOrUpdate(log *domain.DailyLog) error {
	counters, err := json.Marshal(log.Counters)
	if err != nil {
		return fmt.Errorf("erro ao serializar contadores: %w", err)
	}

	query, args, err := squirrel.
		Insert("daily_logs").
		Columns("id", "user_id", "team_id", "date", "counters", "deals_won", "deal_value").
		Values(log.ID, log.UserID, log.TeamID, log.Date.Format(time.DateOnly), counters, log.DealsWon, log.DealValue).
		Suffix(`ON CONFLICT (user_id, team_id, date) DO UPDATE SET
			counters = EXCLUDED.counters,
			deals_won = EXCLUDED.deals_won,
			deal_value = EXCLUDED.deal_value,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar registro diário: %w", err)
	}

	return nil
}

func (r *dailyLogRepository) GetByTeamAndDateRange(teamID string, startDate, endDate time.Time) ([]*domain.DailyLog, error) {
	builder := squirrel.
		Select(dailyLogColumns).
		From(dailyLogsTable).
		Where(squirrel.Eq{"dl.team_id": teamID})

	return r.queryRange(builder, startDate, endDate)
}

func (r *dailyLogRepository) GetByTeamUserAndDateRange(teamID string, userID int, startDate, endDate time.Time) ([]*domain.DailyLog, error) {
	builder := squirrel.
		Select(dailyLogColumns).
		From(dailyLogsTable).
		Where(squirrel.Eq{"dl.team_id": teamID, "dl.user_id": userID})

	return r.queryRange(builder, startDate, endDate)
}

func (r *dailyLogRepository) GetByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.DailyLog, error) {
	builder := squirrel.
		Select(dailyLogColumns).
		From(dailyLogsTable).
		Where(squirrel.Eq{"dl.user_id": userID})

	return r.queryRange(builder, startDate, endDate)
}

// queryRange executa a consulta com o recorte de datas, sempre ordenada por
// data ascendente — o avaliador depende dessa ordem e não reordena.
func (r *dailyLogRepository) queryRange(builder squirrel.SelectBuilder, startDate, endDate time.Time) ([]*domain.DailyLog, error) {
	query, args, err := builder.
		Where(squirrel.GtOrEq{"dl.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dl.date": endDate.Format(time.DateOnly)}).
		OrderBy("dl.date ASC", "dl.user_id ASC").
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

	logs := make([]*domain.DailyLog, 0)
	for rows.Next() {
		log, err := scanDailyLogRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros diários: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}

func scanDailyLog(row *sql.Row) (*domain.DailyLog, error) {
	var log domain.DailyLog
	var counters []byte

	err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.TeamID,
		&log.Date,
		&counters,
		&log.DealsWon,
		&log.DealValue,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(counters, &log.Counters); err != nil {
		return nil, fmt.Errorf("erro ao desserializar contadores: %w", err)
	}

	return &log, nil
}

func scanDailyLogRows(rows *sql.Rows) (*domain.DailyLog, error) {
	var log domain.DailyLog
	var counters []byte

	err := rows.Scan(
		&log.ID,
		&log.UserID,
		&log.TeamID,
		&log.Date,
		&counters,
		&log.DealsWon,
		&log.DealValue,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(counters, &log.Counters); err != nil {
		return nil, fmt.Errorf("erro ao desserializar contadores: %w", err)
	}

	return &log, nil
}
