package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/salespulse/salespulse-api/infrastructure/database/postgres"
	"github.com/salespulse/salespulse-api/internal/domain"
)

const dashboardsTable = "dashboards d"

type DashboardRepository interface {
	Create(dashboard *domain.Dashboard) (*domain.Dashboard, error)
	GetByID(id string) (*domain.Dashboard, error)
	ListByOwner(userID int, teamIDs []string) ([]*domain.Dashboard, error)
	Update(dashboard *domain.Dashboard) error
	ReplaceConfig(id string, config *domain.DashboardConfig) (int, error)
	Delete(id string) error
}

type dashboardRepository struct {
	conn *postgres.Connection
}

func NewDashboardRepository(conn *postgres.Connection) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

const dashboardColumns = "d.id, d.title, d.description, d.config, d.user_id, d.team_id, d.version, d.created_at, d.updated_at"

func (r *dashboardRepository) Create(dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	config, err := json.Marshal(dashboard.Config)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	query, args, err := squirrel.
		Insert("dashboards").
		Columns("id", "title", "description", "config", "user_id", "team_id", "version").
		Values(dashboard.ID, dashboard.Title, dashboard.Description, config, dashboard.UserID, dashboard.TeamID, 1).
		Suffix("RETURNING version, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&dashboard.Version, &dashboard.CreatedAt, &dashboard.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar dashboard: %w", err)
	}

	return dashboard, nil
}

func (r *dashboardRepository) GetByID(id string) (*domain.Dashboard, error) {
	query, args, err := squirrel.
		Select(dashboardColumns).
		From(dashboardsTable).
		Where(squirrel.Eq{"d.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	dashboard, err := scanDashboard(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear dashboard: %w", err)
	}

	return dashboard, nil
}

// ListByOwner lista os dashboards individuais do usuário e os dashboards
// dos times em que ele está.
func (r *dashboardRepository) ListByOwner(userID int, teamIDs []string) ([]*domain.Dashboard, error) {
	ownership := squirrel.Or{squirrel.Eq{"d.user_id": userID}}
	if len(teamIDs) > 0 {
		ownership = append(ownership, squirrel.Eq{"d.team_id": teamIDs})
	}

	query, args, err := squirrel.
		Select(dashboardColumns).
		From(dashboardsTable).
		Where(ownership).
		OrderBy("d.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	dashboards := make([]*domain.Dashboard, 0)
	for rows.Next() {
		dashboard, err := scanDashboardRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear dashboards: %w", err)
		}
		dashboards = append(dashboards, dashboard)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dashboards, nil
}

func (r *dashboardRepository) Update(dashboard *domain.Dashboard) error {
	builder := squirrel.
		Update("dashboards").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": dashboard.ID})

	if dashboard.Title != "" {
		builder = builder.Set("title", dashboard.Title)
	}

	builder = builder.Set("description", dashboard.Description)

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar dashboard: %w", err)
	}

	return nil
}

// ReplaceConfig substitui a configuração inteira (nunca patch por campo) e
// incrementa o contador de versão, retornando a nova versão.
func (r *dashboardRepository) ReplaceConfig(id string, config *domain.DashboardConfig) (int, error) {
	blob, err := json.Marshal(config)
	if err != nil {
		return 0, fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	query, args, err := squirrel.
		Update("dashboards").
		Set("config", blob).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING version").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var version int
	err = r.conn.QueryRow(query, args...).Scan(&version)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, sql.ErrNoRows
		}
		return 0, fmt.Errorf("erro ao substituir configuração: %w", err)
	}

	return version, nil
}

func (r *dashboardRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("dashboards").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover dashboard: %w", err)
	}

	return nil
}

func scanDashboard(row *sql.Row) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	var config []byte

	err := row.Scan(
		&dashboard.ID,
		&dashboard.Title,
		&dashboard.Description,
		&config,
		&dashboard.UserID,
		&dashboard.TeamID,
		&dashboard.Version,
		&dashboard.CreatedAt,
		&dashboard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(config, &dashboard.Config); err != nil {
		return nil, fmt.Errorf("erro ao desserializar configuração: %w", err)
	}

	return &dashboard, nil
}

func scanDashboardRows(rows *sql.Rows) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	var config []byte

	err := rows.Scan(
		&dashboard.ID,
		&dashboard.Title,
		&dashboard.Description,
		&config,
		&dashboard.UserID,
		&dashboard.TeamID,
		&dashboard.Version,
		&dashboard.CreatedAt,
		&dashboard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(config, &dashboard.Config); err != nil {
		return nil, fmt.Errorf("erro ao desserializar configuração: %w", err)
	}

	return &dashboard, nil
}
