package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/salespulse/salespulse-api/infrastructure/database/postgres"
	"github.com/salespulse/salespulse-api/internal/domain"
)

const (
	teamsTable       = "teams"
	teamMembersTable = "team_members"
)

type TeamRepository interface {
	Create(team *domain.Team) (*domain.Team, error)
	GetByID(id string) (*domain.Team, error)
	ListAll() ([]*domain.Team, error)
	ListByUser(userID int) ([]*domain.Team, error)
	AddMember(teamID string, userID int) error
	RemoveMember(teamID string, userID int) error
	ListMembers(teamID string) ([]*domain.TeamMember, error)
	IsMember(teamID string, userID int) (bool, error)
	ListTeamIDsByUser(userID int) ([]string, error)
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) Create(team *domain.Team) (*domain.Team, error) {
	query, args, err := squirrel.
		Insert(teamsTable).
		Columns("id", "name", "owner_id").
		Values(team.ID, team.Name, team.OwnerID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar time: %w", err)
	}

	// O dono entra como membro junto com a criação do time
	if err := r.AddMember(team.ID, team.OwnerID); err != nil {
		return nil, err
	}

	return team, nil
}

func (r *teamRepository) GetByID(id string) (*domain.Team, error) {
	var team domain.Team
	err := r.conn.QueryRow(
		"SELECT id, name, owner_id, created_at, updated_at FROM teams WHERE id = $1", id,
	).Scan(&team.ID, &team.Name, &team.OwnerID, &team.CreatedAt, &team.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *teamRepository) ListAll() ([]*domain.Team, error) {
	rows, err := r.conn.Query("SELECT id, name, owner_id, created_at, updated_at FROM teams ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar times: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.OwnerID, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear times: %w", err)
		}
		teams = append(teams, &team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) ListByUser(userID int) ([]*domain.Team, error) {
	query, args, err := squirrel.
		Select("t.id", "t.name", "t.owner_id", "t.created_at", "t.updated_at").
		From("teams t").
		Join("team_members tm ON tm.team_id = t.id").
		Where(squirrel.Eq{"tm.user_id": userID}).
		OrderBy("t.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar times: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.OwnerID, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear times: %w", err)
		}
		teams = append(teams, &team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) AddMember(teamID string, userID int) error {
	query, args, err := squirrel.
		Insert(teamMembersTable).
		Columns("team_id", "user_id").
		Values(teamID, userID).
		Suffix("ON CONFLICT (team_id, user_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao vincular membro: %w", err)
	}

	return nil
}

func (r *teamRepository) RemoveMember(teamID string, userID int) error {
	query, args, err := squirrel.
		Delete(teamMembersTable).
		Where(squirrel.Eq{"team_id": teamID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desvincular membro: %w", err)
	}

	return nil
}

func (r *teamRepository) ListMembers(teamID string) ([]*domain.TeamMember, error) {
	query, args, err := squirrel.
		Select("tm.team_id", "tm.user_id", "u.name", "u.lastname", "u.email", "tm.created_at").
		From("team_members tm").
		Join("users u ON u.id = tm.user_id").
		Where(squirrel.Eq{"tm.team_id": teamID}).
		OrderBy("u.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar membros: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(&member.TeamID, &member.UserID, &member.Name, &member.Lastname, &member.Email, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear membros: %w", err)
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return members, nil
}

func (r *teamRepository) IsMember(teamID string, userID int) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)",
		teamID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar membro: %w", err)
	}

	return exists, nil
}

func (r *teamRepository) ListTeamIDsByUser(userID int) ([]string, error) {
	query, args, err := squirrel.
		Select("team_id").
		From(teamMembersTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar times do usuário: %w", err)
	}
	defer rows.Close()

	teamIDs := make([]string, 0)
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		teamIDs = append(teamIDs, teamID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return teamIDs, nil
}
