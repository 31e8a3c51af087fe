package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/salespulse/salespulse-api/infrastructure/database/postgres"
	"github.com/salespulse/salespulse-api/internal/domain"
)

const templatesTable = "templates t"

type TemplateRepository interface {
	Create(template *domain.Template) (*domain.Template, error)
	GetByID(id string) (*domain.Template, error)
	ListVisibleTo(userID int) ([]*domain.Template, error)
	Update(template *domain.Template) error
	IncrementDownloads(id string) error
	Delete(id string) error
}

type templateRepository struct {
	conn *postgres.Connection
}

func NewTemplateRepository(conn *postgres.Connection) TemplateRepository {
	return &templateRepository{
		conn: conn,
	}
}

const templateColumns = "t.id, t.name, t.description, t.config, t.category, t.visibility, t.owner_id, t.downloads_count, t.created_at, t.updated_at"

func (r *templateRepository) Create(template *domain.Template) (*domain.Template, error) {
	config, err := json.Marshal(template.Config)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	query, args, err := squirrel.
		Insert("templates").
		Columns("id", "name", "description", "config", "category", "visibility", "owner_id").
		Values(template.ID, template.Name, template.Description, config, template.Category, template.Visibility, template.OwnerID).
		Suffix("RETURNING downloads_count, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&template.DownloadsCount, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar template: %w", err)
	}

	return template, nil
}

func (r *templateRepository) GetByID(id string) (*domain.Template, error) {
	query, args, err := squirrel.
		Select(templateColumns).
		From(templatesTable).
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	template, err := scanTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear template: %w", err)
	}

	return template, nil
}

// ListVisibleTo lista os templates públicos e os privados do próprio usuário
func (r *templateRepository) ListVisibleTo(userID int) ([]*domain.Template, error) {
	query, args, err := squirrel.
		Select(templateColumns).
		From(templatesTable).
		Where(squirrel.Or{
			squirrel.Eq{"t.visibility": domain.TemplateVisibilityPublic},
			squirrel.Eq{"t.owner_id": userID},
		}).
		OrderBy("t.downloads_count DESC", "t.created_at ASC").
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

	templates := make([]*domain.Template, 0)
	for rows.Next() {
		template, err := scanTemplateRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear templates: %w", err)
		}
		templates = append(templates, template)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return templates, nil
}

func (r *templateRepository) Update(template *domain.Template) error {
	config, err := json.Marshal(template.Config)
	if err != nil {
		return fmt.Errorf("erro ao serializar configuração: %w", err)
	}

	query, args, err := squirrel.
		Update("templates").
		Set("name", template.Name).
		Set("description", template.Description).
		Set("config", config).
		Set("category", template.Category).
		Set("visibility", template.Visibility).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": template.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar template: %w", err)
	}

	return nil
}

// IncrementDownloads soma 1 ao contador de downloads. Efeito associado ao
// clone, não transacional com a persistência do dashboard resultante.
func (r *templateRepository) IncrementDownloads(id string) error {
	query, args, err := squirrel.
		Update("templates").
		Set("downloads_count", squirrel.Expr("downloads_count + 1")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao incrementar downloads: %w", err)
	}

	return nil
}

func (r *templateRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("templates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover template: %w", err)
	}

	return nil
}

func scanTemplate(row *sql.Row) (*domain.Template, error) {
	var template domain.Template
	var config []byte

	err := row.Scan(
		&template.ID,
		&template.Name,
		&template.Description,
		&config,
		&template.Category,
		&template.Visibility,
		&template.OwnerID,
		&template.DownloadsCount,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(config, &template.Config); err != nil {
		return nil, fmt.Errorf("erro ao desserializar configuração: %w", err)
	}

	return &template, nil
}

func scanTemplateRows(rows *sql.Rows) (*domain.Template, error) {
	var template domain.Template
	var config []byte

	err := rows.Scan(
		&template.ID,
		&template.Name,
		&template.Description,
		&config,
		&template.Category,
		&template.Visibility,
		&template.OwnerID,
		&template.DownloadsCount,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(config, &template.Config); err != nil {
		return nil, fmt.Errorf("erro ao desserializar configuração: %w", err)
	}

	return &template, nil
}
