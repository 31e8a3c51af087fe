package templating

import (
	"github.com/sirupsen/logrus"
	"github.com/salespulse/salespulse-api/infrastructure/repository"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/pkg/utils"
)

// CreateTemplateRequest cria um template do zero ou a partir da
// configuração de um dashboard existente (DashboardID preenchido).
type CreateTemplateRequest struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Category    string                    `json:"category"`
	Visibility  domain.TemplateVisibility `json:"visibility"`
	OwnerID     int                       `json:"owner_id"`
	DashboardID *string                   `json:"dashboard_id"`
	Config      *domain.DashboardConfig   `json:"config"`
}

// UpdateTemplateRequest edita os atributos do template
type UpdateTemplateRequest struct {
	Name        *string                    `json:"name"`
	Description *string                    `json:"description"`
	Category    *string                    `json:"category"`
	Visibility  *domain.TemplateVisibility `json:"visibility"`
	Config      *domain.DashboardConfig    `json:"config"`
}

// CloneOverrides parametriza o clone de um template para um novo dashboard.
// A propriedade (usuário ou time) vem sempre daqui, nunca do template.
type CloneOverrides struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UserID      *int    `json:"user_id"`
	TeamID      *string `json:"team_id"`
}

// Templater gerencia templates: criação, compatibilidade e clonagem
type Templater interface {
	Create(req *CreateTemplateRequest) (*domain.Template, error)
	GetByID(id string, requesterID int) (*domain.Template, error)
	List(requesterID int) ([]*domain.Template, error)
	Update(id string, requesterID int, req *UpdateTemplateRequest) (*domain.Template, error)
	Delete(id string, requesterID int) error
	CheckCompatibility(id string, requesterID int, availableFields []domain.ActivityField) (*domain.CompatibilityResult, error)
	Clone(id string, requesterID int, overrides *CloneOverrides) (*domain.Dashboard, error)
}

type Service struct {
	templateRepo  repository.TemplateRepository
	dashboardRepo repository.DashboardRepository
}

func NewService(templateRepo repository.TemplateRepository, dashboardRepo repository.DashboardRepository) Templater {
	return &Service{
		templateRepo:  templateRepo,
		dashboardRepo: dashboardRepo,
	}
}

// Create cria um template. Quando DashboardID é informado, a configuração
// vem do dashboard — uma cópia profunda, nunca os dados de atividade.
func (s *Service) Create(req *CreateTemplateRequest) (*domain.Template, error) {
	if req.Name == "" {
		return nil, ErrInvalidTemplate
	}

	config := req.Config
	if req.DashboardID != nil {
		dashboard, err := s.dashboardRepo.GetByID(*req.DashboardID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar dashboard de origem")
			return nil, ErrDatabaseOperation
		}
		if dashboard == nil {
			return nil, ErrInvalidTemplate
		}
		config = dashboard.Config
	}

	if config == nil {
		config = &domain.DashboardConfig{
			Metrics: []*domain.MetricDefinition{},
			Layout:  []*domain.LayoutRow{domain.NewDefaultRow()},
		}
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = domain.TemplateVisibilityPrivate
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	template := &domain.Template{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Config:      config.Clone(),
		Category:    req.Category,
		Visibility:  visibility,
		OwnerID:     req.OwnerID,
	}

	created, err := s.templateRepo.Create(template)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar template")
		return nil, ErrDatabaseOperation
	}

	return created, nil
}

func (s *Service) GetByID(id string, requesterID int) (*domain.Template, error) {
	template, err := s.fetchVisible(id, requesterID)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (s *Service) List(requesterID int) ([]*domain.Template, error) {
	templates, err := s.templateRepo.ListVisibleTo(requesterID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar templates")
		return nil, ErrDatabaseOperation
	}

	return templates, nil
}

func (s *Service) Update(id string, requesterID int, req *UpdateTemplateRequest) (*domain.Template, error) {
	template, err := s.fetchVisible(id, requesterID)
	if err != nil {
		return nil, err
	}

	if template.OwnerID != requesterID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		template.Name = *req.Name
	}

	if req.Description != nil {
		template.Description = *req.Description
	}

	if req.Category != nil {
		template.Category = *req.Category
	}

	if req.Visibility != nil {
		template.Visibility = *req.Visibility
	}

	if req.Config != nil {
		template.Config = req.Config.Clone()
	}

	if err := s.templateRepo.Update(template); err != nil {
		logrus.WithError(err).WithField("template_id", id).Error("Erro ao atualizar template")
		return nil, ErrDatabaseOperation
	}

	return template, nil
}

func (s *Service) Delete(id string, requesterID int) error {
	template, err := s.fetchVisible(id, requesterID)
	if err != nil {
		return err
	}

	if template.OwnerID != requesterID {
		return ErrNotOwner
	}

	if err := s.templateRepo.Delete(id); err != nil {
		logrus.WithError(err).WithField("template_id", id).Error("Erro ao remover template")
		return ErrDatabaseOperation
	}

	return nil
}

// CheckCompatibility verifica se todos os campos que as métricas do
// template referenciam existem no contexto de destino. Nunca é um erro de
// execução: o resultado estruturado lista os campos faltantes.
func (s *Service) CheckCompatibility(id string, requesterID int, availableFields []domain.ActivityField) (*domain.CompatibilityResult, error) {
	template, err := s.fetchVisible(id, requesterID)
	if err != nil {
		return nil, err
	}

	result := template.CheckCompatibility(availableFields)

	return &result, nil
}

// Clone produz um novo dashboard com uma cópia profunda e independente da
// configuração do template. O contador de downloads é incrementado como
// efeito associado, não transacional: se a persistência do dashboard
// falhar depois, o incremento não é desfeito.
func (s *Service) Clone(id string, requesterID int, overrides *CloneOverrides) (*domain.Dashboard, error) {
	template, err := s.fetchVisible(id, requesterID)
	if err != nil {
		return nil, err
	}

	if overrides == nil {
		overrides = &CloneOverrides{}
	}

	title := overrides.Title
	if title == "" {
		title = template.Name
	}

	description := overrides.Description
	if description == "" {
		description = template.Description
	}

	dashboardID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		ID:          dashboardID,
		Title:       title,
		Description: description,
		Config:      template.Config.Clone(),
		UserID:      overrides.UserID,
		TeamID:      overrides.TeamID,
	}

	if err := dashboard.ValidateOwnership(); err != nil {
		return nil, ErrInvalidOwnership
	}

	if err := s.templateRepo.IncrementDownloads(id); err != nil {
		// Melhor esforço: o clone segue mesmo sem o incremento
		logrus.WithError(err).WithField("template_id", id).Warn("Erro ao incrementar downloads do template")
	}

	created, err := s.dashboardRepo.Create(dashboard)
	if err != nil {
		logrus.WithError(err).WithField("template_id", id).Error("Erro ao persistir dashboard clonado")
		return nil, ErrDatabaseOperation
	}

	return created, nil
}

// fetchVisible busca o template e verifica visibilidade: públicos para
// todos, privados só para o dono
func (s *Service) fetchVisible(id string, requesterID int) (*domain.Template, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("template_id", id).Error("Erro ao buscar template")
		return nil, ErrDatabaseOperation
	}

	if template == nil {
		return nil, ErrTemplateNotFound
	}

	if template.Visibility != domain.TemplateVisibilityPublic && template.OwnerID != requesterID {
		return nil, ErrNotVisible
	}

	return template, nil
}
