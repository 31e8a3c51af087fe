package dashboarding

import (
	"github.com/sirupsen/logrus"
	"github.com/salespulse/salespulse-api/infrastructure/repository"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/pkg/utils"
)

// CreateDashboardRequest cria um dashboard vazio para um usuário ou um time
type CreateDashboardRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UserID      *int    `json:"user_id"`
	TeamID      *string `json:"team_id"`
}

// UpdateDashboardRequest edita título e descrição
type UpdateDashboardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Dashboarder gerencia o ciclo de vida dos dashboards
type Dashboarder interface {
	Create(req *CreateDashboardRequest) (*domain.Dashboard, error)
	GetByID(id string, requesterID int) (*domain.Dashboard, error)
	List(requesterID int) ([]*domain.Dashboard, error)
	Update(id string, requesterID int, req *UpdateDashboardRequest) (*domain.Dashboard, error)
	ReplaceConfig(id string, requesterID int, config *domain.DashboardConfig) (int, error)
	Delete(id string, requesterID int) error
}

type Service struct {
	dashboardRepo repository.DashboardRepository
	teamRepo      repository.TeamRepository
}

func NewService(dashboardRepo repository.DashboardRepository, teamRepo repository.TeamRepository) Dashboarder {
	return &Service{
		dashboardRepo: dashboardRepo,
		teamRepo:      teamRepo,
	}
}

// Create cria um dashboard com configuração vazia (apenas a linha reservada)
func (s *Service) Create(req *CreateDashboardRequest) (*domain.Dashboard, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
		TeamID:      req.TeamID,
		Config: &domain.DashboardConfig{
			Metrics: []*domain.MetricDefinition{},
			Layout:  []*domain.LayoutRow{domain.NewDefaultRow()},
		},
	}

	if err := dashboard.ValidateOwnership(); err != nil {
		return nil, ErrInvalidOwnership
	}

	created, err := s.dashboardRepo.Create(dashboard)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar dashboard")
		return nil, ErrDatabaseOperation
	}

	return created, nil
}

func (s *Service) GetByID(id string, requesterID int) (*domain.Dashboard, error) {
	dashboard, err := s.fetchAllowed(id, requesterID)
	if err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (s *Service) List(requesterID int) ([]*domain.Dashboard, error) {
	teamIDs, err := s.teamRepo.ListTeamIDsByUser(requesterID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar times do usuário")
		return nil, ErrDatabaseOperation
	}

	dashboards, err := s.dashboardRepo.ListByOwner(requesterID, teamIDs)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar dashboards")
		return nil, ErrDatabaseOperation
	}

	return dashboards, nil
}

func (s *Service) Update(id string, requesterID int, req *UpdateDashboardRequest) (*domain.Dashboard, error) {
	dashboard, err := s.fetchAllowed(id, requesterID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		dashboard.Title = *req.Title
	}

	if req.Description != nil {
		dashboard.Description = *req.Description
	}

	if err := s.dashboardRepo.Update(dashboard); err != nil {
		logrus.WithError(err).WithField("dashboard_id", id).Error("Erro ao atualizar dashboard")
		return nil, ErrDatabaseOperation
	}

	return dashboard, nil
}

// ReplaceConfig substitui a configuração inteira do dashboard — nunca um
// patch por campo — e devolve a nova versão. A configuração é validada
// antes de persistir; é aqui que vale a integridade referencial entre
// métricas e layout.
func (s *Service) ReplaceConfig(id string, requesterID int, config *domain.DashboardConfig) (int, error) {
	if _, err := s.fetchAllowed(id, requesterID); err != nil {
		return 0, err
	}

	if config == nil {
		return 0, ErrInvalidConfig
	}

	for _, def := range config.Metrics {
		if err := def.Validate(); err != nil {
			logrus.WithError(err).WithField("metric_id", def.ID).Warn("Definição de métrica inválida")
			return 0, ErrInvalidConfig
		}
	}

	if err := config.Validate(); err != nil {
		logrus.WithError(err).WithField("dashboard_id", id).Warn("Configuração de dashboard inválida")
		return 0, ErrInvalidConfig
	}

	version, err := s.dashboardRepo.ReplaceConfig(id, config)
	if err != nil {
		logrus.WithError(err).WithField("dashboard_id", id).Error("Erro ao substituir configuração")
		return 0, ErrDatabaseOperation
	}

	return version, nil
}

func (s *Service) Delete(id string, requesterID int) error {
	if _, err := s.fetchAllowed(id, requesterID); err != nil {
		return err
	}

	if err := s.dashboardRepo.Delete(id); err != nil {
		logrus.WithError(err).WithField("dashboard_id", id).Error("Erro ao remover dashboard")
		return ErrDatabaseOperation
	}

	return nil
}

// fetchAllowed busca o dashboard e verifica o acesso do solicitante:
// o próprio dono, para dashboards individuais, ou membros do time, para
// dashboards de time.
func (s *Service) fetchAllowed(id string, requesterID int) (*domain.Dashboard, error) {
	dashboard, err := s.dashboardRepo.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("dashboard_id", id).Error("Erro ao buscar dashboard")
		return nil, ErrDatabaseOperation
	}

	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}

	if dashboard.TeamID != nil {
		isMember, err := s.teamRepo.IsMember(*dashboard.TeamID, requesterID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao verificar membro do time")
			return nil, ErrDatabaseOperation
		}
		if !isMember {
			return nil, ErrNotAllowed
		}
		return dashboard, nil
	}

	if dashboard.UserID == nil || *dashboard.UserID != requesterID {
		return nil, ErrNotAllowed
	}

	return dashboard, nil
}
