package teaming

import (
	"fmt"
	"strings"

	"github.com/salespulse/salespulse-api/infrastructure/repository"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CreateTeamRequest struct {
	Name    string `json:"name"`
	OwnerID int    `json:"-"`
}

type Teamer interface {
	Create(req CreateTeamRequest) (*domain.Team, error)
	GetByID(teamID string, requesterID int) (*domain.Team, error)
	ListByUser(userID int) ([]*domain.Team, error)
	AddMember(teamID string, requesterID, userID int) error
	RemoveMember(teamID string, requesterID, userID int) error
	ListMembers(teamID string, requesterID int) ([]*domain.TeamMember, error)
}

type Service struct {
	teamRepo repository.TeamRepository
}

func NewService(teamRepo repository.TeamRepository) Teamer {
	return &Service{
		teamRepo: teamRepo,
	}
}

func (s *Service) Create(req CreateTeamRequest) (*domain.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrMissingTeamName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	team := &domain.Team{
		ID:      id,
		Name:    name,
		OwnerID: req.OwnerID,
	}

	team, err = s.teamRepo.Create(team)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar time")
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return team, nil
}

func (s *Service) GetByID(teamID string, requesterID int) (*domain.Team, error) {
	team, err := s.fetchTeam(teamID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMember(teamID, requesterID); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *Service) ListByUser(userID int) ([]*domain.Team, error) {
	teams, err := s.teamRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return teams, nil
}

// AddMember exige que o solicitante seja o dono do time
func (s *Service) AddMember(teamID string, requesterID, userID int) error {
	team, err := s.fetchTeam(teamID)
	if err != nil {
		return err
	}

	if team.OwnerID != requesterID {
		return ErrNotTeamOwner
	}

	if err := s.teamRepo.AddMember(teamID, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return nil
}

func (s *Service) RemoveMember(teamID string, requesterID, userID int) error {
	team, err := s.fetchTeam(teamID)
	if err != nil {
		return err
	}

	// O próprio membro pode sair do time; qualquer outra remoção é do dono
	if team.OwnerID != requesterID && requesterID != userID {
		return ErrNotTeamOwner
	}

	if team.OwnerID == userID {
		return fmt.Errorf("%w: o dono não pode ser removido do time", ErrNotTeamOwner)
	}

	if err := s.teamRepo.RemoveMember(teamID, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return nil
}

func (s *Service) ListMembers(teamID string, requesterID int) ([]*domain.TeamMember, error) {
	if _, err := s.fetchTeam(teamID); err != nil {
		return nil, err
	}

	if err := s.requireMember(teamID, requesterID); err != nil {
		return nil, err
	}

	members, err := s.teamRepo.ListMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return members, nil
}

func (s *Service) fetchTeam(teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	return team, nil
}

func (s *Service) requireMember(teamID string, userID int) error {
	isMember, err := s.teamRepo.IsMember(teamID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	if !isMember {
		return ErrNotTeamMember
	}

	return nil
}
