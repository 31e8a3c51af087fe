package tracking

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/salespulse/salespulse-api/infrastructure/repository"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/pkg/utils"
)

// UpsertLogRequest é a escrita de atividades de um usuário em uma data.
// Apenas os campos presentes em Fields são alterados; os demais mantêm o
// valor anterior (merge-on-write).
type UpsertLogRequest struct {
	TeamID string                         `json:"team_id"`
	UserID int                            `json:"user_id"`
	Date   time.Time                      `json:"date"`
	Fields map[domain.ActivityField]int64 `json:"fields"`
}

// Tracker é a fronteira de escrita e leitura dos registros diários
type Tracker interface {
	UpsertDailyLog(req *UpsertLogRequest) (*domain.DailyLog, error)
	ListTeamLogs(teamID string, requesterID int, userID *int, filters *domain.PeriodFilters) ([]*domain.DailyLog, error)
}

type Service struct {
	dailyLogRepo repository.DailyLogRepository
	teamRepo     repository.TeamRepository
}

func NewService(dailyLogRepo repository.DailyLogRepository, teamRepo repository.TeamRepository) Tracker {
	return &Service{
		dailyLogRepo: dailyLogRepo,
		teamRepo:     teamRepo,
	}
}

// UpsertDailyLog cria o registro na primeira escrita da chave (user, team,
// date) e depois atualiza no lugar. A regra deals_won/deal_value é aplicada
// aqui, uma única vez, antes de persistir.
func (s *Service) UpsertDailyLog(req *UpsertLogRequest) (*domain.DailyLog, error) {
	if req.Date.IsZero() {
		return nil, ErrMissingDate
	}

	for field, value := range req.Fields {
		if !domain.IsValidActivityField(field) {
			return nil, fmt.Errorf("%w: campo desconhecido %s", ErrInvalidLog, field)
		}
		if value < 0 {
			return nil, fmt.Errorf("%w: valor negativo para %s", ErrInvalidLog, field)
		}
	}

	isMember, err := s.teamRepo.IsMember(req.TeamID, req.UserID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar membro do time")
		return nil, ErrDatabaseOperation
	}
	if !isMember {
		return nil, ErrNotTeamMember
	}

	log, err := s.dailyLogRepo.GetByKey(req.UserID, req.TeamID, req.Date)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar registro diário existente")
		return nil, ErrDatabaseOperation
	}

	if log == nil {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		log = &domain.DailyLog{
			ID:       id,
			UserID:   req.UserID,
			TeamID:   req.TeamID,
			Date:     req.Date,
			Counters: make(map[domain.ActivityField]int64),
		}
	}

	log.Merge(req.Fields)
	log.NormalizeDeals()

	if err := log.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLog, err)
	}

	if err := s.dailyLogRepo.SaveOrUpdate(log); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"team_id": req.TeamID,
			"user_id": req.UserID,
			"date":    req.Date.Format(time.DateOnly),
		}).Error("Erro ao gravar registro diário")
		return nil, ErrDatabaseOperation
	}

	return log, nil
}

// ListTeamLogs lista os registros do time na janela, opcionalmente de um
// único membro. Visível apenas para membros do time.
func (s *Service) ListTeamLogs(teamID string, requesterID int, userID *int, filters *domain.PeriodFilters) ([]*domain.DailyLog, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	isMember, err := s.teamRepo.IsMember(teamID, requesterID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao verificar membro do time")
		return nil, ErrDatabaseOperation
	}
	if !isMember {
		return nil, ErrNotTeamMember
	}

	if userID != nil {
		return s.dailyLogRepo.GetByTeamUserAndDateRange(teamID, *userID, *filters.StartDate, *filters.EndDate)
	}

	return s.dailyLogRepo.GetByTeamAndDateRange(teamID, *filters.StartDate, *filters.EndDate)
}
