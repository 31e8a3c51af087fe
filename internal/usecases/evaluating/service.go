package evaluating

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/salespulse/salespulse-api/infrastructure/repository"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/salespulse/salespulse-api/pkg/utils"
)

// MetricValue é o valor avaliado de uma definição para exibição
type MetricValue struct {
	MetricID    string             `json:"metric_id"`
	Name        string             `json:"name,omitempty"`
	DisplayType domain.DisplayType `json:"display_type"`
	DisplayMode domain.DisplayMode `json:"display_mode"`
	Value       float64            `json:"value"`
}

// DashboardValuesResponse é o retrato de valores de um dashboard na janela
type DashboardValuesResponse struct {
	DashboardID string                `json:"dashboard_id"`
	Filters     *domain.PeriodFilters `json:"filters"`
	Values      []MetricValue         `json:"values"`
}

// MetricSeriesResponse é a série diária de uma métrica para gráficos.
// NoData indica seleção vazia — o chamador renderiza o estado vazio.
type MetricSeriesResponse struct {
	DashboardID string                `json:"dashboard_id"`
	MetricID    string                `json:"metric_id"`
	Mode        SeriesMode            `json:"mode"`
	NoData      bool                  `json:"no_data"`
	Filters     *domain.PeriodFilters `json:"filters"`
	Series      *MetricSeries         `json:"series,omitempty"`
}

// Evaluator avalia as métricas de um dashboard sobre os registros diários
// do seu proprietário
type Evaluator interface {
	DashboardValues(dashboardID string, filters *domain.PeriodFilters) (*DashboardValuesResponse, error)
	MetricSeries(dashboardID, metricID string, mode SeriesMode, filters *domain.PeriodFilters) (*MetricSeriesResponse, error)
}

type Service struct {
	dashboardRepo repository.DashboardRepository
	dailyLogRepo  repository.DailyLogRepository
	teamRepo      repository.TeamRepository
}

func NewService(
	dashboardRepo repository.DashboardRepository,
	dailyLogRepo repository.DailyLogRepository,
	teamRepo repository.TeamRepository,
) Evaluator {
	return &Service{
		dashboardRepo: dashboardRepo,
		dailyLogRepo:  dailyLogRepo,
		teamRepo:      teamRepo,
	}
}

// DashboardValues avalia todas as definições da configuração do dashboard
// sobre a janela de datas informada
func (s *Service) DashboardValues(dashboardID string, filters *domain.PeriodFilters) (*DashboardValuesResponse, error) {
	dashboard, records, err := s.fetchWindow(dashboardID, filters)
	if err != nil {
		return nil, err
	}

	response := &DashboardValuesResponse{
		DashboardID: dashboardID,
		Filters:     filters,
		Values:      make([]MetricValue, 0, len(dashboard.Config.Metrics)),
	}

	for _, def := range dashboard.Config.Metrics {
		response.Values = append(response.Values, MetricValue{
			MetricID:    def.ID,
			Name:        def.Name,
			DisplayType: def.DisplayType,
			DisplayMode: def.DisplayMode,
			Value:       utils.RoundWithTwoDecimalPlace(Evaluate(def, records)),
		})
	}

	return response, nil
}

// MetricSeries calcula a série diária de uma métrica do dashboard
func (s *Service) MetricSeries(dashboardID, metricID string, mode SeriesMode, filters *domain.PeriodFilters) (*MetricSeriesResponse, error) {
	dashboard, records, err := s.fetchWindow(dashboardID, filters)
	if err != nil {
		return nil, err
	}

	var def *domain.MetricDefinition
	for _, candidate := range dashboard.Config.Metrics {
		if candidate.ID == metricID {
			def = candidate
			break
		}
	}

	if def == nil {
		return nil, fmt.Errorf("métrica não encontrada no dashboard: %s", metricID)
	}

	response := &MetricSeriesResponse{
		DashboardID: dashboardID,
		MetricID:    metricID,
		Mode:        mode,
		Filters:     filters,
	}

	series := EvaluateSeries(def, records, mode)
	if series == nil {
		response.NoData = true
		return response, nil
	}

	if mode == SeriesModeMembers && dashboard.TeamID != nil {
		s.labelMembers(series, *dashboard.TeamID)
	}

	response.Series = series

	return response, nil
}

// fetchWindow carrega o dashboard e os registros diários do seu
// proprietário (time ou usuário individual), já ordenados por data
func (s *Service) fetchWindow(dashboardID string, filters *domain.PeriodFilters) (*domain.Dashboard, []*domain.DailyLog, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	dashboard, err := s.dashboardRepo.GetByID(dashboardID)
	if err != nil {
		logrus.WithError(err).WithField("dashboard_id", dashboardID).Error("Erro ao buscar dashboard")
		return nil, nil, err
	}

	if dashboard == nil {
		return nil, nil, fmt.Errorf("dashboard não encontrado: %s", dashboardID)
	}

	var records []*domain.DailyLog
	if dashboard.TeamID != nil {
		records, err = s.dailyLogRepo.GetByTeamAndDateRange(*dashboard.TeamID, *filters.StartDate, *filters.EndDate)
	} else {
		records, err = s.dailyLogRepo.GetByUserAndDateRange(*dashboard.UserID, *filters.StartDate, *filters.EndDate)
	}
	if err != nil {
		logrus.WithError(err).WithField("dashboard_id", dashboardID).Error("Erro ao buscar registros diários")
		return nil, nil, err
	}

	return dashboard, records, nil
}

// labelMembers troca os rótulos numéricos das linhas pelos nomes dos
// membros do time. Falha aqui não invalida a série, só mantém os IDs.
func (s *Service) labelMembers(series *MetricSeries, teamID string) {
	members, err := s.teamRepo.ListMembers(teamID)
	if err != nil {
		logrus.WithError(err).WithField("team_id", teamID).Warn("Erro ao buscar membros para rotular a série")
		return
	}

	names := make(map[string]string, len(members))
	for _, member := range members {
		names[strconv.Itoa(member.UserID)] = member.Name
	}

	for i := range series.Lines {
		if name, exists := names[series.Lines[i].Label]; exists {
			series.Lines[i].Label = name
		}
	}
}
