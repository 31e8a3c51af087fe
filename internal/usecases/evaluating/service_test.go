package evaluating

import (
	"testing"

	"github.com/salespulse/salespulse-api/infrastructure/repository/mocks"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func windowFilters(start, end string) *domain.PeriodFilters {
	s := day(start)
	e := day(end)
	return &domain.PeriodFilters{StartDate: &s, EndDate: &e}
}

func evaluableDashboard(teamID string) *domain.Dashboard {
	return &domain.Dashboard{
		ID:     "dsh-1",
		Title:  "Painel do time",
		TeamID: &teamID,
		Config: &domain.DashboardConfig{
			Metrics: []*domain.MetricDefinition{
				{
					ID:          "m1",
					Name:        "Ligações",
					Type:        domain.MetricTypeTotal,
					Metrics:     []domain.ActivityField{domain.FieldColdCalls},
					DisplayType: domain.DisplayTypeNumber,
					Aggregation: domain.AggregationSum,
					DisplayMode: domain.DisplayModeNumber,
					RowID:       domain.DefaultRowID,
				},
				{
					ID:          "m2",
					Name:        "Conversão de agendamentos",
					Type:        domain.MetricTypeConversion,
					Metrics:     []domain.ActivityField{domain.FieldBookedCalls, domain.FieldColdCalls},
					DisplayType: domain.DisplayTypePercent,
					DisplayMode: domain.DisplayModeNumber,
					RowID:       domain.DefaultRowID,
				},
			},
			Layout: []*domain.LayoutRow{
				{ID: domain.DefaultRowID, Metrics: []string{"m1", "m2"}, Order: 0},
			},
		},
	}
}

func TestDashboardValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
	teamRepo := mocks.NewMockTeamRepository(ctrl)

	filters := windowFilters("2024-03-01", "2024-03-03")

	dashboardRepo.EXPECT().GetByID("dsh-1").Return(evaluableDashboard("TEAM01"), nil)
	dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", *filters.StartDate, *filters.EndDate).Return([]*domain.DailyLog{
		logFor(7, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10, domain.FieldBookedCalls: 3}),
		logFor(9, "2024-03-02", map[domain.ActivityField]int64{domain.FieldColdCalls: 6, domain.FieldBookedCalls: 1}),
	}, nil)

	service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

	response, err := service.DashboardValues("dsh-1", filters)
	assert.NoError(t, err)
	assert.Equal(t, "dsh-1", response.DashboardID)
	assert.Len(t, response.Values, 2)

	assert.Equal(t, "m1", response.Values[0].MetricID)
	assert.Equal(t, float64(16), response.Values[0].Value)

	assert.Equal(t, "m2", response.Values[1].MetricID)
	assert.Equal(t, 0.25, response.Values[1].Value)
}

func TestDashboardValues_UserDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
	teamRepo := mocks.NewMockTeamRepository(ctrl)

	userID := 7
	dashboard := evaluableDashboard("TEAM01")
	dashboard.TeamID = nil
	dashboard.UserID = &userID

	filters := windowFilters("2024-03-01", "2024-03-03")

	dashboardRepo.EXPECT().GetByID("dsh-1").Return(dashboard, nil)
	// Painel individual agrega os registros do usuário em todos os times
	dailyLogRepo.EXPECT().GetByUserAndDateRange(7, *filters.StartDate, *filters.EndDate).Return([]*domain.DailyLog{
		logFor(7, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 4}),
	}, nil)

	service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

	response, err := service.DashboardValues("dsh-1", filters)
	assert.NoError(t, err)
	assert.Equal(t, float64(4), response.Values[0].Value)
}

func TestDashboardValues_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
	teamRepo := mocks.NewMockTeamRepository(ctrl)

	service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

	start := day("2024-03-01")
	_, err := service.DashboardValues("dsh-1", &domain.PeriodFilters{StartDate: &start})
	assert.Error(t, err)

	_, err = service.DashboardValues("dsh-1", windowFilters("2024-03-10", "2024-03-01"))
	assert.Error(t, err)
}

func TestMetricSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filters := windowFilters("2024-03-01", "2024-03-02")

	t.Run("Série por membro com rótulos de nomes", func(t *testing.T) {
		dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		dashboardRepo.EXPECT().GetByID("dsh-1").Return(evaluableDashboard("TEAM01"), nil)
		dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", gomock.Any(), gomock.Any()).Return([]*domain.DailyLog{
			logFor(7, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10}),
			logFor(9, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 4}),
		}, nil)
		teamRepo.EXPECT().ListMembers("TEAM01").Return([]*domain.TeamMember{
			{TeamID: "TEAM01", UserID: 7, Name: "Ana"},
			{TeamID: "TEAM01", UserID: 9, Name: "Bruno"},
		}, nil)

		service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

		response, err := service.MetricSeries("dsh-1", "m1", SeriesModeMembers, filters)
		assert.NoError(t, err)
		assert.False(t, response.NoData)
		assert.Len(t, response.Series.Lines, 2)
		assert.Equal(t, "Ana", response.Series.Lines[0].Label)
		assert.Equal(t, "Bruno", response.Series.Lines[1].Label)
	})

	t.Run("Falha ao buscar membros mantém os rótulos numéricos", func(t *testing.T) {
		dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		dashboardRepo.EXPECT().GetByID("dsh-1").Return(evaluableDashboard("TEAM01"), nil)
		dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", gomock.Any(), gomock.Any()).Return([]*domain.DailyLog{
			logFor(7, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 10}),
		}, nil)
		teamRepo.EXPECT().ListMembers("TEAM01").Return(nil, assert.AnError)

		service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

		response, err := service.MetricSeries("dsh-1", "m1", SeriesModeMembers, filters)
		assert.NoError(t, err)
		assert.Equal(t, "7", response.Series.Lines[0].Label)
	})

	t.Run("Métrica inexistente no dashboard", func(t *testing.T) {
		dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		dashboardRepo.EXPECT().GetByID("dsh-1").Return(evaluableDashboard("TEAM01"), nil)
		dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", gomock.Any(), gomock.Any()).Return(nil, nil)

		service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

		_, err := service.MetricSeries("dsh-1", "mx", SeriesModeTotal, filters)
		assert.Error(t, err)
	})

	t.Run("Seleção vazia sinaliza NoData", func(t *testing.T) {
		dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		dashboard := evaluableDashboard("TEAM01")
		dashboard.Config.Metrics[0].Metrics = []domain.ActivityField{}

		dashboardRepo.EXPECT().GetByID("dsh-1").Return(dashboard, nil)
		dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", gomock.Any(), gomock.Any()).Return(nil, nil)

		service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

		response, err := service.MetricSeries("dsh-1", "m1", SeriesModeTotal, filters)
		assert.NoError(t, err)
		assert.True(t, response.NoData)
		assert.Nil(t, response.Series)
	})
}

func TestMetricSeries_ValueRounding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
	teamRepo := mocks.NewMockTeamRepository(ctrl)

	filters := windowFilters("2024-03-01", "2024-03-03")

	dashboardRepo.EXPECT().GetByID("dsh-1").Return(evaluableDashboard("TEAM01"), nil)
	dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", gomock.Any(), gomock.Any()).Return([]*domain.DailyLog{
		logFor(7, "2024-03-01", map[domain.ActivityField]int64{domain.FieldColdCalls: 3, domain.FieldBookedCalls: 1}),
	}, nil)

	service := NewService(dashboardRepo, dailyLogRepo, teamRepo)

	response, err := service.DashboardValues("dsh-1", filters)
	assert.NoError(t, err)
	// 1/3 arredondado a duas casas
	assert.Equal(t, 0.33, response.Values[1].Value)
}
