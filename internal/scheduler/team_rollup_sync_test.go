package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/salespulse/salespulse-api/infrastructure/repository/mocks"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func dateOf(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func rollupService(dailyLogRepo *mocks.MockDailyLogRepository, rollupRepo *mocks.MockTeamRollupRepository) *TeamRollupSyncService {
	return &TeamRollupSyncService{
		config: TeamRollupSyncConfig{
			LookbackDays:      3,
			MaxConcurrentJobs: 1,
		},
		dailyLogRepo: dailyLogRepo,
		rollupRepo:   rollupRepo,
	}
}

func TestProcessTeamRollups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	team := &domain.Team{ID: "TEAM01", Name: "Comercial SP"}

	day1 := dateOf("2024-03-01")
	day2 := dateOf("2024-03-02")
	day3 := dateOf("2024-03-03")
	// Datas em ordem decrescente, como o agendador produz
	dates := []time.Time{day3, day2, day1}

	logs := []*domain.DailyLog{
		{
			UserID: 7, TeamID: "TEAM01", Date: day1,
			Counters:  map[domain.ActivityField]int64{domain.FieldColdCalls: 10},
			DealsWon:  1,
			DealValue: 50000,
		},
		{
			UserID: 9, TeamID: "TEAM01", Date: day1,
			Counters: map[domain.ActivityField]int64{domain.FieldColdCalls: 4, domain.FieldColdEmails: 2},
		},
		{
			UserID: 7, TeamID: "TEAM01", Date: day3,
			Counters: map[domain.ActivityField]int64{domain.FieldColdCalls: 6},
		},
	}

	dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
	rollupRepo := mocks.NewMockTeamRollupRepository(ctrl)

	dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", day1, day3).Return(logs, nil)

	saved := make(map[string]*domain.TeamActivityRollup)
	rollupRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(
		func(rollup *domain.TeamActivityRollup) error {
			saved[rollup.Date.Format(time.DateOnly)] = rollup
			return nil
		}).Times(2)

	service := rollupService(dailyLogRepo, rollupRepo)
	service.processTeamRollups(team, dates)

	// Dia sem registros (day2) não gera agregado
	assert.Len(t, saved, 2)

	rollup1 := saved["2024-03-01"]
	assert.Equal(t, "TEAM01", rollup1.TeamID)
	assert.Equal(t, int64(14), rollup1.Counters[domain.FieldColdCalls])
	assert.Equal(t, int64(2), rollup1.Counters[domain.FieldColdEmails])
	assert.Equal(t, int64(1), rollup1.DealsWon)
	assert.Equal(t, int64(50000), rollup1.DealValue)
	assert.Equal(t, 2, rollup1.MembersLogged)

	rollup3 := saved["2024-03-03"]
	assert.Equal(t, int64(6), rollup3.Counters[domain.FieldColdCalls])
	assert.Equal(t, 1, rollup3.MembersLogged)
}

func TestProcessTeamRollups_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	team := &domain.Team{ID: "TEAM01", Name: "Comercial SP"}
	day := dateOf("2024-03-01")

	dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
	rollupRepo := mocks.NewMockTeamRollupRepository(ctrl)

	// Erro na busca interrompe o time sem tocar os agregados
	dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", day, day).Return(nil, errors.New("timeout"))

	service := rollupService(dailyLogRepo, rollupRepo)
	service.processTeamRollups(team, []time.Time{day})
}

func TestProcessTeamRollups_SaveErrorContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	team := &domain.Team{ID: "TEAM01", Name: "Comercial SP"}

	day1 := dateOf("2024-03-01")
	day2 := dateOf("2024-03-02")
	dates := []time.Time{day2, day1}

	logs := []*domain.DailyLog{
		{UserID: 7, TeamID: "TEAM01", Date: day1, Counters: map[domain.ActivityField]int64{domain.FieldColdCalls: 10}},
		{UserID: 7, TeamID: "TEAM01", Date: day2, Counters: map[domain.ActivityField]int64{domain.FieldColdCalls: 5}},
	}

	dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
	rollupRepo := mocks.NewMockTeamRollupRepository(ctrl)

	dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", day1, day2).Return(logs, nil)

	// Falha em um dia não impede os demais
	first := rollupRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("deadlock"))
	rollupRepo.EXPECT().SaveOrUpdate(gomock.Any()).After(first).Return(nil)

	service := rollupService(dailyLogRepo, rollupRepo)
	service.processTeamRollups(team, dates)
}

func TestGetDatesToProcess(t *testing.T) {
	service := &TeamRollupSyncService{
		config: TeamRollupSyncConfig{LookbackDays: 7},
	}

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 7)
	assert.Equal(t, time.Now().Format(time.DateOnly), dates[0].Format(time.DateOnly))
	assert.Equal(t, time.Now().AddDate(0, 0, -6).Format(time.DateOnly), dates[6].Format(time.DateOnly))
}

func TestGetStatus(t *testing.T) {
	service := &TeamRollupSyncService{
		config: TeamRollupSyncConfig{
			SyncEnabled:       true,
			CronSchedule:      "0 2 * * *",
			LookbackDays:      7,
			MaxConcurrentJobs: 3,
			RetentionDays:     90,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
	assert.Equal(t, 90, status["retention_days"])
}
