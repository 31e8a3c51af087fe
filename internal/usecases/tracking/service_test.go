package tracking

import (
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

func TestUpsertDailyLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logDate := dateOf("2024-03-01")

	tests := []struct {
		name     string
		setup    func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository)
		request  *UpsertLogRequest
		validate func(t *testing.T, log *domain.DailyLog, err error)
	}{
		{
			name: "Primeira escrita cria o registro",
			setup: func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository) {
				teamRepo.EXPECT().IsMember("TEAM01", 7).Return(true, nil)
				dailyLogRepo.EXPECT().GetByKey(7, "TEAM01", logDate).Return(nil, nil)
				dailyLogRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			request: &UpsertLogRequest{
				TeamID: "TEAM01",
				UserID: 7,
				Date:   logDate,
				Fields: map[domain.ActivityField]int64{domain.FieldColdCalls: 10},
			},
			validate: func(t *testing.T, log *domain.DailyLog, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, log.ID)
				assert.Equal(t, int64(10), log.FieldValue(domain.FieldColdCalls))
			},
		},
		{
			name: "Escrita seguinte atualiza apenas os campos informados",
			setup: func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository) {
				teamRepo.EXPECT().IsMember("TEAM01", 7).Return(true, nil)
				dailyLogRepo.EXPECT().GetByKey(7, "TEAM01", logDate).Return(&domain.DailyLog{
					ID:     "abc123",
					UserID: 7,
					TeamID: "TEAM01",
					Date:   logDate,
					Counters: map[domain.ActivityField]int64{
						domain.FieldColdCalls:  10,
						domain.FieldColdEmails: 5,
					},
				}, nil)
				dailyLogRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			request: &UpsertLogRequest{
				TeamID: "TEAM01",
				UserID: 7,
				Date:   logDate,
				Fields: map[domain.ActivityField]int64{domain.FieldColdCalls: 20},
			},
			validate: func(t *testing.T, log *domain.DailyLog, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "abc123", log.ID)
				assert.Equal(t, int64(20), log.FieldValue(domain.FieldColdCalls))
				// cold_emails não foi informado e permanece
				assert.Equal(t, int64(5), log.FieldValue(domain.FieldColdEmails))
			},
		},
		{
			name: "Negócios sem valor são zerados na escrita",
			setup: func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository) {
				teamRepo.EXPECT().IsMember("TEAM01", 7).Return(true, nil)
				dailyLogRepo.EXPECT().GetByKey(7, "TEAM01", logDate).Return(nil, nil)
				dailyLogRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			request: &UpsertLogRequest{
				TeamID: "TEAM01",
				UserID: 7,
				Date:   logDate,
				Fields: map[domain.ActivityField]int64{domain.FieldDealsWon: 3},
			},
			validate: func(t *testing.T, log *domain.DailyLog, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), log.DealsWon)
				assert.Equal(t, int64(0), log.DealValue)
			},
		},
		{
			name: "Quem não é membro do time não escreve",
			setup: func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository) {
				teamRepo.EXPECT().IsMember("TEAM01", 7).Return(false, nil)
			},
			request: &UpsertLogRequest{
				TeamID: "TEAM01",
				UserID: 7,
				Date:   logDate,
				Fields: map[domain.ActivityField]int64{domain.FieldColdCalls: 10},
			},
			validate: func(t *testing.T, log *domain.DailyLog, err error) {
				assert.ErrorIs(t, err, ErrNotTeamMember)
				assert.Nil(t, log)
			},
		},
		{
			name:  "Campo desconhecido é rejeitado antes de tocar o banco",
			setup: func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository) {},
			request: &UpsertLogRequest{
				TeamID: "TEAM01",
				UserID: 7,
				Date:   logDate,
				Fields: map[domain.ActivityField]int64{domain.ActivityField("inventado"): 1},
			},
			validate: func(t *testing.T, log *domain.DailyLog, err error) {
				assert.ErrorIs(t, err, ErrInvalidLog)
			},
		},
		{
			name:  "Valor negativo é rejeitado",
			setup: func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository) {},
			request: &UpsertLogRequest{
				TeamID: "TEAM01",
				UserID: 7,
				Date:   logDate,
				Fields: map[domain.ActivityField]int64{domain.FieldColdCalls: -1},
			},
			validate: func(t *testing.T, log *domain.DailyLog, err error) {
				assert.ErrorIs(t, err, ErrInvalidLog)
			},
		},
		{
			name:  "Data obrigatória",
			setup: func(dailyLogRepo *mocks.MockDailyLogRepository, teamRepo *mocks.MockTeamRepository) {},
			request: &UpsertLogRequest{
				TeamID: "TEAM01",
				UserID: 7,
				Fields: map[domain.ActivityField]int64{domain.FieldColdCalls: 10},
			},
			validate: func(t *testing.T, log *domain.DailyLog, err error) {
				assert.ErrorIs(t, err, ErrMissingDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
			teamRepo := mocks.NewMockTeamRepository(ctrl)
			tt.setup(dailyLogRepo, teamRepo)

			service := NewService(dailyLogRepo, teamRepo)

			log, err := service.UpsertDailyLog(tt.request)
			tt.validate(t, log, err)
		})
	}
}

func TestListTeamLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := dateOf("2024-03-01")
	endDate := dateOf("2024-03-07")
	filters := &domain.PeriodFilters{StartDate: &startDate, EndDate: &endDate}

	t.Run("Lista registros do time inteiro", func(t *testing.T) {
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		teamRepo.EXPECT().IsMember("TEAM01", 7).Return(true, nil)
		dailyLogRepo.EXPECT().GetByTeamAndDateRange("TEAM01", startDate, endDate).Return([]*domain.DailyLog{
			{ID: "l1", UserID: 7, TeamID: "TEAM01", Date: startDate},
		}, nil)

		service := NewService(dailyLogRepo, teamRepo)

		logs, err := service.ListTeamLogs("TEAM01", 7, nil, filters)
		assert.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("Filtra por um único membro", func(t *testing.T) {
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		memberID := 9
		teamRepo.EXPECT().IsMember("TEAM01", 7).Return(true, nil)
		dailyLogRepo.EXPECT().GetByTeamUserAndDateRange("TEAM01", 9, startDate, endDate).Return([]*domain.DailyLog{}, nil)

		service := NewService(dailyLogRepo, teamRepo)

		logs, err := service.ListTeamLogs("TEAM01", 7, &memberID, filters)
		assert.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("Quem não é membro não lê", func(t *testing.T) {
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		teamRepo.EXPECT().IsMember("TEAM01", 7).Return(false, nil)

		service := NewService(dailyLogRepo, teamRepo)

		_, err := service.ListTeamLogs("TEAM01", 7, nil, filters)
		assert.ErrorIs(t, err, ErrNotTeamMember)
	})

	t.Run("Janela sem as duas datas é rejeitada", func(t *testing.T) {
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		service := NewService(dailyLogRepo, teamRepo)

		_, err := service.ListTeamLogs("TEAM01", 7, nil, &domain.PeriodFilters{StartDate: &startDate})
		assert.Error(t, err)
	})

	t.Run("Início depois do fim é rejeitado", func(t *testing.T) {
		dailyLogRepo := mocks.NewMockDailyLogRepository(ctrl)
		teamRepo := mocks.NewMockTeamRepository(ctrl)

		service := NewService(dailyLogRepo, teamRepo)

		_, err := service.ListTeamLogs("TEAM01", 7, nil, &domain.PeriodFilters{StartDate: &endDate, EndDate: &startDate})
		assert.Error(t, err)
	})
}
