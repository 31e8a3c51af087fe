package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/salespulse/salespulse-api/infrastructure/repository"
	"github.com/salespulse/salespulse-api/internal/config"
	"github.com/salespulse/salespulse-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// TeamRollupSyncConfig representa a configuração do agendador de agregados de times
type TeamRollupSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	RetentionDays     int
	SyncEnabled       bool
}

// TeamRollupSyncService gerencia o agendamento e execução da agregação diária
// de atividades por time
type TeamRollupSyncService struct {
	scheduler           *gocron.Scheduler
	config              TeamRollupSyncConfig
	teamRepo            repository.TeamRepository
	dailyLogRepo        repository.DailyLogRepository
	rollupRepo          repository.TeamRollupRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewTeamRollupSyncService cria uma nova instância do serviço de agregação de times
func NewTeamRollupSyncService(
	teamRepo repository.TeamRepository,
	dailyLogRepo repository.DailyLogRepository,
	rollupRepo repository.TeamRollupRepository,
	appConfig *config.Config,
) *TeamRollupSyncService {
	rollupConfig := TeamRollupSyncConfig{
		CronSchedule:      appConfig.TeamRollupSync.CronSchedule,
		LookbackDays:      appConfig.TeamRollupSync.LookbackDays,
		MaxConcurrentJobs: appConfig.TeamRollupSync.MaxConcurrentJobs,
		RetentionDays:     appConfig.TeamRollupSync.RetentionDays,
		SyncEnabled:       appConfig.TeamRollupSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       rollupConfig.CronSchedule,
		"lookback_days":       rollupConfig.LookbackDays,
		"max_concurrent_jobs": rollupConfig.MaxConcurrentJobs,
		"retention_days":      rollupConfig.RetentionDays,
		"sync_enabled":        rollupConfig.SyncEnabled,
	}).Info("Configuração do agendador de agregados de times carregada")

	return &TeamRollupSyncService{
		scheduler:    scheduler,
		config:       rollupConfig,
		teamRepo:     teamRepo,
		dailyLogRepo: dailyLogRepo,
		rollupRepo:   rollupRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *TeamRollupSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Agregação de atividades por time desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de agregados de times")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllTeamRollups()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar agregação de atividades por time: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de agregados de times")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllTeamRollups recalcula os agregados diários de todos os times
func (s *TeamRollupSyncService) syncAllTeamRollups() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação de atividades já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando agregação de atividades para todos os times")

	teams, err := s.teamRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de times para agregação")
		return
	}

	if len(teams) == 0 {
		logrus.Info("Nenhum time encontrado para agregação")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para agregação de atividades por time")

	s.processRollupsForDates(teams, dates)

	if s.config.RetentionDays > 0 {
		removed, err := s.rollupRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao aplicar retenção de agregados")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Agregados antigos removidos")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"teams":    len(teams),
		"days":     s.config.LookbackDays,
	}).Info("Agregação de atividades por time concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *TeamRollupSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i) // Começar de hoje e ir para trás
	}
	return dates
}

// processRollupsForDates processa os agregados de cada time para todas as datas
func (s *TeamRollupSyncService) processRollupsForDates(teams []*domain.Team, dates []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, team := range teams {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(t *domain.Team) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.processTeamRollups(t, dates)
		}(team)
	}

	wg.Wait()
}

// processTeamRollups recalcula os agregados de um time para o período informado
func (s *TeamRollupSyncService) processTeamRollups(team *domain.Team, dates []time.Time) {
	startDate := dates[len(dates)-1]
	endDate := dates[0]

	logs, err := s.dailyLogRepo.GetByTeamAndDateRange(team.ID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"team_id": team.ID,
			"error":   err.Error(),
		}).Error("Erro ao buscar atividades do time para agregação")
		return
	}

	// Agrupar por dia antes de consolidar
	logsByDay := make(map[string][]*domain.DailyLog)
	for _, log := range logs {
		key := log.Date.Format(time.DateOnly)
		logsByDay[key] = append(logsByDay[key], log)
	}

	for _, date := range dates {
		dayLogs := logsByDay[date.Format(time.DateOnly)]
		if len(dayLogs) == 0 {
			continue
		}

		rollup := domain.RollupFromLogs(team.ID, date, dayLogs)
		if err := s.rollupRepo.SaveOrUpdate(rollup); err != nil {
			logrus.WithFields(logrus.Fields{
				"team_id": team.ID,
				"date":    date.Format(time.DateOnly),
				"error":   err.Error(),
			}).Error("Erro ao salvar agregado do time")
			continue
		}
	}

	logrus.WithFields(logrus.Fields{
		"team_id":   team.ID,
		"team_name": team.Name,
		"days":      len(dates),
		"logs":      len(logs),
	}).Info("Agregados do time atualizados")
}

// TriggerManualSync inicia manualmente uma agregação de atividades
func (s *TeamRollupSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação de atividades já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando agregação manual de atividades por time")
	go s.syncAllTeamRollups()
}

// GetStatus retorna o status atual do agendador
func (s *TeamRollupSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
