package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/salespulse/salespulse-api/infrastructure/database/postgres"
	"github.com/salespulse/salespulse-api/infrastructure/repository"
	"github.com/salespulse/salespulse-api/internal/api"
	"github.com/salespulse/salespulse-api/internal/config"
	"github.com/salespulse/salespulse-api/internal/scheduler"
	"github.com/salespulse/salespulse-api/internal/usecases/authenticating"
	"github.com/salespulse/salespulse-api/internal/usecases/dashboarding"
	"github.com/salespulse/salespulse-api/internal/usecases/evaluating"
	"github.com/salespulse/salespulse-api/internal/usecases/teaming"
	"github.com/salespulse/salespulse-api/internal/usecases/templating"
	"github.com/salespulse/salespulse-api/internal/usecases/tracking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	teamRepo := repository.NewTeamRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	dailyLogRepo := repository.NewDailyLogRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)
	templateRepo := repository.NewTemplateRepository(pgConn)
	rollupRepo := repository.NewTeamRollupRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	teamService := teaming.NewService(teamRepo)
	trackingService := tracking.NewService(dailyLogRepo, teamRepo)
	dashboardService := dashboarding.NewService(dashboardRepo, teamRepo)
	evaluatorService := evaluating.NewService(dashboardRepo, dailyLogRepo, teamRepo)
	templateService := templating.NewService(templateRepo, dashboardRepo)

	// Inicializa o agendador de agregados diários por time
	rollupSyncService := scheduler.NewTeamRollupSyncService(
		teamRepo,
		dailyLogRepo,
		rollupRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := rollupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de agregados de times")
	} else {
		logrus.Info("Agendador de agregados de times iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		teamService,
		trackingService,
		dashboardService,
		evaluatorService,
		templateService,
		rollupSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
