package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/api"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/demo"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding"
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

	// Sem arquivo habilitado nenhuma conexão com o banco é aberta
	var snapshotRepo repository.SnapshotRepository
	if cfg.Archive.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo = repository.NewSnapshotRepository(pgConn)
	} else {
		logrus.Info("Arquivo de snapshots desabilitado por configuração")
	}

	loader := demo.NewLoader(cfg.Demo.Seed)
	dashboardService := dashboarding.NewService(cfg, loader, snapshotRepo, demo.DefaultWaterfall())

	result, err := dashboardService.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}
	logrus.WithFields(logrus.Fields{
		"dataset_id": result.DatasetID,
		"seed":       result.Seed,
	}).Info("Dataset inicial carregado")

	var authenticator authenticating.Authenticator
	if cfg.Auth.Enabled {
		authenticator = authenticating.NewService(cfg)
	}

	dataRefreshService := scheduler.NewDataRefreshService(dashboardService, cfg)

	if err := dataRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	} else {
		logrus.Info("Agendador de atualização do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, authenticator, dataRefreshService)
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
