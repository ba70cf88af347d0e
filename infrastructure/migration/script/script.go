package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/demo"
)

const defaultSeedSnapshots = 3

var schema = []string{
	`CREATE TABLE IF NOT EXISTS dashboard_snapshots (
		id            VARCHAR(32) PRIMARY KEY,
		seed          BIGINT NOT NULL,
		generated_at  TIMESTAMPTZ NOT NULL,
		channels      TEXT[] NOT NULL DEFAULT '{}',
		total_revenue DOUBLE PRECISION NOT NULL,
		total_cost    DOUBLE PRECISION NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_metric_records (
		id          BIGSERIAL PRIMARY KEY,
		snapshot_id VARCHAR(32) NOT NULL REFERENCES dashboard_snapshots(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		kind        VARCHAR(16) NOT NULL,
		channel     TEXT,
		revenue     DOUBLE PRECISION NOT NULL,
		cost        DOUBLE PRECISION NOT NULL,
		conversions INTEGER NOT NULL,
		clicks      INTEGER NOT NULL,
		impressions INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS snapshot_metric_records_snapshot_id_idx ON snapshot_metric_records (snapshot_id)`,
	`CREATE INDEX IF NOT EXISTS dashboard_snapshots_generated_at_idx ON dashboard_snapshots (generated_at DESC)`,
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func createSchema(ctx context.Context, conn *postgres.Connection) {
	startTime := time.Now()

	for i, statement := range schema {
		if _, err := conn.Exec(ctx, statement); err != nil {
			logrus.WithError(err).Fatalf("ERRO ao executar statement [%d/%d]", i+1, len(schema))
		}
	}

	logrus.Infof("Schema criado em %v", time.Since(startTime))
}

// seedSnapshots arquiva datasets gerados com sementes consecutivas a partir de DEMO_SEED
func seedSnapshots(ctx context.Context, conn *postgres.Connection, seed uint64, count int) {
	repo := repository.NewSnapshotRepository(conn)
	loader := demo.NewLoader(seed)

	successCount := 0
	errorCount := 0

	for i := range count {
		dataset, err := loader.Load(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("ERRO ao gerar dataset")
		}

		if err := repo.Save(ctx, dataset.Snapshot()); err != nil {
			logrus.WithError(err).Errorf("ERRO ao inserir snapshot [%d/%d] %s", i+1, count, dataset.ID)
			errorCount++
			continue
		}
		successCount++
	}

	logrus.Infof("Inserção de snapshots concluída. Sucesso: %d, Erros: %d", successCount, errorCount)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	count := defaultSeedSnapshots
	if raw := os.Getenv("SEED_SNAPSHOTS"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 0 {
			logrus.Fatalf("SEED_SNAPSHOTS inválido: %s", raw)
		}
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	createSchema(ctx, conn)
	seedSnapshots(ctx, conn, cfg.Demo.Seed, count)

	logrus.Info("Migração concluída")
}
