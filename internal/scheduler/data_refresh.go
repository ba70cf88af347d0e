package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Refresher é a parte do caso de uso do dashboard usada pelo agendador
type Refresher interface {
	Refresh(ctx context.Context) (*domain.RefreshResult, error)
}

// DataRefreshConfig representa a configuração do agendador de atualização do dataset
type DataRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DataRefreshService regera o dataset do dashboard periodicamente
type DataRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DataRefreshConfig
	refresher           Refresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.RefreshResult
	lastError           string
}

func NewDataRefreshService(refresher Refresher, appConfig *config.Config) *DataRefreshService {
	refreshConfig := DataRefreshConfig{
		CronSchedule: appConfig.DataRefresh.CronSchedule,
		SyncEnabled:  appConfig.DataRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização do dataset carregada")

	return &DataRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *DataRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// tryAcquire marca a execução como iniciada; false quando já existe uma em andamento
func (s *DataRefreshService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id da execução")
	}
	s.lastRunID = runID
	return true
}

func (s *DataRefreshService) refresh(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.Info("Atualização do dataset já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

// run executa a atualização; o chamador já adquiriu a execução
func (s *DataRefreshService) run(ctx context.Context) {
	startTime := time.Now()

	result, err := s.refresher.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).WithField("run_id", s.lastRunID).Error("Erro ao atualizar o dataset do dashboard")
		return
	}

	s.lastError = ""
	s.lastResult = result

	logrus.WithFields(logrus.Fields{
		"run_id":     s.lastRunID,
		"duration":   time.Since(startTime).String(),
		"dataset_id": result.DatasetID,
		"seed":       result.Seed,
		"archived":   result.Archived,
	}).Info("Atualização do dataset concluída")
}

// TriggerManualSync inicia manualmente uma atualização; false quando já existe uma em andamento
func (s *DataRefreshService) TriggerManualSync() bool {
	if !s.tryAcquire() {
		logrus.Info("Atualização do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização manual do dataset")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual da atualização
func (s *DataRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}
