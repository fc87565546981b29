// Package scheduler contém os serviços de agendamento para gravação de métricas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/mockdata"
	"github.com/vfg2006/growth-metrics-api/internal/config"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/collecting"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/storing"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
	"github.com/vfg2006/growth-metrics-api/pkg/utils"
)

const runIDPrefix = "snap_"

type MetricsSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MetricsSnapshotSyncService grava periodicamente o payload agregado no
// warehouse, sem chamar o LLM
type MetricsSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	collector           collecting.Collector
	store               storing.MetricsStorer
	credentials         mockdata.ShopifyCredentials
	config              MetricsSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastResult          *domain.PersistResult
}

func NewMetricsSnapshotSyncService(
	collector collecting.Collector,
	store storing.MetricsStorer,
	cfg *config.Config,
) *MetricsSnapshotSyncService {
	syncConfig := MetricsSnapshotSyncConfig{
		CronSchedule: cfg.MetricsSnapshotSync.CronSchedule,
		SyncEnabled:  cfg.MetricsSnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot de métricas carregada")

	return &MetricsSnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		collector: collector,
		store:     store,
		credentials: mockdata.ShopifyCredentials{
			APIKey:   cfg.Shopify.APIKey,
			Password: cfg.Shopify.Password,
			Shop:     cfg.Shopify.Shop,
		},
		config: syncConfig,
	}
}

func (s *MetricsSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshot de métricas desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot monta o payload agregado e grava no warehouse. Retorna false
// se outra execução já estiver em andamento.
func (s *MetricsSnapshotSyncService) RunSnapshot() (domain.PersistResult, bool) {
	if !s.begin() {
		logrus.Warn("Snapshot de métricas já está em execução")
		return domain.PersistResult{}, false
	}

	runID := utils.GenerateRunID(runIDPrefix)
	logger := log.L.WithField("run_id", runID)
	logger.Info("Iniciando snapshot de métricas")

	payload := s.collector.Aggregate(s.credentials)
	result := s.store.Persist(context.Background(), payload)

	if result.Stored {
		logger.Info("Snapshot de métricas gravado com sucesso")
	} else {
		logger.WithField("error", result.Reason).Error("Snapshot de métricas não foi gravado")
	}

	s.finish(runID, result)
	return result, true
}

func (s *MetricsSnapshotSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *MetricsSnapshotSyncService) finish(runID string, result domain.PersistResult) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRunID = runID
	s.lastResult = &result
}

// TriggerManualSync dispara um snapshot em background. Retorna false se já
// houver um em andamento.
func (s *MetricsSnapshotSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Snapshot de métricas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando snapshot manual de métricas")
	go s.RunSnapshot()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *MetricsSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
	}

	if s.lastResult != nil {
		status["last_stored"] = s.lastResult.Stored
		if s.lastResult.Reason != "" {
			status["last_error"] = s.lastResult.Reason
		}
	}

	return status
}
