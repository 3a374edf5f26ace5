package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/config"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/usecases/syncing"
)

// MetaSyncConfig representa a configuração do agendador de sincronização do Meta
type MetaSyncConfig struct {
	CronSchedule string
	DaysToSync   int
	SyncEnabled  bool
}

// MetaSyncService gerencia o agendamento e execução da sincronização do Meta
type MetaSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetaSyncConfig
	syncService         syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastResult          *domain.SyncResult
	lastError           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetaSyncService cria uma nova instância do serviço de sincronização agendada
func NewMetaSyncService(syncService syncing.Syncer, appConfig *config.Config) *MetaSyncService {
	syncConfig := MetaSyncConfig{
		CronSchedule: appConfig.Sync.CronSchedule,
		DaysToSync:   appConfig.Sync.DaysToSync,
		SyncEnabled:  appConfig.Sync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"days_to_sync":  syncConfig.DaysToSync,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do Meta carregada")

	return &MetaSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MetaSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada do Meta desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do Meta")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do Meta: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Meta")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa uma sincronização completa garantindo no máximo uma execução
// por vez. Uma execução agendada que encontra outra em andamento é ignorada.
func (s *MetaSyncService) runSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Meta já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	result, err := s.syncService.RunSync(s.config.DaysToSync)

	// GetStatus lê estes campos sob o mesmo mutex; a escrita fora dele
	// seria uma corrida com as consultas de status durante a execução.
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Sincronização agendada do Meta falhou")
		s.lastError = err.Error()
		s.lastSyncCompletedAt = time.Now()
		return
	}

	s.lastResult = result
	s.lastError = ""
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização. Retorna false quando
// já existe uma execução em andamento.
func (s *MetaSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Meta já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do Meta")
	go s.runSync()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *MetaSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_days":              s.config.DaysToSync,
		"sync_running":           s.syncRunning,
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
