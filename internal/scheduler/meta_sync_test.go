package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

type stubSyncer struct {
	calls  atomic.Int32
	delay  time.Duration
	result *domain.SyncResult
	err    error
}

func (s *stubSyncer) RunSync(days int) (*domain.SyncResult, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.result, s.err
}

func TestMetaSyncService_runSync(t *testing.T) {
	t.Run("Execução bem-sucedida guarda o último resultado", func(t *testing.T) {
		syncer := &stubSyncer{result: &domain.SyncResult{RunID: "abc123", Status: "success", Campaigns: 2}}
		service := &MetaSyncService{
			config:      MetaSyncConfig{DaysToSync: 7, SyncEnabled: true},
			syncService: syncer,
		}

		service.runSync()

		assert.Equal(t, int32(1), syncer.calls.Load())
		require.NotNil(t, service.lastResult)
		assert.Equal(t, "abc123", service.lastResult.RunID)
		assert.Empty(t, service.lastError)
		assert.False(t, service.syncRunning)
	})

	t.Run("Execução com falha guarda o erro e limpa o resultado anterior da falha", func(t *testing.T) {
		syncer := &stubSyncer{err: errors.New("token inválido")}
		service := &MetaSyncService{
			config:      MetaSyncConfig{DaysToSync: 7, SyncEnabled: true},
			syncService: syncer,
		}

		service.runSync()

		assert.Nil(t, service.lastResult)
		assert.Equal(t, "token inválido", service.lastError)
		assert.False(t, service.syncRunning)
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		syncer := &stubSyncer{}
		service := &MetaSyncService{
			config:      MetaSyncConfig{DaysToSync: 7, SyncEnabled: true},
			syncService: syncer,
			syncRunning: true,
		}

		service.runSync()

		assert.Equal(t, int32(0), syncer.calls.Load())
	})
}

func TestMetaSyncService_StatusDuranteExecucao(t *testing.T) {
	// O status pode ser consultado a qualquer momento, inclusive com uma
	// sincronização em andamento em outra goroutine.
	syncer := &stubSyncer{
		delay:  50 * time.Millisecond,
		result: &domain.SyncResult{RunID: "abc123", Status: "success"},
	}
	service := &MetaSyncService{
		config:      MetaSyncConfig{DaysToSync: 7, SyncEnabled: true},
		syncService: syncer,
	}

	require.True(t, service.TriggerManualSync())

	// Consultas concorrentes enquanto a execução ainda não terminou
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		status := service.GetStatus()
		if _, ok := status["last_result"]; ok {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	status := service.GetStatus()
	require.Contains(t, status, "last_result")
	assert.Equal(t, "abc123", status["last_result"].(*domain.SyncResult).RunID)
	assert.Equal(t, int32(1), syncer.calls.Load())
}

func TestMetaSyncService_TriggerManualSync(t *testing.T) {
	t.Run("Recusa disparo manual com sincronização em andamento", func(t *testing.T) {
		service := &MetaSyncService{
			config:      MetaSyncConfig{DaysToSync: 7, SyncEnabled: true},
			syncService: &stubSyncer{},
			syncRunning: true,
		}

		assert.False(t, service.TriggerManualSync())
	})
}

func TestMetaSyncService_GetStatus(t *testing.T) {
	service := &MetaSyncService{
		config:      MetaSyncConfig{CronSchedule: "0 3 * * *", DaysToSync: 7, SyncEnabled: true},
		syncService: &stubSyncer{},
		lastResult:  &domain.SyncResult{RunID: "abc123"},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_days"])
	assert.Equal(t, false, status["sync_running"])
	require.Contains(t, status, "last_result")
	assert.NotContains(t, status, "last_error")
}
