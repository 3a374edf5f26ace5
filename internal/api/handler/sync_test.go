package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/config"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/scheduler"
)

type stubSyncer struct {
	result *domain.SyncResult
}

func (s *stubSyncer) RunSync(days int) (*domain.SyncResult, error) {
	return s.result, nil
}

func newSchedulerService() *scheduler.MetaSyncService {
	cfg := &config.Config{
		Sync: config.Sync{DaysToSync: 7, CronSchedule: "0 3 * * *", Enabled: true},
	}
	return scheduler.NewMetaSyncService(&stubSyncer{result: &domain.SyncResult{RunID: "abc123", Status: "success"}}, cfg)
}

func TestHealthcheckHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()

	HealthcheckHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestRunSync(t *testing.T) {
	t.Run("Disparo manual responde 202 e dispara em segundo plano", func(t *testing.T) {
		service := newSchedulerService()

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil)
		rec := httptest.NewRecorder()

		RunSync(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sincronização iniciada")

		// A execução em segundo plano termina e aparece no status
		require.Eventually(t, func() bool {
			status := service.GetStatus()
			_, ok := status["last_result"]
			return ok
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("Serviço ausente responde erro interno", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil)
		rec := httptest.NewRecorder()

		RunSync(nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "SRV_001")
	})
}

func TestGetSyncStatus(t *testing.T) {
	service := newSchedulerService()

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
	rec := httptest.NewRecorder()

	GetSyncStatus(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sync_enabled")
	assert.Contains(t, rec.Body.String(), "0 3 * * *")
}
