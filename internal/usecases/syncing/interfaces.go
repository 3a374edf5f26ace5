package syncing

import (
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

// Syncer define a interface do motor de sincronização consumida pelo
// agendador e pela API administrativa.
type Syncer interface {
	// RunSync executa a sincronização completa para os últimos days dias.
	// days <= 0 usa a janela padrão configurada em DAYS_TO_SYNC.
	RunSync(days int) (*domain.SyncResult, error)
}
