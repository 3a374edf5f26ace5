package metaclient

import (
	"net/http"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/config"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

type Client interface {
	GetCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	GetAdSetsByAccountID(accountID string) ([]metadomain.AdSet, error)
	GetAdsByAccountID(accountID string) ([]metadomain.Ad, error)
	GetInsightsByEntityID(entityID string, level domain.EntityType, filters *domain.InsightFilters) ([]metadomain.Insight, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
