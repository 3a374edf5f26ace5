package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/domain"
)

type ResponseInsights struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

// GetInsightsByEntityID busca as métricas diárias de uma entidade
// (time_increment=1) para a janela informada. Uma lista vazia não é erro:
// entidades sem veiculação no período não retornam linhas.
func (c *MetaClient) GetInsightsByEntityID(entityID string, level domain.EntityType, filters *domain.InsightFilters) ([]metadomain.Insight, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, entityID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("level", string(level))
	params.Add("fields", "spend,impressions,clicks,actions,action_values,frequency,reach,date_start")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o token foi renovado durante o tratamento, tentar novamente
		if errors.Is(err, ErrTokenRenewed) {
			return c.GetInsightsByEntityID(entityID, level, filters)
		}
		return nil, err
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
