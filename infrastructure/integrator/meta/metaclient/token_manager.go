package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	metadomain "github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/domain"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/config"
)

// ErrTokenRenewed sinaliza que o token expirado foi renovado durante o
// tratamento da resposta; o chamador deve repetir a requisição.
var ErrTokenRenewed = pkgerrors.New("token expirado e renovado, por favor tente novamente")

// Margem antes da expiração a partir da qual o token é renovado proativamente.
const refreshMargin = 24 * time.Hour

// TokenManager gerencia o token de acesso da Graph API: valida a expiração e
// troca o token por um de longa duração quando necessário.
type TokenManager struct {
	cfg *config.Config
	mu  sync.Mutex
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{cfg: cfg}
}

// EnsureValidToken verifica se o token atual é utilizável e o renova quando a
// expiração está próxima. Quando a data de expiração é desconhecida, o token
// é usado como está e a renovação acontece de forma reativa via HandleResponse.
func (tm *TokenManager) EnsureValidToken() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.cfg.Meta.AccessToken == "" {
		return pkgerrors.New("token de acesso da Meta não configurado")
	}

	if tm.cfg.Meta.TokenExpiresAt.IsZero() {
		return nil
	}

	if time.Until(tm.cfg.Meta.TokenExpiresAt) < refreshMargin {
		logrus.Info("Token da Meta próximo da expiração, renovando")
		return tm.refreshTokenLocked()
	}

	return nil
}

// RefreshToken troca o token atual por um token de longa duração.
func (tm *TokenManager) RefreshToken() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.refreshTokenLocked()
}

type tokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (tm *TokenManager) refreshTokenLocked() error {
	if tm.cfg.Meta.AppID == "" || tm.cfg.Meta.AppSecret == "" {
		return pkgerrors.New("META_APP_ID e META_APP_SECRET são necessários para renovar o token")
	}

	baseURL := fmt.Sprintf("%s/oauth/access_token", tm.cfg.Meta.URL)

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", tm.cfg.Meta.AppID)
	params.Add("client_secret", tm.cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", tm.cfg.Meta.AccessToken)

	resp, err := http.Get(baseURL + "?" + params.Encode())
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao requisitar renovação do token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao ler resposta da renovação do token")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return pkgerrors.Wrap(errResp.Error, "renovação do token recusada")
		}
		return pkgerrors.Errorf("renovação do token falhou com status %d", resp.StatusCode)
	}

	var exchange tokenExchangeResponse
	if err := json.Unmarshal(body, &exchange); err != nil {
		return pkgerrors.Wrap(err, "erro ao decodificar resposta da renovação do token")
	}

	if exchange.AccessToken == "" {
		return pkgerrors.New("renovação do token retornou token vazio")
	}

	tm.cfg.Meta.AccessToken = exchange.AccessToken
	if exchange.ExpiresIn > 0 {
		tm.cfg.Meta.TokenExpiresAt = time.Now().Add(time.Duration(exchange.ExpiresIn) * time.Second)
	}

	logrus.WithField("expires_at", tm.cfg.Meta.TokenExpiresAt).Info("Token da Meta renovado com sucesso")

	return nil
}

// HandleResponse lê o corpo da resposta e traduz erros da Graph API. Quando o
// erro indica token expirado, tenta renová-lo e retorna ErrTokenRenewed para
// que o chamador repita a requisição uma vez.
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao ler resposta da API")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return nil, pkgerrors.Errorf("requisição falhou com status %d", resp.StatusCode)
	}

	if errResp.Error.Code == metadomain.CodeTokenExpired {
		logrus.Warn("Token da Meta expirado, tentando renovar")
		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			return nil, pkgerrors.Wrap(refreshErr, "falha ao renovar token expirado")
		}
		return nil, ErrTokenRenewed
	}

	return nil, errResp.Error
}
