// Package instagram faz a troca de tokens OAuth com a Graph API do Instagram
package instagram

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error)
	GetLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
	CheckTokenValidity(ctx context.Context, token string) (bool, error)
}

type InstagramClient struct {
	cfg        config.Instagram
	httpClient *http.Client
}

func NewClient(cfg config.Instagram) Client {
	return &InstagramClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// TokenResponse representa a resposta da Graph API ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeCode troca o código de autorização OAuth por um token de curta duração
func (c *InstagramClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização não pode ser vazio")
	}
	if redirectURI == "" {
		redirectURI = c.cfg.RedirectURL
	}

	params := url.Values{}
	params.Add("client_id", c.cfg.AppID)
	params.Add("client_secret", c.cfg.AppSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	return c.requestToken(ctx, params)
}

// GetLongLivedToken obtém um token de longa duração
// usando um token de curta duração
func (c *InstagramClient) GetLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.cfg.AppID)
	params.Add("client_secret", c.cfg.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	tokenResp, err := c.requestToken(ctx, params)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))
	return tokenResp, nil
}

func (c *InstagramClient) requestToken(ctx context.Context, params url.Values) (*TokenResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/oauth/access_token", c.cfg.BaseURL, c.cfg.Version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.IsTokenExpired() {
			return nil, ErrTokenExpired
		}
		logrus.Errorf("Erro obtendo token. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro ao obter token. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// CheckTokenValidity verifica se o token é válido fazendo uma consulta simples à API
func (c *InstagramClient) CheckTokenValidity(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("token não pode ser vazio")
	}

	params := url.Values{}
	params.Add("fields", "id,username")
	params.Add("access_token", token)
	requestURL := fmt.Sprintf("%s/%s/me?%s", c.cfg.BaseURL, c.cfg.Version, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return false, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar token: %w", err)
	}
	defer resp.Body.Close()

	// Se o status for diferente de 200, o token pode ter expirado ou ser inválido
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logrus.Warnf("Token inválido ou expirado. Status: %d, Corpo: %s", resp.StatusCode, string(body))
		return false, nil
	}

	return true, nil
}
