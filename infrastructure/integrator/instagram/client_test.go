package instagram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.Instagram{
		BaseURL:   server.URL,
		Version:   "v22.0",
		AppID:     "app",
		AppSecret: "secret",
	})
}

func TestGetLongLivedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v22.0/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "short", r.URL.Query().Get("fb_exchange_token"))
		w.Write([]byte(`{"access_token":"long","token_type":"bearer","expires_in":5184000}`))
	})

	resp, err := client.GetLongLivedToken(context.Background(), "short")
	require.NoError(t, err)
	assert.Equal(t, "long", resp.AccessToken)
	assert.Equal(t, int64(5184000), resp.ExpiresIn)
}

func TestGetLongLivedToken_EmptyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("não deveria chamar a API")
	})

	_, err := client.GetLongLivedToken(context.Background(), "")
	assert.Error(t, err)
}

func TestExchangeCode_ExpiredToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"expired","type":"OAuthException","code":190}}`))
	})

	_, err := client.ExchangeCode(context.Background(), "code", "http://localhost/callback")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestExchangeCode_EmptyAccessToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "code", r.URL.Query().Get("code"))
		w.Write([]byte(`{"access_token":""}`))
	})

	_, err := client.ExchangeCode(context.Background(), "code", "http://localhost/callback")
	assert.Error(t, err)
}

func TestTokenExpiration(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(59*24*time.Hour), TokenExpiration(now, 60*24*60*60))
	// Tokens curtos usam metade do tempo
	assert.Equal(t, now.Add(30*time.Minute), TokenExpiration(now, 60*60))
}
