package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"frescoguard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestServer(t *testing.T, userInfo string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userInfo))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testProvider(srv *httptest.Server) *googleProvider {
	return newProvider(&oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/auth/callback",
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  srv.URL + "/auth",
			TokenURL: srv.URL + "/token",
		},
	}, srv.URL+"/userinfo")
}

func TestExchange(t *testing.T) {
	srv := newTestServer(t, `{"sub":"1234","email":"ana@example.com","name":"Ana","picture":"https://img/ana.png"}`)
	p := testProvider(srv)

	profile, err := p.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, domain.OAuthProfile{Subject: "1234", Email: "ana@example.com", Name: "Ana", Picture: "https://img/ana.png"}, profile)

	_, err = p.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestExchangeRequiresEmail(t *testing.T) {
	srv := newTestServer(t, `{"sub":"1234"}`)
	_, err := testProvider(srv).Exchange(context.Background(), "good-code")
	assert.ErrorIs(t, err, domain.ErrOAuthEmailMissing)
}

func TestAuthCodeURL(t *testing.T) {
	srv := newTestServer(t, `{}`)
	link, err := testProvider(srv).AuthCodeURL("state-abc")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "state-abc", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "openid email profile", u.Query().Get("scope"))
}

func TestNotConfigured(t *testing.T) {
	p := NewGoogleProvider("", "", "")
	assert.False(t, p.Enabled())

	_, err := p.AuthCodeURL("state")
	assert.ErrorIs(t, err, domain.ErrOAuthNotConfigured)

	_, err = p.Exchange(context.Background(), "code")
	assert.ErrorIs(t, err, domain.ErrOAuthNotConfigured)
}
