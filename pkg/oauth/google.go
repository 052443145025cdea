// Package oauth signs users in with their Google account.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"frescoguard/domain"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

type (
	Provider interface {
		Enabled() bool
		AuthCodeURL(state string) (string, error)
		Exchange(ctx context.Context, code string) (domain.OAuthProfile, error)
	}

	googleProvider struct {
		config      *oauth2.Config
		userInfoURL string
	}

	googleUserInfo struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
)

func NewGoogleProvider(clientID, clientSecret, redirectURL string) Provider {
	return newProvider(&oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, googleUserInfoURL)
}

func newProvider(config *oauth2.Config, userInfoURL string) *googleProvider {
	return &googleProvider{config: config, userInfoURL: userInfoURL}
}

func (p *googleProvider) Enabled() bool {
	return p.config.ClientID != "" && p.config.ClientSecret != ""
}

func (p *googleProvider) AuthCodeURL(state string) (string, error) {
	if !p.Enabled() {
		return "", domain.ErrOAuthNotConfigured
	}
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (domain.OAuthProfile, error) {
	if !p.Enabled() {
		return domain.OAuthProfile{}, domain.ErrOAuthNotConfigured
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return domain.OAuthProfile{}, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return domain.OAuthProfile{}, err
	}
	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return domain.OAuthProfile{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.OAuthProfile{}, fmt.Errorf("fetch userinfo: unexpected status %s", resp.Status)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return domain.OAuthProfile{}, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" {
		return domain.OAuthProfile{}, domain.ErrOAuthEmailMissing
	}

	return domain.OAuthProfile{
		Subject: info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
