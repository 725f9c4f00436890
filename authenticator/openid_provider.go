package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// ErrNoIDToken is returned when the token response carries no id_token
var ErrNoIDToken = errors.New("no id_token in token")

// OpenIDProvider implements the Provider interface for OpenID Connect
type OpenIDProvider struct {
	verifier *oidc.IDTokenVerifier
	config   oauth2.Config
}

// NewOpenIDProvider discovers the issuer's endpoints and returns a provider for it
func NewOpenIDProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid OpenID configuration: %w", err)
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL())
	if err != nil {
		return nil, fmt.Errorf("failed to discover OpenID provider %s: %w", cfg.IssuerURL(), err)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"profile", "email"}
	}

	return &OpenIDProvider{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       append([]string{oidc.ScopeOpenID}, scopes...),
		},
	}, nil
}

// GetAuthURL returns the authorization URL for OpenID Connect
func (p *OpenIDProvider) GetAuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeCode exchanges an authorization code for tokens
func (p *OpenIDProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	oauth2Token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	token := &Token{
		AccessToken:  oauth2Token.AccessToken,
		RefreshToken: oauth2Token.RefreshToken,
		Expiry:       oauth2Token.Expiry.Unix(),
	}
	if idToken, ok := oauth2Token.Extra("id_token").(string); ok {
		token.IDToken = idToken
	}
	return token, nil
}

// GetClaims verifies the ID token and returns its claims
func (p *OpenIDProvider) GetClaims(ctx context.Context, token *Token) (Claims, error) {
	if token == nil || token.IDToken == "" {
		return nil, ErrNoIDToken
	}

	idToken, err := p.verifier.Verify(ctx, token.IDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}
	return claims, nil
}
