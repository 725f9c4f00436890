package authenticator

import (
	"context"
	"errors"
	"strings"
)

// Config holds OpenID Connect settings for backoffice login
type Config struct {
	// Domain is either a bare host name or a full issuer URL
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string
}

// Validate checks that all required settings are present
func (c Config) Validate() error {
	var errs []error
	if c.Domain == "" {
		errs = append(errs, errors.New("domain is required"))
	}
	if c.ClientID == "" {
		errs = append(errs, errors.New("client ID is required"))
	}
	if c.ClientSecret == "" {
		errs = append(errs, errors.New("client secret is required"))
	}
	if c.CallbackURL == "" {
		errs = append(errs, errors.New("callback URL is required"))
	}
	return errors.Join(errs...)
}

// IssuerURL returns the issuer the discovery document is fetched from
func (c Config) IssuerURL() string {
	if strings.HasPrefix(c.Domain, "https://") || strings.HasPrefix(c.Domain, "http://") {
		return strings.TrimSuffix(c.Domain, "/") + "/"
	}
	return "https://" + strings.Trim(c.Domain, "/") + "/"
}

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Subject returns the sub claim
func (c Claims) Subject() string {
	sub, _ := c["sub"].(string)
	return sub
}

// DisplayName tries nickname, then name, then email, then sub
func (c Claims) DisplayName() string {
	for _, key := range []string{"nickname", "name", "email", "sub"} {
		if v, ok := c[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
