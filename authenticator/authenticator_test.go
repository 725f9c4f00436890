package authenticator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	err := Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain is required")
	assert.Contains(t, err.Error(), "callback URL is required")

	assert.NoError(t, Config{Domain: "id.example.com", ClientID: "forms", ClientSecret: "s", CallbackURL: "http://localhost/callback"}.Validate())
}

func TestIssuerURL(t *testing.T) {
	assert.Equal(t, "https://id.example.com/", Config{Domain: "id.example.com"}.IssuerURL())
	assert.Equal(t, "https://id.example.com/", Config{Domain: "id.example.com/"}.IssuerURL())
	assert.Equal(t, "http://localhost:8081/realms/forms/", Config{Domain: "http://localhost:8081/realms/forms"}.IssuerURL())
}

func TestNewOpenIDProviderRejectsIncompleteConfig(t *testing.T) {
	_, err := NewOpenIDProvider(context.Background(), Config{Domain: "id.example.com"})
	assert.ErrorContains(t, err, "client ID is required")
}

func TestClaims(t *testing.T) {
	claims := Claims{"sub": "oidc|42", "email": "ada@example.com"}
	assert.Equal(t, "oidc|42", claims.Subject())
	assert.Equal(t, "ada@example.com", claims.DisplayName())

	claims["nickname"] = "ada"
	assert.Equal(t, "ada", claims.DisplayName())

	assert.Equal(t, "", Claims{}.Subject())
	assert.Equal(t, "", Claims{"sub": 42}.DisplayName())
}
