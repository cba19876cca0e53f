package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elsur/driving-school-api/pkg/config"
)

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "Maria", cellString("Maria"))
	assert.Equal(t, "29", cellString(29))
	assert.Equal(t, "130.5", cellString(130.5))
}

func TestOAuthConfig(t *testing.T) {
	conf := OAuthConfig(config.GoogleConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8080/api/auth/callback",
	})

	assert.Equal(t, "client", conf.ClientID)
	assert.Equal(t, []string{SheetScope}, conf.Scopes)
	assert.Contains(t, conf.Endpoint.AuthURL, "accounts.google.com")
}
