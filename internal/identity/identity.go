// Package identity is a minimal OAuth2 token issuer supporting the
// client-credentials grant. It exists so the catalog API has something
// to delegate authentication to; it is not a general identity
// provider.
package identity

import (
	"crypto/subtle"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yourorg/catalog/internal/id"
)

// ScopeCatalogAPI is the scope the catalog API requires on bearer
// tokens for version 1.0 requests.
const ScopeCatalogAPI = "catalog-api"

// Client is a registered OAuth2 client allowed to request tokens.
type Client struct {
	ID            string
	Secret        string
	AllowedScopes []string
}

// Config holds everything the issuer needs: who it is, what it signs
// with, and which clients it trusts.
type Config struct {
	Issuer        string
	SigningSecret []byte
	TokenTTL      time.Duration
	Clients       []Client
}

// DefaultClients mirrors the development client registry: one
// confidential client with access to the catalog scope.
func DefaultClients() []Client {
	return []Client{
		{
			ID:            "client",
			Secret:        "secret",
			AllowedScopes: []string{ScopeCatalogAPI},
		},
	}
}

func (c Config) findClient(clientID, clientSecret string) (Client, bool) {
	for _, client := range c.Clients {
		idMatch := subtle.ConstantTimeCompare([]byte(client.ID), []byte(clientID)) == 1
		secretMatch := subtle.ConstantTimeCompare([]byte(client.Secret), []byte(clientSecret)) == 1
		if idMatch && secretMatch {
			return client, true
		}
	}
	return Client{}, false
}

// IssueToken signs an HS256 access token for the client. Scopes are
// assumed to be already checked against the client's allowance.
func (c Config) IssueToken(clientID string, scopes []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   c.Issuer,
		"sub":   clientID,
		"aud":   ScopeCatalogAPI,
		"scope": strings.Join(scopes, " "),
		"iat":   now.Unix(),
		"exp":   now.Add(c.TokenTTL).Unix(),
		"jti":   id.GenerateIDWithPrefix("tok_"),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.SigningSecret)
}

func scopesAllowed(requested, allowed []string) bool {
	for _, s := range requested {
		if !slices.Contains(allowed, s) {
			return false
		}
	}
	return true
}
