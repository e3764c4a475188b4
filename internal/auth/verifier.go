// Package auth validates externally issued bearer tokens. The API
// never inspects token contents beyond the signature, expiry, and
// scope; issuing is the identity service's job.
package auth

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrInsufficientScope = errors.New("insufficient scope")
)

// Verifier checks HS256 bearer tokens against a shared signing secret
// and a required scope.
type Verifier struct {
	secret []byte
	scope  string
}

func NewVerifier(secret []byte, requiredScope string) *Verifier {
	return &Verifier{secret: secret, scope: requiredScope}
}

// Verify parses and validates the raw token. Audience is not
// validated, matching the resource server's configuration; the scope
// claim must contain the required scope.
func (v *Verifier) Verify(raw string) error {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	scopes, _ := claims["scope"].(string)
	if !slices.Contains(strings.Fields(scopes), v.scope) {
		return ErrInsufficientScope
	}
	return nil
}
