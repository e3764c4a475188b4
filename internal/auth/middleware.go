package auth

import (
	"net/http"
	"strings"

	"github.com/yourorg/catalog/internal/version"
)

// RequireToken enforces bearer authentication on version 1.0 requests.
// Version 2.0 requests pass through untouched: v2 is the unauthenticated
// tier and only exposes available records.
func RequireToken(verifier *Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if version.FromContext(r.Context()) != version.V1 {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="catalog"`)
				http.Error(w, "Unauthorized: bearer token required", http.StatusUnauthorized)
				return
			}

			if err := verifier.Verify(raw); err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				http.Error(w, "Unauthorized: invalid bearer token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
