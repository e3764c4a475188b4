package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yourorg/catalog/internal/identity"
	"github.com/yourorg/catalog/internal/version"
)

const testScope = "catalog-api"

var testSecret = []byte("test-signing-secret")

func issueTestToken(t *testing.T, secret []byte, scopes []string, ttl time.Duration) string {
	t.Helper()
	cfg := identity.Config{
		Issuer:        "http://identity.test",
		SigningSecret: secret,
		TokenTTL:      ttl,
	}
	token, err := cfg.IssueToken("client", scopes)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestRequireToken(t *testing.T) {
	verifier := NewVerifier(testSecret, testScope)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})
	protected := RequireToken(verifier)(okHandler)

	validToken := issueTestToken(t, testSecret, []string{testScope}, time.Hour)
	wrongScope := issueTestToken(t, testSecret, []string{"other-api"}, time.Hour)
	expired := issueTestToken(t, testSecret, []string{testScope}, -time.Minute)
	wrongKey := issueTestToken(t, []byte("some-other-secret"), []string{testScope}, time.Hour)

	tests := []struct {
		name           string
		authorization  string
		apiVersion     string
		expectedStatus int
	}{
		{
			name:           "valid token",
			authorization:  "Bearer " + validToken,
			apiVersion:     version.V1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token",
			authorization:  "",
			apiVersion:     version.V1,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer header",
			authorization:  "Basic dXNlcjpwYXNz",
			apiVersion:     version.V1,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong signing key",
			authorization:  "Bearer " + wrongKey,
			apiVersion:     version.V1,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authorization:  "Bearer " + expired,
			apiVersion:     version.V1,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing scope",
			authorization:  "Bearer " + wrongScope,
			apiVersion:     version.V1,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "v2 requires no token",
			authorization:  "",
			apiVersion:     version.V2,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			req = req.WithContext(version.NewContext(req.Context(), tt.apiVersion))

			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestVerifierRejectsGarbage(t *testing.T) {
	verifier := NewVerifier(testSecret, testScope)

	if err := verifier.Verify("not-a-jwt"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
