package identity

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	canonhttp "github.com/nhalm/canonlog/http"
)

// Server exposes the token endpoint and a discovery document so
// clients can find it.
type Server struct {
	cfg Config
}

func NewServer(cfg Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(canonhttp.ChiMiddleware(nil))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/.well-known/openid-configuration", s.handleDiscovery)
	r.Post("/connect/token", s.handleToken)

	return r
}

type discoveryDocument struct {
	Issuer              string   `json:"issuer"`
	TokenEndpoint       string   `json:"token_endpoint"`
	GrantTypesSupported []string `json:"grant_types_supported"`
	ScopesSupported     []string `json:"scopes_supported"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, discoveryDocument{
		Issuer:              s.cfg.Issuer,
		TokenEndpoint:       strings.TrimSuffix(s.cfg.Issuer, "/") + "/connect/token",
		GrantTypesSupported: []string{"client_credentials"},
		ScopesSupported:     []string{ScopeCatalogAPI},
	})
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// handleToken implements the client-credentials grant. Client secrets
// are accepted either as form fields or HTTP basic credentials, and
// errors follow the RFC 6749 error codes.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		tokenError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	if r.PostForm.Get("grant_type") != "client_credentials" {
		tokenError(w, http.StatusBadRequest, "unsupported_grant_type")
		return
	}

	clientID, clientSecret := clientCredentials(r)
	if clientID == "" {
		tokenError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	client, ok := s.cfg.findClient(clientID, clientSecret)
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="identity"`)
		tokenError(w, http.StatusUnauthorized, "invalid_client")
		return
	}

	scopes := client.AllowedScopes
	if requested := r.PostForm.Get("scope"); requested != "" {
		scopes = strings.Fields(requested)
		if !scopesAllowed(scopes, client.AllowedScopes) {
			tokenError(w, http.StatusBadRequest, "invalid_scope")
			return
		}
	}

	token, err := s.cfg.IssueToken(client.ID, scopes)
	if err != nil {
		tokenError(w, http.StatusInternalServerError, "server_error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.cfg.TokenTTL.Seconds()),
		Scope:       strings.Join(scopes, " "),
	})
}

func clientCredentials(r *http.Request) (string, string) {
	if id, secret, ok := r.BasicAuth(); ok {
		return id, secret
	}
	return r.PostForm.Get("client_id"), r.PostForm.Get("client_secret")
}

func tokenError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
