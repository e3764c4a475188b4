package api

import (
	"net/http"

	"github.com/yourorg/catalog/internal/apperrors"
	"github.com/yourorg/catalog/internal/version"
)

// VersionMiddleware resolves the API version from the request header
// and stores it in the context. An absent header means version 1.0;
// a value that is not a known version is a 400.
func VersionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Header.Get(version.Header)
		if v == "" {
			v = version.V1
		}
		if !version.Supported(v) {
			err := apperrors.NewValidationError(version.Header, "unsupported API version")
			BadRequest(w, r, err, err.Error(), version.Header)
			return
		}
		next.ServeHTTP(w, r.WithContext(version.NewContext(r.Context(), v)))
	})
}
