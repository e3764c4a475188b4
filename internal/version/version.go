// Package version resolves the API variant for a request. The variant
// is chosen by a request header, defaults to 1.0, and rides the
// request context so routing, auth, and handlers agree on it.
package version

import "context"

// Header carries the requested API version.
const Header = "X-API-VERSION"

const (
	// V1 lists every record and requires a bearer token.
	V1 = "1.0"
	// V2 lists only available records and requires no token.
	V2 = "2.0"
)

type ctxKey struct{}

// Supported reports whether v is a known API version.
func Supported(v string) bool {
	return v == V1 || v == V2
}

func NewContext(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

// FromContext returns the resolved version, defaulting to V1 when the
// request never passed through the version middleware.
func FromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return V1
}
