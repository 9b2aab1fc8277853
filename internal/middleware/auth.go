package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ctxKey is an unexported context key type so no other package can collide
// with values this middleware stores.
type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated owner identifier stored by the
// authenticator, or ok=false when the request was not authenticated.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID returns a context carrying the given owner identifier.
// Exported for handler tests that bypass the HTTP authenticator.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// NewAuthenticator returns a middleware that requires a valid HS256 bearer
// token and stores its subject claim as the owner identifier in the request
// context. The subject is treated as an opaque string — identity lives in the
// external auth provider; this middleware only verifies and extracts it.
//
// Requests without a valid token are rejected with 401 before any handler runs.
func NewAuthenticator(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeUnauthorized(w, "missing authorization header")
				return
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				writeUnauthorized(w, "authorization header must be a bearer token")
				return
			}

			parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return key, nil
			})
			if err != nil || !parsed.Valid {
				writeUnauthorized(w, "invalid token")
				return
			}

			subject, err := parsed.Claims.GetSubject()
			if err != nil || subject == "" {
				writeUnauthorized(w, "token has no subject")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), subject)))
		})
	}
}

// writeUnauthorized writes the API's standard error envelope with a 401.
// Duplicated from the handler package to keep middleware free of a handler
// dependency; the shape must stay in sync with handler error responses.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":{"code":"unauthorized","message":%q}}`, message)
}
