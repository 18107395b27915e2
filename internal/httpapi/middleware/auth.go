package middleware

import (
	"net/http"
	"strings"
)

// Verifier is the single-method credential check the API gates on. A
// real token/identity system can replace StaticKey without touching
// handlers.
type Verifier interface {
	Verify(token string) bool
}

// StaticKey verifies against one shared secret. An empty secret
// disables auth entirely (handy for local dev).
type StaticKey string

func (k StaticKey) Verify(token string) bool {
	return k != "" && token == string(k)
}

// readToken accepts the key as an apikey query parameter, an X-API-Key
// header, or a Bearer token.
func readToken(r *http.Request) string {
	if k := r.URL.Query().Get("apikey"); k != "" {
		return strings.TrimSpace(k)
	}
	if k := r.Header.Get("X-API-Key"); k != "" {
		return strings.TrimSpace(k)
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireKey rejects requests whose credential fails v. When v is a
// StaticKey with no secret configured, all requests pass.
func RequireKey(v Verifier) func(http.Handler) http.Handler {
	if k, ok := v.(StaticKey); ok && k == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v.Verify(readToken(r)) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid or expired api key."}`))
		})
	}
}
