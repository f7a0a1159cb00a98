package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/passforge/passforge-go/internal/token"
)

type contextKey string

const clientIDKey contextKey = "clientID"

// ClientID returns middleware that resolves the identity used for quota
// accounting. A valid Bearer token identifies the client by its token
// claim; anonymous requests fall back to the remote IP. Identification
// never rejects a request.
func ClientID(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := clientFromToken(r, secret)
			if id == "" {
				id = "ip:" + remoteIP(r)
			}

			ctx := context.WithValue(r.Context(), clientIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIDFromContext extracts the resolved client identity from the request context.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok
}

func clientFromToken(r *http.Request, secret string) string {
	authHeader := r.Header.Get("Authorization")
	raw, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || raw == "" {
		return ""
	}

	claims, err := token.Validate(raw, secret)
	if err != nil {
		return ""
	}
	return "client:" + claims.ClientID
}

func remoteIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
