package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/passforge/passforge-go/internal/ratelimit"
)

// Quota returns middleware that enforces the per-client generation quota.
// Denial is a normal outcome, answered with 429 and a retry hint, not an
// error.
func Quota(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID, ok := ClientIDFromContext(r.Context())
			if !ok {
				clientID = "ip:" + remoteIP(r)
			}

			if !limiter.AllowNow(clientID) {
				slog.Warn("rate limit exceeded", "client", clientID)
				w.Header().Set("Retry-After", "60")
				writeJSONError(w, http.StatusTooManyRequests,
					fmt.Sprintf("too many requests: maximum %d per minute, please try again later", limiter.Limit()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
