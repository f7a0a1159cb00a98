package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Idle callers are forgotten after this much inactivity.
const burstIdleAfter = 10 * time.Minute

type caller struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type burstLimiter struct {
	mu      sync.Mutex
	callers map[string]*caller
	rps     rate.Limit
	burst   int
}

func newBurstLimiter(rps float64, burst int) *burstLimiter {
	bl := &burstLimiter{
		callers: make(map[string]*caller),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go bl.cleanup()
	return bl
}

func (bl *burstLimiter) getLimiter(ip string) *rate.Limiter {
	bl.mu.Lock()
	defer bl.mu.Unlock()

	c, exists := bl.callers[ip]
	if !exists {
		limiter := rate.NewLimiter(bl.rps, bl.burst)
		bl.callers[ip] = &caller{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

func (bl *burstLimiter) cleanup() {
	for {
		time.Sleep(burstIdleAfter)
		bl.mu.Lock()
		for ip, c := range bl.callers {
			if time.Since(c.lastSeen) > burstIdleAfter {
				delete(bl.callers, ip)
			}
		}
		bl.mu.Unlock()
	}
}

// Burst returns middleware that smooths request floods per IP with a token
// bucket. It sits in front of the per-client Quota, which enforces the
// minute-level generation quota; this one only absorbs short spikes.
func Burst(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newBurstLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.getLimiter(remoteIP(r)).Allow() {
				writeJSONError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
