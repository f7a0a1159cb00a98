package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/ratelimit"
	"github.com/passforge/passforge-go/internal/token"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	req.RemoteAddr = remoteAddr
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestQuotaDeniesOverLimit(t *testing.T) {
	limiter := ratelimit.New(2)
	h := Quota(limiter)(okHandler())

	for i := 0; i < 2; i++ {
		if rr := doRequest(t, h, "10.0.0.1:5000", ""); rr.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rr.Code)
		}
	}

	rr := doRequest(t, h, "10.0.0.1:5000", "")
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on denial")
	}
}

func TestQuotaKeysByIP(t *testing.T) {
	limiter := ratelimit.New(1)
	h := Quota(limiter)(okHandler())

	if rr := doRequest(t, h, "10.0.0.1:5000", ""); rr.Code != http.StatusOK {
		t.Fatalf("first client: status = %d, want 200", rr.Code)
	}
	if rr := doRequest(t, h, "10.0.0.1:6000", ""); rr.Code != http.StatusTooManyRequests {
		t.Errorf("same IP, different port: status = %d, want 429", rr.Code)
	}
	if rr := doRequest(t, h, "10.0.0.2:5000", ""); rr.Code != http.StatusOK {
		t.Errorf("different IP: status = %d, want 200", rr.Code)
	}
}

func TestClientIDSeparatesTokenHolders(t *testing.T) {
	secret := "test-secret"
	limiter := ratelimit.New(1)
	h := ClientID(secret)(Quota(limiter)(okHandler()))

	tokA, err := token.Generate("client-a", secret, time.Hour)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	tokB, err := token.Generate("client-b", secret, time.Hour)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	// Same IP, distinct token identities: quotas are independent.
	if rr := doRequest(t, h, "10.0.0.1:5000", tokA); rr.Code != http.StatusOK {
		t.Fatalf("client-a: status = %d, want 200", rr.Code)
	}
	if rr := doRequest(t, h, "10.0.0.1:5000", tokB); rr.Code != http.StatusOK {
		t.Errorf("client-b: status = %d, want 200", rr.Code)
	}
	if rr := doRequest(t, h, "10.0.0.1:5000", tokA); rr.Code != http.StatusTooManyRequests {
		t.Errorf("client-a second request: status = %d, want 429", rr.Code)
	}
}

func TestClientIDInvalidTokenFallsBackToIP(t *testing.T) {
	secret := "test-secret"
	limiter := ratelimit.New(1)
	h := ClientID(secret)(Quota(limiter)(okHandler()))

	if rr := doRequest(t, h, "10.0.0.1:5000", "garbage"); rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	// The bad token resolved to the IP identity, so an anonymous request
	// from the same IP shares its quota.
	if rr := doRequest(t, h, "10.0.0.1:5000", ""); rr.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rr.Code)
	}
}
