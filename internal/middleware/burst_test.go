package middleware

import (
	"net/http"
	"testing"
)

func TestBurstDeniesSpike(t *testing.T) {
	h := Burst(1, 2)(okHandler())

	for i := 0; i < 2; i++ {
		if rr := doRequest(t, h, "10.0.0.1:5000", ""); rr.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rr.Code)
		}
	}

	if rr := doRequest(t, h, "10.0.0.1:5000", ""); rr.Code != http.StatusTooManyRequests {
		t.Errorf("burst-exceeding request: status = %d, want 429", rr.Code)
	}
}

func TestBurstKeysByIP(t *testing.T) {
	h := Burst(1, 1)(okHandler())

	if rr := doRequest(t, h, "10.0.0.1:5000", ""); rr.Code != http.StatusOK {
		t.Fatalf("first IP: status = %d, want 200", rr.Code)
	}
	if rr := doRequest(t, h, "10.0.0.1:5000", ""); rr.Code != http.StatusTooManyRequests {
		t.Errorf("first IP second request: status = %d, want 429", rr.Code)
	}
	if rr := doRequest(t, h, "10.0.0.2:5000", ""); rr.Code != http.StatusOK {
		t.Errorf("second IP: status = %d, want 200", rr.Code)
	}
}
