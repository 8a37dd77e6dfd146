package upstream

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientLimits_PerClientBucket(t *testing.T) {
	s := NewClientLimits(0.02, 1)

	if !s.Allow("10.0.0.1") {
		t.Fatalf("expected first call to pass")
	}
	if s.Allow("10.0.0.1") {
		t.Fatalf("expected second immediate call to be throttled (burst=1)")
	}
	if !s.Allow("10.0.0.2") {
		t.Fatalf("another client must have its own bucket")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 clients cached, got %d", s.Len())
	}
}

func TestClientLimits_CleanupForgetsIdleClients(t *testing.T) {
	s := NewClientLimits(0.02, 1, WithIdleTTL(2*time.Millisecond), WithCleanupEvery(0))

	_ = s.Allow("k")
	time.Sleep(4 * time.Millisecond)
	s.Cleanup()

	if s.Len() != 0 {
		t.Fatalf("expected idle client to be removed")
	}
	if !s.Allow("k") {
		t.Fatalf("expected a fresh bucket after cleanup")
	}
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example/ws/2/artist/x", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")

	if got := ClientKey(r, true); got != "1.2.3.4" {
		t.Fatalf("expected first XFF ip, got %q", got)
	}
	if got := ClientKey(r, false); got != "10.0.0.9" {
		t.Fatalf("expected remote host, got %q", got)
	}

	r.RemoteAddr = ""
	if got := ClientKey(r, false); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}
