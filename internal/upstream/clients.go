package upstream

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimits guarda um token bucket por cliente, com limpeza dos inativos.
type ClientLimits struct {
	mu           sync.Mutex
	entries      map[string]*clientEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
}

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type ClientLimitsOption func(*ClientLimits)

func WithIdleTTL(d time.Duration) ClientLimitsOption {
	return func(s *ClientLimits) { s.idleTTL = d }
}

func WithCleanupEvery(d time.Duration) ClientLimitsOption {
	return func(s *ClientLimits) { s.cleanupEvery = d }
}

func NewClientLimits(rps float64, burst int, opts ...ClientLimitsOption) *ClientLimits {
	if burst <= 0 {
		burst = 1
	}
	s := &ClientLimits{
		entries:      make(map[string]*clientEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ClientLimits) RPS() float64 { return float64(s.rps) }
func (s *ClientLimits) Burst() int   { return s.burst }

// Allow consome um token do cliente key.
func (s *ClientLimits) Allow(key string) bool {
	return s.get(key).Allow()
}

func (s *ClientLimits) get(key string) *rate.Limiter {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}
	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &clientEntry{lim: lim, lastSeen: now}
	return lim
}

// Len devolve quantos clientes estão no cache.
func (s *ClientLimits) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *ClientLimits) Cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor limpa clientes inativos até o ctx encerrar.
func (s *ClientLimits) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 {
		return
	}
	t := time.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

// ClientKey identifica o cliente como o catálogo faz: pelo IP de origem,
// com X-Forwarded-For opcional (primeiro IP da lista).
func ClientKey(r *http.Request, trustXFF bool) string {
	if trustXFF {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			ip, _, _ := strings.Cut(xff, ",")
			if ip = strings.TrimSpace(ip); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
