// Servidor-burrao é um catálogo falso para validar o cliente na mão:
//
//	go run ./teste-validacao/servidor-burrao
//	CATALOG_BASE_URL=http://localhost:8081/ws/2/ go run ./cmd/lookup 0383dadf-2a4e-4d10-a46a-e9e041da8eb3
//
// THROTTLE_RATE (0..1) responde 429 ao acaso; CLIENT_RPS/CLIENT_BURST limitam
// por IP; MAX_INFLIGHT responde 503 acima do limite. GET /_stats mostra os contadores.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"catalog-client/dispatch/infra"
	"catalog-client/internal/upstream"
)

func main() {
	addr := getenvDefault("LISTEN_ADDR", ":8081")
	throttleRate := getenvFloatDefault("THROTTLE_RATE", 0.2)
	clientRPS := getenvFloatDefault("CLIENT_RPS", 1)
	clientBurst := getenvIntDefault("CLIENT_BURST", 1)
	maxInFlight := getenvIntDefault("MAX_INFLIGHT", 16)
	latency := getenvDurationDefault("LATENCY", 50*time.Millisecond)
	trustXFF := getenvBoolDefault("TRUST_XFF", false)

	if throttleRate < 0 || throttleRate > 1 {
		log.Fatalf("config error: THROTTLE_RATE must be between 0 and 1")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var limits *upstream.ClientLimits
	if clientRPS > 0 {
		limits = upstream.NewClientLimits(clientRPS, clientBurst)
		limits.StartJanitor(ctx)
	}
	stats := infra.NewMemoryStatsStore()

	mux := http.NewServeMux()
	mux.Handle("/", upstream.New(upstream.Options{
		Limits:       limits,
		TrustXFF:     trustXFF,
		ThrottleRate: throttleRate,
		MaxInFlight:  maxInFlight,
		Latency:      latency,
		Stats:        stats,
	}))
	mux.HandleFunc("GET /_stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stats.Snapshot())
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("servidor-burrao listening on %s", addr)
	log.Printf("throttle: rate=%.2f clientRPS=%.3f clientBurst=%d trustXFF=%v", throttleRate, clientRPS, clientBurst, trustXFF)
	log.Printf("inflight: max=%d latency=%s", maxInFlight, latency)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	i, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return i
}

func getenvFloatDefault(k string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(k), 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBoolDefault(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return def
	}
	return d
}
