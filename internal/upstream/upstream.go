// Package upstream é um catálogo falso para validação manual e testes de
// integração: serve fixtures no formato do WS/2 e do Discogs e se comporta
// como o serviço real sob carga (429 por cliente, 503 sem vaga, 429 aleatório).
package upstream

import (
	"embed"
	"io/fs"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"catalog-client/dispatch/application"
	"catalog-client/dispatch/domain"
	"catalog-client/dispatch/infra"
)

//go:embed fixtures
var embedded embed.FS

// Fixtures devolve as fixtures embutidas (<kind>/<id>.json).
func Fixtures() fs.FS {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

type Options struct {
	// Fixtures nil = Fixtures().
	Fixtures fs.FS
	// Limits nil desliga o limite por cliente.
	Limits   *ClientLimits
	TrustXFF bool
	// ThrottleRate é a fração (0..1) de chamadas respondidas com 429 ao acaso.
	ThrottleRate float64
	// MaxInFlight 0 = sem limite; acima dele responde 503.
	MaxInFlight int
	// Latency é somada a cada resposta servida.
	Latency time.Duration
	Stats   domain.StatsStore
	// Rand nil = math/rand/v2.Float64.
	Rand func() float64
}

// New monta o handler: vagas -> limite por cliente -> 429 aleatório -> fixtures.
func New(opts Options) http.Handler {
	if opts.Fixtures == nil {
		opts.Fixtures = Fixtures()
	}
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}

	h := catalogHandler(opts.Fixtures, opts.Latency)
	h = chaos(opts, h)
	h = throttle(opts, h)
	h = inFlight(opts.MaxInFlight, h)
	return h
}

func reject(w http.ResponseWriter, status int, retryAfter int) {
	if retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}
	http.Error(w, http.StatusText(status), status)
}

func record(opts Options, r *http.Request, status int, outcome domain.Outcome) {
	if opts.Stats == nil {
		return
	}
	_ = opts.Stats.Record(r.Context(), domain.StatsEvent{
		Key:     domain.Key(ClientKey(r, opts.TrustXFF)),
		Outcome: outcome,
		Method:  r.Method,
		Path:    r.URL.Path,
		Status:  status,
		Attempt: 1,
		At:      time.Now(),
	})
}

func throttle(opts Options, next http.Handler) http.Handler {
	if opts.Limits == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ClientKey(r, opts.TrustXFF)
		if !opts.Limits.Allow(key) {
			record(opts, r, http.StatusTooManyRequests, domain.OutcomeRetry)
			reject(w, http.StatusTooManyRequests, 1)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func chaos(opts Options, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if opts.ThrottleRate > 0 && opts.Rand() < opts.ThrottleRate {
			record(opts, r, http.StatusTooManyRequests, domain.OutcomeRetry)
			reject(w, http.StatusTooManyRequests, 1)
			return
		}
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}
		outcome := domain.OutcomeOK
		if sw.status >= http.StatusBadRequest {
			outcome = domain.OutcomeFail
		}
		record(opts, r, sw.status, outcome)
	})
}

// inFlight não espera vaga: quem passa do limite recebe 503 na hora.
func inFlight(max int, next http.Handler) http.Handler {
	if max <= 0 {
		return next
	}
	svc := application.ConcurrencyService{Pool: infra.NewChanPool(max), AcquireTimeout: time.Millisecond}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		release, err := svc.Acquire(r.Context())
		if err != nil {
			if r.Context().Err() == nil {
				reject(w, http.StatusServiceUnavailable, 0)
			}
			return
		}
		defer release()
		next.ServeHTTP(w, r)
	})
}

func catalogHandler(fixtures fs.FS, latency time.Duration) http.Handler {
	mux := http.NewServeMux()
	serve := func(w http.ResponseWriter, r *http.Request, dir, id string) {
		if latency > 0 {
			if err := application.Sleep(r.Context(), latency); err != nil {
				return
			}
		}
		body, err := fs.ReadFile(fixtures, dir+"/"+id+".json")
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Not Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}

	mux.HandleFunc("GET /ws/2/{kind}/{id}", func(w http.ResponseWriter, r *http.Request) {
		serve(w, r, r.PathValue("kind"), r.PathValue("id"))
	})
	mux.HandleFunc("GET /releases/{id}", func(w http.ResponseWriter, r *http.Request) {
		serve(w, r, "releases", r.PathValue("id"))
	})
	mux.HandleFunc("GET /masters/{id}", func(w http.ResponseWriter, r *http.Request) {
		serve(w, r, "masters", r.PathValue("id"))
	})
	return mux
}
