package dispatch

import (
	"log"
	"time"

	"catalog-client/dispatch/domain"
)

const (
	RateModeWindow = "window"
	RateModeBucket = "bucket"
)

const (
	DefaultCapacity       = 4
	DefaultPermits        = 1
	DefaultInterval       = time.Second
	DefaultMaxRetries     = 3
	DefaultAttemptTimeout = 10 * time.Second
)

// Options é a configuração do pipeline. É copiada em New e não muda depois.
type Options struct {
	// Transport é obrigatório.
	Transport domain.Transport
	// Pool e Limiter, se nil, são criados a partir de Capacity e RateMode/Permits/Interval.
	Pool    domain.SlotPool
	Limiter domain.Limiter
	// Stats é opcional (best-effort).
	Stats domain.StatsStore
	// Key identifica o cliente nas estatísticas (ex.: "musicbrainz").
	Key string
	// Logger nil = silencioso.
	Logger *log.Logger

	Capacity       int
	AcquireTimeout time.Duration

	RateMode string
	Permits  int
	Interval time.Duration

	MaxRetries     int
	AttemptTimeout time.Duration
	Backoff        time.Duration
	MaxBackoff     time.Duration
}

func (o *Options) applyDefaults() {
	if o.Capacity <= 0 {
		o.Capacity = DefaultCapacity
	}
	if o.RateMode == "" {
		o.RateMode = RateModeWindow
	}
	if o.Permits <= 0 {
		o.Permits = DefaultPermits
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.AttemptTimeout <= 0 {
		o.AttemptTimeout = DefaultAttemptTimeout
	}
}
