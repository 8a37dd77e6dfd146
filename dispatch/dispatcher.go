package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"catalog-client/dispatch/application"
	"catalog-client/dispatch/domain"
	"catalog-client/dispatch/infra"
)

// Dispatcher executa chamadas lógicas pelo pipeline
// admissão -> rate limit -> retry -> timeout -> transporte.
type Dispatcher struct {
	opts Options

	admission application.ConcurrencyService
	retry     application.RetryService
	attempt   application.AttemptService
	limiter   domain.Limiter
	stats     domain.StatsStore
	logger    *log.Logger
}

func New(opts Options) (*Dispatcher, error) {
	if opts.Transport == nil {
		return nil, domain.ErrNilTransport
	}
	opts.applyDefaults()

	pool := opts.Pool
	if pool == nil {
		pool = infra.NewChanPool(opts.Capacity)
	}

	limiter := opts.Limiter
	if limiter == nil {
		switch opts.RateMode {
		case RateModeWindow:
			limiter = infra.NewWindowLimiter(opts.Permits, opts.Interval)
		case RateModeBucket:
			limiter = infra.NewBucketLimiter(opts.Permits, opts.Interval)
		default:
			return nil, fmt.Errorf("dispatch: unknown rate mode %q", opts.RateMode)
		}
	}

	return &Dispatcher{
		opts:      opts,
		admission: application.ConcurrencyService{Pool: pool, AcquireTimeout: opts.AcquireTimeout},
		retry: application.RetryService{
			MaxRetries: opts.MaxRetries,
			Backoff:    opts.Backoff,
			MaxBackoff: opts.MaxBackoff,
		},
		attempt: application.AttemptService{Transport: opts.Transport, Timeout: opts.AttemptTimeout},
		limiter: limiter,
		stats:   opts.Stats,
		logger:  opts.Logger,
	}, nil
}

// Dispatch executa uma chamada lógica de ponta a ponta.
//
// Qualquer status HTTP não retentável volta como Response com err == nil;
// quem chama interpreta 200/404/etc. Falhas retentáveis que esgotam o
// orçamento voltam como *domain.ExhaustedError. Cancelamento do ctx volta
// como o erro do ctx.
func (d *Dispatcher) Dispatch(ctx context.Context, req domain.Request) (domain.Response, error) {
	release, err := d.admission.Acquire(ctx)
	if err != nil {
		return domain.Response{}, err
	}
	defer release()

	policy := d.retry.Start()
	for attempt := 1; ; attempt++ {
		refund, err := d.limiter.Reserve(ctx)
		if err != nil {
			return domain.Response{}, err
		}
		if err := ctx.Err(); err != nil {
			refund()
			return domain.Response{}, err
		}

		resp, err := d.attempt.Do(ctx, req)
		if !application.Retryable(resp, err) {
			if err != nil {
				return domain.Response{}, err
			}
			d.record(ctx, req, attempt, resp.StatusCode, domain.OutcomeOK)
			return resp, nil
		}

		failure := err
		if failure == nil {
			failure = &domain.StatusError{Response: resp}
		}

		dec := policy.Decide(resp, err)
		if !dec.Retry {
			d.record(ctx, req, attempt, resp.StatusCode, domain.OutcomeFail)
			d.logf("dispatch: giving up method=%s url=%s attempts=%s last=%v", req.Method, req.URL, formatInt(attempt), failure)
			return domain.Response{}, &domain.ExhaustedError{Attempts: attempt, Last: failure}
		}

		d.record(ctx, req, attempt, resp.StatusCode, domain.OutcomeRetry)
		d.logf("dispatch: retry method=%s url=%s attempt=%s remaining=%s backoff=%s reason=%v",
			req.Method, req.URL, formatInt(attempt), formatInt(policy.Remaining()), dec.Backoff, failure)

		if err := application.Sleep(ctx, dec.Backoff); err != nil {
			return domain.Response{}, err
		}
	}
}

// Describe resume a configuração para log de inicialização.
func (d *Dispatcher) Describe() string {
	var b strings.Builder
	b.WriteString("capacity=" + formatInt(d.opts.Capacity))
	b.WriteString(" rate=" + d.opts.RateMode)
	b.WriteString(" permits=" + formatInt(d.opts.Permits) + "/" + d.opts.Interval.String())
	if ri, ok := d.limiter.(interface{ RPS() float64 }); ok {
		b.WriteString(" rps=" + formatFloat(ri.RPS()))
	}
	b.WriteString(" retries=" + formatInt(d.opts.MaxRetries))
	b.WriteString(" timeout=" + d.opts.AttemptTimeout.String())
	if d.opts.Backoff > 0 {
		b.WriteString(" backoff=" + d.opts.Backoff.String() + ".." + d.opts.MaxBackoff.String())
	}
	return b.String()
}

func (d *Dispatcher) record(ctx context.Context, req domain.Request, attempt, status int, outcome domain.Outcome) {
	if d.stats == nil {
		return
	}
	_ = d.stats.Record(ctx, domain.StatsEvent{
		Key:     domain.Key(d.opts.Key),
		Outcome: outcome,
		Method:  req.Method,
		Path:    route(req.URL),
		Status:  status,
		Attempt: attempt,
		At:      time.Now(),
	})
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

// route troca o último segmento do path por ":id" para não explodir
// a cardinalidade das estatísticas (um MBID por chamada).
func route(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/"
	}
	dir := path.Dir(strings.TrimSuffix(u.Path, "/"))
	if dir == "/" || dir == "." {
		return u.Path
	}
	return path.Join(dir, ":id")
}

// IsExhausted informa se err é um orçamento de retry esgotado.
func IsExhausted(err error) bool {
	var ee *domain.ExhaustedError
	return errors.As(err, &ee)
}
