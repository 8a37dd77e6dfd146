package application

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"catalog-client/dispatch/domain"
)

// Retryable classifica o resultado de uma tentativa.
//
// Retentável: HTTP 408, HTTP 429 ou qualquer falha de transporte (inclusive
// timeout). Cancelamento de quem chamou nunca é retentável.
func Retryable(resp domain.Response, err error) bool {
	if err != nil {
		var te *domain.TransportError
		return errors.As(err, &te)
	}
	switch resp.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return false
}

// RetryService guarda a configuração de retry; Start cria o estado de uma chamada.
//
// Backoff 0 desliga a espera exponencial: a cadência do rate limit passa a ser
// o único atraso entre tentativas.
type RetryService struct {
	MaxRetries int
	Backoff    time.Duration
	MaxBackoff time.Duration

	// Jitter recebe o teto da espera e devolve a espera efetiva.
	// Se nil, usa full jitter uniforme em [0, teto].
	Jitter func(ceiling time.Duration) time.Duration
}

func (s RetryService) Start() *RetryPolicy {
	remaining := s.MaxRetries
	if remaining < 0 {
		remaining = 0
	}
	return &RetryPolicy{svc: s, remaining: remaining}
}

// RetryPolicy é o estado Attempting(remaining) de uma única chamada lógica.
// Não é seguro para uso concorrente; tentativas são sempre sequenciais.
type RetryPolicy struct {
	svc       RetryService
	remaining int
	retries   int
}

func (p *RetryPolicy) Remaining() int { return p.remaining }

// Retries devolve quantos reenvios já foram autorizados.
func (p *RetryPolicy) Retries() int { return p.retries }

// Decide consome orçamento só para falhas retentáveis.
// Retry=false com falha retentável significa orçamento esgotado (terminal).
func (p *RetryPolicy) Decide(resp domain.Response, err error) domain.Decision {
	if !Retryable(resp, err) {
		return domain.Decision{}
	}
	if p.remaining == 0 {
		return domain.Decision{}
	}
	p.remaining--
	p.retries++
	return domain.Decision{Retry: true, Backoff: p.backoff(p.retries)}
}

func (p *RetryPolicy) backoff(retry int) time.Duration {
	base := p.svc.Backoff
	if base <= 0 {
		return 0
	}
	ceiling := base
	for i := 1; i < retry && ceiling <= math.MaxInt64/2; i++ {
		if p.svc.MaxBackoff > 0 && ceiling >= p.svc.MaxBackoff {
			break
		}
		ceiling *= 2
	}
	if p.svc.MaxBackoff > 0 && ceiling > p.svc.MaxBackoff {
		ceiling = p.svc.MaxBackoff
	}
	if p.svc.Jitter != nil {
		return p.svc.Jitter(ceiling)
	}
	return time.Duration(rand.Int64N(int64(ceiling) + 1))
}

// Sleep espera d ou até o ctx encerrar.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
