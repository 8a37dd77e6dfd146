package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-client/dispatch/domain"
)

// AttemptService executa uma tentativa limitada por Timeout.
//
// Estourar o timeout vira *domain.TransportError com domain.ErrTimeout.
// Se o ctx de quem chamou encerrou, o erro do ctx volta sem embrulho.
type AttemptService struct {
	Transport domain.Transport
	Timeout   time.Duration
}

func (s AttemptService) Do(ctx context.Context, req domain.Request) (domain.Response, error) {
	actx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	resp, err := s.Transport.Do(actx, req)
	if err == nil {
		return resp, nil
	}

	if cerr := ctx.Err(); cerr != nil {
		return domain.Response{}, cerr
	}
	if errors.Is(actx.Err(), context.DeadlineExceeded) {
		return domain.Response{}, &domain.TransportError{
			Method: req.Method,
			URL:    req.URL,
			Err:    fmt.Errorf("%w after %s", domain.ErrTimeout, s.Timeout),
		}
	}

	var te *domain.TransportError
	if errors.As(err, &te) {
		return domain.Response{}, err
	}
	return domain.Response{}, &domain.TransportError{Method: req.Method, URL: req.URL, Err: err}
}
