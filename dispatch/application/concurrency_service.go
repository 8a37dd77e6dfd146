package application

import (
	"context"
	"errors"
	"time"

	"catalog-client/dispatch/domain"
)

// ErrAcquireTimeout é retornado quando AcquireTimeout expira sem vaga.
var ErrAcquireTimeout = errors.New("dispatch: timed out waiting for an admission slot")

// ConcurrencyService concentra a regra de aquisição/liberação de vagas,
// sem saber nada sobre HTTP.
//
// Quem passa da capacidade espera (backpressure), não é rejeitado.
type ConcurrencyService struct {
	Pool           domain.SlotPool
	AcquireTimeout time.Duration
}

// Acquire espera uma vaga.
// - Se `AcquireTimeout <= 0`, espera indefinidamente (até ctx cancelar).
// - Se `AcquireTimeout > 0`, espera até o timeout e devolve ErrAcquireTimeout.
// Em erro nenhuma vaga foi adquirida e release é nil.
func (s ConcurrencyService) Acquire(ctx context.Context) (func(), error) {
	if s.Pool == nil {
		return func() {}, nil
	}

	acqCtx := ctx
	if s.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		acqCtx, cancel = context.WithTimeout(ctx, s.AcquireTimeout)
		defer cancel()
	}

	release, ok := s.Pool.Acquire(acqCtx)
	if ok {
		return release, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrAcquireTimeout
}
