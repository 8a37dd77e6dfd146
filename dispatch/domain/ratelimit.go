package domain

// Camada de domínio do rate limit.
//
// O limite é global por cliente (identidade da API), não por destino.

import (
	"context"
	"time"
)

// Limiter entrega permissões de um limite global.
//
// Reserve bloqueia até existir permissão ou até o ctx encerrar. Se o ctx
// encerrar durante a espera, nenhuma permissão fica presa.
//
// refund devolve a permissão quando a tentativa não chegou a ser enviada
// (ex.: ctx cancelado entre a permissão e o envio). Chamar refund depois do
// envio é erro de uso.
type Limiter interface {
	Reserve(ctx context.Context) (refund func(), err error)
}

// Decision é o resultado da política de retry para uma tentativa.
type Decision struct {
	// Retry indica que a mesma Request deve ser reenviada.
	Retry bool
	// Backoff é a espera extra antes da próxima tentativa (além do rate limit).
	// Se 0, a cadência do limiter é o único atraso.
	Backoff time.Duration
}
