package domain

import "context"

// Transport envia uma única tentativa e devolve status + corpo.
//
// Falhas de rede (inclusive timeout) voltam como erro; qualquer status HTTP,
// inclusive 4xx/5xx, volta como Response.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}
