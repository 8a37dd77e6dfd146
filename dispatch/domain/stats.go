package domain

import (
	"context"
	"time"
)

type Key string

// Outcome é o desfecho de uma tentativa.
type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeRetry Outcome = "retry"
	OutcomeFail  Outcome = "fail"
)

// StatsEvent representa uma tentativa que passou pelo pipeline.
//
// Observação: cuidado com cardinalidade (ex.: salvar Key/Path sem controle pode
// explodir o número de chaves numa base como Redis).
type StatsEvent struct {
	Key     Key
	Outcome Outcome

	Method string
	Path   string
	Status int

	// Attempt começa em 1.
	Attempt int

	At time.Time
}

// StatsStore é a estratégia de persistência das estatísticas do dispatch.
//
// O dispatcher trata erro como best-effort (não derruba a chamada).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
