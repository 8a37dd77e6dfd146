package infra

import (
	"context"
	"maps"
	"sync"

	"catalog-client/dispatch/domain"
)

// Counters soma tentativas por desfecho.
type Counters struct {
	OK    int64 `json:"ok"`
	Retry int64 `json:"retry"`
	Fail  int64 `json:"fail"`
}

// Attempts é o total de tentativas contadas.
func (c Counters) Attempts() int64 { return c.OK + c.Retry + c.Fail }

func (c Counters) with(o domain.Outcome) Counters {
	switch o {
	case domain.OutcomeOK:
		c.OK++
	case domain.OutcomeRetry:
		c.Retry++
	default:
		c.Fail++
	}
	return c
}

// StatsSnapshot é a fotografia dos contadores de um MemoryStatsStore.
// Os mapas são cópias e podem ser alterados por quem recebe.
type StatsSnapshot struct {
	Total Counters `json:"total"`
	// Routes usa "MÉTODO template", ex.: "GET /ws/2/artist/:id".
	Routes map[string]Counters `json:"routes"`
	// Keys só recebe eventos com Key preenchida.
	Keys map[string]Counters `json:"keys"`
	// Statuses conta tentativas por status HTTP; 0 é falha de transporte.
	Statuses map[int]int64 `json:"statuses"`
	// Settled conta chamadas encerradas (ok ou fail) pelo número da última tentativa.
	Settled map[int]int64 `json:"settled"`
}

func newStatsSnapshot() StatsSnapshot {
	return StatsSnapshot{
		Routes:   make(map[string]Counters),
		Keys:     make(map[string]Counters),
		Statuses: make(map[int]int64),
		Settled:  make(map[int]int64),
	}
}

func (s StatsSnapshot) clone() StatsSnapshot {
	s.Routes = maps.Clone(s.Routes)
	s.Keys = maps.Clone(s.Keys)
	s.Statuses = maps.Clone(s.Statuses)
	s.Settled = maps.Clone(s.Settled)
	return s
}

// MemoryStatsStore guarda os contadores no próprio processo.
// Serve aos testes e ao resumo impresso pelos binários; nada expira.
type MemoryStatsStore struct {
	mu   sync.Mutex
	snap StatsSnapshot
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{snap: newStatsSnapshot()}
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	route := ev.Method + " " + ev.Path

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Total = s.snap.Total.with(ev.Outcome)
	s.snap.Routes[route] = s.snap.Routes[route].with(ev.Outcome)
	if ev.Key != "" {
		s.snap.Keys[string(ev.Key)] = s.snap.Keys[string(ev.Key)].with(ev.Outcome)
	}
	s.snap.Statuses[ev.Status]++
	if ev.Outcome != domain.OutcomeRetry {
		s.snap.Settled[ev.Attempt]++
	}
	return nil
}

func (s *MemoryStatsStore) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.clone()
}

// Total evita copiar os mapas quando só o agregado interessa.
func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Total
}
