package infra

import (
	"context"
	"sync"
	"time"
)

// WindowLimiter entrega `permits` permissões por janela fixa de `interval`.
//
// As janelas são alinhadas no instante de criação. Quem não cabe na janela
// atual reserva a primeira janela futura com vaga e dorme até ela começar;
// assim ninguém fica esperando para sempre.
type WindowLimiter struct {
	mu       sync.Mutex
	permits  int
	interval time.Duration
	origin   time.Time
	// booked: índice da janela -> permissões reservadas
	booked map[int64]int
}

func NewWindowLimiter(permits int, interval time.Duration) *WindowLimiter {
	if permits < 1 {
		permits = 1
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &WindowLimiter{
		permits:  permits,
		interval: interval,
		origin:   time.Now(),
		booked:   make(map[int64]int),
	}
}

func (l *WindowLimiter) Permits() int            { return l.permits }
func (l *WindowLimiter) Interval() time.Duration { return l.interval }

// Reserve implementa domain.Limiter.
func (l *WindowLimiter) Reserve(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	now := time.Now()
	cur := int64(now.Sub(l.origin) / l.interval)
	for w := range l.booked {
		if w < cur {
			delete(l.booked, w)
		}
	}
	w := cur
	for l.booked[w] >= l.permits {
		w++
	}
	l.booked[w]++
	start := l.origin.Add(time.Duration(w) * l.interval)
	l.mu.Unlock()

	if wait := start.Sub(now); wait > 0 {
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			l.release(w)
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	var once sync.Once
	return func() { once.Do(func() { l.release(w) }) }, nil
}

// release devolve uma reserva; janelas já descartadas são ignoradas.
func (l *WindowLimiter) release(w int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n, ok := l.booked[w]; ok {
		if n <= 1 {
			delete(l.booked, w)
			return
		}
		l.booked[w] = n - 1
	}
}
