package infra

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// BucketLimiter é uma implementação de infra baseada em token-bucket (x/time/rate).
//
// Diferente do WindowLimiter, o reabastecimento é contínuo: `permits` por
// `interval`, com rajada inicial de `permits`.
type BucketLimiter struct {
	lim      *rate.Limiter
	permits  int
	interval time.Duration
}

func NewBucketLimiter(permits int, interval time.Duration) *BucketLimiter {
	if permits < 1 {
		permits = 1
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &BucketLimiter{
		lim:      rate.NewLimiter(rate.Every(interval/time.Duration(permits)), permits),
		permits:  permits,
		interval: interval,
	}
}

func (b *BucketLimiter) Permits() int            { return b.permits }
func (b *BucketLimiter) Interval() time.Duration { return b.interval }
func (b *BucketLimiter) RPS() float64            { return float64(b.lim.Limit()) }

// Reserve implementa domain.Limiter. O refund usa Reservation.Cancel, que
// devolve os tokens "tanto quanto possível".
func (b *BucketLimiter) Reserve(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := b.lim.Reserve()
	if !r.OK() {
		return nil, errors.New("dispatch: rate limiter cannot grant a permit")
	}

	if d := r.Delay(); d > 0 {
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			r.Cancel()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return r.Cancel, nil
}
