package infra

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestWindowLimiter_AtMostPermitsPerWindow(t *testing.T) {
	const (
		permits  = 2
		calls    = 5
		interval = 150 * time.Millisecond
	)
	l := NewWindowLimiter(permits, interval)
	boundary := l.origin.Add(interval)

	var (
		mu     sync.Mutex
		before int
		wg     sync.WaitGroup
	)
	wg.Add(calls)
	for i := 0; i < calls; i++ {
		go func() {
			defer wg.Done()
			if _, err := l.Reserve(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if time.Now().Before(boundary) {
				mu.Lock()
				before++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if before > permits {
		t.Fatalf("expected at most %d permits before the first refill, got %d", permits, before)
	}
	if elapsed := time.Since(l.origin); elapsed < 2*interval {
		t.Fatalf("expected the fifth permit in the third window, finished after %s", elapsed)
	}
}

func TestWindowLimiter_CanceledWaitReleasesReservation(t *testing.T) {
	l := NewWindowLimiter(1, time.Hour)

	if _, err := l.Reserve(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := l.Reserve(ctx); err == nil {
		t.Fatalf("expected second reserve to give up with the context")
	}

	l.mu.Lock()
	future := l.booked[1]
	l.mu.Unlock()
	if future != 0 {
		t.Fatalf("expected abandoned reservation to be released, got %d", future)
	}
}

func TestWindowLimiter_RefundReturnsPermit(t *testing.T) {
	l := NewWindowLimiter(1, time.Hour)

	refund, err := l.Reserve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refund()
	refund() // idempotente

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := l.Reserve(ctx); err != nil {
		t.Fatalf("expected refunded permit to be available, got %v", err)
	}
}

func TestWindowLimiter_CanceledContextFailsFast(t *testing.T) {
	l := NewWindowLimiter(1, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Reserve(ctx); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}
