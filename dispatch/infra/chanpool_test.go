package infra

import (
	"context"
	"testing"
	"time"
)

func TestChanPool_BlocksBeyondCapacityUntilRelease(t *testing.T) {
	p := NewChanPool(1)

	release, ok := p.Acquire(context.Background())
	if !ok {
		t.Fatalf("expected first acquire to succeed")
	}

	got := make(chan bool, 1)
	go func() {
		r, ok := p.Acquire(context.Background())
		if ok {
			r()
		}
		got <- ok
	}()

	select {
	case <-got:
		t.Fatalf("expected second acquire to wait for a slot")
	case <-time.After(30 * time.Millisecond):
	}

	release()

	select {
	case ok := <-got:
		if !ok {
			t.Fatalf("expected second acquire to succeed after release")
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting second acquire")
	}
	if p.InFlight() != 0 {
		t.Fatalf("expected no slots in flight, got %d", p.InFlight())
	}
}

func TestChanPool_CanceledContextTakesNoSlot(t *testing.T) {
	p := NewChanPool(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok := p.Acquire(ctx); ok {
		t.Fatalf("expected acquire with canceled ctx to fail")
	}
	if p.InFlight() != 0 {
		t.Fatalf("expected no slot taken, got %d", p.InFlight())
	}
}

func TestNewChanPool_MinimumCapacity(t *testing.T) {
	if c := NewChanPool(0).Capacity(); c != 1 {
		t.Fatalf("expected capacity 1, got %d", c)
	}
}
