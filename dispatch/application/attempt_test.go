package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-client/dispatch/domain"
)

type transportFunc func(ctx context.Context, req domain.Request) (domain.Response, error)

func (f transportFunc) Do(ctx context.Context, req domain.Request) (domain.Response, error) {
	return f(ctx, req)
}

func hang(ctx context.Context, _ domain.Request) (domain.Response, error) {
	<-ctx.Done()
	return domain.Response{}, ctx.Err()
}

func TestAttemptService_TimeoutIsTransportError(t *testing.T) {
	svc := AttemptService{Transport: transportFunc(hang), Timeout: 10 * time.Millisecond}

	_, err := svc.Do(context.Background(), domain.Get("http://example/artist/x"))

	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T %v", err, err)
	}
	if !te.Timeout() || !errors.Is(err, domain.ErrTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}
	if !Retryable(domain.Response{}, err) {
		t.Fatalf("expected timeout to be retryable")
	}
}

func TestAttemptService_CallerCancellationIsNotWrapped(t *testing.T) {
	svc := AttemptService{Transport: transportFunc(hang), Timeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := svc.Do(ctx, domain.Get("http://example/"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if Retryable(domain.Response{}, err) {
		t.Fatalf("expected cancellation not to be retryable")
	}
}

func TestAttemptService_WrapsPlainErrors(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	svc := AttemptService{Transport: transportFunc(func(context.Context, domain.Request) (domain.Response, error) {
		return domain.Response{}, boom
	})}

	_, err := svc.Do(context.Background(), domain.Get("http://example/"))
	var te *domain.TransportError
	if !errors.As(err, &te) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped TransportError, got %v", err)
	}
	if te.Timeout() {
		t.Fatalf("expected non-timeout transport error")
	}
}

func TestAttemptService_PassesResponsesThrough(t *testing.T) {
	svc := AttemptService{Transport: transportFunc(func(context.Context, domain.Request) (domain.Response, error) {
		return domain.Response{StatusCode: 503, Body: []byte("busy")}, nil
	}), Timeout: time.Second}

	resp, err := svc.Do(context.Background(), domain.Get("http://example/"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.StatusCode != 503 || string(resp.Body) != "busy" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
