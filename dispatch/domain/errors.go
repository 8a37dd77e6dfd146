package domain

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrTimeout marca uma tentativa que excedeu o timeout por tentativa.
	ErrTimeout = errors.New("dispatch: attempt timed out")
	// ErrNilTransport é retornado na construção sem transporte.
	ErrNilTransport = errors.New("dispatch: nil transport")
)

// TransportError é uma falha de rede numa tentativa (sem resposta HTTP).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout informa se a falha foi o timeout da tentativa.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, ErrTimeout) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// StatusError carrega uma resposta HTTP tratada como falha (408/429).
type StatusError struct {
	Response Response
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.Response.StatusCode)
}

// ExhaustedError é terminal: o orçamento de retry acabou.
// Last é a última falha (TransportError ou StatusError).
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("dispatch: giving up after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
