package infra

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"catalog-client/dispatch/domain"

	"golang.org/x/net/http2"
)

// DefaultMaxBodyBytes limita o corpo lido de uma resposta.
const DefaultMaxBodyBytes = 8 << 20

type HTTPOptions struct {
	// Client tem prioridade sobre HTTP2 quando definido.
	Client *http.Client
	// HTTP2 força HTTP/2 (só https).
	HTTP2        bool
	MaxBodyBytes int64
}

// HTTPTransport implementa domain.Transport em cima de net/http.
type HTTPTransport struct {
	client  *http.Client
	maxBody int64
}

func NewHTTPTransport(opts HTTPOptions) *HTTPTransport {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
		if opts.HTTP2 {
			client.Transport = &http2.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			}
		}
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &HTTPTransport{client: client, maxBody: opts.MaxBodyBytes}
}

// Do monta um *http.Request novo a cada chamada, então a mesma
// domain.Request pode ser reenviada sem restrição.
func (t *HTTPTransport) Do(ctx context.Context, req domain.Request) (domain.Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return domain.Response{}, &domain.TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	if req.Header != nil {
		hreq.Header = req.Header.Clone()
	}

	hresp, err := t.client.Do(hreq)
	if err != nil {
		return domain.Response{}, &domain.TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	defer func() { _ = hresp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(hresp.Body, t.maxBody+1))
	if err != nil {
		return domain.Response{}, &domain.TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	if int64(len(data)) > t.maxBody {
		return domain.Response{}, &domain.TransportError{
			Method: req.Method,
			URL:    req.URL,
			Err:    fmt.Errorf("response body exceeds %d bytes", t.maxBody),
		}
	}

	return domain.Response{StatusCode: hresp.StatusCode, Header: hresp.Header, Body: data}, nil
}
