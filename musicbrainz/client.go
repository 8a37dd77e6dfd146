package musicbrainz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"catalog-client/dispatch"
	"catalog-client/dispatch/domain"
	"catalog-client/musicbrainz/mbid"
)

const (
	DefaultBaseURL   = "https://musicbrainz.org/ws/2/"
	DefaultUserAgent = "catalog-client/0.1 ( https://github.com/catalog-client )"
)

type Options struct {
	// BaseURL vazio = DefaultBaseURL.
	BaseURL string
	// UserAgent vazio = DefaultUserAgent. O catálogo bloqueia clientes sem UA.
	UserAgent string
	// Dispatcher é obrigatório e pode ser compartilhado entre clientes.
	Dispatcher *dispatch.Dispatcher
	// Registry nil = DefaultRegistry().
	Registry *Registry
}

type Client struct {
	base      *url.URL
	userAgent string
	d         *dispatch.Dispatcher
	registry  *Registry
}

func New(opts Options) (*Client, error) {
	if opts.Dispatcher == nil {
		return nil, ErrNilDispatcher
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}

	base, err := parseBase(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		base:      base,
		userAgent: opts.UserAgent,
		d:         opts.Dispatcher,
		registry:  opts.Registry,
	}, nil
}

// MustNew é para URLs literais; entrada de usuário deve passar por New.
func MustNew(opts Options) *Client {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

// BaseURL devolve a base normalizada (sempre com "/" no fim).
func (c *Client) BaseURL() string { return c.base.String() }

func (c *Client) Registry() *Registry { return c.registry }

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("%w: %q has query or fragment", ErrInvalidBaseURL, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

func (c *Client) entityURL(kind string, id mbid.MBID) (string, error) {
	// PathEscape não toca em "." nem "..", que subiriam acima da base
	switch kind {
	case "", ".", "..":
		return "", &URLError{Kind: kind, ID: id, Err: ErrInvalidKind}
	}
	ref, err := url.Parse(url.PathEscape(kind) + "/" + id.String())
	if err != nil {
		return "", &URLError{Kind: kind, ID: id, Err: err}
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", &URLError{Kind: kind, ID: id, Err: errors.New("entity path is not relative")}
	}
	u := c.base.ResolveReference(ref)
	if !strings.HasPrefix(u.Path, c.base.Path) {
		return "", &URLError{Kind: kind, ID: id, Err: ErrInvalidKind}
	}
	return u.String(), nil
}

// fetch faz o GET e traduz o status; só devolve o corpo em 200.
func (c *Client) fetch(ctx context.Context, kind string, id mbid.MBID) ([]byte, error) {
	u, err := c.entityURL(kind, id)
	if err != nil {
		return nil, err
	}
	req := domain.Get(u).WithHeader("User-Agent", c.userAgent)

	resp, err := c.d.Dispatch(ctx, req)
	if err != nil {
		var ee *domain.ExhaustedError
		var se *domain.StatusError
		if errors.As(err, &ee) && errors.As(ee.Last, &se) {
			return nil, &UnknownStatusError{Kind: kind, Code: se.Response.StatusCode, Err: err}
		}
		return nil, fmt.Errorf("musicbrainz: lookup %s %s: %w", kind, id, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		return nil, &NotFoundError{Kind: kind, ID: id}
	default:
		return nil, &UnknownStatusError{Kind: kind, Code: resp.StatusCode}
	}
}
