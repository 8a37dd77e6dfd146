// Package discogs é um cliente mínimo da API do Discogs (releases e masters),
// usando o mesmo pipeline de dispatch do cliente MusicBrainz.
//
// A API limita a 60 requisições por minuto com token; monte o Dispatcher
// com RatePermits/RateInterval.
package discogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"catalog-client/dispatch"
	"catalog-client/dispatch/domain"
)

const (
	DefaultBaseURL   = "https://api.discogs.com/"
	DefaultUserAgent = "catalog-client/0.1 +https://github.com/catalog-client"

	RatePermits  = 60
	RateInterval = time.Minute
)

var (
	ErrInvalidBaseURL = errors.New("discogs: invalid base url")
	ErrNilDispatcher  = errors.New("discogs: nil dispatcher")
)

type Options struct {
	BaseURL   string
	UserAgent string
	// Token pessoal; vazio = chamadas anônimas (imagens vêm sem uri).
	Token      string
	Dispatcher *dispatch.Dispatcher
}

type Client struct {
	base      *url.URL
	userAgent string
	token     string
	d         *dispatch.Dispatcher
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
	u, err := url.Parse(strings.TrimSpace(opts.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, opts.BaseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &Client{base: u, userAgent: opts.UserAgent, token: strings.TrimSpace(opts.Token), d: opts.Dispatcher}, nil
}

func MustNew(opts Options) *Client {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

// GetRelease busca /releases/{id}.
func (c *Client) GetRelease(ctx context.Context, id uint64) (Release, error) {
	return get[Release](ctx, c, "release", "releases", id)
}

// GetMasterRelease busca /masters/{id}.
func (c *Client) GetMasterRelease(ctx context.Context, id uint64) (MasterRelease, error) {
	return get[MasterRelease](ctx, c, "master release", "masters", id)
}

func (c *Client) request(collection string, id uint64) domain.Request {
	u := c.base.ResolveReference(&url.URL{Path: collection + "/" + strconv.FormatUint(id, 10)})
	req := domain.Get(u.String()).WithHeader("User-Agent", c.userAgent)
	if c.token != "" {
		req = req.WithHeader("Authorization", "Discogs token="+c.token)
	}
	return req
}

func get[T any](ctx context.Context, c *Client, resource, collection string, id uint64) (T, error) {
	var v T
	resp, err := c.d.Dispatch(ctx, c.request(collection, id))
	if err != nil {
		var ee *domain.ExhaustedError
		var se *domain.StatusError
		if errors.As(err, &ee) && errors.As(ee.Last, &se) {
			return v, &UnknownStatusError{Resource: resource, Code: se.Response.StatusCode, Err: err}
		}
		return v, fmt.Errorf("discogs: get %s %d: %w", resource, id, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return v, &NotFoundError{Resource: resource, ID: id}
	default:
		return v, &UnknownStatusError{Resource: resource, Code: resp.StatusCode}
	}

	if err := json.Unmarshal(resp.Body, &v); err != nil {
		de := &DecodeError{Resource: resource, ID: id, Err: err}
		var te *json.UnmarshalTypeError
		var se *json.SyntaxError
		switch {
		case errors.As(err, &te):
			de.Field, de.Offset = te.Field, te.Offset
		case errors.As(err, &se):
			de.Offset = se.Offset
		}
		return v, de
	}
	return v, nil
}
