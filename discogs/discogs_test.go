package discogs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"catalog-client/dispatch"
	"catalog-client/dispatch/infra"
)

const releaseBody = `{
  "id": 249504,
  "title": "Never Gonna Give You Up",
  "status": "Accepted",
  "year": 1987,
  "country": "UK",
  "date_added": "2004-04-30T08:10:05-07:00",
  "date_changed": "2012-12-03T02:50:12-07:00",
  "lowest_price": 0.63,
  "master_id": 96559,
  "artists": [{"id": 72872, "name": "Rick Astley", "anv": "", "join": "", "role": "", "tracks": "", "resource_url": "https://api.discogs.com/artists/72872"}],
  "formats": [{"name": "Vinyl", "qty": "1", "descriptions": ["7\"", "45 RPM", "Single"]}],
  "tracklist": [{"position": "A", "type_": "track", "title": "Never Gonna Give You Up", "duration": "3:32"}],
  "community": {"have": 252, "want": 42, "rating": {"average": 3.42, "count": 45}, "status": "Accepted", "data_quality": "Correct", "submitter": {"username": "memory", "resource_url": "https://api.discogs.com/users/memory"}}
}`

func newTestClient(t *testing.T, srv *httptest.Server, token string) *Client {
	t.Helper()
	d, err := dispatch.New(dispatch.Options{
		Transport:  infra.NewHTTPTransport(infra.HTTPOptions{Client: srv.Client()}),
		Key:        "discogs",
		Permits:    1000,
		Interval:   time.Millisecond,
		MaxRetries: 1,
	})
	if err != nil {
		t.Fatalf("dispatch.New: %v", err)
	}
	c, err := New(Options{BaseURL: srv.URL, Token: token, Dispatcher: d})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestGetRelease(t *testing.T) {
	seen := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(releaseBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "abc123")
	rel, err := c.GetRelease(context.Background(), 249504)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := <-seen
	if r.URL.Path != "/releases/249504" {
		t.Fatalf("unexpected path %s", r.URL.Path)
	}
	if got := r.Header.Get("Authorization"); got != "Discogs token=abc123" {
		t.Fatalf("unexpected Authorization %q", got)
	}
	if rel.Title != "Never Gonna Give You Up" || rel.Artists[0].Name != "Rick Astley" {
		t.Fatalf("unexpected release %+v", rel)
	}
	if rel.LowestPrice == nil || *rel.LowestPrice != 0.63 || rel.EstimatedWeight != nil {
		t.Fatalf("unexpected optional fields %+v", rel)
	}
	if rel.DateAdded.Year() != 2004 || rel.Community.Rating.Count != 45 {
		t.Fatalf("unexpected nested fields %+v", rel)
	}
}

func TestGetMasterRelease_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/masters/96559" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id": 96559, "title": "Never Gonna Give You Up", "main_release": 249504, "year": 1987}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, "")
	m, err := c.GetMasterRelease(context.Background(), 96559)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.MainRelease != 249504 {
		t.Fatalf("unexpected master %+v", m)
	}
}

func TestGet_Errors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/releases/1":
			w.WriteHeader(http.StatusNotFound)
		case "/releases/2":
			w.WriteHeader(http.StatusTooManyRequests)
		case "/releases/3":
			_, _ = w.Write([]byte(`{"id": "not-a-number"}`))
		case "/releases/5":
			_, _ = w.Write([]byte(`{"id": 5 "title": "x"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()
	c := newTestClient(t, srv, "")
	ctx := context.Background()

	_, err := c.GetRelease(ctx, 1)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != 1 || nf.Resource != "release" {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	calls.Store(0)
	_, err = c.GetRelease(ctx, 2)
	var us *UnknownStatusError
	if !errors.As(err, &us) || us.Code != http.StatusTooManyRequests || !dispatch.IsExhausted(err) {
		t.Fatalf("expected exhausted 429, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 1 retry, got %d calls", calls.Load())
	}

	_, err = c.GetRelease(ctx, 3)
	var de *DecodeError
	if !errors.As(err, &de) || de.Field != "id" || de.Offset == 0 {
		t.Fatalf("expected DecodeError on id, got %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "field id") || !strings.Contains(msg, fmt.Sprintf("at offset %d", de.Offset)) {
		t.Fatalf("expected field and offset in message, got %q", msg)
	}

	_, err = c.GetRelease(ctx, 5)
	if !errors.As(err, &de) || de.Field != "" || de.Offset == 0 {
		t.Fatalf("expected syntax DecodeError with offset, got %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, fmt.Sprintf("at offset %d", de.Offset)) {
		t.Fatalf("expected offset in message, got %q", msg)
	}

	_, err = c.GetRelease(ctx, 4)
	if !errors.As(err, &us) || us.Code != http.StatusInternalServerError {
		t.Fatalf("expected UnknownStatusError 500, got %v", err)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNilDispatcher) {
		t.Fatalf("expected ErrNilDispatcher, got %v", err)
	}
	d, err := dispatch.New(dispatch.Options{Transport: infra.NewHTTPTransport(infra.HTTPOptions{})})
	if err != nil {
		t.Fatalf("dispatch.New: %v", err)
	}
	if _, err := New(Options{Dispatcher: d, BaseURL: "api.discogs.com"}); !errors.Is(err, ErrInvalidBaseURL) {
		t.Fatalf("expected ErrInvalidBaseURL, got %v", err)
	}
	c := MustNew(Options{Dispatcher: d})
	req := c.request("releases", 249504)
	if req.URL != "https://api.discogs.com/releases/249504" {
		t.Fatalf("unexpected url %s", req.URL)
	}
	if req.Header.Get("Authorization") != "" {
		t.Fatalf("expected no Authorization without token")
	}
}
