package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"catalog-client/discogs"
	"catalog-client/dispatch"
	"catalog-client/dispatch/infra"
	"catalog-client/musicbrainz"
	"catalog-client/musicbrainz/mbid"
)

const queenID = "0383dadf-2a4e-4d10-a46a-e9e041da8eb3"

// sequence devolve os valores em ordem e depois repete o último.
func sequence(vals ...float64) func() float64 {
	var mu sync.Mutex
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := vals[0]
		if len(vals) > 1 {
			vals = vals[1:]
		}
		return v
	}
}

func newDispatcher(t *testing.T, srv *httptest.Server, retries int) *dispatch.Dispatcher {
	t.Helper()
	d, err := dispatch.New(dispatch.Options{
		Transport:  infra.NewHTTPTransport(infra.HTTPOptions{Client: srv.Client()}),
		Capacity:   2,
		Permits:    1000,
		Interval:   time.Millisecond,
		MaxRetries: retries,
	})
	if err != nil {
		t.Fatalf("dispatch.New: %v", err)
	}
	return d
}

func TestUpstream_ServesFixturesThroughClients(t *testing.T) {
	srv := httptest.NewServer(New(Options{}))
	defer srv.Close()
	d := newDispatcher(t, srv, 0)
	ctx := context.Background()

	mb := musicbrainz.MustNew(musicbrainz.Options{BaseURL: srv.URL + "/ws/2/", Dispatcher: d})
	a, err := musicbrainz.Lookup(ctx, mb, musicbrainz.ArtistKind, mbid.MustParse(queenID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Queen" || a.BeginArea == nil || a.BeginArea.Name != "London" {
		t.Fatalf("unexpected artist %+v", a)
	}

	_, err = musicbrainz.Lookup(ctx, mb, musicbrainz.AreaKind, mbid.MustParse(queenID))
	var nf *musicbrainz.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	dc := discogs.MustNew(discogs.Options{BaseURL: srv.URL, Dispatcher: d})
	m, err := dc.GetMasterRelease(ctx, 96559)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.MainRelease != 249504 {
		t.Fatalf("unexpected master %+v", m)
	}
}

func TestUpstream_FixturesDecode(t *testing.T) {
	srv := httptest.NewServer(New(Options{}))
	defer srv.Close()
	d := newDispatcher(t, srv, 0)
	ctx := context.Background()
	mb := musicbrainz.MustNew(musicbrainz.Options{BaseURL: srv.URL + "/ws/2/", Dispatcher: d})

	checks := map[string]string{
		"area":          "8a754a16-0027-3a29-b6d7-2b40ea0481ed",
		"release":       "b84ee12a-09ef-421b-82de-0441a926375b",
		"release-group": "2e5ce1d2-6b4f-3e0e-9c8f-3f0b5f8d0a6e",
	}
	for kind, id := range checks {
		if _, err := mb.LookupKind(ctx, kind, mbid.MustParse(id)); err != nil {
			t.Fatalf("%s fixture: %v", kind, err)
		}
	}
	dc := discogs.MustNew(discogs.Options{BaseURL: srv.URL, Dispatcher: d})
	if _, err := dc.GetRelease(ctx, 249504); err != nil {
		t.Fatalf("release fixture: %v", err)
	}
}

func TestUpstream_RandomThrottleIsRetried(t *testing.T) {
	stats := infra.NewMemoryStatsStore()
	srv := httptest.NewServer(New(Options{
		ThrottleRate: 0.5,
		Rand:         sequence(0.1, 0.2, 0.9),
		Stats:        stats,
	}))
	defer srv.Close()

	mb := musicbrainz.MustNew(musicbrainz.Options{BaseURL: srv.URL + "/ws/2/", Dispatcher: newDispatcher(t, srv, 3)})
	a, err := musicbrainz.Lookup(context.Background(), mb, musicbrainz.ArtistKind, mbid.MustParse(queenID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Queen" {
		t.Fatalf("unexpected artist %+v", a)
	}
	got := stats.Total()
	if got.Retry != 2 || got.OK != 1 {
		t.Fatalf("expected 2 throttled + 1 served, got %+v", got)
	}
	if st := stats.Snapshot().Statuses; st[http.StatusTooManyRequests] != 2 || st[http.StatusOK] != 1 {
		t.Fatalf("unexpected statuses %v", st)
	}
}

func TestUpstream_PerClientLimit(t *testing.T) {
	h := New(Options{Limits: NewClientLimits(0.02, 1)})

	first := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ws/2/artist/"+queenID, nil)
	h.ServeHTTP(first, r)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ws/2/artist/"+queenID, nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestUpstream_InFlightRejects(t *testing.T) {
	entered := make(chan struct{})
	unblock := make(chan struct{})
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-unblock
	})
	h := inFlight(1, slow)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatalf("first request did not enter")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	close(unblock)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("first request did not finish")
	}
}
