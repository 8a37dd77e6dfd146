package main

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"catalog-client/dispatch"
	"catalog-client/dispatch/domain"
	"catalog-client/musicbrainz"
	"catalog-client/musicbrainz/mbid"
)

type transportFunc func(ctx context.Context, req domain.Request) (domain.Response, error)

func (f transportFunc) Do(ctx context.Context, req domain.Request) (domain.Response, error) {
	return f(ctx, req)
}

func TestReadIDs(t *testing.T) {
	in := "# queen\n0383dadf-2a4e-4d10-a46a-e9e041da8eb3\n\n  8A754A16-0027-3A29-B6D7-2B40EA0481ED  \n"
	ids, err := readIDs(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[1].String() != "8a754a16-0027-3a29-b6d7-2b40ea0481ed" {
		t.Fatalf("unexpected ids %v", ids)
	}

	if _, err := readIDs(strings.NewReader("0383dadf\n")); err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected line error, got %v", err)
	}
	if _, err := readIDs(strings.NewReader("# nada\n")); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestLookupAll_BoundedByCapacity(t *testing.T) {
	const capacity = 2
	var inFlight, peak atomic.Int32
	tr := transportFunc(func(_ context.Context, req domain.Request) (domain.Response, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		if strings.HasSuffix(req.URL, "00000000-0000-0000-0000-000000000003") {
			return domain.Response{StatusCode: http.StatusNotFound}, nil
		}
		return domain.Response{StatusCode: http.StatusOK, Body: []byte(`{"name":"x","sort-name":"x","life-span":{"ended":false}}`)}, nil
	})
	d, err := dispatch.New(dispatch.Options{Transport: tr, Capacity: capacity, Permits: 1000, Interval: time.Millisecond})
	if err != nil {
		t.Fatalf("dispatch.New: %v", err)
	}
	c := musicbrainz.MustNew(musicbrainz.Options{Dispatcher: d})

	var ids []mbid.MBID
	for i := uint64(1); i <= 6; i++ {
		ids = append(ids, mbid.FromUint128(0, i))
	}
	var buf bytes.Buffer
	failed := lookupAll(context.Background(), c, "artist", ids, log.New(&buf, "", 0))

	if failed != 1 {
		t.Fatalf("expected 1 failure, got %d\n%s", failed, buf.String())
	}
	if peak.Load() > capacity {
		t.Fatalf("expected at most %d in flight, got %d", capacity, peak.Load())
	}
	if !strings.Contains(buf.String(), "not found") {
		t.Fatalf("expected not found line in log:\n%s", buf.String())
	}
}
