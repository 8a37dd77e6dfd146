// Command lookup-list lê um MBID por linha e busca cada um no catálogo.
//
//	lookup-list -entity artist ids.txt
//
// Todas as buscas saem ao mesmo tempo e dividem o mesmo Dispatcher; a
// admissão e o rate limit seguram o ritmo. Linhas vazias e "#..." são ignoradas.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"catalog-client/dispatch/infra"
	"catalog-client/internal/config"
	"catalog-client/musicbrainz"
	"catalog-client/musicbrainz/mbid"
)

func main() {
	entity := flag.String("entity", "artist", "area, artist, release ou release-group")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: lookup-list -entity kind <file>")
	}
	*entity, _ = musicbrainz.ParseKindName(*entity)
	if _, ok := describers[*entity]; !ok {
		log.Fatalf("unsupported entity %q", *entity)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	ids, err := readIDs(f)
	_ = f.Close()
	if err != nil {
		log.Fatalf("read: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats, closeStats, err := cfg.OpenStats(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = closeStats() }()

	// sem Redis, conta em memória só para o resumo final
	var summary *infra.MemoryStatsStore
	if stats == nil {
		summary = infra.NewMemoryStatsStore()
		stats = summary
	}

	d, err := cfg.NewDispatcher(cfg.DispatchOptions(), "musicbrainz", stats)
	if err != nil {
		log.Fatalf("dispatch error: %v", err)
	}
	client, err := musicbrainz.New(musicbrainz.Options{
		BaseURL:    cfg.Catalog.BaseURL,
		UserAgent:  cfg.Catalog.UserAgent,
		Dispatcher: d,
	})
	if err != nil {
		log.Fatalf("invalid CATALOG_BASE_URL: %v", err)
	}

	log.Printf("lookup-list: entity=%s ids=%d base=%s", *entity, len(ids), client.BaseURL())
	log.Printf("dispatch: %s", d.Describe())

	failed := lookupAll(ctx, client, *entity, ids, log.Default())
	if summary != nil {
		snap := summary.Snapshot()
		log.Printf("attempts: ok=%d retry=%d fail=%d", snap.Total.OK, snap.Total.Retry, snap.Total.Fail)
		log.Printf("settled by attempt: %v", snap.Settled)
	}
	if failed > 0 {
		log.Fatalf("%d of %d lookups failed", failed, len(ids))
	}
}

func readIDs(r io.Reader) ([]mbid.MBID, error) {
	var ids []mbid.MBID
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		id, err := mbid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errors.New("no MBIDs in input")
	}
	return ids, nil
}

// describers devolve o nome/título de cada kind suportado.
var describers = map[string]func(ctx context.Context, c *musicbrainz.Client, id mbid.MBID) (string, error){
	"area": func(ctx context.Context, c *musicbrainz.Client, id mbid.MBID) (string, error) {
		a, err := musicbrainz.Lookup(ctx, c, musicbrainz.AreaKind, id)
		return a.Name, err
	},
	"artist": func(ctx context.Context, c *musicbrainz.Client, id mbid.MBID) (string, error) {
		a, err := musicbrainz.Lookup(ctx, c, musicbrainz.ArtistKind, id)
		return a.Name, err
	},
	"release": func(ctx context.Context, c *musicbrainz.Client, id mbid.MBID) (string, error) {
		r, err := musicbrainz.Lookup(ctx, c, musicbrainz.ReleaseKind, id)
		return r.Title, err
	},
	"release-group": func(ctx context.Context, c *musicbrainz.Client, id mbid.MBID) (string, error) {
		rg, err := musicbrainz.Lookup(ctx, c, musicbrainz.ReleaseGroupKind, id)
		return rg.Title, err
	},
}

// lookupAll busca todos os ids em paralelo e devolve quantos falharam.
func lookupAll(ctx context.Context, c *musicbrainz.Client, entity string, ids []mbid.MBID, logger *log.Logger) int {
	describe := describers[entity]

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id mbid.MBID) {
			defer wg.Done()
			name, err := describe(ctx, c, id)
			if err != nil {
				logger.Printf("%s %s: %v", entity, id, err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			logger.Printf("%s %s: %s", entity, id, name)
		}(id)
	}
	wg.Wait()
	return failed
}
