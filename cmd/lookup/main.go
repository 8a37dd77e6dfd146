// Command lookup busca uma entidade MusicBrainz pelo MBID.
//
//	lookup [-json] [-entity kind] [-query path] <mbid>
//
// Sem -entity tenta todos os kinds conhecidos e imprime os que casarem.
// -query aplica um caminho gjson (ex.: "life-span.begin") na saída JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-client/internal/config"
	"catalog-client/musicbrainz"
	"catalog-client/musicbrainz/mbid"

	"github.com/tidwall/gjson"
)

type args struct {
	json   bool
	entity string
	query  string
	id     mbid.MBID
}

func main() {
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("usage error: %v", err)
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

	log.Printf("lookup: base=%s userAgent=%q", client.BaseURL(), cfg.Catalog.UserAgent)
	log.Printf("dispatch: %s", d.Describe())
	log.Printf("stats: enabled=%v redisAddr=%q bucket=%q ttl=%s", cfg.Stats.Enabled, cfg.Stats.RedisAddr, cfg.Stats.Bucket, cfg.Stats.TTL.Std())

	if err := run(ctx, client, a, os.Stdout); err != nil {
		log.Fatalf("lookup error: %v", err)
	}
}

func parseArgs(argv []string) (args, error) {
	var a args
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.BoolVar(&a.json, "json", false, "imprime JSON indentado")
	fs.StringVar(&a.entity, "entity", "", "kind da entidade (area, artist, release, release-group, ...)")
	fs.StringVar(&a.query, "query", "", "caminho gjson aplicado ao JSON da entidade")
	if err := fs.Parse(argv); err != nil {
		return args{}, err
	}
	if fs.NArg() != 1 {
		return args{}, errors.New("expected exactly one MBID")
	}
	id, err := mbid.Parse(fs.Arg(0))
	if err != nil {
		return args{}, err
	}
	a.id = id
	if a.entity != "" {
		name, ok := musicbrainz.ParseKindName(a.entity)
		if !ok {
			return args{}, fmt.Errorf("unknown entity %q", a.entity)
		}
		a.entity = name
	}
	return a, nil
}

func run(ctx context.Context, client *musicbrainz.Client, a args, w io.Writer) error {
	kinds := musicbrainz.KnownKinds
	if a.entity != "" {
		kinds = []string{a.entity}
	}

	var found []any
	for _, kind := range kinds {
		v, err := client.LookupKind(ctx, kind, a.id)
		if err != nil {
			if a.entity != "" {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("no %s with MBID %s: %v", kind, a.id, err)
			continue
		}
		found = append(found, v)
	}
	if len(found) == 0 {
		return fmt.Errorf("MBID %s is not valid for any known MusicBrainz entity", a.id)
	}

	for _, v := range found {
		if err := render(w, a, v); err != nil {
			return err
		}
	}
	return nil
}

func render(w io.Writer, a args, v any) error {
	if !a.json && a.query == "" {
		_, err := fmt.Fprintf(w, "%+v\n", v)
		return err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if a.query != "" {
		res := gjson.GetBytes(out, a.query)
		if !res.Exists() {
			return fmt.Errorf("query %q matched nothing", a.query)
		}
		_, err = fmt.Fprintln(w, res.String())
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
