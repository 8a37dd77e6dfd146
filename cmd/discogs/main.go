// Command discogs busca um release ou master no Discogs.
//
//	discogs [-master] [-query path] <id>
//
// Usa DISCOGS_TOKEN se definido e o rate de 60 requisições por minuto.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"catalog-client/discogs"
	"catalog-client/internal/config"

	"github.com/tidwall/gjson"
)

func main() {
	master := flag.Bool("master", false, "busca /masters/{id} em vez de /releases/{id}")
	query := flag.String("query", "", "caminho gjson aplicado ao JSON (ex.: tracklist.#.title)")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: discogs [-master] [-query path] <id>")
	}
	id, err := strconv.ParseUint(flag.Arg(0), 10, 64)
	if err != nil {
		log.Fatalf("invalid id %q: %v", flag.Arg(0), err)
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

	d, err := cfg.NewDispatcher(cfg.DiscogsDispatchOptions(), "discogs", stats)
	if err != nil {
		log.Fatalf("dispatch error: %v", err)
	}
	client, err := discogs.New(discogs.Options{
		BaseURL:    cfg.Discogs.BaseURL,
		UserAgent:  cfg.Catalog.UserAgent,
		Token:      cfg.Discogs.Token,
		Dispatcher: d,
	})
	if err != nil {
		log.Fatalf("invalid DISCOGS_BASE_URL: %v", err)
	}

	log.Printf("discogs: base=%s token=%v", cfg.Discogs.BaseURL, cfg.Discogs.Token != "")
	log.Printf("dispatch: %s", d.Describe())

	var v any
	if *master {
		v, err = client.GetMasterRelease(ctx, id)
	} else {
		v, err = client.GetRelease(ctx, id)
	}
	if err != nil {
		log.Fatalf("discogs error: %v", err)
	}
	if err := render(os.Stdout, *query, v); err != nil {
		log.Fatalf("output error: %v", err)
	}
}

func render(w io.Writer, query string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if query == "" {
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	res := gjson.GetBytes(out, query)
	if !res.Exists() {
		return fmt.Errorf("query %q matched nothing", query)
	}
	_, err = fmt.Fprintln(w, res.String())
	return err
}
