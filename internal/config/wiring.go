package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"catalog-client/dispatch"
	"catalog-client/dispatch/domain"
	"catalog-client/dispatch/infra"

	"github.com/redis/go-redis/v9"
)

// Transport monta o transporte HTTP (HTTP/2 forçado se HTTP2=true).
func (c Config) Transport() *infra.HTTPTransport {
	return infra.NewHTTPTransport(infra.HTTPOptions{HTTP2: c.Dispatch.HTTP2})
}

// NewDispatcher completa o com transporte, stats e log.Default() e monta o pipeline.
// key identifica o cliente nas estatísticas.
func (c Config) NewDispatcher(o dispatch.Options, key string, stats domain.StatsStore) (*dispatch.Dispatcher, error) {
	o.Transport = c.Transport()
	o.Stats = stats
	o.Key = key
	o.Logger = log.Default()
	return dispatch.New(o)
}

// OpenStats conecta no Redis quando STATS_ENABLED=true. Com stats desligado
// devolve (nil, no-op, nil). O close deve ser chamado no fim do processo.
func (c Config) OpenStats(ctx context.Context) (domain.StatsStore, func() error, error) {
	if !c.Stats.Enabled {
		return nil, func() error { return nil }, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     c.Stats.RedisAddr,
		Password: c.Stats.RedisPassword,
		DB:       c.Stats.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	_, err := rdb.Ping(pingCtx).Result()
	cancel()
	if err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis stats ping error: %w", err)
	}

	store := infra.NewRedisStatsStore(
		rdb,
		infra.WithStatsPrefix(c.Stats.Prefix),
		infra.WithStatsTTL(c.Stats.TTL.Std()),
		infra.WithStatsBucket(c.Stats.Bucket),
		infra.WithStatsTrackKeys(c.Stats.TrackKeys),
	)
	return store, rdb.Close, nil
}
