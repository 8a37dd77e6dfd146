// Package config lê a configuração dos binários: arquivo TOML opcional
// (CATALOG_CONFIG) com variáveis de ambiente por cima.
//
// Ordem de precedência: defaults < arquivo < env.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"catalog-client/discogs"
	"catalog-client/dispatch"
	"catalog-client/musicbrainz"

	"github.com/pelletier/go-toml/v2"
)

// Duration aceita "1s", "250ms" etc. no TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(time.Duration(d).String()), nil }

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Catalog  Catalog  `toml:"catalog"`
	Discogs  Discogs  `toml:"discogs"`
	Dispatch Dispatch `toml:"dispatch"`
	Stats    Stats    `toml:"stats"`
}

type Catalog struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
}

type Discogs struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

type Dispatch struct {
	ConcurrencyMax     int      `toml:"concurrency_max"`
	ConcurrencyTimeout Duration `toml:"concurrency_timeout"`
	RateMode           string   `toml:"rate_mode"`
	RatePermits        int      `toml:"rate_permits"`
	RateInterval       Duration `toml:"rate_interval"`
	RetryMax           int      `toml:"retry_max"`
	RetryBackoff       Duration `toml:"retry_backoff"`
	RetryMaxBackoff    Duration `toml:"retry_max_backoff"`
	AttemptTimeout     Duration `toml:"attempt_timeout"`
	HTTP2              bool     `toml:"http2"`
}

type Stats struct {
	Enabled       bool     `toml:"enabled"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	Prefix        string   `toml:"prefix"`
	TTL           Duration `toml:"ttl"`
	Bucket        string   `toml:"bucket"`
	TrackKeys     bool     `toml:"track_keys"`
}

// Default devolve a configuração para o MusicBrainz público:
// 1 requisição por segundo, 4 chamadas em voo, 3 retries.
func Default() Config {
	return Config{
		Catalog: Catalog{
			BaseURL:   musicbrainz.DefaultBaseURL,
			UserAgent: musicbrainz.DefaultUserAgent,
		},
		Discogs: Discogs{BaseURL: discogs.DefaultBaseURL},
		Dispatch: Dispatch{
			ConcurrencyMax: dispatch.DefaultCapacity,
			RateMode:       dispatch.RateModeWindow,
			RatePermits:    dispatch.DefaultPermits,
			RateInterval:   Duration(dispatch.DefaultInterval),
			RetryMax:       dispatch.DefaultMaxRetries,
			AttemptTimeout: Duration(dispatch.DefaultAttemptTimeout),
		},
		Stats: Stats{
			Prefix: "dispatch:stats",
			TTL:    Duration(24 * time.Hour),
			Bucket: "minute",
		},
	}
}

// Load monta defaults, aplica CATALOG_CONFIG (se definido), aplica env e valida.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CATALOG_CONFIG"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile sobrepõe os campos presentes no arquivo TOML.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.parse(path, data)
}

func (c *Config) parse(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("parsing config %s: %w", source, err)
	}
	return nil
}

// ApplyEnv sobrepõe com as variáveis de ambiente definidas.
// Valores que não fazem parse são ignorados (fica o valor anterior).
func (c *Config) ApplyEnv() {
	c.Catalog.BaseURL = getenvDefault("CATALOG_BASE_URL", c.Catalog.BaseURL)
	c.Catalog.UserAgent = getenvDefault("CATALOG_USER_AGENT", c.Catalog.UserAgent)
	c.Discogs.BaseURL = getenvDefault("DISCOGS_BASE_URL", c.Discogs.BaseURL)
	c.Discogs.Token = getenvDefault("DISCOGS_TOKEN", c.Discogs.Token)

	d := &c.Dispatch
	d.ConcurrencyMax = getenvIntDefault("CONCURRENCY_MAX", d.ConcurrencyMax)
	d.ConcurrencyTimeout = getenvDurationDefault("CONCURRENCY_TIMEOUT", d.ConcurrencyTimeout)
	d.RateMode = getenvDefault("RATE_MODE", d.RateMode)
	d.RatePermits = getenvIntDefault("RATE_PERMITS", d.RatePermits)
	d.RateInterval = getenvDurationDefault("RATE_INTERVAL", d.RateInterval)
	d.RetryMax = getenvIntDefault("RETRY_MAX", d.RetryMax)
	d.RetryBackoff = getenvDurationDefault("RETRY_BACKOFF", d.RetryBackoff)
	d.RetryMaxBackoff = getenvDurationDefault("RETRY_MAX_BACKOFF", d.RetryMaxBackoff)
	d.AttemptTimeout = getenvDurationDefault("ATTEMPT_TIMEOUT", d.AttemptTimeout)
	d.HTTP2 = getenvBoolDefault("HTTP2", d.HTTP2)

	s := &c.Stats
	s.Enabled = getenvBoolDefault("STATS_ENABLED", s.Enabled)
	s.RedisAddr = getenvDefault("STATS_REDIS_ADDR", s.RedisAddr)
	s.RedisPassword = getenvDefault("STATS_REDIS_PASSWORD", s.RedisPassword)
	s.RedisDB = getenvIntDefault("STATS_REDIS_DB", s.RedisDB)
	s.Prefix = getenvDefault("STATS_PREFIX", s.Prefix)
	s.TTL = getenvDurationDefault("STATS_TTL", s.TTL)
	s.Bucket = getenvDefault("STATS_BUCKET", s.Bucket)
	s.TrackKeys = getenvBoolDefault("STATS_TRACK_KEYS", s.TrackKeys)
}

// Validate devolve o primeiro campo inválido.
func (c Config) Validate() error {
	d := c.Dispatch
	if strings.TrimSpace(c.Catalog.BaseURL) == "" {
		return errors.New("CATALOG_BASE_URL is required")
	}
	if strings.TrimSpace(c.Catalog.UserAgent) == "" {
		return errors.New("CATALOG_USER_AGENT is required")
	}
	if d.ConcurrencyMax <= 0 {
		return errors.New("CONCURRENCY_MAX must be > 0")
	}
	if d.ConcurrencyTimeout < 0 {
		return errors.New("CONCURRENCY_TIMEOUT must be >= 0")
	}
	if d.RateMode != dispatch.RateModeWindow && d.RateMode != dispatch.RateModeBucket {
		return fmt.Errorf("RATE_MODE must be %q or %q", dispatch.RateModeWindow, dispatch.RateModeBucket)
	}
	if d.RatePermits <= 0 {
		return errors.New("RATE_PERMITS must be > 0")
	}
	if d.RateInterval <= 0 {
		return errors.New("RATE_INTERVAL must be > 0")
	}
	if d.RetryMax < 0 {
		return errors.New("RETRY_MAX must be >= 0")
	}
	if d.RetryBackoff < 0 || d.RetryMaxBackoff < 0 {
		return errors.New("RETRY_BACKOFF and RETRY_MAX_BACKOFF must be >= 0")
	}
	if d.RetryMaxBackoff > 0 && d.RetryMaxBackoff < d.RetryBackoff {
		return errors.New("RETRY_MAX_BACKOFF must be >= RETRY_BACKOFF")
	}
	if d.AttemptTimeout <= 0 {
		return errors.New("ATTEMPT_TIMEOUT must be > 0")
	}
	if c.Stats.Enabled && strings.TrimSpace(c.Stats.RedisAddr) == "" {
		return errors.New("STATS_REDIS_ADDR is required when STATS_ENABLED=true")
	}
	if c.Stats.Bucket != "minute" && c.Stats.Bucket != "none" {
		return errors.New(`STATS_BUCKET must be "minute" or "none"`)
	}
	return nil
}

// DispatchOptions mapeia para dispatch.Options; Transport, Stats e Logger
// ficam por conta de quem chama.
func (c Config) DispatchOptions() dispatch.Options {
	d := c.Dispatch
	return dispatch.Options{
		Capacity:       d.ConcurrencyMax,
		AcquireTimeout: d.ConcurrencyTimeout.Std(),
		RateMode:       d.RateMode,
		Permits:        d.RatePermits,
		Interval:       d.RateInterval.Std(),
		MaxRetries:     d.RetryMax,
		AttemptTimeout: d.AttemptTimeout.Std(),
		Backoff:        d.RetryBackoff.Std(),
		MaxBackoff:     d.RetryMaxBackoff.Std(),
	}
}

// DiscogsDispatchOptions é DispatchOptions com o rate da API do Discogs.
func (c Config) DiscogsDispatchOptions() dispatch.Options {
	o := c.DispatchOptions()
	o.RateMode = dispatch.RateModeWindow
	o.Permits = discogs.RatePermits
	o.Interval = discogs.RateInterval
	return o
}
