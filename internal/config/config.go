// Package config loads server settings.
//
// Precedence order (highest wins):
//  1. command-line flags
//  2. environment variables (a .env file is loaded by main beforehand)
//  3. defaults in the struct tags below
package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Config holds every tuneable of the server.
type Config struct {
	Port      string `env:"PORT" envDefault:"5175"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json | console

	// CORS origin for /api clients.
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	CookieName   string `env:"COOKIE_NAME" envDefault:"numberguess_session"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`

	// Debug exposes the secret through /api/game/stats.
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Seed makes secrets reproducible when non-zero.
	Seed uint64 `env:"SEED" envDefault:"0"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, overlays args as flags and validates.
// It returns pflag.ErrHelp when -h/--help was requested.
func Load(args []string, usage io.Writer) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	fs := pflag.NewFlagSet("numberguess", pflag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVarP(&cfg.Port, "port", "p", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (json, console)")
	fs.StringVar(&cfg.ClientOrigin, "client-origin", cfg.ClientOrigin, "allowed CORS origin for the JSON API")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "expose the secret in /api/game/stats")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "fixed random seed (0 = crypto/rand)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "drop sessions idle for this long")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("parse flags: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks values env/flag parsing cannot.
func (c Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid port %q (hint: use 1-65535)", c.Port)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q (hint: json or console)", c.LogFormat)
	}
	if c.CookieName == "" {
		return errors.New("cookie name must not be empty")
	}
	if c.SessionTTL <= 0 || c.SweepInterval <= 0 {
		return errors.New("session ttl and sweep interval must be positive")
	}
	return nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string { return ":" + c.Port }
