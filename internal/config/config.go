package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
	// Timeout is a duration string like "30s" applied to each request.
	Timeout string `koanf:"timeout"`
}

type UpstreamConfig struct {
	// BaseURL is the origin every request is relayed to.
	BaseURL string `koanf:"base_url"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

// RequestTimeout parses Server.Timeout, falling back to 30s on bad input.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Load reads configuration from the given YAML file (optional) and then
// overlays AGW_-prefixed environment variables, with "__" mapping to the
// key separator (AGW_SERVER__PORT=9000 sets server.port).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		// A missing file is fine, env vars and defaults cover everything.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("AGW_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "AGW_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("server.port") {
		k.Set("server.port", 8080)
	}
	if !k.Exists("server.timeout") {
		k.Set("server.timeout", "30s")
	}
	if !k.Exists("upstream.base_url") {
		k.Set("upstream.base_url", "https://generativelanguage.googleapis.com")
	}
	if !k.Exists("log.level") {
		k.Set("log.level", "info")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SlogLevel maps Log.Level to a slog level, defaulting to info for anything
// unrecognized.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
