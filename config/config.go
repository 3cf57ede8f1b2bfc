// Package config loads the server's configuration from a TOML file,
// with environment variables layered on top for the values operators
// most often need to override per-deployment.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is every externally-tunable setting documented in §6.
type Config struct {
	CacheDir   string `toml:"cache_dir"`
	NSAPIKey   string `toml:"ns_api_key"`
	CORSDomain string `toml:"cors_domain"`
	BindAddr   string `toml:"bind_addr"`
}

const (
	envCacheDir   = "IFF_CACHE_DIR"
	envNSAPIKey   = "NS_API_KEY"
	envCORSDomain = "IFF_CORS_DOMAIN"
	envBindAddr   = "IFF_BIND_ADDR"
)

var defaults = Config{
	CacheDir:   "./cache",
	CORSDomain: "http://localhost:3000",
	BindAddr:   "0.0.0.0:8080",
}

// Load reads path (if it exists) as a TOML config file layered over
// the package defaults, then applies any of the IFF_* / NS_API_KEY
// environment variables on top.
func Load(path string) (Config, error) {
	cfg := defaults

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, errors.Wrapf(err, "config: decoding %s", path)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "config: statting %s", path)
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.CacheDir == "" {
		return Config{}, errors.New("config: cache_dir must not be empty")
	}
	if cfg.BindAddr == "" {
		return Config{}, errors.New("config: bind_addr must not be empty")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv(envCacheDir); ok {
		cfg.CacheDir = v
	}
	if v, ok := os.LookupEnv(envNSAPIKey); ok {
		cfg.NSAPIKey = v
	}
	if v, ok := os.LookupEnv(envCORSDomain); ok {
		cfg.CORSDomain = v
	}
	if v, ok := os.LookupEnv(envBindAddr); ok {
		cfg.BindAddr = v
	}
}
