package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the HTTP server settings. The one-shot CLI does not read it;
// its only input is the job file.
type Config struct {
	ListenAddr   string
	FetchTimeout time.Duration
	LogLevel     string
}

type fileConfig struct {
	ListenAddr   string `yaml:"listen_addr"`
	FetchTimeout string `yaml:"fetch_timeout"`
	LogLevel     string `yaml:"log_level"`
}

func defaults() Config {
	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	return Config{
		ListenAddr:   addr,
		FetchTimeout: 30 * time.Second,
		LogLevel:     "info",
	}
}

// Load returns the server configuration. When CONFIG_PATH names a YAML file
// its values override the defaults; otherwise the defaults (with the PORT env
// fallback) are used as-is.
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.FetchTimeout != "" {
		d, err := time.ParseDuration(fc.FetchTimeout)
		if err != nil {
			return cfg, fmt.Errorf("config %s: invalid fetch_timeout: %w", path, err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("config %s: fetch_timeout must be positive", path)
		}
		cfg.FetchTimeout = d
	}

	return cfg, nil
}
