package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration, read from YAML.
type Config struct {
	Addr         string      `yaml:"addr"`
	LogLevel     string      `yaml:"log_level"`
	MaxBodyBytes int64       `yaml:"max_body_bytes"`
	CORS         CORSConfig  `yaml:"cors"`
	Store        StoreConfig `yaml:"store"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StoreConfig locates the poem database.
type StoreConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// DefaultConfig returns a configuration that serves on :8080 and keeps
// poems under data/poems.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		LogLevel:     "info",
		MaxBodyBytes: 1 << 20,
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Store: StoreConfig{
			Path: "data/poems",
		},
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig. Unknown
// keys are rejected. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return errors.New("addr is empty")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return errors.New("store.path is empty and store.in_memory is false")
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	return nil
}

// slogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) slogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
