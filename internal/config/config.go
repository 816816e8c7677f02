// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package config loads and validates application configuration with a
// clear precedence: environment variables override the optional YAML
// config file, which overrides built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names the environment variable holding an explicit
// config file path.
const ConfigPathEnvVar = "STYLESCOUT_CONFIG"

// EnvPrefix is stripped from environment variables before they are
// mapped onto config paths: STYLESCOUT_SERVER_PORT -> server.port.
const EnvPrefix = "STYLESCOUT_"

// DefaultConfigPaths are searched in order when no explicit path is set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stylescout/config.yaml",
}

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Store   StoreConfig   `koanf:"store"`
	Rerank  RerankConfig  `koanf:"rerank"`
	Limits  LimitsConfig  `koanf:"limits"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed origins for the wizard frontend.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig configures the zerolog backend.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// StoreConfig configures the local BadgerDB key-value store.
type StoreConfig struct {
	// Path is the on-disk directory for the database.
	Path string `koanf:"path"`

	// InMemory keeps the store ephemeral. Overrides Path.
	InMemory bool `koanf:"in_memory"`
}

// RerankConfig configures the semantic rerank pass.
type RerankConfig struct {
	// Enabled gates the rerank pass in the discover flow. The rerank
	// endpoint itself is always served.
	Enabled bool `koanf:"enabled"`

	// Embedding endpoint settings.
	BaseURL string        `koanf:"base_url" validate:"required"`
	APIKey  string        `koanf:"api_key"`
	Model   string        `koanf:"model" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1ms"`
}

// LimitsConfig configures request throttling and result sizing.
type LimitsConfig struct {
	// RequestsPerMinute is the per-IP rate limit.
	RequestsPerMinute int `koanf:"requests_per_minute" validate:"min=1"`

	// PageSize is the number of results the discover flow returns.
	PageSize int `koanf:"page_size" validate:"min=1"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"http://localhost:3000"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Store: StoreConfig{
			Path: "./data/stylescout",
		},
		Rerank: RerankConfig{
			Enabled: true,
			BaseURL: "https://api.openai.com/v1",
			Model:   "text-embedding-3-small",
			Timeout: 10 * time.Second,
		},
		Limits: LimitsConfig{
			RequestsPerMinute: 120,
			PageSize:          8,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and STYLESCOUT_-prefixed environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path required unless store.in_memory is set")
	}
	return nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps STYLESCOUT_SERVER_PORT to server.port. The first
// underscore separates the section; the rest keep underscores so keys
// like read_timeout survive.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return key
	}
	return parts[0] + "." + parts[1]
}
