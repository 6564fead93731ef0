// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

// Package config loads application configuration from defaults, an optional
// YAML file, and command-line flags, in increasing order of precedence.
package config

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Hasher algorithm names accepted by auth.hasher.
const (
	HasherSHA256   = "sha256"
	HasherArgon2id = "argon2id"
)

// Config holds the application configuration.
type Config struct {
	LogFormat   string `koanf:"log.format"`   // "json" or "text"
	LogLevel    string `koanf:"log.level"`    // "debug", "info", "warn", "error"
	Hasher      string `koanf:"auth.hasher"`  // "sha256" or "argon2id"
	MetricsAddr string `koanf:"metrics.addr"` // empty = observability server disabled
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogFormat: "json",
		LogLevel:  "info",
		Hasher:    HasherSHA256,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").
			With("log.format", c.LogFormat).
			Errorf("log.format must be 'json' or 'text', got %q", c.LogFormat)
	}
	if c.Hasher != HasherSHA256 && c.Hasher != HasherArgon2id {
		return oops.Code("CONFIG_INVALID").
			With("auth.hasher", c.Hasher).
			Errorf("auth.hasher must be %q or %q, got %q", HasherSHA256, HasherArgon2id, c.Hasher)
	}
	return nil
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then any flags the caller set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	defaults := Defaults()
	base := map[string]any{
		"log.format":   defaults.LogFormat,
		"log.level":    defaults.LogLevel,
		"auth.hasher":  defaults.Hasher,
		"metrics.addr": defaults.MetricsAddr,
	}
	for key, value := range base {
		if err := k.Set(key, value); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("key", key).Wrap(err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").
				With("path", path).
				Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").
				With("source", "flags").
				Wrap(err)
		}
	}

	cfg := Config{
		LogFormat:   k.String("log.format"),
		LogLevel:    k.String("log.level"),
		Hasher:      k.String("auth.hasher"),
		MetricsAddr: k.String("metrics.addr"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
