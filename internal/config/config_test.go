// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallpass/hallpass/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hallpass.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log.format", "json", "")
	flags.String("log.level", "info", "")
	flags.String("auth.hasher", "sha256", "")
	flags.String("metrics.addr", "", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.HasherSHA256, cfg.Hasher)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "log:\n  format: text\nauth:\n  hasher: argon2id\n")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, config.HasherArgon2id, cfg.Hasher)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, "log:\n  format: text\n")

	flags := newFlags()
	require.NoError(t, flags.Set("log.format", "json"))
	require.NoError(t, flags.Set("metrics.addr", "127.0.0.1:9100"))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
}

func TestLoad_UnchangedFlagsDoNotOverrideFile(t *testing.T) {
	path := writeConfigFile(t, "auth:\n  hasher: argon2id\n")

	cfg, err := config.Load(path, newFlags())
	require.NoError(t, err)

	assert.Equal(t, config.HasherArgon2id, cfg.Hasher)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*config.Config) {}},
		{
			name:    "bad log format",
			mutate:  func(c *config.Config) { c.LogFormat = "xml" },
			wantErr: "log.format",
		},
		{
			name:    "bad hasher",
			mutate:  func(c *config.Config) { c.Hasher = "md5" },
			wantErr: "auth.hasher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
