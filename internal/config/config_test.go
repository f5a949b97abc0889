// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/avromock/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	seed := int64(42)
	cfg := Config{
		Version:   1,
		Seed:      &seed,
		PickUnion: []string{"CountryFarm", "com.farms.CityFarm"},
		Count:     3,
		Format:    "yaml",
		Output:    "fixtures/farm.yaml",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)

	loaded, err = LoadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	loaded, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
	assert.NoError(t, loaded.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("AVROMOCK_SEED", "7")
	t.Setenv("AVROMOCK_COUNT", "5")
	t.Setenv("AVROMOCK_FORMAT", "yaml")

	loaded, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, loaded.Seed)
	assert.Equal(t, int64(7), *loaded.Seed)
	assert.Equal(t, 5, loaded.Count)
	assert.Equal(t, "yaml", loaded.Format)
}

func TestLoad_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte("version: [unclosed"), 0o600))

	_, err := Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg:  Config{Version: 1, Count: 1, Format: "json"},
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99, Count: 1, Format: "json"},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "zero count",
			cfg:     Config{Version: 1, Count: 0, Format: "json"},
			wantErr: ErrInvalidCount,
		},
		{
			name:    "unknown format",
			cfg:     Config{Version: 1, Count: 1, Format: "toml"},
			wantErr: output.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Default()
	require.NoError(t, cfg.Save(cfgPath))

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	out := string(content)
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "count: 1")
	assert.Contains(t, out, "format: json")
	assert.NotContains(t, out, "seed")
	assert.NotContains(t, out, "pick_union")
}
