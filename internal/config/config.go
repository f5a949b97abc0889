// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles avromock project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dacolabs/avromock/internal/output"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the configuration file looked up in a project directory.
const FileName = "avromock.yaml"

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. AVROMOCK_SEED.
const EnvPrefix = "AVROMOCK"

var (
	// ErrUnsupportedVersion indicates a config file written for another format version.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidCount indicates a non-positive document count.
	ErrInvalidCount = errors.New("count must be at least 1")
)

// Config represents the avromock.yaml project configuration file.
type Config struct {
	Version   int      `yaml:"version" mapstructure:"version"`
	Seed      *int64   `yaml:"seed,omitempty" mapstructure:"seed"`
	PickUnion []string `yaml:"pick_union,omitempty" mapstructure:"pick_union"`
	Count     int      `yaml:"count" mapstructure:"count"`
	Format    string   `yaml:"format" mapstructure:"format"`
	Output    string   `yaml:"output,omitempty" mapstructure:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Count:   1,
		Format:  string(output.JSON),
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault("version", def.Version)
	v.SetDefault("count", def.Count)
	v.SetDefault("format", def.Format)
	v.SetDefault("output", def.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// keys without defaults are only seen by Unmarshal once bound
	_ = v.BindEnv("seed")
	_ = v.BindEnv("pick_union")

	return v
}

// Load reads avromock.yaml from dir. A missing file is not an error: the
// defaults, with any environment overrides applied, are returned.
func Load(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFile reads a Config from a file path.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if c.Count < 1 {
		return ErrInvalidCount
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
