// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deckhand-deploy/deckhand/lib/relocate"
	"github.com/deckhand-deploy/deckhand/lib/upload"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for deckhand.
type Config struct {
	// Environment identifies the deployment type (development,
	// staging, production).
	Environment Environment `yaml:"environment"`

	// Relocation configures artifact hashing and relocation.
	Relocation RelocationConfig `yaml:"relocation"`

	// Store configures the local upload store.
	Store StoreConfig `yaml:"store"`

	// Per-environment overrides, applied after the base config.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// Overrides contains fields that can be overridden per environment.
type Overrides struct {
	Relocation *RelocationConfig `yaml:"relocation,omitempty"`
	Store      *StoreConfig      `yaml:"store,omitempty"`
}

// RelocationConfig configures artifact hashing and relocation.
type RelocationConfig struct {
	// Algorithm is the content digest algorithm (sha1, sha256,
	// blake3). Default: sha1.
	Algorithm string `yaml:"algorithm"`

	// Workers bounds concurrent relocations. Default:
	// relocate.DefaultWorkers.
	Workers int `yaml:"workers"`

	// OutputDir is where relocated artifacts are written. Empty
	// keeps each artifact in its source directory.
	OutputDir string `yaml:"output_dir"`
}

// StoreConfig configures the local upload store.
type StoreConfig struct {
	// Path is the store's root directory ("bucket directory").
	Path string `yaml:"path"`

	// Compression is the at-rest compression (none, lz4, zstd).
	// Default: none — build artifacts are typically already zipped.
	Compression string `yaml:"compression"`
}

// Default returns the default configuration. Defaults exist to give
// every field a sensible zero value, not as a fallback — the config
// file is required.
func Default() *Config {
	return &Config{
		Environment: Development,
		Relocation: RelocationConfig{
			Algorithm: string(relocate.SHA1),
			Workers:   relocate.DefaultWorkers,
		},
		Store: StoreConfig{
			Compression: string(upload.CompressionNone),
		},
	}
}

// Load loads configuration from the DECKHAND_CONFIG environment
// variable. There are no fallbacks — if DECKHAND_CONFIG is not set,
// this fails.
func Load() (*Config, error) {
	path := os.Getenv("DECKHAND_CONFIG")
	if path == "" {
		return nil, fmt.Errorf("DECKHAND_CONFIG environment variable not set; " +
			"set it to the path of your deckhand.yaml config file, or use --config flag")
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. The config
// file is the single source of truth; environment variables do not
// override config values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies the section matching the
// configured environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.Relocation != nil {
		if overrides.Relocation.Algorithm != "" {
			c.Relocation.Algorithm = overrides.Relocation.Algorithm
		}
		if overrides.Relocation.Workers != 0 {
			c.Relocation.Workers = overrides.Relocation.Workers
		}
		if overrides.Relocation.OutputDir != "" {
			c.Relocation.OutputDir = overrides.Relocation.OutputDir
		}
	}
	if overrides.Store != nil {
		if overrides.Store.Path != "" {
			c.Store.Path = overrides.Store.Path
		}
		if overrides.Store.Compression != "" {
			c.Store.Compression = overrides.Store.Compression
		}
	}
}

// Validate checks that the configuration values parse.
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment: %q", c.Environment)
	}
	if _, err := relocate.ParseAlgorithm(c.Relocation.Algorithm); err != nil {
		return err
	}
	if _, err := upload.ParseCompression(c.Store.Compression); err != nil {
		return err
	}
	if c.Relocation.Workers < 0 {
		return fmt.Errorf("relocation workers must be non-negative, got %d", c.Relocation.Workers)
	}
	return nil
}
