// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deckhand.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "environment: development\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Relocation.Algorithm != "sha1" {
		t.Errorf("Algorithm = %q, want sha1", cfg.Relocation.Algorithm)
	}
	if cfg.Relocation.Workers == 0 {
		t.Error("Workers should default to a positive bound")
	}
	if cfg.Store.Compression != "none" {
		t.Errorf("Compression = %q, want none", cfg.Store.Compression)
	}
}

func TestLoadFileEnvironmentOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `environment: production
relocation:
  algorithm: sha1
  workers: 4
store:
  path: /srv/artifacts
production:
  relocation:
    algorithm: blake3
    workers: 16
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Relocation.Algorithm != "blake3" {
		t.Errorf("Algorithm = %q, want blake3 (production override)", cfg.Relocation.Algorithm)
	}
	if cfg.Relocation.Workers != 16 {
		t.Errorf("Workers = %d, want 16", cfg.Relocation.Workers)
	}
	if cfg.Store.Path != "/srv/artifacts" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
}

func TestLoadFileInactiveOverrideIgnored(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `environment: development
production:
  relocation:
    algorithm: blake3
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Relocation.Algorithm != "sha1" {
		t.Errorf("Algorithm = %q, production override should not apply", cfg.Relocation.Algorithm)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown environment", "environment: canary\n"},
		{"unknown algorithm", "environment: development\nrelocation:\n  algorithm: md5\n"},
		{"unknown compression", "environment: development\nstore:\n  compression: brotli\n"},
		{"negative workers", "environment: development\nrelocation:\n  workers: -2\n"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, test.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	// Not parallel: manipulates the process environment.
	t.Setenv("DECKHAND_CONFIG", "")
	if _, err := Load(); err == nil {
		t.Error("Load without DECKHAND_CONFIG should fail")
	}

	path := writeConfig(t, "environment: staging\n")
	t.Setenv("DECKHAND_CONFIG", path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("Environment = %q", cfg.Environment)
	}
}
