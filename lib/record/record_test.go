// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deckhand-deploy/deckhand/lib/relocate"
)

func sampleDeployment() *Deployment {
	return &Deployment{
		Service:   "orders",
		Stage:     "prod",
		Directory: "deploy/orders/prod",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Artifacts: []relocate.Record{
			{
				Target:    "api",
				Source:    "build/api.zip",
				Digest:    "abcd1234",
				Algorithm: relocate.SHA1,
				Path:      "build/api-abcd1234.zip",
			},
		},
	}
}

func TestWriteLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	original := sampleDeployment()

	if err := Write(path, original); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Service != original.Service || loaded.Stage != original.Stage {
		t.Errorf("identity = %q/%q", loaded.Service, loaded.Stage)
	}
	if loaded.Directory != "deploy/orders/prod" {
		t.Errorf("Directory = %q", loaded.Directory)
	}
	if !loaded.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", loaded.CreatedAt, original.CreatedAt)
	}
	if len(loaded.Artifacts) != 1 {
		t.Fatalf("got %d artifacts, want 1", len(loaded.Artifacts))
	}
	if loaded.Artifacts[0] != original.Artifacts[0] {
		t.Errorf("artifact = %+v", loaded.Artifacts[0])
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)

	first := sampleDeployment()
	if err := Write(path, first); err != nil {
		t.Fatalf("first Write: %v", err)
	}

	second := sampleDeployment()
	second.Stage = "dev"
	second.Directory = "deploy/orders/dev"
	if err := Write(path, second); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Stage != "dev" {
		t.Errorf("Stage = %q, want %q", loaded.Stage, "dev")
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := Write(filepath.Join(dir, DefaultFilename), sampleDeployment()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.cbor")); err == nil {
		t.Fatal("expected error for missing record")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := os.WriteFile(path, []byte("not cbor at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt record")
	}
}
