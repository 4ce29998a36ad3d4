// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package record persists the deployment record: the mapping from
// build targets to their digest-qualified artifact paths plus the
// assigned deployment directory. Rollback tooling reads this record
// to find artifacts under their hashed names — deckhand itself never
// reads it back except for display.
//
// Records are CBOR (deterministic encoding via lib/codec) and written
// atomically, so a crashed run leaves either the previous record or
// the new one, never a torn file.
package record

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deckhand-deploy/deckhand/lib/codec"
	"github.com/deckhand-deploy/deckhand/lib/relocate"
)

// DefaultFilename is the record's filename inside the artifact output
// directory.
const DefaultFilename = "deployment-record.cbor"

// Deployment is one run's worth of relocation results.
type Deployment struct {
	// Service, Stage, and Directory identify where the artifacts
	// were deployed. Directory is the "<prefix>/<service>/<stage>"
	// name assigned after all relocations succeeded.
	Service   string `json:"service"`
	Stage     string `json:"stage"`
	Directory string `json:"directory"`

	// CreatedAt is when the record was written.
	CreatedAt time.Time `json:"created_at"`

	// Artifacts lists every relocated artifact in batch order.
	Artifacts []relocate.Record `json:"artifacts"`
}

// Write encodes the deployment to CBOR and writes it atomically via
// temp file + rename.
func Write(path string, deployment *Deployment) error {
	data, err := codec.Marshal(deployment)
	if err != nil {
		return fmt.Errorf("encoding deployment record: %w", err)
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "record-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp record file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing deployment record: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp record file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming deployment record: %w", err)
	}

	success = true
	return nil
}

// Load reads and decodes a deployment record.
func Load(path string) (*Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deployment record: %w", err)
	}
	var deployment Deployment
	if err := codec.Unmarshal(data, &deployment); err != nil {
		return nil, fmt.Errorf("decoding deployment record %s: %w", path, err)
	}
	return &deployment, nil
}
