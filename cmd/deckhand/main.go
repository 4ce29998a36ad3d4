// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Command deckhand relocates build artifacts to content-hash-addressed
// paths before upload, so unchanged artifacts land on identical names
// and are skipped by upload diffing, and keeps the always-regenerated
// deployment descriptor discoverable for rollback tooling.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/deckhand-deploy/deckhand/cmd/deckhand/cli"
	"github.com/deckhand-deploy/deckhand/lib/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := &cli.Command{
		Name:    "deckhand",
		Summary: "content-hash artifact relocation for deployment pipelines",
		Description: `Deckhand reduces redundant artifact uploads: it renames build
artifacts to content-hash-addressed filenames before upload, so an
unchanged artifact produces an identical name and is skipped by the
store's diffing. It records the mapping for rollback tooling and can
stage uploads to a local bucket directory.`,
		Subcommands: []*cli.Command{
			packCommand(),
			uploadCommand(),
			recordCommand(),
			versionCommand(),
		},
	}

	logger := cli.NewCommandLogger()
	return root.Execute(context.Background(), os.Args[1:], logger)
}

// loadConfig resolves the runtime configuration: an explicit --config
// path wins, then DECKHAND_CONFIG, then built-in defaults. Unlike the
// config file itself, absence is not an error — deckhand runs with
// defaults when unconfigured.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv("DECKHAND_CONFIG") != "" {
		return config.Load()
	}
	return config.Default(), nil
}
