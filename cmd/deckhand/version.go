// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/deckhand-deploy/deckhand/cmd/deckhand/cli"
)

// versionCommand returns the "version" subcommand.
func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print the deckhand version",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			version := "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}
			fmt.Println("deckhand", version)
			return nil
		},
	}
}
