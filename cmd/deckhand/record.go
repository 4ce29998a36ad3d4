// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/deckhand-deploy/deckhand/cmd/deckhand/cli"
	"github.com/deckhand-deploy/deckhand/lib/record"
)

// recordCommand returns the "record" subcommand group.
func recordCommand() *cli.Command {
	return &cli.Command{
		Name:    "record",
		Summary: "Inspect deployment records",
		Subcommands: []*cli.Command{
			recordShowCommand(),
		},
	}
}

// recordShowCommand returns "record show", which prints a deployment
// record in the form rollback tooling sees it.
func recordShowCommand() *cli.Command {
	var recordPath string

	return &cli.Command{
		Name:    "show",
		Summary: "Print a deployment record",
		Usage:   "deckhand record show [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flags.StringVar(&recordPath, "record", record.DefaultFilename, "deployment record path")
			return flags
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			deployment, err := record.Load(recordPath)
			if err != nil {
				return err
			}

			fmt.Printf("service:   %s\n", deployment.Service)
			fmt.Printf("stage:     %s\n", deployment.Stage)
			fmt.Printf("directory: %s\n", deployment.Directory)
			fmt.Printf("created:   %s\n", deployment.CreatedAt.Format(time.RFC3339))

			if len(deployment.Artifacts) == 0 {
				fmt.Println("no relocated artifacts")
				return nil
			}

			fmt.Println()
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "TARGET\tDIGEST\tPATH")
			for _, artifact := range deployment.Artifacts {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", artifact.Target, artifact.Digest, artifact.Path)
			}
			return tw.Flush()
		},
	}
}
