// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/deckhand-deploy/deckhand/cmd/deckhand/cli"
	"github.com/deckhand-deploy/deckhand/lib/clock"
	"github.com/deckhand-deploy/deckhand/lib/deploy"
	"github.com/deckhand-deploy/deckhand/lib/manifest"
	"github.com/deckhand-deploy/deckhand/lib/relocate"
)

// packCommand returns the "pack" subcommand: precondition check,
// concurrent relocation, directory-name assignment, deployment
// record.
func packCommand() *cli.Command {
	var (
		manifestPath string
		configPath   string
		outputDir    string
		algorithm    string
		recordPath   string
		workers      int
	)

	return &cli.Command{
		Name:    "pack",
		Summary: "Relocate build artifacts to content-hashed names",
		Description: `Validate that every packaged target in the manifest has a
materialized artifact, relocate each one to <name>-<digest><ext>, and
assign the deployment directory name. Conditions that make hashing
unsafe (a target without an artifact, an already-assigned directory
name) skip the feature and leave the pipeline to its default naming —
they are reported, not fatal.`,
		Usage: "deckhand pack --manifest <path> [flags]",
		Examples: []cli.Example{
			{
				Description: "Relocate the artifacts declared in deploy.jsonc",
				Command:     "deckhand pack --manifest deploy.jsonc",
			},
			{
				Description: "Relocate into a staging directory with blake3 digests",
				Command:     "deckhand pack --manifest deploy.yaml --output build/staged --algorithm blake3",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("pack", pflag.ContinueOnError)
			flags.StringVar(&manifestPath, "manifest", "", "deployment manifest path (required)")
			flags.StringVar(&configPath, "config", "", "config file path (overrides DECKHAND_CONFIG)")
			flags.StringVar(&outputDir, "output", "", "directory for relocated artifacts (default: each source's directory)")
			flags.StringVar(&algorithm, "algorithm", "", "digest algorithm: sha1, sha256, blake3")
			flags.StringVar(&recordPath, "record", "", "deployment record path")
			flags.IntVar(&workers, "workers", 0, "max concurrent relocations")
			return flags
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if manifestPath == "" {
				return fmt.Errorf("--manifest is required")
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// Flags override config.
			if outputDir == "" {
				outputDir = cfg.Relocation.OutputDir
			}
			if algorithm == "" {
				algorithm = cfg.Relocation.Algorithm
			}
			if workers == 0 {
				workers = cfg.Relocation.Workers
			}

			parsedAlgorithm, err := relocate.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			m, err := manifest.ReadFile(manifestPath)
			if err != nil {
				return err
			}
			if issues := manifest.Validate(m); len(issues) > 0 {
				return fmt.Errorf("invalid manifest %s: %s", manifestPath, strings.Join(issues, "; "))
			}

			deployer := deploy.New(logger.With("command", "pack"), clock.Real(), deploy.Options{
				Algorithm:  parsedAlgorithm,
				Workers:    workers,
				OutputDir:  outputDir,
				RecordPath: recordPath,
			})

			outcome, err := deployer.Run(ctx, m)
			if err != nil {
				return err
			}
			if !outcome.Applied {
				fmt.Printf("hash-based relocation skipped: %s\n", outcome.SkipReason)
				return nil
			}

			fmt.Printf("deployment directory: %s\n", outcome.Directory)
			for _, r := range outcome.Records {
				fmt.Printf("  %s -> %s\n", r.Target, r.Path)
			}
			return nil
		},
	}
}
