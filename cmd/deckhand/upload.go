// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/deckhand-deploy/deckhand/cmd/deckhand/cli"
	"github.com/deckhand-deploy/deckhand/lib/clock"
	"github.com/deckhand-deploy/deckhand/lib/deploy"
	"github.com/deckhand-deploy/deckhand/lib/manifest"
	"github.com/deckhand-deploy/deckhand/lib/naming"
	"github.com/deckhand-deploy/deckhand/lib/record"
	"github.com/deckhand-deploy/deckhand/lib/upload"
)

// uploadCommand returns the "upload" subcommand: stage relocated
// artifacts and the deployment descriptor into the local store.
func uploadCommand() *cli.Command {
	var (
		manifestPath string
		configPath   string
		recordPath   string
		storePath    string
		compression  string
	)

	return &cli.Command{
		Name:    "upload",
		Summary: "Upload relocated artifacts and the deployment descriptor",
		Description: `Upload every artifact from the deployment record into the store under
the assigned directory name. Artifacts whose keys already exist are
skipped — with content-hashed filenames, an existing key means
identical bytes. The descriptor is uploaded inside a naming override
scope so it stays discoverable under its original naming scheme.`,
		Usage: "deckhand upload --manifest <path> --record <path> [flags]",
		Examples: []cli.Example{
			{
				Description: "Stage a packed deployment into a bucket directory",
				Command:     "deckhand upload --manifest deploy.jsonc --record deployment-record.cbor --store /srv/artifacts",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("upload", pflag.ContinueOnError)
			flags.StringVar(&manifestPath, "manifest", "", "deployment manifest path (required)")
			flags.StringVar(&configPath, "config", "", "config file path (overrides DECKHAND_CONFIG)")
			flags.StringVar(&recordPath, "record", record.DefaultFilename, "deployment record path")
			flags.StringVar(&storePath, "store", "", "store root directory")
			flags.StringVar(&compression, "compression", "", "at-rest compression: none, lz4, zstd")
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
			if storePath == "" {
				storePath = cfg.Store.Path
			}
			if storePath == "" {
				return fmt.Errorf("no store configured: pass --store or set store.path in the config")
			}
			if compression == "" {
				compression = cfg.Store.Compression
			}
			parsedCompression, err := upload.ParseCompression(compression)
			if err != nil {
				return err
			}

			m, err := manifest.ReadFile(manifestPath)
			if err != nil {
				return err
			}
			deployment, err := record.Load(recordPath)
			if err != nil {
				return err
			}

			store, err := upload.NewDirStore(storePath, parsedCompression)
			if err != nil {
				return err
			}

			deployer := deploy.New(logger.With("command", "upload"), clock.Real(), deploy.Options{})
			if err := deployer.UploadArtifacts(ctx, store, deployment.Directory, deployment.Artifacts); err != nil {
				return err
			}

			if m.Descriptor != "" {
				descriptorName := filepath.Base(m.Descriptor)
				policy := naming.NewPolicy(func() string { return descriptorName })
				if err := deployer.UploadDescriptor(ctx, store, policy, deployment.Directory, m.Descriptor); err != nil {
					return err
				}
			}

			fmt.Printf("uploaded %d artifacts to %s\n", len(deployment.Artifacts), storePath)
			return nil
		},
	}
}
