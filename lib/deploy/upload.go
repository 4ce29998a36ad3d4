// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/deckhand-deploy/deckhand/lib/naming"
	"github.com/deckhand-deploy/deckhand/lib/relocate"
	"github.com/deckhand-deploy/deckhand/lib/upload"
)

// UploadArtifacts uploads every relocated artifact under the assigned
// directory. Keys that already exist in the store are skipped — with
// content-hashed filenames, an existing key means identical bytes.
func (d *Deployer) UploadArtifacts(ctx context.Context, store upload.Store, directory string, records []relocate.Record) error {
	for _, r := range records {
		key := path.Join(directory, filepath.Base(r.Path))

		exists, err := store.Exists(ctx, key)
		if err != nil {
			return err
		}
		if exists {
			d.logger.Info("artifact unchanged, upload skipped", "target", r.Target, "key", key)
			continue
		}

		if err := d.uploadFile(ctx, store, key, r.Path); err != nil {
			return err
		}
		d.logger.Info("artifact uploaded", "target", r.Target, "key", key)
	}
	return nil
}

// UploadDescriptor uploads the always-regenerated deployment
// descriptor inside a naming override scope. The policy's descriptor
// key function is swapped for a time-bucketing replacement for
// exactly this one upload and restored on every exit path, so later
// naming decisions — including the rollback tool's lookup under the
// original scheme — are unaffected.
func (d *Deployer) UploadDescriptor(ctx context.Context, store upload.Store, policy *naming.Policy, directory, descriptorPath string) error {
	return naming.WithOverride(policy, d.clock, func() error {
		key := path.Join(directory, policy.DescriptorKey())
		if err := d.uploadFile(ctx, store, key, descriptorPath); err != nil {
			return err
		}
		d.logger.Info("descriptor uploaded", "key", key)
		return nil
	})
}

// uploadFile streams one local file into the store.
func (d *Deployer) uploadFile(ctx context.Context, store upload.Store, key, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening %s for upload: %w", localPath, err)
	}
	defer file.Close()

	if err := store.Upload(ctx, key, file); err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}
