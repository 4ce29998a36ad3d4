// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest defines the deployment manifest: the service being
// deployed, its stage and upload prefix, and the ordered list of build
// targets considered together as one all-or-nothing batch.
//
// Manifests are authored on disk as JSONC (JSON extended with comments
// and trailing commas) or YAML; the format is chosen by file
// extension. The typical flow:
//
//  1. ReadFile or Parse: manifest bytes → Manifest
//  2. Validate: structural checks (unique target names, required fields)
//  3. hand the Manifest to deploy.Deployer as the target registry
package manifest
