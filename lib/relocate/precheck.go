// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package relocate

import "github.com/deckhand-deploy/deckhand/lib/manifest"

// Eligible pairs a target with the artifact path relocation will act
// on.
type Eligible struct {
	Target       manifest.Target
	ArtifactPath string
}

// Validate decides, for a whole batch of targets, whether hash-based
// relocation is safe to apply. Targets are examined in batch order:
//
//   - a target with an external image has nothing to package — skipped
//   - a target with packaging disabled is skipped
//   - every remaining target must declare a pre-built artifact; the
//     first one that does not fails the batch with a
//     PreconditionError naming it
//
// The decision is all-or-nothing: on failure no target is relocated,
// including ones already found eligible earlier in the scan.
func Validate(targets []manifest.Target) ([]Eligible, error) {
	var eligible []Eligible
	for _, target := range targets {
		if target.Image != "" {
			continue
		}
		if target.PackagingDisabled {
			continue
		}
		if target.Artifact == "" {
			return nil, &PreconditionError{Target: target.Name}
		}
		eligible = append(eligible, Eligible{Target: target, ArtifactPath: target.Artifact})
	}
	return eligible, nil
}
