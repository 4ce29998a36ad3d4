// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import "fmt"

// Validate checks a Manifest for structural issues. Returns a list of
// human-readable issue descriptions. An empty list means the manifest
// is valid.
//
// Structural checks include:
//   - Service, Stage, and Prefix are required
//   - At least one target is required
//   - Each target must have a non-empty Name, unique within the batch
//   - Image and Artifact are mutually exclusive on a target
//
// Eligibility for hash-based relocation (every packaged target has a
// materialized artifact) is a separate, batch-level decision made by
// relocate.Validate — a structurally valid manifest can still fail
// that precondition.
func Validate(m *Manifest) []string {
	var issues []string

	if m.Service == "" {
		issues = append(issues, "service is required")
	}
	if m.Stage == "" {
		issues = append(issues, "stage is required")
	}
	if m.Prefix == "" {
		issues = append(issues, "prefix is required")
	}
	if len(m.Targets) == 0 {
		issues = append(issues, "manifest has no targets (at least one target is required)")
	}

	seen := make(map[string]bool, len(m.Targets))
	for index, target := range m.Targets {
		prefix := fmt.Sprintf("targets[%d]", index)

		if target.Name == "" {
			issues = append(issues, fmt.Sprintf("%s: name is required", prefix))
		} else {
			prefix = fmt.Sprintf("targets[%d] %q", index, target.Name)
			if seen[target.Name] {
				issues = append(issues, fmt.Sprintf("%s: duplicate target name", prefix))
			}
			seen[target.Name] = true
		}

		if target.Image != "" && target.Artifact != "" {
			issues = append(issues, fmt.Sprintf("%s: image and artifact are mutually exclusive", prefix))
		}
	}

	return issues
}
