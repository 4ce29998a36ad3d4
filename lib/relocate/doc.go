// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package relocate moves build artifacts to content-hash-addressed
// paths. An artifact's relocated filename is a pure function of its
// byte content (plus its original extension), so unchanged artifacts
// land on identical names across runs and are skipped by downstream
// upload diffing.
//
// Relocation is gated by a batch precondition: every target that
// needs packaging must already have a materialized artifact. If any
// target still requires the host pipeline's own build step, the final
// artifact path cannot be known yet and the naming decision could not
// be made consistently across the deployment — Validate rejects the
// whole batch and nothing is touched on disk.
//
// The typical flow:
//
//	eligible, err := relocate.Validate(m.AllTargets())
//	records, err := relocate.All(ctx, relocator, eligible, workers)
package relocate
