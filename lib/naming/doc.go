// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package naming derives deployment directory names and manages the
// descriptor-key naming strategy.
//
// The directory name is a pure function of the upload prefix, service
// name, and stage. The descriptor key is different: it comes from a
// replaceable strategy function on a Policy, because the rollback
// tool expects the always-regenerated deployment descriptor under its
// original naming scheme even while hash-based artifact renaming is
// active. An Override swaps the strategy for the duration of exactly
// one upload and guarantees the original function is restored.
//
// A Policy is an explicit dependency: construct one, pass it to every
// consumer. There is no package-level shared policy to reach into.
package naming
