// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the deckhand command tree: command dispatch,
// pflag-based flag parsing, structured help output, and the shared
// command logger.
package cli
