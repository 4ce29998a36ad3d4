// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package deploy orchestrates one deckhand run: gate on an
// already-assigned directory name, validate the batch precondition,
// relocate every eligible artifact concurrently, assign the
// hash-addressed directory name, and persist the deployment record.
//
// Every condition that makes hashing unsafe degrades to an explicit
// skipped Outcome instead of an error — the surrounding pipeline
// continues with its default (non-hashed) naming, and the reason is
// logged. Only genuinely unexpected failures (for example, the
// deployment record not being writable) surface as errors.
package deploy
