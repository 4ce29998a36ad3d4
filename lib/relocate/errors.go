// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package relocate

import "fmt"

// PreconditionError reports a target that makes hash-based relocation
// unsafe for the whole batch: it neither declares an external image
// nor disables packaging, yet has no materialized artifact.
type PreconditionError struct {
	// Target is the name of the offending target.
	Target string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("target %q has no pre-built artifact: every packaged target needs a materialized artifact before relocation", e.Target)
}

// RelocationError reports an I/O failure while streaming, hashing, or
// renaming one artifact. It aborts the batch result; sibling
// relocations that already completed are not undone (re-running is
// safe because relocation is idempotent).
type RelocationError struct {
	// Path is the source artifact path.
	Path string

	// Err is the underlying I/O error.
	Err error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("relocating %s: %v", e.Path, e.Err)
}

func (e *RelocationError) Unwrap() error { return e.Err }
