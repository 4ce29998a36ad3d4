// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package naming

import "fmt"

// DirectoryName returns the hash-addressed deployment directory name
// for a prefix/service/stage triple: "<prefix>/<service>/<stage>".
// Pure and deterministic, no I/O. Callers must only invoke it after
// every eligible artifact has been relocated, so the name is assigned
// exactly once per successful run.
func DirectoryName(prefix, service, stage string) string {
	return prefix + "/" + service + "/" + stage
}

// KeyFunc produces the storage key suffix for the deployment
// descriptor.
type KeyFunc func() string

// Policy holds the descriptor-key naming strategy. The strategy slot
// is mutable, but only through an Override — consumers read keys via
// DescriptorKey and never touch the slot directly.
//
// A Policy is not safe for concurrent mutation: at most one Override
// may be active against it at a time, and the overridden policy must
// not be shared across concurrently running uploads.
type Policy struct {
	key    KeyFunc
	active bool
}

// NewPolicy creates a Policy with the host pipeline's descriptor key
// function.
func NewPolicy(key KeyFunc) *Policy {
	return &Policy{key: key}
}

// DescriptorKey invokes the current strategy and returns the
// descriptor storage key.
func (p *Policy) DescriptorKey() string {
	return p.key()
}

// AlreadyAssignedError reports that a deployment directory name was
// already set by an earlier pipeline stage. The hashing feature is
// skipped for the run; the existing name is never overwritten.
type AlreadyAssignedError struct {
	// Directory is the previously assigned name.
	Directory string
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("deployment directory already assigned to %q, leaving it untouched", e.Directory)
}

// IncompatibleHostError reports that the naming collaborator lacks
// the extension point an Override needs (no policy, or a policy with
// no descriptor key function).
type IncompatibleHostError struct {
	// Reason describes the missing extension point.
	Reason string
}

func (e *IncompatibleHostError) Error() string {
	return "naming policy is incompatible: " + e.Reason
}
