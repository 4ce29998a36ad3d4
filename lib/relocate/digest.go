// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package relocate

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
)

// Algorithm selects the content digest used for relocated filenames.
// Changing the algorithm changes every relocated filename, which
// defeats upload diffing against previous deployments — pick one per
// pipeline and keep it.
type Algorithm string

const (
	// SHA1 is the default. It is used for content addressing, not
	// integrity against an adversary, so collision resistance is not
	// a requirement; its short digests keep filenames readable.
	SHA1 Algorithm = "sha1"

	// SHA256 for pipelines that standardize on sha256 digests
	// elsewhere (registries, lockfiles).
	SHA256 Algorithm = "sha256"

	// BLAKE3 for large artifacts where hashing throughput matters.
	BLAKE3 Algorithm = "blake3"
)

// ParseAlgorithm parses an algorithm from its config/CLI string
// representation. An empty string selects the default.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "", string(SHA1):
		return SHA1, nil
	case string(SHA256):
		return SHA256, nil
	case string(BLAKE3):
		return BLAKE3, nil
	default:
		return "", fmt.Errorf("unknown digest algorithm: %q", name)
	}
}

// newHasher returns a fresh hash state for the algorithm.
func (a Algorithm) newHasher() (hash.Hash, error) {
	switch a {
	case "", SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("unknown digest algorithm: %q", a)
	}
}
