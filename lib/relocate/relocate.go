// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package relocate

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Record describes one completed relocation. Immutable once produced;
// owned by the caller that requested it.
type Record struct {
	// Target is the build target the artifact belongs to. Filled in
	// by All; empty for direct Relocator.Relocate calls.
	Target string `json:"target,omitempty"`

	// Source is the artifact path before relocation.
	Source string `json:"source"`

	// Digest is the lowercase hex content digest.
	Digest string `json:"digest"`

	// Algorithm is the digest algorithm that produced Digest.
	Algorithm Algorithm `json:"algorithm"`

	// Path is the digest-qualified path the artifact now lives at.
	Path string `json:"path"`
}

// Relocator moves artifacts to digest-qualified paths. The zero value
// relocates into each source's own directory using the default
// algorithm.
type Relocator struct {
	// OutputDir is where relocated artifacts are written. Empty
	// means the source file's own directory.
	OutputDir string

	// Algorithm is the content digest algorithm. Empty means SHA1.
	Algorithm Algorithm
}

// Relocate streams the source file, computing its content digest
// while writing a uniquely named temp copy in the output directory,
// then atomically renames the copy to <basename>-<digest><ext> and
// removes the original path.
//
// Two invocations over identical content converge on the identical
// final path, so overwriting an existing relocated file is safe and
// expected. The temp name is unique per invocation, so concurrent
// relocations of same-basename artifacts into one output directory
// never touch each other's in-progress copies. The temp file is
// removed on every failure path.
func (r *Relocator) Relocate(source string) (Record, error) {
	algorithm := r.Algorithm
	if algorithm == "" {
		algorithm = SHA1
	}
	hasher, err := algorithm.newHasher()
	if err != nil {
		return Record{}, &RelocationError{Path: source, Err: err}
	}

	outputDir := r.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}

	base := filepath.Base(source)
	extension := filepath.Ext(base)
	stem := strings.TrimSuffix(base, extension)

	in, err := os.Open(source)
	if err != nil {
		return Record{}, &RelocationError{Path: source, Err: err}
	}
	defer in.Close()

	out, err := os.CreateTemp(outputDir, base+"-*.tmp")
	if err != nil {
		return Record{}, &RelocationError{Path: source, Err: err}
	}
	tempPath := out.Name()

	success := false
	defer func() {
		if !success {
			out.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := io.Copy(io.MultiWriter(hasher, out), in); err != nil {
		return Record{}, &RelocationError{Path: source, Err: err}
	}
	if err := out.Close(); err != nil {
		return Record{}, &RelocationError{Path: source, Err: err}
	}

	digest := hex.EncodeToString(hasher.Sum(nil))
	finalPath := filepath.Join(outputDir, stem+"-"+digest+extension)

	if err := os.Rename(tempPath, finalPath); err != nil {
		return Record{}, &RelocationError{Path: source, Err: err}
	}
	success = true

	// The rename consumed the temp copy; drop the original unless the
	// caller handed us an already-relocated file.
	if source != finalPath {
		if err := os.Remove(source); err != nil {
			return Record{}, &RelocationError{Path: source, Err: err}
		}
	}

	return Record{
		Source:    source,
		Digest:    digest,
		Algorithm: algorithm,
		Path:      finalPath,
	}, nil
}
