// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirStore is a Store backed by a local directory ("bucket
// directory"). Objects live at <root>/<key> with the key's slashes
// mapped to path separators. Writes are atomic (temp file + rename),
// so concurrent uploads of the same key leave one complete object.
type DirStore struct {
	root        string
	compression Compression
}

// NewDirStore creates a store rooted at dir, creating the directory
// if needed.
func NewDirStore(dir string, compression Compression) (*DirStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &DirStore{root: dir, compression: compression}, nil
}

// Upload writes the reader's content under key, compressed per the
// store's setting, atomically replacing any existing object.
func (s *DirStore) Upload(ctx context.Context, key string, reader io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	finalPath := s.objectPath(key)
	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return fmt.Errorf("creating object directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.root, "upload-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp object file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	compressor, err := s.compression.compressWriter(tmpFile)
	if err != nil {
		return err
	}
	if _, err := io.Copy(compressor, reader); err != nil {
		return fmt.Errorf("writing object %s: %w", key, err)
	}
	if err := compressor.Close(); err != nil {
		return fmt.Errorf("finalizing object %s: %w", key, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp object file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("renaming object %s: %w", key, err)
	}

	success = true
	return nil
}

// Exists reports whether an object is stored under key.
func (s *DirStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(s.objectPath(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking object %s: %w", key, err)
}

// Open retrieves an object, transparently decompressing it.
func (s *DirStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(s.objectPath(key))
	if err != nil {
		return nil, fmt.Errorf("opening object %s: %w", key, err)
	}
	reader, err := s.compression.decompressReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &objectReader{Reader: reader, file: file}, nil
}

// objectPath maps a slash-separated key to a filesystem path under
// the store root.
func (s *DirStore) objectPath(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// objectReader pairs the decompression reader with the underlying
// file so Close releases both. Frame-truncation errors surface on the
// decompressor's Close, so it is propagated alongside the file's.
type objectReader struct {
	io.Reader
	file *os.File
}

func (r *objectReader) Close() error {
	var decompressErr error
	if closer, ok := r.Reader.(io.Closer); ok {
		decompressErr = closer.Close()
	}
	return errors.Join(decompressErr, r.file.Close())
}
