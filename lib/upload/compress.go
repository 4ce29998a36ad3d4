// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the at-rest compression for objects in a
// DirStore. Both frame formats are self-describing, so a store can be
// reopened later with the same setting and read everything back.
type Compression string

const (
	// CompressionNone stores objects verbatim. The right choice for
	// already-compressed artifacts (zips, images), where compression
	// adds CPU cost without reducing size.
	CompressionNone Compression = "none"

	// CompressionLZ4 uses LZ4 frame compression. Fast default when
	// artifact contents are mixed or unknown.
	CompressionLZ4 Compression = "lz4"

	// CompressionZstd uses zstd at its default level. Better ratios
	// for text-like artifacts (descriptors, source bundles).
	CompressionZstd Compression = "zstd"
)

// ParseCompression parses a compression choice from its config
// string. An empty string selects none.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", string(CompressionNone):
		return CompressionNone, nil
	case string(CompressionLZ4):
		return CompressionLZ4, nil
	case string(CompressionZstd):
		return CompressionZstd, nil
	default:
		return "", fmt.Errorf("unknown compression: %q", name)
	}
}

// compressWriter wraps w with the configured compression. The
// returned closer finalizes the compression frame without closing w.
func (c Compression) compressWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case "", CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionZstd:
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		return encoder, nil
	default:
		return nil, fmt.Errorf("unknown compression: %q", c)
	}
}

// decompressReader wraps r with the matching decompression.
func (c Compression) decompressReader(r io.Reader) (io.Reader, error) {
	switch c {
	case "", CompressionNone:
		return r, nil
	case CompressionLZ4:
		return lz4.NewReader(r), nil
	case CompressionZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		return decoder.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("unknown compression: %q", c)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
