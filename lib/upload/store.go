// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"context"
	"io"
)

// Store is the upload collaborator. Keys are slash-separated, rooted
// at the deployment directory name (e.g.
// "deploy/orders/prod/api-abcd1234.zip").
type Store interface {
	// Upload stores the reader's content under key, overwriting any
	// existing object.
	Upload(ctx context.Context, key string, reader io.Reader) error

	// Exists reports whether an object is already stored under key.
	// Upload diffing: a relocated artifact whose key already exists
	// is skipped.
	Exists(ctx context.Context, key string) (bool, error)

	// Open retrieves the content stored under key. The caller must
	// close the returned reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
