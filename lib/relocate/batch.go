// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

package relocate

import (
	"context"
	"sync"
)

// DefaultWorkers bounds concurrent relocations when the caller does
// not choose a limit. Relocation is I/O bound; a small pool keeps the
// open-file count predictable for large batches.
const DefaultWorkers = 8

// All relocates every eligible artifact with at most workers
// relocations in flight (workers <= 0 selects DefaultWorkers).
//
// Failure propagation is fail-fast: the first error stops new
// relocations from starting and aborts the overall result, but
// relocations already completed are not undone. Idempotent renaming
// makes re-running the whole batch a safe recovery path.
//
// On success the returned records are in eligible order, each tagged
// with its target name. Relocation order across targets is otherwise
// irrelevant — records are independent.
func All(ctx context.Context, relocator *Relocator, eligible []Eligible, workers int) ([]Record, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	records := make([]Record, len(eligible))
	semaphore := make(chan struct{}, workers)

	var waitGroup sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	for index, entry := range eligible {
		if failed() {
			break
		}
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}

		semaphore <- struct{}{}
		waitGroup.Add(1)
		go func(index int, entry Eligible) {
			defer waitGroup.Done()
			defer func() { <-semaphore }()

			record, err := relocator.Relocate(entry.ArtifactPath)
			if err != nil {
				fail(err)
				return
			}
			record.Target = entry.Target.Name
			records[index] = record
		}(index, entry)
	}

	waitGroup.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return records, nil
}
