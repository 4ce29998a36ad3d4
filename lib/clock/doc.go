// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Production code accepts a Clock parameter instead of calling
// time.Now directly. In production, Real() provides standard library
// behavior. In tests, Fake() provides a deterministic clock whose
// reading only changes when the test says so.
//
// Deckhand stamps time in two places: the time-bucketed descriptor
// key produced by a naming override, and the creation timestamp of
// the deployment record. Both must be reproducible in tests, so both
// take a Clock.
package clock
