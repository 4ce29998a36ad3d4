// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides deckhand's standard CBOR encoding configuration.
//
// Deckhand uses two serialization formats with a clear boundary:
//
//   - JSONC/YAML for human-authored inputs: the deployment manifest
//     and the runtime config file.
//   - CBOR for machine-written state: the deployment record consumed
//     by rollback tooling.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical record always produces identical bytes, so a
// re-run over unchanged artifacts produces a byte-identical record.
//
//	data, err := codec.Marshal(record)
//	err = codec.Unmarshal(data, &record)
package codec
