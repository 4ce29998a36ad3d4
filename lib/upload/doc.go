// Copyright 2026 The Deckhand Authors
// SPDX-License-Identifier: Apache-2.0

// Package upload defines the store interface deckhand uploads
// through, plus a local directory-backed implementation for pipelines
// that stage deployments on a shared filesystem.
//
// Network-backed stores (object storage, registries) are the host
// pipeline's concern: it implements Store and hands it to the deploy
// orchestrator. Deckhand only decides WHAT to upload and under WHICH
// key — content-hashed artifact names make unchanged uploads land on
// existing keys, which is what lets a store skip them.
package upload
