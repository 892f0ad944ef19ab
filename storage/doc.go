// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// A persistent Storage implementation is out of this engine's scope (§1)
// but the extension point is the Storage interface in storage.go: a
// github.com/luxfi/database-backed adapter would keep one versioned KV
// namespace per ScopeID, session bytes under proposal_id keys and the
// scope's ScopeConfig under a fixed sentinel key, the same layout the
// teacher documents for its own pluggable backends (vms' use of
// github.com/luxfi/database behind a narrow Get/Put/Delete capability).
// No adapter ships here: wiring one is a deployment concern, not a core
// one.
