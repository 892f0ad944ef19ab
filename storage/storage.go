// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage declares the Storage capability (§6): the engine's only
// persistence boundary. Sessions and scope configs are opaque to the
// capability — it never interprets them, only stores and returns them —
// so a file-backed or database-backed implementation can replace the
// default in-memory one without touching the engine.
package storage

import (
	"context"
	"errors"

	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// ErrStorage wraps any underlying storage failure; callers compare with
// errors.Is(err, ErrStorage) without depending on a specific backend's
// error types (§7).
var ErrStorage = errors.New("storage: operation failed")

// Storage is the engine's persistence capability (§6). Every method may
// suspend on an external backend. The Service calls these methods while
// holding the scope's mutex, so a slow backend call delays every other
// operation on that scope until it returns.
type Storage interface {
	SaveSession(ctx context.Context, scope types.ScopeID, sess *session.Session) error
	GetSession(ctx context.Context, scope types.ScopeID, proposalID uint32) (*session.Session, bool, error)
	ListSessions(ctx context.Context, scope types.ScopeID) ([]*session.Session, error)
	RemoveSession(ctx context.Context, scope types.ScopeID, proposalID uint32) error

	GetConfig(ctx context.Context, scope types.ScopeID) (types.ScopeConfig, bool, error)
	PutConfig(ctx context.Context, scope types.ScopeID, cfg types.ScopeConfig) error
}
