// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"errors"

	"github.com/luxfi/quorum/storage"
)

// Sentinel error kinds owned by the Service (§7).
var (
	ErrScopeNotInitialized      = errors.New("service: scope not initialized")
	ErrScopeAlreadyInitialized  = errors.New("service: scope already initialized")
	ErrInvalidRequest           = errors.New("service: invalid request")
	ErrProposalConflict         = errors.New("service: proposal conflict")
	ErrUnknownProposal          = errors.New("service: unknown proposal")
	// ErrCapacityExceeded is reserved for a policy variant that disables
	// eviction (§7: "only if eviction is disabled"). This Service always
	// evicts per §3's eviction policy, so nothing returns it today; it is
	// declared to keep the error taxonomy complete and closed.
	ErrCapacityExceeded = errors.New("service: capacity exceeded")
)

// ErrStorage re-exports storage.ErrStorage so callers only need to import
// one package's sentinel to check storage failures from the Service.
var ErrStorage = storage.ErrStorage
