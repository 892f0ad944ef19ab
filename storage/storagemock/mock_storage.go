// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storagemock is a hand-maintained stand-in for the output of
//
//	mockgen -package storagemock -destination storage/storagemock/mock_storage.go github.com/luxfi/quorum/storage Storage
//
// following the shape mockgen actually emits (MockFoo + MockFooMockRecorder
// pairs driving a gomock.Controller), the same convention the teacher uses
// for its sendermock/trackermock/enginemock packages. Kept hand-written
// here so the module has no code-generation step, but the structure is
// exactly the generated one.
package storagemock

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// MockStorage is a mock of the storage.Storage interface.
type MockStorage struct {
	ctrl     *gomock.Controller
	recorder *MockStorageMockRecorder
}

// MockStorageMockRecorder is the mock recorder for MockStorage.
type MockStorageMockRecorder struct {
	mock *MockStorage
}

// NewMockStorage creates a new mock instance.
func NewMockStorage(ctrl *gomock.Controller) *MockStorage {
	mock := &MockStorage{ctrl: ctrl}
	mock.recorder = &MockStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorage) EXPECT() *MockStorageMockRecorder {
	return m.recorder
}

func (m *MockStorage) SaveSession(ctx context.Context, scope types.ScopeID, sess *session.Session) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveSession", ctx, scope, sess)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockStorageMockRecorder) SaveSession(ctx, scope, sess interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveSession", reflect.TypeOf((*MockStorage)(nil).SaveSession), ctx, scope, sess)
}

func (m *MockStorage) GetSession(ctx context.Context, scope types.ScopeID, proposalID uint32) (*session.Session, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSession", ctx, scope, proposalID)
	ret0, _ := ret[0].(*session.Session)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockStorageMockRecorder) GetSession(ctx, scope, proposalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSession", reflect.TypeOf((*MockStorage)(nil).GetSession), ctx, scope, proposalID)
}

func (m *MockStorage) ListSessions(ctx context.Context, scope types.ScopeID) ([]*session.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListSessions", ctx, scope)
	ret0, _ := ret[0].([]*session.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockStorageMockRecorder) ListSessions(ctx, scope interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListSessions", reflect.TypeOf((*MockStorage)(nil).ListSessions), ctx, scope)
}

func (m *MockStorage) RemoveSession(ctx context.Context, scope types.ScopeID, proposalID uint32) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveSession", ctx, scope, proposalID)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockStorageMockRecorder) RemoveSession(ctx, scope, proposalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveSession", reflect.TypeOf((*MockStorage)(nil).RemoveSession), ctx, scope, proposalID)
}

func (m *MockStorage) GetConfig(ctx context.Context, scope types.ScopeID) (types.ScopeConfig, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetConfig", ctx, scope)
	ret0, _ := ret[0].(types.ScopeConfig)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (mr *MockStorageMockRecorder) GetConfig(ctx, scope interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetConfig", reflect.TypeOf((*MockStorage)(nil).GetConfig), ctx, scope)
}

func (m *MockStorage) PutConfig(ctx context.Context, scope types.ScopeID, cfg types.ScopeConfig) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PutConfig", ctx, scope, cfg)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockStorageMockRecorder) PutConfig(ctx, scope, cfg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PutConfig", reflect.TypeOf((*MockStorage)(nil).PutConfig), ctx, scope, cfg)
}
