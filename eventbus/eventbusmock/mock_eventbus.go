// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package eventbusmock is a hand-maintained stand-in for
//
//	mockgen -package eventbusmock -destination eventbus/eventbusmock/mock_eventbus.go github.com/luxfi/quorum/eventbus EventBus
//
// see storage/storagemock for why this is hand-written rather than
// generated.
package eventbusmock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/luxfi/quorum/eventbus"
	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// MockEventBus is a mock of the eventbus.EventBus interface.
type MockEventBus struct {
	ctrl     *gomock.Controller
	recorder *MockEventBusMockRecorder
}

// MockEventBusMockRecorder is the mock recorder for MockEventBus.
type MockEventBusMockRecorder struct {
	mock *MockEventBus
}

// NewMockEventBus creates a new mock instance.
func NewMockEventBus(ctrl *gomock.Controller) *MockEventBus {
	mock := &MockEventBus{ctrl: ctrl}
	mock.recorder = &MockEventBusMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventBus) EXPECT() *MockEventBusMockRecorder {
	return m.recorder
}

func (m *MockEventBus) Subscribe() eventbus.Receiver {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Subscribe")
	ret0, _ := ret[0].(eventbus.Receiver)
	return ret0
}

func (mr *MockEventBusMockRecorder) Subscribe() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribe", reflect.TypeOf((*MockEventBus)(nil).Subscribe))
}

func (m *MockEventBus) Publish(scope types.ScopeID, evt session.Event) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Publish", scope, evt)
}

func (mr *MockEventBusMockRecorder) Publish(scope, evt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Publish", reflect.TypeOf((*MockEventBus)(nil).Publish), scope, evt)
}
