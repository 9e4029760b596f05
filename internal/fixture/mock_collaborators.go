// Copyright 2026 The archstore Authors
// This file is part of archstore.
//
// archstore is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// archstore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with archstore. If not, see <http://www.gnu.org/licenses/>.

// Code generated by go.uber.org/mock's mockgen shape, hand-maintained
// here since this repo does not invoke go:generate as part of its build.

package fixture

import (
	reflect "reflect"

	archstore "github.com/flecsgo/archstore"
	gomock "go.uber.org/mock/gomock"
)

// MockEmitter is a gomock-compatible mock of archstore.Emitter, for tests
// that need to assert exact call sequences/arguments rather than just
// recording events (see RecordingEmitter for the simpler case).
type MockEmitter struct {
	ctrl     *gomock.Controller
	recorder *MockEmitterMockRecorder
}

type MockEmitterMockRecorder struct {
	mock *MockEmitter
}

func NewMockEmitter(ctrl *gomock.Controller) *MockEmitter {
	m := &MockEmitter{ctrl: ctrl}
	m.recorder = &MockEmitterMockRecorder{m}
	return m
}

func (m *MockEmitter) EXPECT() *MockEmitterMockRecorder {
	return m.recorder
}

func (m *MockEmitter) Emit(event archstore.Event) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Emit", event)
}

func (mr *MockEmitterMockRecorder) Emit(event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Emit", reflect.TypeOf((*MockEmitter)(nil).Emit), event)
}

// MockEntityIndex is a gomock-compatible mock of archstore.EntityIndex.
type MockEntityIndex struct {
	ctrl     *gomock.Controller
	recorder *MockEntityIndexMockRecorder
}

type MockEntityIndexMockRecorder struct {
	mock *MockEntityIndex
}

func NewMockEntityIndex(ctrl *gomock.Controller) *MockEntityIndex {
	m := &MockEntityIndex{ctrl: ctrl}
	m.recorder = &MockEntityIndexMockRecorder{m}
	return m
}

func (m *MockEntityIndex) EXPECT() *MockEntityIndexMockRecorder {
	return m.recorder
}

func (m *MockEntityIndex) Get(e archstore.Entity) (*archstore.Record, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", e)
	r, _ := ret[0].(*archstore.Record)
	ok, _ := ret[1].(bool)
	return r, ok
}

func (mr *MockEntityIndexMockRecorder) Get(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockEntityIndex)(nil).Get), e)
}

func (m *MockEntityIndex) Ensure(e archstore.Entity) *archstore.Record {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ensure", e)
	r, _ := ret[0].(*archstore.Record)
	return r
}

func (mr *MockEntityIndexMockRecorder) Ensure(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ensure", reflect.TypeOf((*MockEntityIndex)(nil).Ensure), e)
}

func (m *MockEntityIndex) Remove(e archstore.Entity) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Remove", e)
}

func (mr *MockEntityIndexMockRecorder) Remove(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockEntityIndex)(nil).Remove), e)
}
