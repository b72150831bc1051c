// Copyright 2026 the dicelab authors
// This file is part of dicelab, a tabletop-dice probability toolkit.
//
// dicelab is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dicelab is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with dicelab. If not, see <http://www.gnu.org/licenses/>.

// Package dice is a generated GoMock package.
package dice

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockDie is a mock of Die interface.
type MockDie struct {
	ctrl     *gomock.Controller
	recorder *MockDieMockRecorder
	isgomock struct{}
}

// MockDieMockRecorder is the mock recorder for MockDie.
type MockDieMockRecorder struct {
	mock *MockDie
}

// NewMockDie creates a new mock instance.
func NewMockDie(ctrl *gomock.Controller) *MockDie {
	mock := &MockDie{ctrl: ctrl}
	mock.recorder = &MockDieMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDie) EXPECT() *MockDieMockRecorder {
	return m.recorder
}

// AtLeast mocks base method.
func (m *MockDie) AtLeast() map[int]float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AtLeast")
	ret0, _ := ret[0].(map[int]float64)
	return ret0
}

// AtLeast indicates an expected call of AtLeast.
func (mr *MockDieMockRecorder) AtLeast() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AtLeast", reflect.TypeOf((*MockDie)(nil).AtLeast))
}

// AtMost mocks base method.
func (m *MockDie) AtMost() map[int]float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AtMost")
	ret0, _ := ret[0].(map[int]float64)
	return ret0
}

// AtMost indicates an expected call of AtMost.
func (mr *MockDieMockRecorder) AtMost() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AtMost", reflect.TypeOf((*MockDie)(nil).AtMost))
}

// Mean mocks base method.
func (m *MockDie) Mean() float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Mean")
	ret0, _ := ret[0].(float64)
	return ret0
}

// Mean indicates an expected call of Mean.
func (mr *MockDieMockRecorder) Mean() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Mean", reflect.TypeOf((*MockDie)(nil).Mean))
}

// Name mocks base method.
func (m *MockDie) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockDieMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockDie)(nil).Name))
}

// PMF mocks base method.
func (m *MockDie) PMF() map[int]float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PMF")
	ret0, _ := ret[0].(map[int]float64)
	return ret0
}

// PMF indicates an expected call of PMF.
func (mr *MockDieMockRecorder) PMF() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PMF", reflect.TypeOf((*MockDie)(nil).PMF))
}

// Std mocks base method.
func (m *MockDie) Std() float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Std")
	ret0, _ := ret[0].(float64)
	return ret0
}

// Std indicates an expected call of Std.
func (mr *MockDieMockRecorder) Std() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Std", reflect.TypeOf((*MockDie)(nil).Std))
}
