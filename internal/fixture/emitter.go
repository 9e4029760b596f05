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

package fixture

import (
	"sync"

	"github.com/flecsgo/archstore"
)

// RecordingEmitter appends every Event it receives, for tests that assert
// on notification order/content instead of (or in addition to) on the
// resulting table state.
type RecordingEmitter struct {
	mu     sync.Mutex
	Events []archstore.Event
}

func NewRecordingEmitter() *RecordingEmitter {
	return &RecordingEmitter{}
}

func (e *RecordingEmitter) Emit(ev archstore.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Events = append(e.Events, ev)
}

func (e *RecordingEmitter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Events = nil
}
