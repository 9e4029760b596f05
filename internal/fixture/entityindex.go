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

// Package fixture provides minimal, in-memory implementations of
// archstore's external collaborator interfaces, for use in tests and the
// cmd/archstorectl demo tool. None of this is meant for production use --
// a real embedder almost certainly already has an entity index and an
// event bus of its own, which is exactly why those are interfaces instead
// of concrete archstore types.
package fixture

import "github.com/flecsgo/archstore"

// EntityIndex is a bare map-backed archstore.EntityIndex.
type EntityIndex struct {
	records map[archstore.Entity]*archstore.Record
}

// NewEntityIndex returns an empty EntityIndex.
func NewEntityIndex() *EntityIndex {
	return &EntityIndex{records: make(map[archstore.Entity]*archstore.Record)}
}

func (idx *EntityIndex) Get(e archstore.Entity) (*archstore.Record, bool) {
	r, ok := idx.records[e]
	return r, ok
}

func (idx *EntityIndex) Ensure(e archstore.Entity) *archstore.Record {
	r, ok := idx.records[e]
	if !ok {
		r = &archstore.Record{}
		idx.records[e] = r
	}
	return r
}

func (idx *EntityIndex) Remove(e archstore.Entity) {
	delete(idx.records, e)
}
