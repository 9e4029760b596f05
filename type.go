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

package archstore

import (
	"hash/fnv"
	"sort"
)

// Type is the sorted, deduplicated sequence of ids that defines an
// archetype. Two tables are the same archetype iff their Types are equal;
// the Store's table registry relies on this (see store.go, P7).
type Type struct {
	ids []Id
}

// NewType builds a Type from an arbitrary id slice, sorting and
// deduplicating it. The input slice is not retained.
func NewType(ids ...Id) Type {
	cp := make([]Id, len(ids))
	copy(cp, ids)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, id := range cp {
		if i == 0 || id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return Type{ids: out}
}

// Count returns the number of ids in the type.
func (t Type) Count() int { return len(t.ids) }

// At returns the id at position i. Panics if i is out of range.
func (t Type) At(i int) Id { return t.ids[i] }

// Ids returns the underlying id slice. Callers must not mutate it.
func (t Type) Ids() []Id { return t.ids }

// IndexOf returns the position of id in the type, or -1 if absent. O(log n)
// since the type is kept sorted.
func (t Type) IndexOf(id Id) int {
	lo, hi := 0, len(t.ids)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.ids[mid] < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(t.ids) && t.ids[lo] == id {
		return lo
	}
	return -1
}

// Has reports whether id is present in the type.
func (t Type) Has(id Id) bool { return t.IndexOf(id) >= 0 }

// WithAdded returns a new Type with id added, or t unchanged (same
// backing array) if id is already present.
func (t Type) WithAdded(id Id) Type {
	if t.Has(id) {
		return t
	}
	ids := make([]Id, 0, len(t.ids)+1)
	ids = append(ids, t.ids...)
	ids = append(ids, id)
	return NewType(ids...)
}

// WithRemoved returns a new Type with id removed, or t unchanged if id was
// absent.
func (t Type) WithRemoved(id Id) Type {
	idx := t.IndexOf(id)
	if idx < 0 {
		return t
	}
	ids := make([]Id, 0, len(t.ids)-1)
	ids = append(ids, t.ids[:idx]...)
	ids = append(ids, t.ids[idx+1:]...)
	return Type{ids: ids}
}

// Equal reports whether t and o contain exactly the same ids in the same
// order (both are kept sorted, so this is the archetype-identity test, P7).
func (t Type) Equal(o Type) bool {
	if len(t.ids) != len(o.ids) {
		return false
	}
	for i, id := range t.ids {
		if o.ids[i] != id {
			return false
		}
	}
	return true
}

// SharesPrefixWith returns the length of the longest common prefix between
// t and o. Used by the table registry to pick the "from" table it passes
// to a new table's init; init does not read that table, so no id-record
// work is saved by it.
func (t Type) SharesPrefixWith(o Type) int {
	n := len(t.ids)
	if len(o.ids) < n {
		n = len(o.ids)
	}
	i := 0
	for i < n && t.ids[i] == o.ids[i] {
		i++
	}
	return i
}

// Hash returns an FNV-1a hash over the id sequence, used as the table
// registry's primary ordering key (store.go). Two equal types always hash
// equal; unequal types may collide, so the registry still compares full
// Types on a hash match.
func (t Type) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, id := range t.ids {
		le64(buf, uint64(id))
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

func le64(buf []byte, v uint64) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	buf[4] = byte(v >> 32)
	buf[5] = byte(v >> 40)
	buf[6] = byte(v >> 48)
	buf[7] = byte(v >> 56)
}
