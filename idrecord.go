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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/RoaringBitmap/roaring/v2"
)

// TableRecord is the per-(id, table) association the spec calls out as its
// own component: for a concrete id it records exactly where in the table's
// Type the id sits and which storage column backs it (or -1 for a tag with
// no payload).
type TableRecord struct {
	idr    *idRecord
	Table  *Table
	Index  int // position within the table's Type
	Column int // position within the table's storage columns, -1 if tag
	Count  int // for a wildcard record, how many concrete ids this table
	// matches under the wildcard (e.g. how many (R,*) ids the table has)
}

// idRecord is the per-id entry in the id-record cache: every table that
// currently has this id in its Type, keyed for O(1) membership tests and
// O(matching tables) iteration. Registered both for concrete ids and for
// the wildcard id forms (R,*), (*,T), (*,*), and the bare wildcard/any ids,
// exactly as flecs's flecs_id_record_t does.
type idRecord struct {
	id      Id
	tables  map[*Table]*TableRecord
	members *roaring.Bitmap // table.seq membership, mirrors tables' keys
	ti      *TypeInfo       // component type info, nil for pure tags/pairs
	parent  *idRecord       // a concrete pair's parent is (*,T); (*,T)'s and (R,*)'s parent is (*,*)
}

func newIDRecord(id Id, ti *TypeInfo) *idRecord {
	return &idRecord{
		id:      id,
		tables:  make(map[*Table]*TableRecord),
		members: roaring.New(),
		ti:      ti,
	}
}

func (r *idRecord) add(t *Table, tr *TableRecord) {
	r.tables[t] = tr
	r.members.Add(t.seq)
}

func (r *idRecord) remove(t *Table) {
	delete(r.tables, t)
	r.members.Remove(t.seq)
}

func (r *idRecord) get(t *Table) (*TableRecord, bool) {
	tr, ok := r.tables[t]
	return tr, ok
}

func (r *idRecord) count() int { return len(r.tables) }

// idRecordCache owns every idRecord a Store has ever created, including the
// wildcard entries. Wildcard records are never attached to a concrete
// Type; a table registers itself under a wildcard idRecord's TableRecord
// map in addition to its concrete ids, so "all tables with any (Likes,*)
// pair" is a single map lookup plus an O(matching tables) walk instead of a
// scan over every table in the store.
type idRecordCache struct {
	byID map[Id]*idRecord

	// relationships and targets track the distinct first/second halves
	// ever seen in a registered pair id, independent of which tables
	// currently hold them -- cheap membership sets a caller can use to
	// enumerate "every relationship in use" without walking every
	// idRecord and filtering for IsPair.
	relationships mapset.Set[Entity]
	targets       mapset.Set[Entity]
}

func newIDRecordCache() *idRecordCache {
	return &idRecordCache{
		byID:          make(map[Id]*idRecord),
		relationships: mapset.NewThreadUnsafeSet[Entity](),
		targets:       mapset.NewThreadUnsafeSet[Entity](),
	}
}

// Relationships returns every relationship entity ever used as the first
// half of a registered pair id.
func (c *idRecordCache) Relationships() []Entity { return c.relationships.ToSlice() }

// Targets returns every target entity ever used as the second half of a
// registered pair id.
func (c *idRecordCache) Targets() []Entity { return c.targets.ToSlice() }

// ensure returns the idRecord for id, creating it (and, for a pair id, its
// wildcard parents) on first use. ti supplies the TypeInfo the first time
// a concrete (non-wildcard) id is registered; later calls may pass nil.
func (c *idRecordCache) ensure(id Id, ti *TypeInfo) *idRecord {
	key := id.StripFlags()
	if r, ok := c.byID[key]; ok {
		if r.ti == nil && ti != nil {
			r.ti = ti
		}
		return r
	}
	r := newIDRecord(key, ti)
	c.byID[key] = r

	if key.IsPair() {
		if key.First() != Wildcard {
			c.relationships.Add(key.First())
		}
		if key.Second() != Wildcard {
			c.targets.Add(key.Second())
		}
		relWildcard := c.ensure(wildcardRelationship(key), nil)
		tgtWildcard := c.ensure(wildcardTarget(key), nil)
		// (*,*) is the parent of both half-wildcards; track it so an
		// entity-deletion cascade can walk every pair table through one
		// root instead of enumerating registered relationships.
		anyAny := c.ensure(MakePair(Wildcard, Wildcard), nil)
		relWildcard.parent = anyAny
		tgtWildcard.parent = anyAny
		r.parent = relWildcard
	}
	return r
}

// lookup returns the idRecord for id if one has been created, without
// creating it.
func (c *idRecordCache) lookup(id Id) (*idRecord, bool) {
	r, ok := c.byID[id.StripFlags()]
	return r, ok
}

// registerTable adds t's TableRecord for a concrete id into every idRecord
// that id matches: the concrete record itself, plus -- when id is a pair --
// the (R,*) and (*,T) wildcard records, mirroring flecs_table_init's
// wildcard bookkeeping (table.c's flecs_table_init, the loop that walks
// flecs_id_record_get_table via idr->parent).
func (c *idRecordCache) registerTable(id Id, t *Table, tr *TableRecord) {
	exact := c.ensure(id, t.store.typeInfoFor(id))
	exact.add(t, tr)

	if !id.IsPair() {
		return
	}
	relWildcard := c.ensure(wildcardRelationship(id), nil)
	tgtWildcard := c.ensure(wildcardTarget(id), nil)
	anyAny := c.ensure(MakePair(Wildcard, Wildcard), nil)

	for _, wc := range []*idRecord{relWildcard, tgtWildcard, anyAny} {
		if existing, ok := wc.get(t); ok {
			existing.Count++
			continue
		}
		wc.add(t, &TableRecord{idr: wc, Table: t, Index: tr.Index, Column: tr.Column, Count: 1})
	}
}

// unregisterTable removes every TableRecord for t across the concrete id
// and its wildcard parents, undoing registerTable. Decrements rather than
// blindly deletes the wildcard entries since other concrete ids in the same
// table may share a wildcard parent (e.g. two different (Likes,*) targets
// both count toward (Likes,*) and (*,*)).
func (c *idRecordCache) unregisterTable(id Id, t *Table) {
	if exact, ok := c.lookup(id); ok {
		exact.remove(t)
	}
	if !id.IsPair() {
		return
	}
	for _, wcID := range []Id{wildcardRelationship(id), wildcardTarget(id), MakePair(Wildcard, Wildcard)} {
		wc, ok := c.lookup(wcID)
		if !ok {
			continue
		}
		if tr, ok := wc.get(t); ok {
			tr.Count--
			if tr.Count <= 0 {
				wc.remove(t)
			}
		}
	}
}
