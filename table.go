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

// Table is one archetype: every entity stored in it shares exactly the
// same Type. It owns the row-oriented storage (columns, bitset columns,
// entity/record vectors) and the per-id TableRecords that let the id-record
// cache find it.
type Table struct {
	store *Store
	seq   uint32
	typ   Type

	records []*TableRecord // aligned with typ.Ids(); a tag's record has Column -1
	columns []column
	bitsets []bitsetColumn

	// extraIDs holds every synthetic/summary id init registered beyond the
	// one-record-per-type-id set above (role-flag records, the bare and
	// any wildcards, a synthetic ChildOf-less record) -- Free walks these
	// to unregister them from the id-record cache alongside typ's own ids.
	extraIDs []Id

	// columnMap[i] is the storage column index for typ.At(i), or -1.
	columnMap []int
	// storageToType[c] is the type index backing storage column c.
	storageToType []int

	entities   vec[Entity]
	rowRecords vec[*Record] // per-row pointer back into the EntityIndex

	dirty []int32 // lazily allocated; slot 0 = entities, slot i+1 = column i

	flags            tableFlags
	lockDepth        int
	traversableCount int
	name             string
}

func newTable(s *Store, typ Type, from *Table) *Table {
	t := &Table{
		store: s,
		seq:   s.nextSeq,
		typ:   typ,
	}
	s.nextSeq++
	t.init(from)
	return t
}

// init builds the per-id TableRecords, allocates storage columns for ids
// that carry TypeInfo, and registers the table into the id-record cache --
// ported from flecs_table_init (table.c), including the scan phase that
// locates the boundaries between regular ids, role-flagged ids, and pairs,
// and the summary records that phase feeds: a (Flag,X) record per
// TOGGLE/OVERRIDE-flagged id, a bare wildcard record spanning every regular
// id, an "any" record, and -- for a table with no ChildOf pair of its own --
// a synthetic (ChildOf,0) record so cleanup logic can still find it.
func (t *Table) init(from *Table) {
	n := t.typ.Count()
	ids := t.typ.Ids()
	t.records = make([]*TableRecord, n)
	t.columnMap = make([]int, n)
	t.storageToType = make([]int, 0, n)

	// Scan to find the boundaries of regular ids, role-flagged ids, and
	// pairs. Type is kept sorted by raw Id value, and FlagPair/FlagOverride/
	// FlagToggle occupy the top bits, so regular ids sort first, flagged
	// (non-pair) ids next, and pairs last.
	lastPlain := -1
	firstRole := -1
	firstPair := -1
	hasChildOf := false
	for i, id := range ids {
		switch {
		case id.IsPair():
			if firstPair == -1 {
				firstPair = i
			}
			if id.First() == ChildOf {
				hasChildOf = true
			}
		case id&idFlagsMask == 0:
			lastPlain = i
		default:
			if firstRole == -1 {
				firstRole = i
			}
		}
	}

	var bsIDs []Id
	curCol := 0
	for i, id := range ids {
		ti := t.store.typeInfoFor(id)

		var col int
		if ti != nil {
			t.columns = append(t.columns, newColumn(id, ti))
			col = curCol
			t.storageToType = append(t.storageToType, i)
			curCol++
			t.flags |= typeInfoFlags(ti)
		} else {
			col = -1
		}
		t.columnMap[i] = col

		tr := &TableRecord{Table: t, Index: i, Column: col}
		t.records[i] = tr
		t.store.idrecords.registerTable(id, t, tr)

		if id&FlagToggle != 0 {
			bsIDs = append(bsIDs, id)
			t.flags |= flagHasToggle
		}
	}

	for _, id := range bsIDs {
		t.bitsets = append(t.bitsets, newBitsetColumn(id))
	}

	// Role-flag records: one (Flag, X) per TOGGLE/OVERRIDE-flagged
	// non-pair id, X being that id's bare entity. Lets a cleanup pass find
	// every table with a flagged occurrence of X without scanning types.
	roleEnd := n
	if firstPair != -1 {
		roleEnd = firstPair
	}
	if firstRole != -1 {
		for i := firstRole; i < roleEnd; i++ {
			id := ids[i]
			if id.IsPair() || id.First() == 0 {
				continue
			}
			t.registerExtra(MakePair(Flag, id.First()), i, 1)
		}
	}

	// Bare wildcard: spans every regular (unflagged, non-pair) id.
	if lastPlain >= 0 {
		t.registerExtra(MakeId(Wildcard), 0, lastPlain+1)
	}
	// Any: a single record marking that the table has at least one id.
	if n > 0 {
		t.registerExtra(MakeId(Any), 0, 1)
	}
	// Synthetic (ChildOf,0): lets hierarchy cleanup logic treat "has no
	// parent" uniformly with "has parent" via one TablesWithID lookup.
	if n > 0 && !hasChildOf {
		t.registerExtra(MakePair(ChildOf, Entity(0)), 0, 1)
	}

	_ = from // reserved: future reuse of shared-prefix TableRecords
}

// registerExtra registers a synthetic summary id (not one of typ's own
// ids) into the id-record cache with an explicit index/count, recording it
// in extraIDs so Free can unregister it again.
func (t *Table) registerExtra(id Id, index, count int) {
	tr := &TableRecord{Table: t, Index: index, Column: -1, Count: count}
	t.store.idrecords.registerTable(id, t, tr)
	t.extraIDs = append(t.extraIDs, id)
}

// Type returns the table's archetype.
func (t *Table) Type() Type { return t.typ }

// Count returns the number of rows currently stored.
func (t *Table) Count() int { return t.entities.len() }

// IsEmpty reports whether the table has zero rows.
func (t *Table) IsEmpty() bool { return t.Count() == 0 }

// Entities returns the row -> entity mapping. Callers must not mutate it.
func (t *Table) Entities() []Entity { return t.entities.buf }

// Lock raises the table's advisory lock counter; while locked, Append,
// AppendN and Delete return ErrLockedStorage instead of panicking, matching
// flecs's ecs_table_lock semantics for "currently being iterated." Swap,
// Move, Merge, Shrink, Free and the Clear*/DeleteEntities operations do not
// check the lock.
func (t *Table) Lock() { t.lockDepth++ }

// Unlock lowers the lock counter. Panics if called while not locked.
func (t *Table) Unlock() {
	if t.lockDepth <= 0 {
		internalPanic("table %v: Unlock called while not locked", t.typ)
	}
	t.lockDepth--
}

func (t *Table) checkLocked() error {
	if t.lockDepth > 0 {
		return ErrLockedStorage
	}
	return nil
}

// DirtyState returns the per-column change counters, allocating and
// seeding them with 1s on first use (observers opt into dirty tracking per
// table; allocating eagerly for every table would waste memory on tables
// nobody watches). Slot 0 tracks the entity vector itself; slot i+1 tracks
// storage column i.
func (t *Table) DirtyState() []int32 {
	if t.dirty == nil {
		t.dirty = make([]int32, len(t.columns)+1)
		for i := range t.dirty {
			t.dirty[i] = 1
		}
	}
	return t.dirty
}

func (t *Table) markDirty(index int) {
	if t.dirty == nil {
		return
	}
	t.dirty[index]++
	if t.store.metrics != nil {
		t.store.metrics.DirtyMarks.Inc()
	}
}

// columnByID returns the storage column backing id, or nil if id is a tag
// or not present in the table's type.
func (t *Table) columnByID(id Id) *column {
	idx := t.typ.IndexOf(id)
	if idx < 0 {
		return nil
	}
	col := t.columnMap[idx]
	if col < 0 {
		return nil
	}
	return &t.columns[col]
}

// BitsetByID returns the toggle bitset column for id and whether one
// exists.
func (t *Table) bitsetByID(id Id) *bitsetColumn {
	for i := range t.bitsets {
		if t.bitsets[i].id == id {
			return &t.bitsets[i]
		}
	}
	return nil
}

// markNonEmpty compares wasEmpty with the table's current emptiness and, on
// a change, emits OnTableFill or OnTableEmpty through the Store's Emitter.
// No TableCacheObserver is called. tabledata.go calls this after every
// append, delete and merge that could have changed emptiness.
func (t *Table) markNonEmpty(wasEmpty bool) {
	isEmpty := t.IsEmpty()
	if wasEmpty == isEmpty {
		return
	}
	kind := EventTableFill
	if isEmpty {
		kind = EventTableEmpty
	}
	t.store.emitter.Emit(Event{Kind: kind, Table: t})
}

// Free releases the table's storage, destructs any remaining rows, and
// removes it from the store's registry and id-record cache.
func (t *Table) Free() {
	t.clearData(clearModeFree)
	for i := range t.typ.Ids() {
		t.store.idrecords.unregisterTable(t.typ.At(i), t)
	}
	for _, id := range t.extraIDs {
		t.store.idrecords.unregisterTable(id, t)
	}
	t.store.RemoveTable(t)
}

// Shrink reclaims excess column/entity capacity back to the current row
// count, returning whether the table held any payload before the reclaim
// -- ported from flecs_table_data_shrink (not described in spec.md's
// narrative but named in its component list; see SPEC_FULL.md's
// supplemented-features section).
func (t *Table) Shrink() bool {
	hadPayload := t.entities.buf != nil
	t.entities.reclaim()
	t.rowRecords.reclaim()
	for i := range t.columns {
		t.columns[i].reclaim()
	}
	return hadPayload
}

// checkSanity re-derives every invariant P1-P9 can be checked locally
// (cross-table invariants like P3's cache-exactness live in properties_test.go
// as property tests instead). Ported from flecs_table_check_sanity.
func (t *Table) checkSanity() {
	count := t.entities.len()
	if t.rowRecords.len() != count {
		internalPanic("table %v: entities/%d records/%d count mismatch", t.typ, count, t.rowRecords.len())
	}
	for i := range t.columns {
		if t.columns[i].count() != count {
			internalPanic("table %v: column %d count %d != row count %d", t.typ, i, t.columns[i].count(), count)
		}
	}
	for i := range t.bitsets {
		if t.bitsets[i].count() != count {
			internalPanic("table %v: bitset column %d count %d != row count %d", t.typ, i, t.bitsets[i].count(), count)
		}
	}
	if t.traversableCount < 0 {
		internalPanic("table %v: negative traversable count %d", t.typ, t.traversableCount)
	}
}

func (t *Table) sanityCheckIfEnabled() {
	if t.store.sanityChecks {
		t.checkSanity()
	}
}

// destructMode picks which of the four ways a table's rows can be wiped
// out spec section 4.7 distinguishes: whether OnRemove hooks run (dtors run
// when either onRemove or isDelete is set), whether the EntityIndex is
// told, whether the entity itself is deleted
// (vs. merely detached from this table), and whether the table reports
// itself empty afterward.
type destructMode struct {
	onRemove    bool
	updateIndex bool
	isDelete    bool
	deactivate  bool
}

var (
	// clearData drops all row storage without running OnRemove/dtor hooks
	// or deactivating the table -- flecs_table_clear_data runs with every
	// flag false, since this path is used for an in-place type swap where
	// the rows are about to be reattached elsewhere, not destroyed.
	clearModeClearData = destructMode{onRemove: false, updateIndex: false, isDelete: false, deactivate: false}
	// clearEntities detaches every entity from this table (the
	// EntityIndex record is cleared but the entity itself still
	// exists), used by ecs_clear-style bulk operations.
	clearModeClearEntities = destructMode{onRemove: true, updateIndex: true, isDelete: false, deactivate: true}
	// deleteEntities additionally removes the entities from the
	// EntityIndex entirely.
	clearModeDeleteEntities = destructMode{onRemove: true, updateIndex: true, isDelete: true, deactivate: true}
	// free is used when the table itself is being torn down (store
	// shutdown): flecs_table_fini's free path runs no OnRemove hooks
	// either (world teardown order means observers may already be gone),
	// but it does update the EntityIndex and delete the entities.
	clearModeFree = destructMode{onRemove: false, updateIndex: true, isDelete: true, deactivate: false}
)

// ClearData drops all row storage without touching the EntityIndex.
func (t *Table) ClearData() { t.clearData(clearModeClearData) }

// ClearEntities detaches every entity from this table.
func (t *Table) ClearEntities() { t.clearData(clearModeClearEntities) }

// DeleteEntities detaches and deletes every entity stored in this table.
func (t *Table) DeleteEntities() { t.clearData(clearModeDeleteEntities) }

func (t *Table) clearData(mode destructMode) {
	count := t.Count()
	if count == 0 {
		return
	}
	wasEmpty := false

	if mode.onRemove || mode.isDelete {
		entities := t.entities.buf
		for i := range t.columns {
			col := &t.columns[i]
			if mode.onRemove && col.ti.Hooks.OnRemove != nil {
				col.ti.Hooks.OnRemove(t, entities, col.at(0), 0, count)
			}
			col.invokeDtor(0, count)
		}
	}

	if mode.updateIndex {
		for _, e := range t.entities.buf {
			if mode.isDelete {
				t.store.entities.Remove(e)
			} else if rec, ok := t.store.entities.Get(e); ok {
				rec.Table = nil
				rec.Row = 0
			}
		}
	}

	t.entities.buf = t.entities.buf[:0]
	t.rowRecords.buf = t.rowRecords.buf[:0]
	for i := range t.columns {
		t.columns[i].buf = t.columns[i].buf[:0]
	}
	for i := range t.bitsets {
		t.bitsets[i] = newBitsetColumn(t.bitsets[i].id)
	}

	if mode.deactivate {
		t.markNonEmpty(wasEmpty)
	}
}
