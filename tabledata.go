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

// Row-level mutation operations, ported from
// _examples/original_source/src/storage/table_data.c. Each keeps the
// original's fast-path/complex-path split: tables whose columns need no
// lifecycle hooks and have no toggle columns take a plain slice-append or
// memmove path; everything else walks column-by-column invoking hooks.

// Append adds one new row for entity, optionally constructing its
// component storage and firing OnAdd hooks, and returns the row index.
func (t *Table) Append(entity Entity, record *Record, construct, fireOnAdd bool) (int, error) {
	if err := t.checkLocked(); err != nil {
		return 0, err
	}
	wasEmpty := t.IsEmpty()

	count := t.entities.len()
	t.entities.growAppend(1)
	t.entities.buf[count] = entity
	t.rowRecords.growAppend(1)
	t.rowRecords.buf[count] = record

	t.markDirty(0)
	if t.store.metrics != nil {
		t.store.metrics.Appends.Inc()
	}

	if !t.flags.isComplex() {
		for i := range t.columns {
			t.columns[i].fastAppend()
		}
		t.markNonEmpty(wasEmpty)
		t.sanityCheckIfEnabled()
		return count, nil
	}

	dstCap := t.entities.cap()
	entities := t.entities.buf
	for i := range t.columns {
		col := &t.columns[i]
		col.growAppend(1, dstCap, construct)
		if fireOnAdd && col.ti.Hooks.OnAdd != nil {
			col.ti.Hooks.OnAdd(t, entities[count:count+1], col.at(count), count, 1)
		}
	}
	for i := range t.bitsets {
		t.bitsets[i].addN(1)
	}

	t.markNonEmpty(wasEmpty)
	t.sanityCheckIfEnabled()
	return count, nil
}

// AppendN bulk-reserves storage for toAdd new rows, seeding their entity
// ids from ids (or the zero Entity if ids is nil), constructs their
// component storage, and fires OnAdd hooks. Returns the row index of the
// first added entity.
func (t *Table) AppendN(toAdd int, ids []Entity) (int, error) {
	if err := t.checkLocked(); err != nil {
		return 0, err
	}
	if toAdd <= 0 {
		return 0, paramErrorf("AppendN: toAdd must be positive, got %d", toAdd)
	}
	wasEmpty := t.IsEmpty()

	curCount := t.entities.len()
	dstCap := growCapacity(t.entities.cap(), curCount+toAdd)
	t.entities.setCap(dstCap)
	t.rowRecords.setCap(dstCap)

	newEntities := t.entities.growAppend(toAdd)
	t.rowRecords.growAppend(toAdd)
	if ids != nil {
		copy(newEntities, ids)
	}

	for i := range t.columns {
		col := &t.columns[i]
		col.growAppend(toAdd, dstCap, true)
		if col.ti.Hooks.OnAdd != nil {
			col.ti.Hooks.OnAdd(t, t.entities.buf[curCount:curCount+toAdd], col.at(curCount), curCount, toAdd)
		}
	}
	for i := range t.bitsets {
		t.bitsets[i].addN(toAdd)
	}

	t.markDirty(0)
	if t.store.metrics != nil {
		t.store.metrics.Appends.Add(float64(toAdd))
	}
	t.markNonEmpty(wasEmpty)
	t.sanityCheckIfEnabled()
	return curCount, nil
}

// Delete removes the row at index, moving the last row into its place
// (swap-and-pop) unless index is already last. destruct controls whether
// OnRemove/dtor hooks run for the removed row. Returns the new table
// count.
func (t *Table) Delete(index int, destruct bool) (int, error) {
	if err := t.checkLocked(); err != nil {
		return 0, err
	}
	data := t
	count := data.entities.len()
	if count == 0 || index >= count {
		return 0, paramErrorf("Delete: index %d out of range (count %d)", index, count)
	}
	wasEmpty := false
	count--

	entities := data.entities.buf
	entityToDelete := entities[index]
	entityToMove, moved := data.entities.removeSwap(index)
	_, _ = data.rowRecords.removeSwap(index)

	if moved {
		if rec, ok := t.store.entities.Get(entityToMove); ok {
			rec.Row = int32(index)
			rec.Table = t
		}
	}

	t.markDirty(0)
	if t.store.metrics != nil {
		t.store.metrics.Deletes.Inc()
	}

	if !t.flags.isComplex() {
		if index == count {
			for i := range t.columns {
				t.columns[i].fastRemoveLast()
			}
		} else {
			for i := range t.columns {
				t.columns[i].fastRemove(index)
			}
		}
		t.markNonEmpty(wasEmpty)
		t.sanityCheckIfEnabled()
		return count, nil
	}

	if index == count {
		if destruct && t.flags&flagHasDtors != 0 {
			for i := range t.columns {
				col := &t.columns[i]
				if col.ti.Hooks.OnRemove != nil {
					col.ti.Hooks.OnRemove(t, []Entity{entityToDelete}, col.at(index), index, 1)
				}
				col.invokeDtor(index, 1)
			}
		}
		for i := range t.columns {
			t.columns[i].fastRemoveLast()
		}
	} else {
		if t.flags&(flagHasDtors|flagHasMove) != 0 {
			for i := range t.columns {
				col := &t.columns[i]
				if destruct && col.ti.Hooks.OnRemove != nil {
					col.ti.Hooks.OnRemove(t, []Entity{entityToDelete}, col.at(index), index, 1)
				}
				last := col.count() - 1
				if col.ti.Hooks.MoveDtor != nil {
					col.ti.Hooks.MoveDtor(col.at(index), col.at(last), 1)
				} else {
					memcpyElem(col, index, last)
				}
				col.fastRemoveLast()
			}
		} else {
			for i := range t.columns {
				t.columns[i].fastRemove(index)
			}
		}
	}

	for i := range t.bitsets {
		t.bitsets[i].remove(index)
	}

	t.markNonEmpty(wasEmpty)
	t.sanityCheckIfEnabled()
	return count, nil
}

// Move relocates one row from src (at srcIndex) into dst (at dstIndex),
// matching component storage by id and firing add/remove hooks for ids
// present in only one of the two tables. If dstEntity == srcEntity the
// move uses move semantics (the component storage in src is being
// abandoned); otherwise it copies, as when cloning an entity.
func Move(dstTable *Table, dstIndex int, dstEntity Entity, srcTable *Table, srcIndex int, srcEntity Entity, construct bool) {
	dstTable.markDirty(0)
	if dstTable.store.metrics != nil {
		dstTable.store.metrics.Moves.Inc()
	}

	if !(dstTable.flags.isComplex() || srcTable.flags.isComplex()) {
		fastMove(dstTable, dstIndex, srcTable, srcIndex)
		return
	}

	moveBitsetColumns(dstTable, dstIndex, srcTable, srcIndex, 1, false)

	sameEntity := dstEntity == srcEntity
	useMoveDtor := srcTable.Count() == srcIndex+1

	iDst, iSrc := 0, 0
	for iDst < len(dstTable.columns) && iSrc < len(srcTable.columns) {
		dstCol := &dstTable.columns[iDst]
		srcCol := &srcTable.columns[iSrc]

		switch {
		case dstCol.id == srcCol.id:
			dst, src := dstCol.at(dstIndex), srcCol.at(srcIndex)
			if sameEntity {
				move := dstCol.ti.Hooks.MoveCtor
				if useMoveDtor || move == nil {
					move = dstCol.ti.Hooks.CtorMoveDtor
				}
				if move != nil {
					move(dst, src, 1)
				} else {
					copyRaw(dst, src, dstCol.size)
				}
			} else if dstCol.ti.Hooks.Copy != nil {
				dstCol.ti.Hooks.Copy(dst, src, 1)
			} else {
				copyRaw(dst, src, dstCol.size)
			}
			iDst++
			iSrc++
		case dstCol.id < srcCol.id:
			if dstCol.ti.Hooks.Ctor != nil && construct {
				dstCol.ti.Hooks.Ctor(dstCol.at(dstIndex), 1)
			}
			if dstCol.ti.Hooks.OnAdd != nil {
				dstCol.ti.Hooks.OnAdd(dstTable, []Entity{dstEntity}, dstCol.at(dstIndex), dstIndex, 1)
			}
			iDst++
		default:
			if srcCol.ti.Hooks.OnRemove != nil {
				srcCol.ti.Hooks.OnRemove(srcTable, []Entity{srcEntity}, srcCol.at(srcIndex), srcIndex, 1)
			}
			if useMoveDtor {
				srcCol.invokeDtor(srcIndex, 1)
			}
			iSrc++
		}
	}
	for ; iDst < len(dstTable.columns); iDst++ {
		dstCol := &dstTable.columns[iDst]
		if construct && dstCol.ti.Hooks.Ctor != nil {
			dstCol.ti.Hooks.Ctor(dstCol.at(dstIndex), 1)
		}
		if dstCol.ti.Hooks.OnAdd != nil {
			dstCol.ti.Hooks.OnAdd(dstTable, []Entity{dstEntity}, dstCol.at(dstIndex), dstIndex, 1)
		}
	}
	for ; iSrc < len(srcTable.columns); iSrc++ {
		srcCol := &srcTable.columns[iSrc]
		if srcCol.ti.Hooks.OnRemove != nil {
			srcCol.ti.Hooks.OnRemove(srcTable, []Entity{srcEntity}, srcCol.at(srcIndex), srcIndex, 1)
		}
		if useMoveDtor {
			srcCol.invokeDtor(srcIndex, 1)
		}
	}
}

func fastMove(dstTable *Table, dstIndex int, srcTable *Table, srcIndex int) {
	iDst, iSrc := 0, 0
	for iDst < len(dstTable.columns) && iSrc < len(srcTable.columns) {
		dstCol := &dstTable.columns[iDst]
		srcCol := &srcTable.columns[iSrc]
		if dstCol.id == srcCol.id {
			copyRaw(dstCol.at(dstIndex), srcCol.at(srcIndex), dstCol.size)
		}
		if dstCol.id <= srcCol.id {
			iDst++
		}
		if dstCol.id >= srcCol.id {
			iSrc++
		}
	}
}

func moveBitsetColumns(dstTable *Table, dstIndex int, srcTable *Table, srcIndex, count int, clear bool) {
	if len(dstTable.bitsets) == 0 && len(srcTable.bitsets) == 0 {
		return
	}
	iDst, iSrc := 0, 0
	for iDst < len(dstTable.bitsets) && iSrc < len(srcTable.bitsets) {
		dstBS := &dstTable.bitsets[iDst]
		srcBS := &srcTable.bitsets[iSrc]
		switch {
		case dstBS.id == srcBS.id:
			for i := 0; i < count; i++ {
				dstBS.set(dstIndex+i, srcBS.get(srcIndex+i))
			}
			if clear {
				*srcBS = newBitsetColumn(srcBS.id)
			}
			iDst++
			iSrc++
		case dstBS.id > srcBS.id:
			if clear {
				*srcBS = newBitsetColumn(srcBS.id)
			}
			iSrc++
		default:
			iDst++
		}
	}
	if clear {
		for ; iSrc < len(srcTable.bitsets); iSrc++ {
			srcTable.bitsets[iSrc] = newBitsetColumn(srcTable.bitsets[iSrc].id)
		}
	}
}

// Swap exchanges rows row1 and row2 within the same table. Never invokes
// any lifecycle hook -- a three-way raw byte swap through a temporary
// buffer, matching flecs_table_data_swap (used for in-place sort, not
// structural change).
func (t *Table) Swap(row1, row2 int) {
	if row1 == row2 {
		return
	}
	t.markDirty(0)

	entities := t.entities.buf
	entities[row1], entities[row2] = entities[row2], entities[row1]

	records := t.rowRecords.buf
	if records[row1] != nil {
		records[row1].Row = int32(row2)
	}
	if records[row2] != nil {
		records[row2].Row = int32(row1)
	}
	records[row1], records[row2] = records[row2], records[row1]

	for i := range t.bitsets {
		t.bitsets[i].swap(row1, row2)
	}

	var tmp [32]byte
	for i := range t.columns {
		col := &t.columns[i]
		buf := tmp[:col.size]
		if col.size > len(tmp) {
			buf = make([]byte, col.size)
		}
		el1, el2 := col.at(row1), col.at(row2)
		copyRaw(ptrTo(buf), el1, col.size)
		copyRaw(el1, el2, col.size)
		copyRaw(el2, ptrTo(buf), col.size)
	}
}

// Merge moves every row of src into dst, updating the EntityIndex for each
// moved entity and merging column storage id-by-id -- used after a bulk
// structural change (e.g. removing a component from every entity in src)
// collapses src and dst into the same archetype.
func Merge(dst, src *Table) {
	srcCount := src.entities.len()
	dstCount := dst.entities.len()
	if srcCount == 0 {
		return
	}
	if src.store.metrics != nil {
		src.store.metrics.Merges.Inc()
	}

	for i, e := range src.entities.buf {
		rec, ok := src.store.entities.Get(e)
		if !ok {
			rec = src.store.entities.Ensure(e)
		}
		rec.Row = int32(dstCount + i)
		rec.Table = dst
	}

	dstEntities := dst.entities.growAppend(srcCount)
	copy(dstEntities, src.entities.buf)
	dstRecords := dst.rowRecords.growAppend(srcCount)
	copy(dstRecords, src.rowRecords.buf)

	columnSize := dst.entities.cap()
	iNew, iOld := 0, 0
	for iNew < len(dst.columns) && iOld < len(src.columns) {
		dstCol := &dst.columns[iNew]
		srcCol := &src.columns[iOld]
		switch {
		case dstCol.id == srcCol.id:
			mergeColumn(dstCol, srcCol, columnSize)
			dst.markDirty(iNew + 1)
			iNew++
			iOld++
		case dstCol.id < srcCol.id:
			growColumnTo(dstCol, columnSize, srcCount+dstCount)
			dstCol.invokeCtor(dstCount, srcCount)
			iNew++
		default:
			srcCol.invokeDtor(0, srcCount)
			srcCol.buf = nil
			iOld++
		}
	}
	for i := range dst.bitsets {
		dst.bitsets[i].addN(srcCount)
	}
	moveBitsetColumns(dst, dstCount, src, 0, srcCount, true)
	for ; iNew < len(dst.columns); iNew++ {
		dstCol := &dst.columns[iNew]
		growColumnTo(dstCol, columnSize, srcCount+dstCount)
		dstCol.invokeCtor(dstCount, srcCount)
	}
	for ; iOld < len(src.columns); iOld++ {
		src.columns[iOld].invokeDtor(0, srcCount)
		src.columns[iOld].buf = nil
	}

	dst.markDirty(0)

	src.entities.buf = nil
	src.rowRecords.buf = nil
	dst.markNonEmpty(dstCount == 0)
	dst.sanityCheckIfEnabled()
}

func growColumnTo(c *column, capElems, count int) {
	nb := make([]byte, count*c.size, capElems*c.size)
	copy(nb, c.buf)
	c.buf = nb
}

func mergeColumn(dst, src *column, columnSize int) {
	if dst.count() == 0 {
		dst.buf = src.buf
		src.buf = nil
		return
	}
	dstCount := dst.count()
	srcCount := src.count()
	dst.growAppend(srcCount, columnSize, true)
	dstPtr := dst.at(dstCount)
	srcPtr := src.at(0)
	if dst.ti.Hooks.MoveDtor != nil {
		dst.ti.Hooks.MoveDtor(dstPtr, srcPtr, srcCount)
	} else {
		copyRaw(dstPtr, srcPtr, dst.size*srcCount)
	}
	src.buf = nil
}
