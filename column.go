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

import "unsafe"

// column is a contiguous, typed storage buffer for one component id across
// every row of a table. Element type is erased to raw bytes: archstore
// never knows the Go type of a component, only its size and lifecycle
// hooks (TypeInfo), the same design flecs's ecs_column_t uses so storage
// and hook dispatch work uniformly for arbitrary component types.
type column struct {
	id   Id
	ti   *TypeInfo
	size int
	buf  []byte
}

func newColumn(id Id, ti *TypeInfo) column {
	return column{id: id, ti: ti, size: ti.Size}
}

func (c *column) count() int {
	if c.size == 0 {
		return 0
	}
	return len(c.buf) / c.size
}

func (c *column) capElems() int {
	if c.size == 0 {
		return 0
	}
	return cap(c.buf) / c.size
}

// at returns a pointer to the element at row. Panics if row is out of
// range, exactly like an out-of-bounds Go slice index.
func (c *column) at(row int) unsafe.Pointer {
	off := row * c.size
	_ = c.buf[off] // bounds check
	return unsafe.Pointer(&c.buf[off])
}

// fastAppend grows the column by one element without invoking any hooks --
// the path taken when the owning table has no ctor/dtor/copy/move hooks on
// any column (tableFlags.isComplex() == false).
func (c *column) fastAppend() {
	c.buf = append(c.buf, make([]byte, c.size)...)
}

func (c *column) fastAppendN(n int) {
	c.buf = append(c.buf, make([]byte, c.size*n)...)
}

func (c *column) fastRemoveLast() {
	c.buf = c.buf[:len(c.buf)-c.size]
}

func (c *column) fastRemove(row int) {
	last := len(c.buf) - c.size
	if row*c.size != last {
		copy(c.buf[row*c.size:row*c.size+c.size], c.buf[last:last+c.size])
	}
	c.buf = c.buf[:last]
}

// growAppend grows the column to hold toAdd more elements, matching the
// table's shared destination capacity dstCap (in elements, not bytes) so
// every column in a table reallocates on the same row count as the
// entity/record vectors (tabledata.go relies on this invariant). When the
// buffer must actually reallocate and the component declares a
// CtorMoveDtor hook, old elements are relocated through that hook instead
// of a raw memcpy -- ported from flecs_table_data_column_append.
func (c *column) growAppend(toAdd, dstCap int, construct bool) unsafe.Pointer {
	count := c.count()
	srcCap := c.capElems()
	dstCount := count + toAdd
	canRealloc := dstCap != srcCap

	if count > 0 && canRealloc && c.ti.Hooks.CtorMoveDtor != nil {
		dst := make([]byte, dstCount*c.size, dstCap*c.size)
		c.ti.Hooks.CtorMoveDtor(unsafe.Pointer(&dst[0]), unsafe.Pointer(&c.buf[0]), count)
		var result unsafe.Pointer
		if construct {
			result = unsafe.Pointer(&dst[count*c.size])
			if c.ti.Hooks.Ctor != nil {
				c.ti.Hooks.Ctor(result, toAdd)
			}
		}
		c.buf = dst
		return result
	}

	if canRealloc {
		nb := make([]byte, len(c.buf), dstCap*c.size)
		copy(nb, c.buf)
		c.buf = nb
	}
	oldLen := len(c.buf)
	c.buf = c.buf[:oldLen+toAdd*c.size]
	result := unsafe.Pointer(&c.buf[oldLen])
	if construct && c.ti.Hooks.Ctor != nil {
		c.ti.Hooks.Ctor(result, toAdd)
	}
	return result
}

func (c *column) reclaim() {
	if len(c.buf) == cap(c.buf) {
		return
	}
	nb := make([]byte, len(c.buf))
	copy(nb, c.buf)
	c.buf = nb
}

func (c *column) invokeCtor(row, count int) {
	if c.ti.Hooks.Ctor != nil {
		c.ti.Hooks.Ctor(c.at(row), count)
	}
}

func (c *column) invokeDtor(row, count int) {
	if c.ti.Hooks.Dtor != nil {
		c.ti.Hooks.Dtor(c.at(row), count)
	}
}

func memcpyElem(c *column, dstRow, srcRow int) {
	dstOff, srcOff := dstRow*c.size, srcRow*c.size
	copy(c.buf[dstOff:dstOff+c.size], c.buf[srcOff:srcOff+c.size])
}
