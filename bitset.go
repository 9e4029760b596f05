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

import "github.com/bits-and-blooms/bitset"

// bitsetColumn tracks, per row, whether a FlagToggle component is enabled
// for that row -- the component occupies a slot in the table's Type (and
// in its regular column storage) but can be switched on/off per entity
// without a structural change (spec section 4, "Bitset column"). Backed by
// bits-and-blooms/bitset rather than a hand-rolled word array: toggle
// columns are exactly the sparse, resizable bit-vector use case that
// library targets, and it is already part of the domain stack used
// elsewhere for boolean row masks.
type bitsetColumn struct {
	id   Id
	rows *bitset.BitSet
}

func newBitsetColumn(id Id) bitsetColumn {
	return bitsetColumn{id: id, rows: bitset.New(0)}
}

func (b *bitsetColumn) count() int {
	return int(b.rows.Len())
}

func (b *bitsetColumn) addN(n int) {
	cur := b.rows.Len()
	b.rows.Set(cur + uint(n) - 1) // force growth to the new length
	for i := uint(0); i < uint(n); i++ {
		b.rows.Clear(cur + i)
	}
}

func (b *bitsetColumn) get(row int) bool {
	return b.rows.Test(uint(row))
}

func (b *bitsetColumn) set(row int, value bool) {
	if value {
		b.rows.Set(uint(row))
	} else {
		b.rows.Clear(uint(row))
	}
}

// remove deletes row by moving the last row's bit into its place and
// truncating, the same swap-and-pop every other column/vector in Delete
// uses (tabledata.go's removeSwap/fastRemove) -- the bitset column must
// stay in row-index lockstep with the rest of the table, and those all
// move the last row down rather than shifting every later row up.
func (b *bitsetColumn) remove(row int) {
	n := int(b.rows.Len())
	if n == 0 {
		return
	}
	last := n - 1
	if row != last {
		b.set(row, b.get(last))
	}
	b.truncate(last)
}

func (b *bitsetColumn) truncate(n int) {
	nb := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		nb.SetTo(uint(i), b.get(i))
	}
	b.rows = nb
}

func (b *bitsetColumn) swap(row1, row2 int) {
	v1, v2 := b.get(row1), b.get(row2)
	b.set(row1, v2)
	b.set(row2, v1)
}

// cardinality returns the number of set bits (the rows whose toggle is
// enabled). The sanity checker compares count(), not this, to the row count.
func (b *bitsetColumn) cardinality() int {
	return int(b.rows.Count())
}
