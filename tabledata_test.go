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
	"testing"
	"unsafe"

	"github.com/flecsgo/archstore/internal/fixture"
	"github.com/stretchr/testify/require"
)

// position is a plain 2-float component with no lifecycle hooks -- the
// "fast path" case.
type position struct{ X, Y float64 }

func positionTypeInfo() TypeInfo {
	return TypeInfo{Size: int(unsafe.Sizeof(position{}))}
}

// counted is a component whose ctor/dtor bump shared counters, used to
// assert P8 ("ctor invoked exactly once per live element").
type counted struct{ N int }

func countedTypeInfo(ctorCount, dtorCount *int) TypeInfo {
	size := int(unsafe.Sizeof(counted{}))
	return TypeInfo{
		Size: size,
		Hooks: Hooks{
			Ctor: func(ptr unsafe.Pointer, count int) {
				*ctorCount += count
				elems := unsafe.Slice((*counted)(ptr), count)
				for i := range elems {
					elems[i] = counted{N: 1}
				}
			},
			Dtor: func(ptr unsafe.Pointer, count int) {
				*dtorCount += count
			},
		},
	}
}

func newTestStore() (*Store, *fixture.EntityIndex) {
	idx := fixture.NewEntityIndex()
	s := NewStore(idx)
	return s, idx
}

func TestAppendFastPath(t *testing.T) {
	s, idx := newTestStore()
	posID := MakeId(100)
	s.RegisterComponent(posID, positionTypeInfo())

	table, _ := s.EnsureTable(NewType(posID))
	rec := idx.Ensure(1)
	row, err := table.Append(1, rec, true, true)
	require.NoError(t, err)
	require.Equal(t, 0, row)
	require.Equal(t, 1, table.Count())
}

func TestAppendInvokesCtorExactlyOnce(t *testing.T) {
	var ctorCount, dtorCount int
	s, idx := newTestStore()
	id := MakeId(200)
	s.RegisterComponent(id, countedTypeInfo(&ctorCount, &dtorCount))

	table, _ := s.EnsureTable(NewType(id))
	for i := Entity(1); i <= 5; i++ {
		rec := idx.Ensure(i)
		_, err := table.Append(i, rec, true, true)
		require.NoError(t, err)
	}
	require.Equal(t, 5, ctorCount)
	require.Equal(t, 5, table.Count())
}

func TestDeleteSwapsLastRowIntoHole(t *testing.T) {
	s, idx := newTestStore()
	id := MakeId(300)
	s.RegisterComponent(id, positionTypeInfo())
	table, _ := s.EnsureTable(NewType(id))

	var recs []*Record
	for i := Entity(1); i <= 3; i++ {
		rec := idx.Ensure(i)
		recs = append(recs, rec)
		_, err := table.Append(i, rec, true, true)
		require.NoError(t, err)
	}

	count, err := table.Delete(0, true)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, Entity(3), table.Entities()[0])
	require.Equal(t, int32(0), recs[2].Row)
}

func TestDeleteLastRowSimple(t *testing.T) {
	s, idx := newTestStore()
	id := MakeId(301)
	s.RegisterComponent(id, positionTypeInfo())
	table, _ := s.EnsureTable(NewType(id))

	rec := idx.Ensure(1)
	_, err := table.Append(1, rec, true, true)
	require.NoError(t, err)

	count, err := table.Delete(0, true)
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.True(t, table.IsEmpty())
}

func TestAppendNBulk(t *testing.T) {
	s, _ := newTestStore()
	id := MakeId(400)
	s.RegisterComponent(id, positionTypeInfo())
	table, _ := s.EnsureTable(NewType(id))

	first, err := table.AppendN(10, nil)
	require.NoError(t, err)
	require.Equal(t, 0, first)
	require.Equal(t, 10, table.Count())
}

func TestSwapIsReversible(t *testing.T) {
	s, idx := newTestStore()
	id := MakeId(500)
	s.RegisterComponent(id, positionTypeInfo())
	table, _ := s.EnsureTable(NewType(id))

	for i := Entity(1); i <= 3; i++ {
		table.Append(i, idx.Ensure(i), true, true)
	}
	before := append([]Entity(nil), table.Entities()...)

	table.Swap(0, 2)
	table.Swap(0, 2)

	require.Equal(t, before, table.Entities())
}

func TestMergeCombinesTables(t *testing.T) {
	s, idx := newTestStore()
	id := MakeId(600)
	s.RegisterComponent(id, positionTypeInfo())

	s.RegisterComponent(MakeId(601), positionTypeInfo())
	dst, _ := s.EnsureTable(NewType(id))
	src, _ := s.EnsureTable(NewType(id, MakeId(601)))

	dst.Append(1, idx.Ensure(1), true, true)
	src.Append(2, idx.Ensure(2), true, true)
	src.Append(3, idx.Ensure(3), true, true)

	Merge(dst, src)

	require.Equal(t, 3, dst.Count())
	require.Equal(t, 0, src.Count())
	r2, ok := idx.Get(2)
	require.True(t, ok)
	require.Same(t, dst, r2.Table)
}

func TestShrinkReclaimsCapacity(t *testing.T) {
	s, idx := newTestStore()
	id := MakeId(700)
	s.RegisterComponent(id, positionTypeInfo())
	table, _ := s.EnsureTable(NewType(id))

	table.AppendN(100, nil)
	for i := 0; i < 95; i++ {
		table.Delete(0, true)
	}
	require.Equal(t, 5, table.Count())
	hadPayload := table.Shrink()
	require.True(t, hadPayload)
	require.Equal(t, 5, table.Count())
	require.Equal(t, 5, table.entities.cap())
	_ = idx
}
