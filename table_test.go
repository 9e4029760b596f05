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

	"github.com/stretchr/testify/require"
)

// TestInitRegistersWildcardAnyAndChildOfRecords exercises a table whose type
// mixes a plain id, two pairs sharing a relationship, and a ChildOf pair --
// the shape spec.md's scenario 4 describes -- and checks that Table.init
// registered the bare wildcard, the any record, and the (Likes,*)/(*,Bob)
// wildcard records alongside the concrete per-id records.
func TestInitRegistersWildcardAnyAndChildOfRecords(t *testing.T) {
	s, _ := newTestStore()
	a := MakeId(1)
	likes := Entity(2)
	bob := Entity(3)
	alice := Entity(4)
	root := Entity(5)

	typ := NewType(a, MakePair(likes, bob), MakePair(likes, alice), MakePair(ChildOf, root))
	table, _ := s.EnsureTable(typ)

	// Concrete and half-wildcard pair records still work as before.
	likesWildcard := s.TablesWithID(MakePair(likes, Wildcard))
	require.Len(t, likesWildcard, 1)
	require.Equal(t, table, likesWildcard[0].Table)
	require.Equal(t, 2, likesWildcard[0].Count)

	bobWildcard := s.TablesWithID(MakePair(Wildcard, bob))
	require.Len(t, bobWildcard, 1)
	require.Equal(t, table, bobWildcard[0].Table)

	// Bare wildcard spans the table's one regular (non-pair, unflagged) id.
	bare := s.TablesWithID(MakeId(Wildcard))
	require.Len(t, bare, 1)
	require.Equal(t, 1, bare[0].Count)

	// Any marks that the table has at least one id.
	any := s.TablesWithID(MakeId(Any))
	require.Len(t, any, 1)

	// The table has its own ChildOf pair, so no synthetic (ChildOf,0)
	// record should have been registered for it.
	childOfZero := s.TablesWithID(MakePair(ChildOf, Entity(0)))
	require.Empty(t, childOfZero)
}

// TestInitRegistersSyntheticChildOfZeroWhenAbsent checks the companion case:
// a table with no ChildOf pair of its own gets a synthetic (ChildOf,0)
// record so hierarchy cleanup logic can find root-level tables the same way
// it finds parented ones.
func TestInitRegistersSyntheticChildOfZeroWhenAbsent(t *testing.T) {
	s, _ := newTestStore()
	a := MakeId(1)
	table, _ := s.EnsureTable(NewType(a))

	childOfZero := s.TablesWithID(MakePair(ChildOf, Entity(0)))
	require.Len(t, childOfZero, 1)
	require.Equal(t, table, childOfZero[0].Table)
}

// TestInitRegistersRoleFlagRecords checks that a TOGGLE-flagged id gets a
// (Flag, X) record in addition to its normal TableRecord, so a cleanup pass
// can find every table with a flagged occurrence of X via TablesWithID
// alone.
func TestInitRegistersRoleFlagRecords(t *testing.T) {
	s, _ := newTestStore()
	comp := Entity(100)
	s.RegisterComponent(MakeId(comp), positionTypeInfo())

	toggled := MakeId(comp) | FlagToggle
	table, _ := s.EnsureTable(NewType(toggled))

	flagged := s.TablesWithID(MakePair(Flag, comp))
	require.Len(t, flagged, 1)
	require.Equal(t, table, flagged[0].Table)
}

// TestFreeUnregistersExtraRecords checks that Free removes the synthetic
// wildcard/any/ChildOf-zero records it added in init, not just the
// concrete per-id ones.
func TestFreeUnregistersExtraRecords(t *testing.T) {
	s, _ := newTestStore()
	a := MakeId(1)
	table, _ := s.EnsureTable(NewType(a))
	require.Len(t, s.TablesWithID(MakePair(ChildOf, Entity(0))), 1)

	table.Free()

	require.Empty(t, s.TablesWithID(MakePair(ChildOf, Entity(0))))
	require.Empty(t, s.TablesWithID(MakeId(Any)))
	require.Empty(t, s.TablesWithID(MakeId(Wildcard)))
}
