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

	"github.com/flecsgo/archstore/internal/fixture"
	"pgregory.net/rapid"
)

// TestPropertyRowCountParity is P1/P2/P9: after any sequence of
// append/delete/swap operations, the entity vector, every storage column,
// and every bitset column report exactly the same row count, and the
// entity index agrees with each entity's recorded row.
func TestPropertyRowCountParity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		idx := fixture.NewEntityIndex()
		s := NewStore(idx)
		toggleID := MakeId(900) | FlagToggle
		plainID := MakeId(901)
		s.RegisterComponent(plainID, positionTypeInfo())
		table, _ := s.EnsureTable(NewType(plainID, toggleID))

		var nextEntity Entity = 1
		var alive []Entity

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.SampledFrom([]string{"append", "delete", "swap"}).Draw(rt, "op")
			switch op {
			case "append":
				e := nextEntity
				nextEntity++
				rec := idx.Ensure(e)
				row, err := table.Append(e, rec, true, true)
				if err != nil {
					rt.Fatalf("append: %v", err)
				}
				rec.Row = int32(row)
				rec.Table = table
				alive = append(alive, e)
			case "delete":
				if len(alive) == 0 {
					continue
				}
				pick := rapid.IntRange(0, len(alive)-1).Draw(rt, "victim")
				victim := alive[pick]
				rec, ok := idx.Get(victim)
				if !ok {
					continue
				}
				if _, err := table.Delete(int(rec.Row), true); err != nil {
					rt.Fatalf("delete: %v", err)
				}
				idx.Remove(victim)
				alive = append(alive[:pick], alive[pick+1:]...)
			case "swap":
				if len(alive) < 2 {
					continue
				}
				table.Swap(0, table.Count()-1)
			}

			table.checkSanity()
			if table.Count() != len(alive) {
				rt.Fatalf("table count %d != tracked alive %d", table.Count(), len(alive))
			}
			for _, e := range alive {
				rec, ok := idx.Get(e)
				if !ok {
					rt.Fatalf("entity %d missing from index", e)
				}
				if table.Entities()[rec.Row] != e {
					rt.Fatalf("entity index row %d does not point at entity %d", rec.Row, e)
				}
			}
		}
	})
}

// TestPropertyIDRecordCacheExactness is P3: the id-record cache for a
// table's own ids always contains that table, and tables removed from the
// store are removed from every id-record (including wildcard parents).
func TestPropertyIDRecordCacheExactness(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		idx := fixture.NewEntityIndex()
		s := NewStore(idx)
		likes := Entity(1)
		n := rapid.IntRange(1, 5).Draw(rt, "targets")

		var tables []*Table
		for i := 0; i < n; i++ {
			target := Entity(100 + i)
			pairID := MakePair(likes, target)
			table, _ := s.EnsureTable(NewType(pairID))
			tables = append(tables, table)

			found := false
			for _, tr := range s.TablesWithID(pairID) {
				if tr.Table == table {
					found = true
				}
			}
			if !found {
				rt.Fatalf("table for %v missing from its own exact id-record", pairID)
			}
		}

		wildcardRecs := s.TablesWithID(MakePair(likes, Wildcard))
		if len(wildcardRecs) != n {
			rt.Fatalf("(likes,*) should match %d tables, found %d", n, len(wildcardRecs))
		}

		victim := tables[0]
		victim.Free()
		for _, tr := range s.TablesWithID(MakePair(likes, Wildcard)) {
			if tr.Table == victim {
				rt.Fatalf("freed table still present in (likes,*) id-record")
			}
		}
	})
}
