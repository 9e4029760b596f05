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

// Record is an entity's location: which table holds its row, and which
// row. It is owned by the caller's EntityIndex; archstore rewrites Row and
// Table when it relocates a row (Delete's swap-and-pop, Merge) and clears
// both in ClearEntities. Append does not write the Record; the caller sets
// it from the returned row.
type Record struct {
	Table *Table
	Row   int32
}

// EntityIndex resolves entities to their storage location. archstore never
// allocates or frees entities -- the design notes call this out explicitly
// as an external collaborator so the storage engine stays decoupled from
// entity-id recycling policy.
type EntityIndex interface {
	Get(e Entity) (*Record, bool)
	Ensure(e Entity) *Record
	Remove(e Entity)
}

// EventKind enumerates the table lifecycle notifications a Store emits.
type EventKind int

const (
	EventTableCreate EventKind = iota
	EventTableDelete
	EventOnAdd
	EventOnRemove
	EventOnSet
	EventUnSet
	EventTableFill
	EventTableEmpty
)

func (k EventKind) String() string {
	switch k {
	case EventTableCreate:
		return "OnTableCreate"
	case EventTableDelete:
		return "OnTableDelete"
	case EventOnAdd:
		return "OnAdd"
	case EventOnRemove:
		return "OnRemove"
	case EventOnSet:
		return "OnSet"
	case EventUnSet:
		return "UnSet"
	case EventTableFill:
		return "OnTableFill"
	case EventTableEmpty:
		return "OnTableEmpty"
	default:
		return "Unknown"
	}
}

// Event is a single lifecycle notification raised by a Table mutation.
type Event struct {
	Kind     EventKind
	Table    *Table
	Row      int32
	Count    int32
	Id       Id
	Entities []Entity
}

// Emitter receives the lifecycle notifications a table raises as rows are
// added, removed, or as a table transitions between empty and non-empty.
// Query caches, observers, and anything else that reacts to structural
// change implement this; archstore only calls it.
type Emitter interface {
	Emit(Event)
}

// TableCacheObserver is the shape of a callback for a table flipping
// between empty and non-empty, independent of which ids changed. Store
// holds no TableCacheObserver and never calls one; emptiness changes are
// reported only as EventTableFill/EventTableEmpty through the Emitter.
type TableCacheObserver interface {
	SetEmpty(table *Table, isEmpty bool)
}

// noopEmitter discards every event; useful as a Store default when the
// caller has no observers wired up yet.
type noopEmitter struct{}

func (noopEmitter) Emit(Event) {}
