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
	"github.com/google/btree"
	"go.uber.org/zap"
)

// tableEntry is the btree.BTreeG element backing Store's table registry
// (SPEC_FULL.md section 4.9): ordered by Type.Hash() first, falling back to
// a full Type comparison on hash collision, so "same Type -> same Table"
// (invariant P7) is enforced in one place instead of by caller discipline.
type tableEntry struct {
	hash  uint64
	typ   Type
	table *Table
}

func tableEntryLess(a, b tableEntry) bool {
	if a.hash != b.hash {
		return a.hash < b.hash
	}
	// Break ties deterministically on collision by comparing ids
	// lexicographically; this only needs to be a consistent total
	// order, not a meaningful one.
	n := a.typ.Count()
	if b.typ.Count() < n {
		n = b.typ.Count()
	}
	for i := 0; i < n; i++ {
		if a.typ.At(i) != b.typ.At(i) {
			return a.typ.At(i) < b.typ.At(i)
		}
	}
	return a.typ.Count() < b.typ.Count()
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithEmitter overrides the default no-op Emitter.
func WithEmitter(e Emitter) Option { return func(s *Store) { s.emitter = e } }

// WithLogOptions configures structured logging.
func WithLogOptions(opts LogOptions) Option {
	return func(s *Store) { s.logger = newLogger(opts) }
}

// WithMetrics attaches a Metrics set; the caller is responsible for
// registering its collectors.
func WithMetrics(m *Metrics) Option { return func(s *Store) { s.metrics = m } }

// WithArenaOptions overrides the default row-capacity sizing hints.
func WithArenaOptions(opts ArenaOptions) Option {
	return func(s *Store) { s.arena = opts }
}

// Store is the top-level registry gluing the table registry, the id-record
// cache, and the caller-supplied collaborators together -- the minimal
// "world" state spec.md's row operations and Table.Init take as an
// implicit parameter.
type Store struct {
	entities EntityIndex
	emitter  Emitter
	arena    ArenaOptions
	logger   *zap.Logger
	metrics  *Metrics

	sanityChecks bool

	componentInfo map[Id]*TypeInfo
	idrecords     *idRecordCache
	registry      *btree.BTreeG[tableEntry]
	nextSeq       uint32
}

// NewStore builds a Store bound to the given EntityIndex. Additional
// collaborators and ambient configuration are supplied via Option.
func NewStore(entities EntityIndex, opts ...Option) *Store {
	s := &Store{
		entities:      entities,
		emitter:       noopEmitter{},
		arena:         DefaultArenaOptions(),
		logger:        zap.NewNop(),
		sanityChecks:  true,
		componentInfo: make(map[Id]*TypeInfo),
		idrecords:     newIDRecordCache(),
		registry:      btree.NewG(32, tableEntryLess),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DisableSanityChecks turns off the post-mutation invariant checks
// (table.go's checkSanity), trading a faithful port of flecs's
// FLECS_SANITIZE compile flag for a runtime switch -- Go's single-binary
// distribution model favors that over recompiling with a build tag.
func (s *Store) DisableSanityChecks() { s.sanityChecks = false }

// RegisterComponent associates TypeInfo with a component id so tables that
// include it get a real storage column with the right size and hooks.
// Ids never registered this way are treated as zero-sized tags.
func (s *Store) RegisterComponent(id Id, ti TypeInfo) {
	ti.ID = id
	cp := ti
	s.componentInfo[id.StripFlags()] = &cp
}

func (s *Store) typeInfoFor(id Id) *TypeInfo {
	return s.componentInfo[id.StripFlags()]
}

// EnsureTable returns the table for typ, creating it if this is the first
// time the store has seen this archetype. created reports whether a new
// table was constructed.
func (s *Store) EnsureTable(typ Type) (table *Table, created bool) {
	hash := typ.Hash()
	if e, ok := s.registry.Get(tableEntry{hash: hash, typ: typ}); ok {
		return e.table, false
	}

	from := s.bestPrefixMatch(typ)
	t := newTable(s, typ, from)
	s.registry.ReplaceOrInsert(tableEntry{hash: hash, typ: typ, table: t})
	if s.metrics != nil {
		s.metrics.Tables.Inc()
	}
	s.emitter.Emit(Event{Kind: EventTableCreate, Table: t})
	return t, true
}

// bestPrefixMatch scans every registry entry for the table whose Type
// shares the longest prefix with typ, passed as init's "from" parameter
// (SPEC_FULL.md section 4.9). init does not use it: every TableRecord of
// the new table is built and registered from scratch.
func (s *Store) bestPrefixMatch(typ Type) *Table {
	var best *Table
	bestLen := -1
	s.registry.Ascend(func(e tableEntry) bool {
		if n := typ.SharesPrefixWith(e.typ); n > bestLen {
			bestLen, best = n, e.table
		}
		return true
	})
	if bestLen <= 0 {
		return nil
	}
	return best
}

// RemoveTable drops t's registry entry. Called by Table.Free.
func (s *Store) RemoveTable(t *Table) {
	s.registry.Delete(tableEntry{hash: t.typ.Hash(), typ: t.typ})
	s.emitter.Emit(Event{Kind: EventTableDelete, Table: t})
	if s.metrics != nil {
		s.metrics.Tables.Dec()
	}
}

// Tables returns every currently-registered table. Ordering follows the
// registry's Type.Hash() order, not creation order.
func (s *Store) Tables() []*Table {
	var out []*Table
	s.registry.Ascend(func(e tableEntry) bool {
		out = append(out, e.table)
		return true
	})
	return out
}

// Relationships returns every relationship entity that has ever appeared as
// the first half of a pair id registered on this store.
func (s *Store) Relationships() []Entity { return s.idrecords.Relationships() }

// Targets returns every entity that has ever appeared as the second half of
// a pair id registered on this store.
func (s *Store) Targets() []Entity { return s.idrecords.Targets() }

// TablesWithID returns every table whose Type contains id, or that matches
// id as a wildcard (e.g. id = (Likes, Wildcard)). Returns nil if no table
// has ever been registered for id.
func (s *Store) TablesWithID(id Id) []*TableRecord {
	r, ok := s.idrecords.lookup(id)
	if !ok {
		return nil
	}
	out := make([]*TableRecord, 0, r.count())
	for _, tr := range r.tables {
		out = append(out, tr)
	}
	return out
}
