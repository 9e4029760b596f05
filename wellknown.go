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

// Builtin entity ids, reserved below BuiltinIDRangeEnd so a caller's own
// entity allocator can start handing out ids above that boundary without
// ever colliding with one of these. None of these are registered as
// components automatically; a Store only treats them specially where noted
// below.
const (
	// ChildOf is the relationship half of the (ChildOf, parent) pair an
	// entity carries to express hierarchical containment. archstore itself
	// does not interpret ChildOf -- no table is auto-removed when its
	// parent is deleted -- but it is reserved here so callers building
	// cascading-delete semantics on top of Store agree on one id for it.
	ChildOf Entity = iota + 1

	// IsA is the relationship half of the (IsA, base) pair used to express
	// inheritance. FlagOverride on a component id only makes sense
	// alongside an IsA pair: it marks the component as one the owning
	// entity's own row overrides rather than inherits from base.
	IsA

	// DependsOn mirrors flecs's (DependsOn, X) convention for declaring
	// that one object requires another to already exist. Reserved for
	// callers layering system-ordering semantics on top of Store; unused
	// by archstore's own storage operations.
	DependsOn

	// SlotOf is the relationship half of a (SlotOf, base) pair, flecs's
	// convention for exposing one of an inherited object's own children as
	// a directly-addressable "slot" on the inheriting entity.
	SlotOf

	// Flag is the relationship half of the synthetic (Flag, X) records
	// Table.init registers for every TOGGLE/OVERRIDE-flagged id in a type
	// (X being that id's bare entity, flags stripped). It exists purely as
	// a cache key: a cleanup pass can ask "which tables have a flagged id
	// for X" via TablesWithID(MakePair(Flag, X)) without scanning every
	// table's Type.
	Flag

	// BuiltinIDRangeEnd is the first entity id a caller's own allocator is
	// free to hand out. Kept as a named boundary rather than a bare number
	// so new builtins can be inserted above without everyone's entity
	// ranges shifting underneath them.
	BuiltinIDRangeEnd
)

// builtinIDNames maps the reserved relationship ids to their names, used
// only by debugging/rendering code (the graph command, tabulated store
// dumps) that wants a readable label instead of a raw integer.
var builtinIDNames = map[Entity]string{
	ChildOf:   "ChildOf",
	IsA:       "IsA",
	DependsOn: "DependsOn",
	SlotOf:    "SlotOf",
	Flag:      "Flag",
}

// builtinIDName returns e's reserved name and true, or "" and false if e is
// not one of the ids declared above.
func builtinIDName(e Entity) (string, bool) {
	name, ok := builtinIDNames[e]
	return name, ok
}
