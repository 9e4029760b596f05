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

import "fmt"

// Entity is an opaque identifier for a row owner. archstore never allocates
// or recycles entities itself; it only ever receives them from an
// EntityIndex supplied by the caller.
type Entity uint64

// Id identifies a component, tag, or relationship pair attached to an
// entity. The low 32 bits hold the plain component/tag id (or, for a pair,
// the relationship). Bits 32-59 hold the pair target when FlagPair is set.
// The top four bits carry flags.
//
//	63       61 60       32 31        0
//	[pair|ovr|tgl][-- second --][-- first --]
type Id uint64

const (
	idFirstMask  Id = 0x0000_0000_FFFF_FFFF
	idSecondMask Id = 0x0FFF_FFFF_0000_0000

	// FlagPair marks an Id as a (relationship, target) pair rather than a
	// plain component/tag id.
	FlagPair Id = 1 << 63
	// FlagOverride marks a component as one an entity may override when
	// inherited (IsA) semantics are layered on top of this engine.
	FlagOverride Id = 1 << 61
	// FlagToggle marks a component as backed by a bitset column: its
	// presence in the type does not imply it is "enabled" for every row.
	FlagToggle Id = 1 << 60

	idFlagsMask = FlagPair | FlagOverride | FlagToggle
	idSecondShift = 32
)

// Wildcard ids, mirroring flecs's EcsWildcard/EcsAny/EcsThis conventions.
// Used only as targets/relationships when querying the id-record cache;
// they never appear in a concrete Table's Type. Their values stay below
// 1<<28 so they also fit in a pair's target field (bits 32-59).
const (
	Wildcard Entity = 0x0FFF_FFFF - iota
	Any
	This
)

// MakeId constructs a plain (non-pair) id from a component/tag entity.
func MakeId(e Entity) Id {
	return Id(e) & idFirstMask
}

// MakePair constructs a pair id from a relationship and a target.
func MakePair(relationship, target Entity) Id {
	return FlagPair | Id(relationship)&idFirstMask | (Id(target)<<idSecondShift)&idSecondMask
}

// IsPair reports whether id encodes a (relationship, target) pair.
func (id Id) IsPair() bool { return id&FlagPair != 0 }

// IsWildcard reports whether id (or either element of a pair) contains a
// wildcard placeholder.
func (id Id) IsWildcard() bool {
	if id.IsPair() {
		return id.First() == Wildcard || id.Second() == Wildcard
	}
	return id.StripFlags().First() == Wildcard
}

// StripFlags returns id with FlagOverride/FlagToggle cleared, keeping
// FlagPair and the entity bits. Used as the lookup key into the id-record
// cache, which is indexed by identity independent of per-entity toggle or
// override markers.
func (id Id) StripFlags() Id {
	return id &^ (FlagOverride | FlagToggle)
}

// First returns the relationship (for a pair) or the plain component/tag id.
func (id Id) First() Entity {
	return Entity(id & idFirstMask)
}

// Second returns the pair target. Zero for a non-pair id.
func (id Id) Second() Entity {
	if !id.IsPair() {
		return 0
	}
	return Entity((id & idSecondMask) >> idSecondShift)
}

func (id Id) String() string {
	if id.IsPair() {
		rel, tgt := id.First(), id.Second()
		relName, relOK := builtinIDName(rel)
		tgtName, tgtOK := builtinIDName(tgt)
		switch {
		case relOK && tgtOK:
			return fmt.Sprintf("(%s,%s)", relName, tgtName)
		case relOK:
			return fmt.Sprintf("(%s,%d)", relName, tgt)
		case tgtOK:
			return fmt.Sprintf("(%d,%s)", rel, tgtName)
		default:
			return fmt.Sprintf("(%d,%d)", rel, tgt)
		}
	}
	flags := ""
	if id&FlagToggle != 0 {
		flags += "~"
	}
	if id&FlagOverride != 0 {
		flags += "|"
	}
	return fmt.Sprintf("%s%d", flags, id.First())
}

// wildcardRelationship and wildcardTarget return the id's value with,
// respectively, its relationship or
// its target replaced by Wildcard -- the two "half-wildcard" queries
// (R,*) and (*,T) that flecs's id-record cache indexes explicitly.
func wildcardRelationship(id Id) Id {
	return MakePair(Wildcard, id.Second())
}

func wildcardTarget(id Id) Id {
	return MakePair(id.First(), Wildcard)
}
