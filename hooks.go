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

// Xtor constructs or destructs count contiguous elements starting at ptr.
type Xtor func(ptr unsafe.Pointer, count int)

// Move relocates count contiguous elements from src to dst. Depending on
// which hook slot it fills, it may also construct dst, destruct src, or
// both -- see Hooks' field docs.
type Move func(dst, src unsafe.Pointer, count int)

// Copy duplicates count contiguous elements from src into dst without
// disturbing src.
type Copy func(dst, src unsafe.Pointer, count int)

// HookEvent fires on add/remove/set for the rows [row, row+count).
type HookEvent func(table *Table, entities []Entity, ptr unsafe.Pointer, row, count int)

// Hooks is a component's lifecycle capability set (spec section 4's
// "lifecycle hooks"). Every field is optional; a nil hook means "treat
// elements as plain bytes" (memcpy / no-op) for that operation.
type Hooks struct {
	// Ctor constructs newly appended elements. Nil means zero-value
	// elements need no further initialization.
	Ctor Xtor
	// Dtor releases resources held by elements about to be overwritten
	// or dropped.
	Dtor Xtor
	// Copy duplicates an element when the destination entity differs
	// from the source (e.g. Move with construct semantics that
	// are not a same-entity relocation).
	Copy Copy
	// MoveCtor relocates src into an already-uninitialized dst and
	// leaves src valid for destruction by the caller.
	MoveCtor Move
	// MoveDtor relocates src into dst and destroys src in the same
	// step; used whenever the source element will not be touched again
	// (delete-and-compact, last-row moves).
	MoveDtor Move
	// CtorMoveDtor is MoveDtor specialized for "dst is freshly allocated,
	// uninitialized memory" -- the path column growth takes when a
	// resize would otherwise bitwise-copy a type that cannot be bitwise
	// copied (e.g. holds a pointer with move semantics).
	CtorMoveDtor Move
	// OnAdd runs after a component's storage for a row has been
	// constructed and populated.
	OnAdd HookEvent
	// OnRemove runs before a component's storage for a row is
	// destructed.
	OnRemove HookEvent
}

// TypeInfo binds an Id to its element size and lifecycle hooks. A nil
// TypeInfo models a tag (zero-sized marker with no storage column).
type TypeInfo struct {
	ID    Id
	Size  int
	Hooks Hooks
}

// tableFlags records, per table, which lifecycle hook categories its
// columns require -- used to pick the fast or complex path for append,
// delete, and move, exactly like flecs's EcsTableHasCtors/HasDtors/
// HasCopy/HasMove/HasToggle flags.
type tableFlags uint32

const (
	flagHasCtors tableFlags = 1 << iota
	flagHasDtors
	flagHasCopy
	flagHasMove
	flagHasToggle
)

// isComplex reports whether a table needs the row-by-row hook-aware path
// instead of the bulk memmove fast path.
func (f tableFlags) isComplex() bool {
	return f&(flagHasCtors|flagHasDtors|flagHasCopy|flagHasMove|flagHasToggle) != 0
}

func typeInfoFlags(ti *TypeInfo) tableFlags {
	if ti == nil {
		return 0
	}
	var f tableFlags
	if ti.Hooks.Ctor != nil || ti.Hooks.OnAdd != nil {
		f |= flagHasCtors
	}
	if ti.Hooks.Dtor != nil || ti.Hooks.OnRemove != nil {
		f |= flagHasDtors
	}
	if ti.Hooks.Copy != nil {
		f |= flagHasCopy
	}
	if ti.Hooks.MoveCtor != nil {
		f |= flagHasMove
	}
	return f
}
