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

import "github.com/flecsgo/archstore/internal/mathutil"

// growCapacity returns the next capacity (in elements) that accommodates at
// least minCount elements, doubling from the current capacity. Mirrors
// flecs's ecs_vec growth policy closely enough that columns sharing a
// table's row count always realloc in lockstep (tabledata.go relies on this
// to decide between the fast and the ctor/move/dtor-aware grow path).
//
// Falls back to minCount itself if doubling would overflow -- a table that
// legitimately needs that many rows still gets them, just without the
// amortized-growth headroom.
func growCapacity(curCap, minCount int) int {
	newCap, ok := mathutil.SafeDoubleCap(curCap, minCount)
	if !ok {
		return minCount
	}
	return newCap
}

// vec is a growable slice of T whose capacity growth is driven explicitly
// by growCapacity rather than Go's built-in append heuristic, so a
// Table's entity/record vectors and its columns can be grown to the
// exact same capacity in the same step (see tabledata.go AppendN).
type vec[T any] struct {
	buf []T
}

func (v *vec[T]) len() int { return len(v.buf) }
func (v *vec[T]) cap() int { return cap(v.buf) }

func (v *vec[T]) setCap(n int) {
	if n <= cap(v.buf) {
		return
	}
	nb := make([]T, len(v.buf), n)
	copy(nb, v.buf)
	v.buf = nb
}

// growAppend grows the vec to hold toAdd more elements, returning the
// freshly appended (zero-valued) sub-slice.
func (v *vec[T]) growAppend(toAdd int) []T {
	cur := len(v.buf)
	needed := cur + toAdd
	v.setCap(growCapacity(cap(v.buf), needed))
	v.buf = v.buf[:needed]
	return v.buf[cur:needed]
}

// removeLast pops the last element.
func (v *vec[T]) removeLast() {
	v.buf = v.buf[:len(v.buf)-1]
}

// removeSwap removes the element at index by moving the last element into
// its place (the standard ECS "swap and pop"), returning the value that was
// moved, if any, and whether a move actually happened (index was not last).
func (v *vec[T]) removeSwap(index int) (moved T, didMove bool) {
	last := len(v.buf) - 1
	if index != last {
		moved = v.buf[last]
		v.buf[index] = moved
		didMove = true
	}
	v.buf = v.buf[:last]
	return moved, didMove
}

func (v *vec[T]) reclaim() {
	if len(v.buf) == cap(v.buf) {
		return
	}
	nb := make([]T, len(v.buf))
	copy(nb, v.buf)
	v.buf = nb
}
