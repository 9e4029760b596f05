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
	"github.com/c2h5oh/datasize"
	"github.com/pbnjay/memory"
	"golang.org/x/exp/constraints"
)

// clamp restricts v to [lo, hi], used below to keep a derived row-capacity
// hint within a sane range regardless of host memory size.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// ArenaOptions holds row-capacity sizing hints a Store keeps (see
// WithArenaOptions). It does not back a custom allocator. No table reads
// these values: entity/record vectors and columns start empty and grow
// through growCapacity regardless of the options set here.
type ArenaOptions struct {
	// InitialRowCapacity is the suggested starting row count for a
	// table's entity/record vectors.
	InitialRowCapacity int
	// MaxArenaSize is a size hint carried alongside InitialRowCapacity;
	// DefaultArenaOptions sets it to 64 MB and does not use it to bound
	// InitialRowCapacity.
	MaxArenaSize datasize.ByteSize
}

// DefaultArenaOptions derives InitialRowCapacity from the host's total
// memory: one row per 64 KiB, clamped to [8, 1024].
func DefaultArenaOptions() ArenaOptions {
	total := datasize.ByteSize(memory.TotalMemory())
	rows := clamp(int(total/(64*datasize.KB)), 8, 1024)
	return ArenaOptions{
		InitialRowCapacity: rows,
		MaxArenaSize:       64 * datasize.MB,
	}
}
