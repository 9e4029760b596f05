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

// Package mathutil holds the small integer-overflow and rounding helpers
// shared by the column and vec growth paths.
package mathutil

import "math/bits"

// MaxInt is the largest value an int can hold on a 64-bit build, used to
// cap capacity growth before it wraps negative.
const MaxInt = 1<<63 - 1

// SafeMulUint64 returns x*y and reports whether the multiplication
// overflowed a uint64.
func SafeMulUint64(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

// SafeAddUint64 returns x+y and reports whether the addition overflowed a
// uint64.
func SafeAddUint64(x, y uint64) (uint64, bool) {
	sum, carryOut := bits.Add64(x, y, 0)
	return sum, carryOut != 0
}

// CeilDiv returns ceil(x/y), or 0 if y is 0.
func CeilDiv(x, y int) int {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}

// SafeDoubleCap doubles curCap until it is at least minCount, the same
// policy growCapacity uses, but reports false instead of overflowing into a
// negative capacity when minCount is absurdly large (a malformed AppendN
// count, say). Callers fall back to minCount itself in that case.
func SafeDoubleCap(curCap, minCount int) (int, bool) {
	if minCount <= curCap {
		return curCap, true
	}
	newCap := curCap
	if newCap == 0 {
		newCap = 4
	}
	for newCap < minCount {
		doubled, overflow := SafeAddUint64(uint64(newCap), uint64(newCap))
		if overflow || doubled > MaxInt {
			return 0, false
		}
		newCap = int(doubled)
	}
	return newCap, true
}
