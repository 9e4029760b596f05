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

func TestNewTypeSortsAndDedupes(t *testing.T) {
	typ := NewType(MakeId(3), MakeId(1), MakeId(1), MakeId(2))
	require.Equal(t, 3, typ.Count())
	require.Equal(t, MakeId(1), typ.At(0))
	require.Equal(t, MakeId(2), typ.At(1))
	require.Equal(t, MakeId(3), typ.At(2))
}

func TestTypeEqual(t *testing.T) {
	a := NewType(MakeId(1), MakeId(2))
	b := NewType(MakeId(2), MakeId(1))
	require.True(t, a.Equal(b))
}

func TestTypeWithAddedRemoved(t *testing.T) {
	base := NewType(MakeId(1), MakeId(2))
	added := base.WithAdded(MakeId(3))
	require.Equal(t, 3, added.Count())
	require.True(t, added.Has(MakeId(3)))

	removed := added.WithRemoved(MakeId(2))
	require.False(t, removed.Has(MakeId(2)))
	require.Equal(t, 2, removed.Count())
}

func TestSharesPrefixWith(t *testing.T) {
	a := NewType(MakeId(1), MakeId(2), MakeId(3))
	b := NewType(MakeId(1), MakeId(2), MakeId(5))
	require.Equal(t, 2, a.SharesPrefixWith(b))
}

func TestTypeHashStable(t *testing.T) {
	a := NewType(MakeId(1), MakeId(2))
	b := NewType(MakeId(2), MakeId(1))
	require.Equal(t, a.Hash(), b.Hash())
}
