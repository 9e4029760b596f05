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

func TestMakeIdPlain(t *testing.T) {
	id := MakeId(42)
	require.False(t, id.IsPair())
	require.Equal(t, Entity(42), id.First())
	require.Equal(t, Entity(0), id.Second())
}

func TestMakePair(t *testing.T) {
	id := MakePair(10, 20)
	require.True(t, id.IsPair())
	require.Equal(t, Entity(10), id.First())
	require.Equal(t, Entity(20), id.Second())
}

func TestStripFlags(t *testing.T) {
	id := MakeId(7) | FlagToggle | FlagOverride
	require.NotEqual(t, MakeId(7), id)
	require.Equal(t, MakeId(7), id.StripFlags())
}

func TestWildcardHelpers(t *testing.T) {
	pair := MakePair(5, 9)
	require.Equal(t, MakePair(Wildcard, 9), wildcardRelationship(pair))
	require.Equal(t, MakePair(5, Wildcard), wildcardTarget(pair))
	require.True(t, MakePair(Wildcard, 9).IsWildcard())
	require.True(t, MakePair(5, Wildcard).IsWildcard())
	require.False(t, pair.IsWildcard())
}
