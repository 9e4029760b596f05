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

import "github.com/pkg/errors"

// Sentinel errors for the two failure classes spec.md distinguishes:
// caller mistakes (ErrInvalidParameter, ErrInvalidOperation) that a caller
// can recover from by checking errors.Is, and storage invariant violations
// that indicate a bug in archstore itself or in a misbehaving collaborator
// (ErrInternal), which panic rather than return.
var (
	ErrInvalidParameter = errors.New("archstore: invalid parameter")
	ErrInvalidOperation = errors.New("archstore: invalid operation")
	ErrLockedStorage    = errors.New("archstore: table is locked")
	ErrInternal         = errors.New("archstore: internal invariant violation")
)

func paramErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

func opErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidOperation, format, args...)
}

// internalPanic reports a broken invariant. It is only reachable through
// checkSanity and a small number of defensive checks that callers cannot
// trigger by passing bad arguments (those return paramErrorf instead) --
// matching flecs's ecs_assert, which is a hard abort, not a recoverable
// error.
func internalPanic(format string, args ...any) {
	panic(errors.Wrapf(ErrInternal, format, args...))
}
