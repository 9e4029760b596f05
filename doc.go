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

// Package archstore implements an archetype-based component storage engine:
// entities that share an identical set of component ids are packed together
// in column-oriented tables, so queries over a component combination can walk
// contiguous memory instead of testing membership per entity.
//
// The package does not own entity allocation or event dispatch; callers
// supply an EntityIndex and an Emitter (see collaborators.go) and the store
// drives them as rows move between tables.
package archstore
