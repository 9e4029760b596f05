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

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// scenario describes a set of independent worlds to spin up, each with a
// handful of archetypes to populate -- enough to exercise EnsureTable and
// Append from a config file instead of Go code.
type scenario struct {
	Worlds []worldSpec `yaml:"worlds"`
}

type worldSpec struct {
	Name       string          `yaml:"name"`
	Components []string        `yaml:"components"`
	Archetypes []archetypeSpec `yaml:"archetypes"`
}

type archetypeSpec struct {
	Components []string `yaml:"components"`
	Entities   int      `yaml:"entities"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
