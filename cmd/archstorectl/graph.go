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
	"fmt"

	"github.com/emicklei/dot"
	"github.com/spf13/cobra"

	"github.com/flecsgo/archstore"
	"github.com/flecsgo/archstore/internal/fixture"
)

func newGraphCommand() *cobra.Command {
	var scenarioPath string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the archetype/wildcard id-record graph for a scenario as Graphviz DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			if len(sc.Worlds) == 0 {
				return fmt.Errorf("scenario has no worlds")
			}
			fmt.Println(renderGraph(sc.Worlds[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "f", "scenario.yaml", "path to a scenario YAML file")
	return cmd
}

// renderGraph builds a table-per-node DOT graph with an edge from each
// concrete pair id's table to the wildcard tables that also match it --
// useful for visually spot-checking the id-record cache's wildcard
// bookkeeping (idrecord.go) on a non-trivial scenario.
func renderGraph(spec worldSpec) string {
	idx := fixture.NewEntityIndex()
	store := archstore.NewStore(idx)
	for _, name := range spec.Components {
		store.RegisterComponent(componentID(name), floatTypeInfo())
	}

	g := dot.NewGraph(dot.Directed)
	nodes := make(map[*archstore.Table]dot.Node)

	for _, arch := range spec.Archetypes {
		ids := make([]archstore.Id, 0, len(arch.Components))
		for _, name := range arch.Components {
			ids = append(ids, componentID(name))
		}
		typ := archstore.NewType(ids...)
		tbl, _ := store.EnsureTable(typ)
		n := g.Node(fmt.Sprintf("table_%x", tbl.Type().Hash())).
			Attr("label", fmt.Sprintf("%d ids", tbl.Type().Count()))
		nodes[tbl] = n
	}

	for _, tbl := range store.Tables() {
		for _, id := range tbl.Type().Ids() {
			if !id.IsPair() {
				continue
			}
			for _, tr := range store.TablesWithID(archstore.MakePair(archstore.Wildcard, id.Second())) {
				if tr.Table == tbl {
					continue
				}
				g.Edge(nodes[tbl], nodes[tr.Table], "(*,T) sibling")
			}
		}
	}

	return g.String()
}
