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
	"context"
	"fmt"
	"hash/fnv"
	"unsafe"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/flecsgo/archstore"
	"github.com/flecsgo/archstore/internal/fixture"
)

func newRunCommand() *cobra.Command {
	var scenarioPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every world in a scenario file concurrently and print final table state",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			return runScenario(cmd.Context(), sc)
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "f", "scenario.yaml", "path to a scenario YAML file")
	return cmd
}

// componentID derives a deterministic id for a named component -- the CLI
// tool has no compile-time component types, so it stands in a plain
// 8-byte-float column for every declared name.
func componentID(name string) archstore.Id {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return archstore.MakeId(archstore.Entity(h.Sum64() & 0x7fffffff))
}

func floatTypeInfo() archstore.TypeInfo {
	return archstore.TypeInfo{Size: int(unsafe.Sizeof(float64(0)))}
}

// runScenario runs each world as an independent Store; Store mutation is
// not safe across goroutines, but distinct Store instances are, so
// errgroup fans the worlds out and reports the first failure.
func runScenario(ctx context.Context, sc *scenario) error {
	g, _ := errgroup.WithContext(ctx)
	results := make([]*worldResult, len(sc.Worlds))

	for i, w := range sc.Worlds {
		i, w := i, w
		g.Go(func() error {
			r, err := runWorld(w)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		printWorldResult(r)
	}
	return nil
}

type worldResult struct {
	name   string
	tables []tableRow
}

type tableRow struct {
	typeSize int
	rows     int
}

func runWorld(spec worldSpec) (*worldResult, error) {
	idx := fixture.NewEntityIndex()
	store := archstore.NewStore(idx)

	for _, name := range spec.Components {
		store.RegisterComponent(componentID(name), floatTypeInfo())
	}

	var nextEntity archstore.Entity = 1
	for _, arch := range spec.Archetypes {
		ids := make([]archstore.Id, 0, len(arch.Components))
		for _, name := range arch.Components {
			ids = append(ids, componentID(name))
		}
		tbl, _ := store.EnsureTable(archstore.NewType(ids...))
		for i := 0; i < arch.Entities; i++ {
			e := nextEntity
			nextEntity++
			rec := idx.Ensure(e)
			row, err := tbl.Append(e, rec, true, true)
			if err != nil {
				return nil, fmt.Errorf("world %s: append: %w", spec.Name, err)
			}
			rec.Row = int32(row)
			rec.Table = tbl
		}
	}

	res := &worldResult{name: spec.Name}
	for _, tbl := range store.Tables() {
		res.tables = append(res.tables, tableRow{typeSize: tbl.Type().Count(), rows: tbl.Count()})
	}
	return res, nil
}

func printWorldResult(r *worldResult) {
	fmt.Printf("world %s\n", r.name)
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"archetype ids", "rows"})
	for _, row := range r.tables {
		tw.AppendRow(table.Row{row.typeSize, row.rows})
	}
	fmt.Println(tw.Render())
}
