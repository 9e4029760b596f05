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

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Store's prometheus collectors. Construct once per
// Store and register it with whichever registry the embedding application
// already exposes on /metrics; archstore never registers itself globally.
type Metrics struct {
	Tables      prometheus.Gauge
	Rows        prometheus.Gauge
	Appends     prometheus.Counter
	Deletes     prometheus.Counter
	Moves       prometheus.Counter
	Merges      prometheus.Counter
	DirtyMarks  prometheus.Counter
}

// NewMetrics builds a fresh Metrics set under the given namespace, unique
// per Store instance so two Stores in one process don't collide when both
// are registered.
func NewMetrics(namespace string) *Metrics {
	mk := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	mkCounter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}
	return &Metrics{
		Tables:     mk("tables_total", "Number of archetype tables currently registered."),
		Rows:       mk("rows_total", "Number of rows currently stored across all tables."),
		Appends:    mkCounter("row_appends_total", "Number of rows appended."),
		Deletes:    mkCounter("row_deletes_total", "Number of rows deleted."),
		Moves:      mkCounter("row_moves_total", "Number of rows moved between tables."),
		Merges:     mkCounter("table_merges_total", "Number of table merge operations."),
		DirtyMarks: mkCounter("dirty_marks_total", "Number of times a column's dirty counter was bumped."),
	}
}

// Collectors returns every collector so the caller can register them with
// a prometheus.Registerer in one call.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Tables, m.Rows, m.Appends, m.Deletes, m.Moves, m.Merges, m.DirtyMarks}
}
