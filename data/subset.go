// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"
	"sort"
)

// Subset is a live view of the rows of a Source that satisfy a
// predicate. Subset row i is the i'th accepted source row, in source
// order.
//
// A Subset listens to its source. Every change to the source drops
// the cached row mapping and is re-reported to the Subset's own
// listeners in subset row indices: added cells through the new
// mapping, removed cells through the old mapping, and updated cells
// as updates. An update that makes a row enter or leave the subset
// is reported as the addition or removal of the whole row.
type Subset struct {
	Base
	src    Source
	accept func(row []float64) bool

	index []int // accepted source rows, ascending
	valid bool
}

// NewSubset returns a view of the rows of src for which accept
// returns true. accept is passed a fresh copy of each row.
func NewSubset(src Source, accept func(row []float64) bool) *Subset {
	s := &Subset{src: src, accept: accept}
	s.Init(s, src.ColumnTypes()...)
	s.rows()
	src.AddListener(s)
	return s
}

// Source returns the underlying source.
func (s *Subset) Source() Source {
	return s.src
}

// Close stops s from following changes to its source.
func (s *Subset) Close() {
	s.src.RemoveListener(s)
}

func (s *Subset) rows() []int {
	if !s.valid {
		s.index = s.index[:0]
		for row, n := 0, s.src.RowCount(); row < n; row++ {
			if s.accept(s.src.Row(row).Values()) {
				s.index = append(s.index, row)
			}
		}
		s.valid = true
	}
	return s.index
}

func (s *Subset) RowCount() int {
	return len(s.rows())
}

func (s *Subset) Get(col, row int) float64 {
	return s.src.Get(col, s.rows()[row])
}

// ColumnCount and ColumnTypes follow the source, so a Subset stays
// in step with Table.SetColumnTypes.
func (s *Subset) ColumnCount() int {
	return s.src.ColumnCount()
}

func (s *Subset) ColumnTypes() []Kind {
	return s.src.ColumnTypes()
}

func (s *Subset) ColumnName(col int) string {
	return s.src.ColumnName(col)
}

// SourceRow returns the source row index of subset row row.
func (s *Subset) SourceRow(row int) int {
	return s.rows()[row]
}

// remap recomputes the row mapping and returns the mappings from
// before and after the change. The mapping is built in NewSubset and
// rebuilt on every change, so old always reflects the source before
// the change.
func (s *Subset) remap() (old, cur []int) {
	old = append([]int(nil), s.rows()...)
	s.valid = false
	s.index = nil
	return old, s.rows()
}

func lookup(index []int, srcRow int) (int, bool) {
	i := sort.SearchInts(index, srcRow)
	return i, i < len(index) && index[i] == srcRow
}

func (s *Subset) DataAdded(src Source, events ...ChangeEvent) {
	_, cur := s.remap()
	var out []ChangeEvent
	for _, e := range events {
		if row, ok := lookup(cur, e.Row); ok {
			e.Row = row
			out = append(out, e)
		}
	}
	s.report(out, nil, nil)
}

func (s *Subset) DataRemoved(src Source, events ...ChangeEvent) {
	old, _ := s.remap()
	var out []ChangeEvent
	for _, e := range events {
		if row, ok := lookup(old, e.Row); ok {
			e.Row = row
			out = append(out, e)
		}
	}
	s.report(nil, nil, out)
}

func (s *Subset) DataUpdated(src Source, events ...ChangeEvent) {
	old, cur := s.remap()
	var updated []ChangeEvent
	// Rows that enter or leave the subset are reported as whole
	// rows. prev records the pre-update value of each changed cell.
	prev := make(map[int]map[int]float64)
	var moved []int
	for _, e := range events {
		_, inOld := lookup(old, e.Row)
		now, inCur := lookup(cur, e.Row)
		switch {
		case inOld && inCur:
			e.Row = now
			updated = append(updated, e)
		case inOld || inCur:
			cells, ok := prev[e.Row]
			if !ok {
				cells = make(map[int]float64)
				prev[e.Row] = cells
				moved = append(moved, e.Row)
			}
			if _, ok := cells[e.Col]; !ok {
				cells[e.Col] = e.Old
			}
		}
	}

	var added, removed []ChangeEvent
	ncols := s.src.ColumnCount()
	for _, srcRow := range moved {
		if row, ok := lookup(cur, srcRow); ok {
			for col := 0; col < ncols; col++ {
				added = append(added, ChangeEvent{Col: col, Row: row, Old: math.NaN(), New: s.src.Get(col, srcRow)})
			}
			continue
		}
		row, _ := lookup(old, srcRow)
		for col := 0; col < ncols; col++ {
			v, ok := prev[srcRow][col]
			if !ok {
				v = s.src.Get(col, srcRow)
			}
			removed = append(removed, ChangeEvent{Col: col, Row: row, Old: v, New: math.NaN()})
		}
	}
	s.report(added, updated, removed)
}

func (s *Subset) report(added, updated, removed []ChangeEvent) {
	if len(added)+len(updated)+len(removed) == 0 {
		s.invalidate()
		return
	}
	if len(removed) > 0 {
		s.NotifyRemoved(removed...)
	}
	if len(added) > 0 {
		s.NotifyAdded(added...)
	}
	if len(updated) > 0 {
		s.NotifyUpdated(updated...)
	}
}
