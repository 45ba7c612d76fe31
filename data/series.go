// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import "fmt"

// Series is a live view that exposes selected columns of a Source,
// in the given order. The same source column may appear more than
// once. A Series must be rebuilt if its source's column count changes
// so that a selected column no longer exists.
type Series struct {
	Base
	src  Source
	cols []int
}

// NewSeries returns a view of columns cols of src.
func NewSeries(src Source, cols ...int) (*Series, error) {
	types := src.ColumnTypes()
	kinds := make([]Kind, len(cols))
	for i, col := range cols {
		if col < 0 || col >= len(types) {
			return nil, fmt.Errorf("series column %d of %d: %w", col, len(types), ErrInvalidColumn)
		}
		kinds[i] = types[col]
	}
	s := &Series{src: src, cols: append([]int(nil), cols...)}
	s.Init(s, kinds...)
	src.AddListener(s)
	return s, nil
}

// Close stops s from following changes to its source.
func (s *Series) Close() {
	s.src.RemoveListener(s)
}

// ColumnTypes returns the current kinds of the selected source
// columns.
func (s *Series) ColumnTypes() []Kind {
	types := s.src.ColumnTypes()
	kinds := make([]Kind, len(s.cols))
	for i, col := range s.cols {
		kinds[i] = types[col]
	}
	return kinds
}

func (s *Series) RowCount() int {
	return s.src.RowCount()
}

func (s *Series) Get(col, row int) float64 {
	return s.src.Get(s.cols[col], row)
}

// ColumnName returns the name set on s, if any, or the name of the
// underlying source column.
func (s *Series) ColumnName(col int) string {
	if col < len(s.names) && s.names[col] != "" {
		return s.names[col]
	}
	return s.src.ColumnName(s.cols[col])
}

// translate maps events on source columns to events on s's columns.
func (s *Series) translate(events []ChangeEvent) []ChangeEvent {
	var out []ChangeEvent
	for _, e := range events {
		for col, srcCol := range s.cols {
			if srcCol == e.Col {
				e := e
				e.Col = col
				out = append(out, e)
			}
		}
	}
	return out
}

func (s *Series) DataAdded(src Source, events ...ChangeEvent) {
	s.NotifyAdded(s.translate(events)...)
}

func (s *Series) DataRemoved(src Source, events ...ChangeEvent) {
	s.NotifyRemoved(s.translate(events)...)
}

func (s *Series) DataUpdated(src Source, events ...ChangeEvent) {
	if out := s.translate(events); len(out) > 0 {
		s.NotifyUpdated(out...)
	}
}
