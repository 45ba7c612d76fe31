// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"math"
	"sort"
)

// Table is a mutable Source that stores its rows in memory.
type Table struct {
	Base
	rows [][]float64
}

// NewTable returns an empty table with one column per kind.
func NewTable(kinds ...Kind) *Table {
	t := new(Table)
	t.Init(t, kinds...)
	return t
}

func (t *Table) RowCount() int {
	return len(t.rows)
}

func (t *Table) Get(col, row int) float64 {
	return t.rows[row][col]
}

// RowValues returns a copy of row row.
func (t *Table) RowValues(row int) []float64 {
	return append([]float64(nil), t.rows[row]...)
}

func (t *Table) check(values []float64) error {
	if len(values) != t.ColumnCount() {
		return fmt.Errorf("got %d values for %d columns: %w", len(values), t.ColumnCount(), ErrColumnCount)
	}
	for col, v := range values {
		if k := t.types[col]; !k.Accepts(v) {
			return fmt.Errorf("column %d (%s) value %v: %w", col, k, v, ErrTypeMismatch)
		}
	}
	return nil
}

// SetColumnTypes resets the column types, which also redefines the
// number of columns. If the table has rows, every existing value
// must be assignable to its new column type. No cell changes, so
// listeners are not notified; a Subset follows the new types and a
// Series over a dropped column must be rebuilt.
func (t *Table) SetColumnTypes(kinds ...Kind) error {
	if len(t.rows) > 0 {
		old := t.types
		t.types = kinds
		for _, values := range t.rows {
			if err := t.check(values); err != nil {
				t.types = old
				return err
			}
		}
		t.types = old
	}
	t.Init(t, kinds...)
	return nil
}

// Add appends a row and returns its index. values must supply
// exactly one value per column, each assignable to its column's
// Kind.
func (t *Table) Add(values ...float64) (int, error) {
	if err := t.check(values); err != nil {
		return -1, err
	}
	row := len(t.rows)
	t.rows = append(t.rows, append([]float64(nil), values...))

	events := make([]ChangeEvent, len(values))
	for col, v := range values {
		events[col] = ChangeEvent{Col: col, Row: row, Old: math.NaN(), New: v}
	}
	t.NotifyAdded(events...)
	return row, nil
}

// Set replaces the value of cell (col, row) and returns the old
// value.
func (t *Table) Set(col, row int, v float64) (float64, error) {
	if row < 0 || row >= len(t.rows) {
		return 0, fmt.Errorf("row %d of %d: %w", row, len(t.rows), ErrInvalidRow)
	}
	if col < 0 || col >= t.ColumnCount() {
		return 0, fmt.Errorf("column %d of %d: %w", col, t.ColumnCount(), ErrInvalidColumn)
	}
	if k := t.types[col]; !k.Accepts(v) {
		return 0, fmt.Errorf("column %d (%s) value %v: %w", col, k, v, ErrTypeMismatch)
	}
	old := t.rows[row][col]
	t.rows[row][col] = v
	t.NotifyUpdated(ChangeEvent{Col: col, Row: row, Old: old, New: v})
	return old, nil
}

// Remove deletes row row. Later rows move up by one.
func (t *Table) Remove(row int) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("row %d of %d: %w", row, len(t.rows), ErrInvalidRow)
	}
	values := t.rows[row]
	t.rows = append(t.rows[:row], t.rows[row+1:]...)

	events := make([]ChangeEvent, len(values))
	for col, v := range values {
		events[col] = ChangeEvent{Col: col, Row: row, Old: v, New: math.NaN()}
	}
	t.NotifyRemoved(events...)
	return nil
}

// Clear removes every row.
func (t *Table) Clear() {
	if len(t.rows) == 0 {
		return
	}
	var events []ChangeEvent
	for row, values := range t.rows {
		for col, v := range values {
			events = append(events, ChangeEvent{Col: col, Row: row, Old: v, New: math.NaN()})
		}
	}
	t.rows = nil
	t.NotifyRemoved(events...)
}

// A Comparator orders rows by the value in column Col.
type Comparator struct {
	Col        int
	Descending bool
}

func Ascending(col int) Comparator  { return Comparator{Col: col} }
func Descending(col int) Comparator { return Comparator{Col: col, Descending: true} }

// Sort stably reorders the rows by cmps, in priority order. NaN
// values sort last regardless of direction.
func (t *Table) Sort(cmps ...Comparator) error {
	for _, c := range cmps {
		if c.Col < 0 || c.Col >= t.ColumnCount() {
			return fmt.Errorf("sort column %d of %d: %w", c.Col, t.ColumnCount(), ErrInvalidColumn)
		}
	}
	before := make([][]float64, len(t.rows))
	copy(before, t.rows)

	sort.SliceStable(t.rows, func(i, j int) bool {
		a, b := t.rows[i], t.rows[j]
		for _, c := range cmps {
			x, y := a[c.Col], b[c.Col]
			if x == y || math.IsNaN(x) && math.IsNaN(y) {
				continue
			}
			if math.IsNaN(x) {
				return false
			}
			if math.IsNaN(y) {
				return true
			}
			return (x < y) != c.Descending
		}
		return false
	})

	var events []ChangeEvent
	for row, values := range t.rows {
		for col, v := range values {
			if old := before[row][col]; old != v && !(math.IsNaN(old) && math.IsNaN(v)) {
				events = append(events, ChangeEvent{Col: col, Row: row, Old: old, New: v})
			}
		}
	}
	if len(events) > 0 {
		t.NotifyUpdated(events...)
	}
	return nil
}
