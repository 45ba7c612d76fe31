// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data implements an observable, in-memory numeric table
// model for plotting.
//
// A Source is a read-only view of a two dimensional table of float64
// cells, each column of which has a declared Kind. Table is the
// mutable implementation; Subset and Series are live views over
// another Source. Every Source can report change events to
// registered Listeners and lazily computes Statistics that are
// recomputed after the source changes.
//
// None of the types in this package are safe for concurrent
// mutation. Mutating a Table while an Iterator, Row, Column, Subset
// or Series over it is being read from another goroutine is
// undefined.
package data

// Source is a read-only view of tabular numeric data.
type Source interface {
	// RowCount returns the number of rows.
	RowCount() int

	// ColumnCount returns the number of columns.
	ColumnCount() int

	// ColumnTypes returns the declared kind of each column. The
	// returned slice is a copy.
	ColumnTypes() []Kind

	// ColumnName returns the name of column col.
	ColumnName(col int) string

	// Get returns the value of the cell at (col, row). It panics
	// if either index is out of range.
	Get(col, row int) float64

	// Row and Column return live views of one row or column.
	Row(row int) Row
	Column(col int) Column

	// Iterator returns a row-major iterator over every cell.
	Iterator() *Iterator

	// Statistics returns the statistical summary of this source.
	Statistics() *Statistics

	// AddListener registers l to be notified of changes. Adding
	// a listener that is already registered has no effect.
	AddListener(l Listener)

	// RemoveListener unregisters l.
	RemoveListener(l Listener)
}

// Listener is notified of changes to a Source. Listeners are called
// synchronously, in registration order, after the change has been
// applied. Listeners are compared with ==, so implementations
// should be pointers or other comparable values.
type Listener interface {
	DataAdded(src Source, events ...ChangeEvent)
	DataRemoved(src Source, events ...ChangeEvent)
	DataUpdated(src Source, events ...ChangeEvent)
}

// ChangeEvent describes a change to one cell. For added cells, Old
// is NaN. For removed cells, New is NaN.
type ChangeEvent struct {
	Col, Row int
	Old, New float64
}
