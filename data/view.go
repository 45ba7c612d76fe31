// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

// Row is a live view of one row of a Source. It does not copy any
// data, so it reflects later changes to the source.
type Row struct {
	src   Source
	index int
}

// NewRow returns a view of row index of src.
func NewRow(src Source, index int) Row {
	return Row{src, index}
}

func (r Row) Source() Source { return r.src }
func (r Row) Index() int     { return r.index }
func (r Row) Len() int       { return r.src.ColumnCount() }

// Get returns the value in column col of this row.
func (r Row) Get(col int) float64 {
	return r.src.Get(col, r.index)
}

// Values returns a copy of the current values of this row.
func (r Row) Values() []float64 {
	vs := make([]float64, r.Len())
	for col := range vs {
		vs[col] = r.src.Get(col, r.index)
	}
	return vs
}

// Statistic returns the statistic named key over this row.
func (r Row) Statistic(key string) float64 {
	return r.src.Statistics().RowStat(r.index, key)
}

// Column is a live view of one column of a Source.
type Column struct {
	src   Source
	index int
}

// NewColumn returns a view of column index of src.
func NewColumn(src Source, index int) Column {
	return Column{src, index}
}

func (c Column) Source() Source { return c.src }
func (c Column) Index() int     { return c.index }
func (c Column) Len() int       { return c.src.RowCount() }

// Get returns the value in row row of this column.
func (c Column) Get(row int) float64 {
	return c.src.Get(c.index, row)
}

// Values returns a copy of the current values of this column.
func (c Column) Values() []float64 {
	vs := make([]float64, c.Len())
	for row := range vs {
		vs[row] = c.src.Get(c.index, row)
	}
	return vs
}

// Statistic returns the statistic named key over this column.
func (c Column) Statistic(key string) float64 {
	return c.src.Statistics().ColumnStat(c.index, key)
}
