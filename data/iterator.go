// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

// Iterator visits every cell of a Source in row-major order: the
// column index varies fastest. An Iterator cannot be restarted.
type Iterator struct {
	src      Source
	col, row int
}

// NewIterator returns an Iterator positioned at cell (0, 0) of src.
func NewIterator(src Source) *Iterator {
	return &Iterator{src: src}
}

// HasNext reports whether Next would return a value.
func (it *Iterator) HasNext() bool {
	return it.col < it.src.ColumnCount() && it.row < it.src.RowCount()
}

// Next returns the next cell value and advances the iterator. Once
// every cell has been returned, Next returns ErrNoSuchElement.
func (it *Iterator) Next() (float64, error) {
	if !it.HasNext() {
		return 0, ErrNoSuchElement
	}
	v := it.src.Get(it.col, it.row)
	if it.col++; it.col >= it.src.ColumnCount() {
		it.col = 0
		it.row++
	}
	return v, nil
}

// Remove always returns ErrUnsupported. Sources cannot be modified
// through an Iterator.
func (it *Iterator) Remove() error {
	return ErrUnsupported
}
