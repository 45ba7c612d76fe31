// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import "fmt"

// Base implements the bookkeeping shared by Source implementations:
// column types and names, listener registration and notification,
// row and column views, iteration, and cached statistics.
//
// Base is meant for embedding. The embedding type must call Init
// with itself before use and must implement RowCount and Get.
type Base struct {
	self      Source
	types     []Kind
	names     []string
	listeners []Listener
	stats     *Statistics
}

// Init sets self as the Source that b's views, iterators and
// statistics refer to, and sets or resets the column types. This
// also redefines the number of columns.
func (b *Base) Init(self Source, kinds ...Kind) {
	b.self = self
	b.types = append([]Kind(nil), kinds...)
	if len(b.names) > len(kinds) {
		b.names = b.names[:len(kinds)]
	}
	if b.stats != nil {
		b.stats.invalidate()
	}
}

func (b *Base) ColumnCount() int {
	return len(b.types)
}

func (b *Base) ColumnTypes() []Kind {
	return append([]Kind(nil), b.types...)
}

// ColumnName returns the name set by SetColumnNames, or "col<n>" if
// column col is unnamed.
func (b *Base) ColumnName(col int) string {
	if col < len(b.names) && b.names[col] != "" {
		return b.names[col]
	}
	return fmt.Sprintf("col%d", col)
}

// SetColumnNames names the first len(names) columns. Extra names
// are ignored.
func (b *Base) SetColumnNames(names ...string) {
	if len(names) > len(b.types) {
		names = names[:len(b.types)]
	}
	b.names = append([]string(nil), names...)
}

func (b *Base) Row(row int) Row {
	return Row{b.self, row}
}

func (b *Base) Column(col int) Column {
	return Column{b.self, col}
}

func (b *Base) Iterator() *Iterator {
	return NewIterator(b.self)
}

// Statistics returns the statistical summary of the embedding
// Source. The same *Statistics is returned on every call; its values
// are recomputed on demand after any notification.
func (b *Base) Statistics() *Statistics {
	if b.stats == nil {
		b.stats = newStatistics(b.self)
	}
	return b.stats
}

func (b *Base) AddListener(l Listener) {
	for _, x := range b.listeners {
		if x == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

func (b *Base) RemoveListener(l Listener) {
	for i, x := range b.listeners {
		if x == l {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// NotifyAdded informs every listener that the cells in events were
// added.
func (b *Base) NotifyAdded(events ...ChangeEvent) {
	b.invalidate()
	for _, l := range b.snapshot() {
		l.DataAdded(b.self, events...)
	}
}

// NotifyRemoved informs every listener that the cells in events
// were removed.
func (b *Base) NotifyRemoved(events ...ChangeEvent) {
	b.invalidate()
	for _, l := range b.snapshot() {
		l.DataRemoved(b.self, events...)
	}
}

// NotifyUpdated informs every listener that the cells in events
// changed value.
func (b *Base) NotifyUpdated(events ...ChangeEvent) {
	b.invalidate()
	for _, l := range b.snapshot() {
		l.DataUpdated(b.self, events...)
	}
}

// invalidate marks the cached statistics stale.
func (b *Base) invalidate() {
	if b.stats != nil {
		b.stats.invalidate()
	}
}

// snapshot returns the current listeners so that a listener may
// add or remove listeners while being notified.
func (b *Base) snapshot() []Listener {
	return append([]Listener(nil), b.listeners...)
}
