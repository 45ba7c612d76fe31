// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"reflect"
	"testing"
)

// recorder is a Listener that records every notification.
type recorder struct {
	name  string
	log   *[]string
	added [][]ChangeEvent
	rem   [][]ChangeEvent
	upd   [][]ChangeEvent
}

func (r *recorder) DataAdded(src Source, events ...ChangeEvent) {
	r.added = append(r.added, events)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func (r *recorder) DataRemoved(src Source, events ...ChangeEvent) {
	r.rem = append(r.rem, events)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func (r *recorder) DataUpdated(src Source, events ...ChangeEvent) {
	r.upd = append(r.upd, events)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func (r *recorder) calls() int {
	return len(r.added) + len(r.rem) + len(r.upd)
}

func TestColumnTypesCopy(t *testing.T) {
	tab := NewTable(Int32, Float64)
	types := tab.ColumnTypes()
	types[0] = Int8
	if got, want := tab.ColumnTypes(), []Kind{Int32, Float64}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ColumnTypes after mutating copy = %v; want %v", got, want)
	}
	if n := tab.ColumnCount(); n != 2 {
		t.Fatalf("ColumnCount = %d; want 2", n)
	}
}

func TestColumnNames(t *testing.T) {
	tab := NewTable(Float64, Float64, Float64)
	tab.SetColumnNames("x", "", "z", "extra")
	for col, want := range []string{"x", "col1", "z"} {
		if got := tab.ColumnName(col); got != want {
			t.Errorf("ColumnName(%d) = %q; want %q", col, got, want)
		}
	}
}

func TestListenerSet(t *testing.T) {
	tab := NewTable(Int32)
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}

	tab.AddListener(a)
	tab.AddListener(b)
	tab.AddListener(a)
	tab.Add(1)
	if a.calls() != 1 || b.calls() != 1 {
		t.Fatalf("got %d, %d notifications; want 1, 1", a.calls(), b.calls())
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(log, want) {
		t.Fatalf("notification order = %v; want %v", log, want)
	}

	tab.RemoveListener(a)
	tab.Add(2)
	if a.calls() != 1 {
		t.Fatalf("removed listener notified: %d calls", a.calls())
	}
	if b.calls() != 2 {
		t.Fatalf("remaining listener got %d calls; want 2", b.calls())
	}

	// Removing an unknown listener is harmless.
	tab.RemoveListener(a)
}

// selfRemover removes itself from src when notified.
type selfRemover struct {
	recorder
	src Source
}

func (r *selfRemover) DataAdded(src Source, events ...ChangeEvent) {
	r.recorder.DataAdded(src, events...)
	r.src.RemoveListener(r)
}

func TestListenerRemovesItself(t *testing.T) {
	tab := NewTable(Int32)
	r := &selfRemover{src: tab}
	b := new(recorder)
	tab.AddListener(r)
	tab.AddListener(b)
	tab.Add(1)
	tab.Add(2)
	if r.calls() != 1 || b.calls() != 2 {
		t.Fatalf("got %d, %d notifications; want 1, 2", r.calls(), b.calls())
	}
}

func TestIterator(t *testing.T) {
	tab := NewTable(Int32, Int32)
	tab.Add(1, 2)
	tab.Add(3, 4)
	tab.Add(5, 6)

	var got []float64
	it := tab.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if want := []float64{1, 2, 3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("iteration order = %v; want %v", got, want)
	}
	if _, err := it.Next(); !errors.Is(err, ErrNoSuchElement) {
		t.Fatalf("Next past end: got %v; want ErrNoSuchElement", err)
	}
	if err := it.Remove(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Remove: got %v; want ErrUnsupported", err)
	}
}

func TestIteratorEmpty(t *testing.T) {
	if NewTable(Float64).Iterator().HasNext() {
		t.Fatal("iterator over empty table has elements")
	}
	if NewTable().Iterator().HasNext() {
		t.Fatal("iterator over table without columns has elements")
	}
}

func TestViewsAreLive(t *testing.T) {
	tab := NewTable(Int32, Int32)
	tab.Add(1, 2)
	row, col := tab.Row(0), tab.Column(1)
	tab.Set(1, 0, 7)
	if got := row.Get(1); got != 7 {
		t.Fatalf("row view = %v; want 7", got)
	}
	tab.Add(3, 9)
	if got, want := col.Values(), []float64{7, 9}; !reflect.DeepEqual(got, want) {
		t.Fatalf("column view = %v; want %v", got, want)
	}
	if row.Len() != 2 || col.Len() != 2 || row.Index() != 0 || col.Index() != 1 {
		t.Fatalf("bad view dimensions")
	}
	if row.Source() != Source(tab) || col.Source() != Source(tab) {
		t.Fatalf("views do not refer to their table")
	}
}
