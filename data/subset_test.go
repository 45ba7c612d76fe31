// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func pairsTable() *Table {
	tab := NewTable(Int32, Int32)
	for _, row := range [][]float64{{1, 1}, {2, 3}, {3, 2}, {4, 6}, {5, 4}, {6, 8}, {7, 9}, {8, 11}} {
		tab.Add(row...)
	}
	return tab
}

func firstEven(row []float64) bool {
	return math.Mod(row[0], 2) == 0
}

func rowsOf(src Source) [][]float64 {
	var out [][]float64
	for row := 0; row < src.RowCount(); row++ {
		out = append(out, src.Row(row).Values())
	}
	return out
}

func TestSubset(t *testing.T) {
	tab := pairsTable()
	sub := NewSubset(tab, firstEven)
	if sub.ColumnCount() != tab.ColumnCount() {
		t.Fatalf("ColumnCount = %d; want %d", sub.ColumnCount(), tab.ColumnCount())
	}
	want := [][]float64{{2, 3}, {4, 6}, {6, 8}, {8, 11}}
	if got := rowsOf(sub); !reflect.DeepEqual(got, want) {
		t.Fatalf("subset rows = %v; want %v", got, want)
	}
	if got := sub.SourceRow(2); got != 5 {
		t.Fatalf("SourceRow(2) = %d; want 5", got)
	}
	if !reflect.DeepEqual(sub.ColumnTypes(), tab.ColumnTypes()) {
		t.Fatalf("subset column types differ from source")
	}
}

func TestSubsetCountMatchesPredicate(t *testing.T) {
	tab := pairsTable()
	for _, pred := range []func([]float64) bool{
		func([]float64) bool { return true },
		func([]float64) bool { return false },
		func(r []float64) bool { return r[1] > r[0] },
		firstEven,
	} {
		want := 0
		for row := 0; row < tab.RowCount(); row++ {
			if pred(tab.RowValues(row)) {
				want++
			}
		}
		sub := NewSubset(tab, pred)
		if got := sub.RowCount(); got != want {
			t.Errorf("RowCount = %d; want %d", got, want)
		}
		prev := -1
		for row := 0; row < sub.RowCount(); row++ {
			if sr := sub.SourceRow(row); sr <= prev {
				t.Errorf("subset rows out of source order: %d after %d", sr, prev)
			} else {
				prev = sr
			}
		}
		sub.Close()
	}
}

func TestSubsetLive(t *testing.T) {
	tab := pairsTable()
	sub := NewSubset(tab, firstEven)
	r := new(recorder)
	sub.AddListener(r)

	// An accepted row shows up and is reported at its subset index.
	tab.Add(10, 12)
	if n := sub.RowCount(); n != 5 {
		t.Fatalf("RowCount after add = %d; want 5", n)
	}
	if len(r.added) != 1 || r.added[0][0].Row != 4 {
		t.Fatalf("added events = %v; want one batch at row 4", r.added)
	}

	// A rejected row is not reported.
	tab.Add(11, 0)
	if len(r.added) != 1 {
		t.Fatalf("rejected row reported: %v", r.added)
	}

	// Changing the first value of row 1 (2,3) to odd drops it.
	tab.Set(0, 1, 9)
	if n := sub.RowCount(); n != 4 {
		t.Fatalf("RowCount after update = %d; want 4", n)
	}
	if len(r.rem) != 1 || r.rem[0][0].Row != 0 {
		t.Fatalf("removed events = %v; want one batch at row 0", r.rem)
	}

	// Removing an accepted source row removes it from the subset.
	tab.Remove(3) // (4, 6)
	if got, want := sub.Row(0).Values(), []float64{6, 8}; !reflect.DeepEqual(got, want) {
		t.Fatalf("first subset row = %v; want %v", got, want)
	}

	sub.Close()
	tab.Add(20, 20)
	if n := len(r.added); n != 1 {
		t.Fatalf("closed subset still reports changes")
	}
}

func TestSubsetUpdateMovesWholeRows(t *testing.T) {
	tab := NewTable(Int32, Int32)
	tab.Add(2, 3)
	tab.Add(1, 5)
	sub := NewSubset(tab, firstEven)
	defer sub.Close()
	r := new(recorder)
	sub.AddListener(r)
	nan := math.NaN()

	// Row 1 becomes accepted: both of its cells are added.
	tab.Set(0, 1, 4)
	want := [][]ChangeEvent{{{Col: 0, Row: 1, Old: nan, New: 4}, {Col: 1, Row: 1, Old: nan, New: 5}}}
	if diff := cmp.Diff(want, r.added, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("added events (-want +got):\n%s", diff)
	}

	// Row 0 stops being accepted: both cells are removed, with the
	// changed cell reporting its value before the update.
	tab.Set(0, 0, 3)
	want = [][]ChangeEvent{{{Col: 0, Row: 0, Old: 2, New: nan}, {Col: 1, Row: 0, Old: 3, New: nan}}}
	if diff := cmp.Diff(want, r.rem, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("removed events (-want +got):\n%s", diff)
	}
	if len(r.upd) != 0 {
		t.Errorf("unexpected update events: %v", r.upd)
	}
	if got, want := rowsOf(sub), [][]float64{{4, 5}}; !reflect.DeepEqual(got, want) {
		t.Errorf("subset rows = %v; want %v", got, want)
	}
}

func TestSubsetFollowsColumnTypes(t *testing.T) {
	tab := NewTable(Int32)
	sub := NewSubset(tab, func([]float64) bool { return true })
	defer sub.Close()
	if err := tab.SetColumnTypes(Int8, Float64, Float32); err != nil {
		t.Fatal(err)
	}
	if n := sub.ColumnCount(); n != 3 {
		t.Fatalf("subset ColumnCount = %d; want 3", n)
	}
	if got, want := sub.ColumnTypes(), []Kind{Int8, Float64, Float32}; !reflect.DeepEqual(got, want) {
		t.Fatalf("subset ColumnTypes = %v; want %v", got, want)
	}
	tab.Add(1, 2, 3)
	if got, want := sub.Row(0).Values(), []float64{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("subset row = %v; want %v", got, want)
	}
}

func TestSeries(t *testing.T) {
	tab := pairsTable()
	tab.SetColumnNames("x", "y")
	s, err := NewSeries(tab, 1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.ColumnCount() != 3 || s.RowCount() != 8 {
		t.Fatalf("series is %dx%d; want 3x8", s.ColumnCount(), s.RowCount())
	}
	if got, want := s.Row(1).Values(), []float64{3, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("series row 1 = %v; want %v", got, want)
	}
	if got := s.ColumnName(1); got != "x" {
		t.Fatalf("ColumnName(1) = %q; want x", got)
	}

	r := new(recorder)
	s.AddListener(r)
	tab.Set(1, 0, 5)
	if len(r.upd) != 1 || len(r.upd[0]) != 2 || r.upd[0][0].Col != 0 || r.upd[0][1].Col != 2 {
		t.Fatalf("series update events = %v", r.upd)
	}
	tab.Set(0, 0, 5)
	if len(r.upd) != 2 || r.upd[1][0].Col != 1 {
		t.Fatalf("series update events = %v", r.upd)
	}

	if _, err := NewSeries(tab, 2); err == nil {
		t.Fatal("NewSeries with missing column succeeded")
	}
}
