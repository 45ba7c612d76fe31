// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package points

import (
	"math"
	"testing"

	"github.com/aclements/go-gral/data"
)

func sizeTable(t *testing.T) *data.Table {
	tab := data.NewTable(data.Int32, data.Int32, data.Int32)
	for _, row := range [][]float64{{1, 3, 1}, {2, 1, 2}, {3, 2, -1}} {
		if _, err := tab.Add(row...); err != nil {
			t.Fatal(err)
		}
	}
	return tab
}

func TestSizeablePointPath(t *testing.T) {
	tab := sizeTable(t)
	shape := Rect(-5, -5, 10, 10)

	r := NewSizeableRenderer()
	r.Set(KeyShape, shape)

	if got, want := r.PointPath(tab.Row(0)).Bounds(), shape.Bounds(); got != want {
		t.Errorf("size 1 bounds = %v; want %v", got, want)
	}
	if got, want := r.PointPath(tab.Row(1)).Bounds(), shape.Transform(Scale(2, 2)).Bounds(); got != want {
		t.Errorf("size 2 bounds = %v; want %v", got, want)
	}
	if got, want := r.PointPath(tab.Row(1)).Bounds(), (Rectangle{-10, -10, 20, 20}); got != want {
		t.Errorf("size 2 bounds = %v; want %v", got, want)
	}
	if got := r.PointPath(tab.Row(2)); got != nil {
		t.Errorf("negative size gave %v; want nil", got)
	}
}

func TestSizeableColumnSetting(t *testing.T) {
	tab := sizeTable(t)
	r := NewSizeableRenderer()

	// Column 1 holds 3 for row 0.
	r.Set(KeySizeColumn, 1)
	if got, want := r.PointPath(tab.Row(0)).Bounds(), (Rectangle{-7.5, -7.5, 15, 15}); got != want {
		t.Errorf("bounds = %v; want %v", got, want)
	}

	// A size column past the end of the row leaves the shape alone.
	r.Set(KeySizeColumn, 5)
	if got, want := r.PointPath(tab.Row(2)).Bounds(), r.Shape().Bounds(); got != want {
		t.Errorf("bounds = %v; want %v", got, want)
	}

	r.Remove(KeyShape)
	r.RemoveDefault(KeyShape)
	if got := r.PointPath(tab.Row(0)); got != nil {
		t.Errorf("no shape gave %v; want nil", got)
	}
}

func TestRendererSkipsNonFinite(t *testing.T) {
	tab := data.NewTable(data.Float64, data.Float64)
	tab.Add(1, 2)
	tab.Add(1, math.Inf(1))
	r := NewRenderer()
	if r.PointPath(tab.Row(0)) == nil {
		t.Error("finite value gave nil path")
	}
	if r.PointPath(tab.Row(1)) != nil {
		t.Error("infinite value gave a path")
	}
}

func TestShapeTransform(t *testing.T) {
	s := Rect(0, 0, 2, 1)
	if got, want := s.Transform(Translate(3, -1)).Bounds(), (Rectangle{3, -1, 2, 1}); got != want {
		t.Errorf("translated bounds = %v; want %v", got, want)
	}
	if got, want := s.Transform(Scale(-1, 1)).Bounds(), (Rectangle{-2, 0, 2, 1}); got != want {
		t.Errorf("mirrored bounds = %v; want %v", got, want)
	}
	if got := (&Shape{}).Bounds(); got != (Rectangle{}) {
		t.Errorf("empty bounds = %v", got)
	}
}
