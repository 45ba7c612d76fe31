// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package points computes the shapes used to mark data points.
package points

import (
	"math"

	"github.com/aclements/go-gral/data"
	"github.com/aclements/go-gral/settings"
)

// Setting keys.
const (
	// KeyShape is the *Shape drawn for each point.
	KeyShape = "point.shape"
	// KeyColumn is the column holding the point's value.
	KeyColumn = "point.column"
	// KeySizeColumn is the column SizeableRenderer reads each
	// point's size from.
	KeySizeColumn = "point.size.column"
)

// A PointRenderer computes the path of the point for a row.
type PointRenderer interface {
	PointPath(row data.Row) *Shape
}

// Renderer marks every point with the same shape.
type Renderer struct {
	*settings.Settings
}

func NewRenderer() *Renderer {
	r := &Renderer{settings.New()}
	r.SetDefault(KeyShape, Rect(-2.5, -2.5, 5, 5))
	r.SetDefault(KeyColumn, 1)
	return r
}

// Shape returns the configured shape, or nil.
func (r *Renderer) Shape() *Shape {
	s, _ := r.Get(KeyShape).(*Shape)
	return s
}

// PointPath returns the configured shape, or nil if the row's value
// is not finite.
func (r *Renderer) PointPath(row data.Row) *Shape {
	if col := r.GetInt(KeyColumn); col >= 0 && col < row.Len() {
		if v := row.Get(col); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	}
	return r.Shape()
}

// SizeableRenderer scales each point's shape by the value in the
// size column of its row.
type SizeableRenderer struct {
	Renderer
}

func NewSizeableRenderer() *SizeableRenderer {
	r := &SizeableRenderer{*NewRenderer()}
	r.SetDefault(KeySizeColumn, 2)
	return r
}

// PointPath returns the shape scaled about the origin by the row's
// size. If the row has no size column the shape is unscaled. A size
// that is not a positive finite number hides the point.
func (r *SizeableRenderer) PointPath(row data.Row) *Shape {
	shape := r.Shape()
	if shape == nil {
		return nil
	}
	col := r.GetInt(KeySizeColumn)
	if col < 0 || col >= row.Len() {
		return shape
	}
	size := row.Get(col)
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil
	}
	if size == 1 {
		return shape
	}
	return shape.Transform(Scale(size, size))
}
