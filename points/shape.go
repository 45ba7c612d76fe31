// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package points

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Shape is a closed polygon.
type Shape struct {
	Points []f64.Vec2
}

// Rect returns the axis-aligned rectangle with corner (x, y), width
// w and height h.
func Rect(x, y, w, h float64) *Shape {
	return &Shape{[]f64.Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}}
}

// Rectangle is an axis-aligned bounding box.
type Rectangle struct {
	X, Y, W, H float64
}

// Bounds returns the smallest rectangle containing s.
func (s *Shape) Bounds() Rectangle {
	if len(s.Points) == 0 {
		return Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range s.Points {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	return Rectangle{minX, minY, maxX - minX, maxY - minY}
}

// Transform returns s transformed by m.
func (s *Shape) Transform(m f64.Aff3) *Shape {
	out := &Shape{make([]f64.Vec2, len(s.Points))}
	for i, p := range s.Points {
		out.Points[i] = f64.Vec2{
			m[0]*p[0] + m[1]*p[1] + m[2],
			m[3]*p[0] + m[4]*p[1] + m[5],
		}
	}
	return out
}

// Scale returns a transform that scales by (sx, sy) about the origin.
func Scale(sx, sy float64) f64.Aff3 {
	return f64.Aff3{sx, 0, 0, 0, sy, 0}
}

// Translate returns a transform that moves by (dx, dy).
func Translate(dx, dy float64) f64.Aff3 {
	return f64.Aff3{1, 0, dx, 0, 1, dy}
}
