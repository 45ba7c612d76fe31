// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit computes least-squares regressions over data sources.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-gral/data"
)

var (
	ErrDegree       = errors.New("polynomial degree must be non-negative")
	ErrTooFewPoints = errors.New("too few points for fit")
	ErrLength       = errors.New("mismatched input lengths")
	ErrSingular     = errors.New("singular system")
)

// Poly is a polynomial. Poly[i] is the coefficient of xⁱ.
type Poly []float64

// Eval evaluates p at x.
func (p Poly) Eval(x float64) float64 {
	y := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

func (p Poly) String() string {
	s := ""
	for i, c := range p {
		if i > 0 {
			s += " + "
		}
		switch i {
		case 0:
			s += fmt.Sprintf("%g", c)
		case 1:
			s += fmt.Sprintf("%g·x", c)
		default:
			s += fmt.Sprintf("%g·x^%d", c, i)
		}
	}
	return s
}

// PolynomialRegression performs a least squares regression with a
// polynomial of the given degree. If weights is non-nil, it is used
// to weight the residuals.
func PolynomialRegression(degree int, xs, ys, weights []float64) (Poly, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree %d: %w", degree, ErrDegree)
	}
	terms := make([]Term, degree+1)
	for d := range terms {
		d := d
		terms[d] = func(xs, termOut []float64) {
			for i, x := range xs {
				termOut[i] = math.Pow(x, float64(d))
			}
		}
	}
	return LinearLeastSquares(xs, ys, weights, terms...)
}

// Polynomial fits a polynomial of the given degree to the points
// (xcol, ycol) of src. Rows where either value is NaN are skipped.
func Polynomial(src data.Source, xcol, ycol, degree int) (Poly, error) {
	return PolynomialWeighted(src, xcol, ycol, -1, degree)
}

// PolynomialWeighted is like Polynomial, but weights each residual
// by the value in column wcol. If wcol is negative, all points have
// equal weight.
func PolynomialWeighted(src data.Source, xcol, ycol, wcol, degree int) (Poly, error) {
	n := src.ColumnCount()
	for _, col := range []int{xcol, ycol} {
		if col < 0 || col >= n {
			return nil, fmt.Errorf("column %d of %d: %w", col, n, data.ErrInvalidColumn)
		}
	}
	if wcol >= n {
		return nil, fmt.Errorf("weight column %d of %d: %w", wcol, n, data.ErrInvalidColumn)
	}
	var xs, ys, ws []float64
	for row := 0; row < src.RowCount(); row++ {
		x, y := src.Get(xcol, row), src.Get(ycol, row)
		w := 1.0
		if wcol >= 0 {
			w = src.Get(wcol, row)
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(w) {
			continue
		}
		xs, ys, ws = append(xs, x), append(ys, y), append(ws, w)
	}
	if wcol < 0 {
		ws = nil
	}
	return PolynomialRegression(degree, xs, ys, ws)
}
