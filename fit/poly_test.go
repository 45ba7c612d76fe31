// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-gral/data"
)

func aeq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestPolynomialRegression(t *testing.T) {
	for _, want := range []Poly{
		{5},
		{1, 2},
		{-1, 0.5, 3},
		{2, -1, 0, 0.25},
	} {
		var xs, ys []float64
		for x := -4.0; x <= 4; x += 0.5 {
			xs = append(xs, x)
			ys = append(ys, want.Eval(x))
		}
		got, err := PolynomialRegression(len(want)-1, xs, ys, nil)
		if err != nil {
			t.Fatalf("fitting %v: %v", want, err)
		}
		for i := range want {
			if !aeq(got[i], want[i]) {
				t.Errorf("fitting %v: got %v", want, got)
				break
			}
		}
	}
}

func TestPolynomialWeighted(t *testing.T) {
	// The outlier at x=3 has zero weight and must not affect the fit.
	tab := data.NewTable(data.Float64, data.Float64, data.Float64)
	for _, row := range [][]float64{{0, 1, 1}, {1, 3, 1}, {2, 5, 1}, {3, 100, 0}, {4, math.NaN(), 1}} {
		if _, err := tab.Add(row...); err != nil {
			t.Fatal(err)
		}
	}
	got, err := PolynomialWeighted(tab, 0, 1, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(got[0], 1) || !aeq(got[1], 2) {
		t.Fatalf("got %v; want [1 2]", got)
	}

	got, err = Polynomial(tab, 0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(got[0], 109.0/4) {
		t.Fatalf("mean fit = %v; want %v", got, 109.0/4)
	}
}

func TestPolynomialErrors(t *testing.T) {
	tab := data.NewTable(data.Float64, data.Float64)
	tab.Add(1, 1)
	tab.Add(2, 2)
	if _, err := Polynomial(tab, 0, 1, -1); !errors.Is(err, ErrDegree) {
		t.Errorf("negative degree: %v", err)
	}
	if _, err := Polynomial(tab, 0, 1, 2); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("degree 2 with 2 points: %v", err)
	}
	for _, cols := range [][3]int{{0, 2, -1}, {-1, 1, -1}, {0, -1, -1}, {-1, -1, -1}, {0, 1, 2}} {
		if _, err := PolynomialWeighted(tab, cols[0], cols[1], cols[2], 1); !errors.Is(err, data.ErrInvalidColumn) {
			t.Errorf("columns x=%d y=%d w=%d: got %v; want ErrInvalidColumn", cols[0], cols[1], cols[2], err)
		}
	}
	if _, err := Polynomial(tab, -1, 1, 1); !errors.Is(err, data.ErrInvalidColumn) {
		t.Errorf("negative x column: %v", err)
	}
	if _, err := LinearLeastSquares([]float64{1}, []float64{1, 2}, nil); !errors.Is(err, ErrLength) {
		t.Errorf("mismatched lengths: %v", err)
	}
}

func TestPolyEval(t *testing.T) {
	p := Poly{1, -2, 3}
	if got := p.Eval(2); got != 9 {
		t.Errorf("Eval(2) = %v; want 9", got)
	}
	if got := Poly(nil).Eval(3); got != 0 {
		t.Errorf("empty Eval = %v; want 0", got)
	}
	if got, want := p.String(), "1 + -2·x + 3·x^2"; got != want {
		t.Errorf("String = %q; want %q", got, want)
	}
}
