// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// A Term computes one linear term of a model. It is passed a slice
// of x values in xs and must fill termOut with the value of the
// term at each x.
type Term func(xs, termOut []float64)

// LinearLeastSquares computes the least squares fit for the function
//
//	f(x) = Β₀terms₀(x) + Β₁terms₁(x) + ...
//
// to the data (xs[i], ys[i]). It returns the parameters Β₀, Β₁, ...
// that minimize the sum of the squares of the residuals of f:
//
//	∑ (ys[i] - f(xs[i]))²
//
// If weights is non-nil, it is used to weight these residuals:
//
//	∑ weights[i] × (ys[i] - f(xs[i]))²
func LinearLeastSquares(xs, ys, weights []float64, terms ...Term) ([]float64, error) {
	// The optimal parameters are found by solving for Β̂ in the
	// "normal equations":
	//
	//    (𝐗ᵀ𝐖𝐗)Β̂ = 𝐗ᵀ𝐖𝐲
	//
	// where 𝐖 is a diagonal weight matrix (or the identity matrix
	// for the unweighted case).

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%d x values but %d y values: %w", len(xs), len(ys), ErrLength)
	}
	if weights != nil && len(xs) != len(weights) {
		return nil, fmt.Errorf("%d values but %d weights: %w", len(xs), len(weights), ErrLength)
	}
	if len(xs) < len(terms) {
		return nil, fmt.Errorf("%d points for %d terms: %w", len(xs), len(terms), ErrTooFewPoints)
	}

	// Construct 𝐗ᵀ, one row per term.
	xTVals := make([]float64, len(terms)*len(xs))
	for i, term := range terms {
		term(xs, xTVals[i*len(xs):(i+1)*len(xs)])
	}
	XT := mat64.NewDense(len(terms), len(xs), xTVals)
	X := XT.T()

	// 𝐗ᵀ𝐖. 𝐖 is diagonal, so scale each row of 𝐗ᵀ directly.
	XTW := XT
	if weights != nil {
		XTW = mat64.DenseCopyOf(XT)
		WDiag := mat64.NewVector(len(weights), weights)
		for row := 0; row < len(terms); row++ {
			rowView := XTW.RowView(row)
			rowView.MulElemVec(rowView, WDiag)
		}
	}

	y := mat64.NewVector(len(ys), ys)

	lhs := mat64.NewDense(len(terms), len(terms), nil)
	lhs.Mul(XTW, X)

	rhs := mat64.NewVector(len(terms), nil)
	rhs.MulVec(XTW, y)

	params := make([]float64, len(terms))
	B := mat64.NewVector(len(terms), params)
	if err := B.SolveVec(lhs, rhs); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSingular)
	}
	return params, nil
}
