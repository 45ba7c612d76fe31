// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr compiles Go boolean expressions into row predicates.
//
// An expression sees the current row as row []float64 and may use
// the math package, for example
//
//	row[1] > 2*row[0] && !math.IsNaN(row[2])
package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

var ErrEmpty = errors.New("empty filter expression")

const prog = `package filter

import "math"

var _ = math.NaN

func Accept(row []float64) bool {
	return %s
}
`

// Compile returns a predicate that evaluates src against a row.
// Evaluation that panics, for instance by indexing past the end of
// row, rejects the row.
func Compile(src string) (func(row []float64) bool, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmpty
	}
	if strings.ContainsAny(src, "\n;") {
		return nil, fmt.Errorf("filter %q: must be a single expression", src)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	if _, err := i.Eval(fmt.Sprintf(prog, src)); err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	v, err := i.Eval("filter.Accept")
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	accept, ok := v.Interface().(func([]float64) bool)
	if !ok {
		return nil, fmt.Errorf("filter %q: compiled to %s", src, v.Type())
	}
	return func(row []float64) (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		return accept(row)
	}, nil
}
