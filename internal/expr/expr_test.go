// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"math"
	"testing"
)

func TestCompile(t *testing.T) {
	for _, test := range []struct {
		src  string
		row  []float64
		want bool
	}{
		{"int(row[0])%2 == 0", []float64{4, 6}, true},
		{"int(row[0])%2 == 0", []float64{3, 2}, false},
		{"row[1] > row[0]", []float64{1, 3}, true},
		{"math.IsNaN(row[0])", []float64{math.NaN()}, true},
		{"true", nil, true},
		{"row[5] > 0", []float64{1}, false},
	} {
		accept, err := Compile(test.src)
		if err != nil {
			t.Errorf("Compile(%q): %v", test.src, err)
			continue
		}
		if got := accept(test.row); got != test.want {
			t.Errorf("%q on %v = %v; want %v", test.src, test.row, got, test.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile("  "); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty expression: %v", err)
	}
	for _, src := range []string{"row[0] >", "row[0]", "true; false", "undefined(row)"} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded", src)
		}
	}
}
