// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"math"
)

// Kind is the declared numeric type of a column.
type Kind int

const (
	Float64 Kind = iota
	Float32
	Int64
	Int32
	Int16
	Int8
)

func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Int16:
		return "int16"
	case Int8:
		return "int8"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsInteger reports whether k only holds integral values.
func (k Kind) IsInteger() bool {
	switch k {
	case Int64, Int32, Int16, Int8:
		return true
	}
	return false
}

// ParseKind returns the Kind named by s, as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k := Float64; k <= Int8; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown column kind %q", s)
}

// bounds returns the representable range of k. The upper bound is
// inclusive except for Int64, whose maximum rounds up to 2^63 as a
// float64; that bound is exclusive.
func (k Kind) bounds() (lo, hi float64) {
	switch k {
	case Int64:
		return math.MinInt64, 1 << 63
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Float32:
		return -math.MaxFloat32, math.MaxFloat32
	}
	return math.Inf(-1), math.Inf(1)
}

// Accepts reports whether v can be stored in a column of kind k.
//
// Integer kinds accept only integral values in range. Float32
// accepts NaN, the infinities, and finite values within float32
// range.
func (k Kind) Accepts(v float64) bool {
	if k == Float64 {
		return true
	}
	if k == Float32 && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return true
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if k.IsInteger() && v != math.Trunc(v) {
		return false
	}
	lo, hi := k.bounds()
	if k == Int64 {
		return lo <= v && v < hi
	}
	return lo <= v && v <= hi
}
