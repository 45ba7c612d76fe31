// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import "errors"

var (
	// ErrNoSuchElement is returned by Iterator.Next once every
	// cell has been visited.
	ErrNoSuchElement = errors.New("no more elements")

	// ErrUnsupported is returned by operations a view does not
	// implement, such as removing through an Iterator.
	ErrUnsupported = errors.New("operation not supported")

	ErrColumnCount   = errors.New("wrong number of columns")
	ErrTypeMismatch  = errors.New("value not assignable to column type")
	ErrInvalidRow    = errors.New("invalid row index")
	ErrInvalidColumn = errors.New("invalid column index")
)
