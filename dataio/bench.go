// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataio

import (
	"fmt"
	"io"

	"github.com/aclements/go-gral/data"
	"github.com/aclements/go-gral/internal/bench"
)

const MimeGoBenchmark = "text/x-go-benchmark"

func init() {
	Readers.Register(Capabilities{"Go benchmark", "Go benchmark results", MimeGoBenchmark, []string{"bench"}},
		func() Reader { return benchReader{} })
}

// benchReader reads Go benchmark results into a table with an
// "iterations" column followed by one column per unit.
type benchReader struct{}

func (benchReader) Read(r io.Reader, kinds ...data.Kind) (*data.Table, error) {
	results, err := bench.Parse(r)
	if err != nil {
		return nil, err
	}
	tab, err := bench.ToTable(results)
	if err != nil {
		return nil, err
	}
	if len(kinds) > 0 && len(kinds) != tab.ColumnCount() {
		return nil, fmt.Errorf("%d kinds for %d columns: %w", len(kinds), tab.ColumnCount(), data.ErrColumnCount)
	}
	return tab, nil
}
