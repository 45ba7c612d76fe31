// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gral/data"
)

const (
	MimeCSV = "text/csv"
	MimeTSV = "text/tab-separated-values"
)

func init() {
	csvCaps := Capabilities{"CSV", "Comma separated values", MimeCSV, []string{"csv"}}
	tsvCaps := Capabilities{"TSV", "Tab separated values", MimeTSV, []string{"tsv", "tab", "txt"}}
	Readers.Register(csvCaps, func() Reader { return &TextReader{Comma: ','} })
	Writers.Register(csvCaps, func() Writer { return &TextWriter{Comma: ','} })
	Readers.Register(tsvCaps, func() Reader { return &TextReader{Comma: '\t'} })
	Writers.Register(tsvCaps, func() Writer { return &TextWriter{Comma: '\t'} })
}

// TextReader reads delimiter-separated values. If any field of the
// first record is not a number, that record names the columns.
// Empty fields and "NaN" are NaN.
//
// Without explicit kinds, a column is Int64 if every value is an
// integer and Float64 otherwise.
type TextReader struct {
	Comma rune
}

func (tr *TextReader) Read(r io.Reader, kinds ...data.Kind) (*data.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = tr.Comma
	if tr.Comma == '\t' {
		cr.LazyQuotes = true
	}

	var (
		header []string
		rows   [][]float64
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := parseField(field)
			if err != nil {
				if header == nil && rows == nil {
					header = rec
					vals = nil
					break
				}
				return nil, fmt.Errorf("line %d, field %d: %w", line, i+1, err)
			}
			vals[i] = v
		}
		if vals != nil {
			rows = append(rows, vals)
		}
	}

	ncols := len(header)
	if len(rows) > 0 {
		ncols = len(rows[0])
	}
	if len(kinds) == 0 {
		kinds = inferKinds(ncols, rows)
	} else if len(kinds) != ncols && ncols > 0 {
		return nil, fmt.Errorf("%d kinds for %d columns: %w", len(kinds), ncols, data.ErrColumnCount)
	}

	tab := data.NewTable(kinds...)
	tab.SetColumnNames(header...)
	for i, row := range rows {
		if _, err := tab.Add(row...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return tab, nil
}

func parseField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func inferKinds(ncols int, rows [][]float64) []data.Kind {
	kinds := make([]data.Kind, ncols)
	for col := range kinds {
		kinds[col] = data.Int64
		for _, row := range rows {
			if !data.Int64.Accepts(row[col]) {
				kinds[col] = data.Float64
				break
			}
		}
	}
	return kinds
}

// TextWriter writes a header of column names followed by one record
// per row.
type TextWriter struct {
	Comma rune
}

func (tw *TextWriter) Write(w io.Writer, src data.Source) error {
	cw := csv.NewWriter(w)
	cw.Comma = tw.Comma

	ncols := src.ColumnCount()
	kinds := src.ColumnTypes()
	rec := make([]string, ncols)
	for col := range rec {
		rec[col] = src.ColumnName(col)
	}
	if err := cw.Write(rec); err != nil {
		return err
	}
	for row := 0; row < src.RowCount(); row++ {
		for col := range rec {
			rec[col] = formatValue(kinds[col], src.Get(col, row))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(k data.Kind, v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case k.IsInteger():
		return strconv.FormatInt(int64(v), 10)
	case k == data.Float32:
		return strconv.FormatFloat(v, 'g', -1, 32)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
