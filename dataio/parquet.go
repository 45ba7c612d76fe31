// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/aclements/go-gral/data"
)

const MimeParquet = "application/vnd.apache.parquet"

func init() {
	caps := Capabilities{"Parquet", "Apache Parquet", MimeParquet, []string{"parquet"}}
	Readers.Register(caps, func() Reader { return &ParquetReader{} })
	Writers.Register(caps, func() Writer { return &ParquetWriter{Compression: compress.Codecs.Snappy} })
}

var kindTypes = map[data.Kind]arrow.DataType{
	data.Float64: arrow.PrimitiveTypes.Float64,
	data.Float32: arrow.PrimitiveTypes.Float32,
	data.Int64:   arrow.PrimitiveTypes.Int64,
	data.Int32:   arrow.PrimitiveTypes.Int32,
	data.Int16:   arrow.PrimitiveTypes.Int16,
	data.Int8:    arrow.PrimitiveTypes.Int8,
}

func arrowSchema(src data.Source) *arrow.Schema {
	fields := make([]arrow.Field, src.ColumnCount())
	for col, k := range src.ColumnTypes() {
		fields[col] = arrow.Field{Name: src.ColumnName(col), Type: kindTypes[k], Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// ParquetWriter writes a source as a single row group.
type ParquetWriter struct {
	Compression compress.Compression
}

func (pw *ParquetWriter) Write(w io.Writer, src data.Source) error {
	mem := memory.NewGoAllocator()
	schema := arrowSchema(src)
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for col := 0; col < src.ColumnCount(); col++ {
		fb := b.Field(col)
		for row := 0; row < src.RowCount(); row++ {
			v := src.Get(col, row)
			switch fb := fb.(type) {
			case *array.Float64Builder:
				fb.Append(v)
			case *array.Float32Builder:
				fb.Append(float32(v))
			case *array.Int64Builder:
				fb.Append(int64(v))
			case *array.Int32Builder:
				fb.Append(int32(v))
			case *array.Int16Builder:
				fb.Append(int16(v))
			case *array.Int8Builder:
				fb.Append(int8(v))
			}
		}
	}
	rec := b.NewRecord()
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(pw.Compression))
	// Closing fw closes its sink. Hide w's Close, if any, from it.
	fw, err := pqarrow.NewFileWriter(schema, struct{ io.Writer }{w}, props, pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema()))
	if err != nil {
		return err
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

// ParquetReader reads the numeric columns of a Parquet file. Nulls
// are read as NaN, so they are only allowed in floating point
// columns.
type ParquetReader struct{}

func (*ParquetReader) Read(r io.Reader, kinds ...data.Kind) (*data.Table, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	mem := memory.NewGoAllocator()
	tbl, err := pqarrow.ReadTable(context.Background(), bytes.NewReader(buf), parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("reading parquet: %w", err)
	}
	defer tbl.Release()

	ncols := int(tbl.NumCols())
	if len(kinds) == 0 {
		kinds = make([]data.Kind, ncols)
		for col := range kinds {
			k, ok := kindOf(tbl.Schema().Field(col).Type)
			if !ok {
				return nil, fmt.Errorf("column %q has type %s: %w", tbl.Schema().Field(col).Name, tbl.Schema().Field(col).Type, data.ErrTypeMismatch)
			}
			kinds[col] = k
		}
	} else if len(kinds) != ncols {
		return nil, fmt.Errorf("%d kinds for %d columns: %w", len(kinds), ncols, data.ErrColumnCount)
	}

	nrows := int(tbl.NumRows())
	cols := make([][]float64, ncols)
	names := make([]string, ncols)
	for col := range cols {
		names[col] = tbl.Schema().Field(col).Name
		cols[col] = make([]float64, 0, nrows)
		for _, chunk := range tbl.Column(col).Data().Chunks() {
			if cols[col], err = appendChunk(cols[col], chunk); err != nil {
				return nil, fmt.Errorf("column %q: %w", names[col], err)
			}
		}
	}

	tab := data.NewTable(kinds...)
	tab.SetColumnNames(names...)
	row := make([]float64, ncols)
	for i := 0; i < nrows; i++ {
		for col := range row {
			row[col] = cols[col][i]
		}
		if _, err := tab.Add(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return tab, nil
}

func kindOf(t arrow.DataType) (data.Kind, bool) {
	for k, at := range kindTypes {
		if arrow.TypeEqual(t, at) {
			return k, true
		}
	}
	return 0, false
}

func appendChunk(out []float64, chunk arrow.Array) ([]float64, error) {
	var get func(i int) float64
	switch a := chunk.(type) {
	case *array.Float64:
		get = func(i int) float64 { return a.Value(i) }
	case *array.Float32:
		get = func(i int) float64 { return float64(a.Value(i)) }
	case *array.Int64:
		get = func(i int) float64 { return float64(a.Value(i)) }
	case *array.Int32:
		get = func(i int) float64 { return float64(a.Value(i)) }
	case *array.Int16:
		get = func(i int) float64 { return float64(a.Value(i)) }
	case *array.Int8:
		get = func(i int) float64 { return float64(a.Value(i)) }
	default:
		return nil, fmt.Errorf("type %s: %w", chunk.DataType(), data.ErrTypeMismatch)
	}
	for i := 0; i < chunk.Len(); i++ {
		if chunk.IsNull(i) {
			out = append(out, math.NaN())
		} else {
			out = append(out, get(i))
		}
	}
	return out, nil
}
