// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Statistic keys understood by Statistics.
const (
	N         = "n"
	Sum       = "sum"
	Sum2      = "sum2"
	Sum3      = "sum3"
	Sum4      = "sum4"
	Min       = "min"
	Max       = "max"
	Mean      = "mean"
	GeoMean   = "geomean"
	Variance  = "variance"
	StdDev    = "stddev"
	Median    = "median"
	Quartile1 = "quartile1"
	Quartile3 = "quartile3"
)

// Keys lists every statistic key, in display order.
var Keys = []string{N, Sum, Sum2, Sum3, Sum4, Min, Max, Mean, GeoMean, Variance, StdDev, Median, Quartile1, Quartile3}

// Statistics summarizes the values of a Source: over every cell,
// and per row and per column. NaN cells are ignored.
//
// Results are computed on first use and cached until the source
// notifies its listeners of a change.
type Statistics struct {
	src  Source
	all  map[string]float64
	cols map[int]map[string]float64
	rows map[int]map[string]float64
}

func newStatistics(src Source) *Statistics {
	s := &Statistics{src: src}
	s.invalidate()
	return s
}

func (s *Statistics) invalidate() {
	s.all = nil
	s.cols = make(map[int]map[string]float64)
	s.rows = make(map[int]map[string]float64)
}

// Get returns statistic key over every cell of the source. Unknown
// keys return NaN.
func (s *Statistics) Get(key string) float64 {
	if s.all == nil {
		var xs []float64
		it := s.src.Iterator()
		for it.HasNext() {
			v, _ := it.Next()
			xs = append(xs, v)
		}
		s.all = summarize(xs)
	}
	return lookupKey(s.all, key)
}

// ColumnStat returns statistic key over column col.
func (s *Statistics) ColumnStat(col int, key string) float64 {
	m, ok := s.cols[col]
	if !ok {
		m = summarize(NewColumn(s.src, col).Values())
		s.cols[col] = m
	}
	return lookupKey(m, key)
}

// RowStat returns statistic key over row row.
func (s *Statistics) RowStat(row int, key string) float64 {
	m, ok := s.rows[row]
	if !ok {
		m = summarize(NewRow(s.src, row).Values())
		s.rows[row] = m
	}
	return lookupKey(m, key)
}

func lookupKey(m map[string]float64, key string) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return math.NaN()
}

// summarize computes every statistic over the non-NaN values in xs.
func summarize(xs []float64) map[string]float64 {
	vals := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			vals = append(vals, x)
		}
	}
	nan := math.NaN()
	m := map[string]float64{
		N: float64(len(vals)), Sum: 0, Sum2: 0, Sum3: 0, Sum4: 0,
		Min: nan, Max: nan, Mean: nan, GeoMean: nan,
		Variance: nan, StdDev: nan,
		Median: nan, Quartile1: nan, Quartile3: nan,
	}
	if len(vals) == 0 {
		return m
	}

	for _, x := range vals {
		x2 := x * x
		m[Sum] += x
		m[Sum2] += x2
		m[Sum3] += x2 * x
		m[Sum4] += x2 * x2
	}

	sample := stats.Sample{Xs: vals}
	m[Min], m[Max] = sample.Bounds()
	m[Mean] = sample.Mean()
	if m[Min] > 0 {
		m[GeoMean] = sample.GeoMean()
	}
	if len(vals) > 1 {
		m[Variance] = sample.Variance()
		m[StdDev] = sample.StdDev()
	}

	sorted := sample.Copy().Sort()
	m[Median] = sorted.Quantile(0.5)
	m[Quartile1] = sorted.Quantile(0.25)
	m[Quartile3] = sorted.Quantile(0.75)
	return m
}
