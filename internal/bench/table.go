// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"math"

	"github.com/aclements/go-gral/data"
)

// Units returns every unit that appears in results, in order of
// first appearance.
func Units(results []*Result) []string {
	var units []string
	seen := make(map[string]bool)
	for _, r := range results {
		for _, u := range r.Units {
			if !seen[u] {
				seen[u] = true
				units = append(units, u)
			}
		}
	}
	return units
}

// ToTable converts results to a table with an "iterations" column
// followed by one column per unit. Units missing from a result are
// NaN.
func ToTable(results []*Result) (*data.Table, error) {
	units := Units(results)
	kinds := make([]data.Kind, 1+len(units))
	kinds[0] = data.Int64
	for i := range units {
		kinds[1+i] = data.Float64
	}
	tab := data.NewTable(kinds...)
	tab.SetColumnNames(append([]string{"iterations"}, units...)...)

	row := make([]float64, len(kinds))
	for _, r := range results {
		row[0] = float64(r.Iterations)
		for i, u := range units {
			v, ok := r.Values[u]
			if !ok {
				v = math.NaN()
			}
			row[1+i] = v
		}
		if _, err := tab.Add(row...); err != nil {
			return nil, err
		}
	}
	return tab, nil
}
