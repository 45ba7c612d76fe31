// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-gral/data"
)

func init() {
	registerSubcommand("stats", "print statistics of each column", cmdStats)
}

func cmdStats(e *env, args []string) error {
	fs := e.newFlagSet("stats", "<file>")
	filter := fs.String("filter", "", "only use rows for which the Go `expression` is true")
	col := fs.Int("col", -1, "only summarize column `n`")
	if err := parse(fs, args, 1); err != nil {
		return err
	}

	tab, err := e.readTable(fs.Arg(0))
	if err != nil {
		return err
	}
	src, err := e.filter(tab, *filter)
	if err != nil {
		return err
	}
	if sub, ok := src.(*data.Subset); ok {
		defer sub.Close()
	}

	cols := make([]int, 0, src.ColumnCount())
	if *col >= 0 {
		if *col >= src.ColumnCount() {
			return fmt.Errorf("column %d of %d: %w", *col, src.ColumnCount(), data.ErrInvalidColumn)
		}
		cols = append(cols, *col)
	} else {
		for i := 0; i < src.ColumnCount(); i++ {
			cols = append(cols, i)
		}
	}

	var w io.Writer = e.stdout
	var tw *tabwriter.Writer
	if isTerminal(e.stdout) {
		tw = tabwriter.NewWriter(e.stdout, 0, 8, 2, ' ', 0)
		w = tw
	}
	writeStats(w, src, cols)
	if tw != nil {
		return tw.Flush()
	}
	return nil
}

// writeStats writes one tab-separated line per statistic with one
// field per column in cols.
func writeStats(w io.Writer, src data.Source, cols []int) {
	stats := src.Statistics()
	fields := make([]string, 0, len(cols)+1)
	fields = append(fields, "stat")
	for _, c := range cols {
		fields = append(fields, src.ColumnName(c))
	}
	fmt.Fprintf(w, "%s\n", strings.Join(fields, "\t"))
	for _, key := range data.Keys {
		fields = append(fields[:0], key)
		for _, c := range cols {
			fields = append(fields, strconv.FormatFloat(stats.ColumnStat(c, key), 'g', 6, 64))
		}
		fmt.Fprintf(w, "%s\n", strings.Join(fields, "\t"))
	}
}
