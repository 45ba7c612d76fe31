// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gral/data"
	"github.com/aclements/go-gral/fit"
)

func init() {
	registerSubcommand("fit", "fit a polynomial to two columns", cmdFit)
}

func cmdFit(e *env, args []string) error {
	fs := e.newFlagSet("fit", "<file>")
	filter := fs.String("filter", "", "only use rows for which the Go `expression` is true")
	xcol := fs.Int("x", e.cfg.Plot.XColumn, "independent column `n`")
	ycol := fs.Int("y", e.cfg.Plot.YColumn, "dependent column `n`")
	wcol := fs.Int("w", -1, "weight each point by column `n`")
	degree := fs.Int("degree", 1, "polynomial `degree`")
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

	var p fit.Poly
	if *wcol >= 0 {
		p, err = fit.PolynomialWeighted(src, *xcol, *ycol, *wcol, *degree)
	} else {
		p, err = fit.Polynomial(src, *xcol, *ycol, *degree)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s = %s\n", src.ColumnName(*ycol), p)
	for i, c := range p {
		fmt.Fprintf(e.stdout, "c%d\t%g\n", i, c)
	}
	return nil
}
