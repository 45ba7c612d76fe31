// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/aclements/go-gral/data"
	"github.com/aclements/go-gral/dataio"
)

func init() {
	registerSubcommand("convert", "convert a file to another format or plot it", cmdConvert)
}

func cmdConvert(e *env, args []string) error {
	fs := e.newFlagSet("convert", "<file>")
	filter := fs.String("filter", "", "only use rows for which the Go `expression` is true")
	to := fs.String("to", "", "output MIME `type`; default from the -o extension")
	out := fs.String("o", "", "write output to `file`, or standard output if \"-\"")
	opts := dataio.PlotOptions{
		Width:  e.cfg.Plot.Width,
		Height: e.cfg.Plot.Height,
	}
	fs.IntVar(&opts.X, "x", e.cfg.Plot.XColumn, "plot column `n` on the X axis")
	fs.IntVar(&opts.Y, "y", e.cfg.Plot.YColumn, "plot column `n` on the Y axis")
	fs.StringVar(&opts.Title, "title", "", "plot `title`")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	if *out == "" {
		fs.Usage()
		return errUsage
	}

	mime := *to
	if mime == "" {
		if *out == "-" {
			return fmt.Errorf("writing standard output requires -to")
		}
		var err error
		if mime, err = dataio.Writers.ForExtension(filepath.Ext(*out)); err != nil {
			return err
		}
	}
	w, err := dataio.Writers.Get(mime)
	if err != nil {
		return err
	}
	if pw, ok := w.(dataio.PlotWriter); ok {
		pw.SetPlotOptions(opts)
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

	if *out == "-" {
		return w.Write(e.stdout, src)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := w.Write(f, src); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{"path": *out, "format": mime, "rows": src.RowCount()}).Info("wrote output")
	return nil
}
