// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gralstat summarizes, filters, converts, plots and fits tabular
// data.
//
// Usage:
//
//	gralstat [-v] [-config file] [-from type] <subcommand> [flags] <file>
//
// Subcommands:
//
//	formats   list the supported file formats
//	stats     print statistics of each column
//	convert   convert a file to another format or plot it
//	fit       fit a polynomial to two columns
//
// The input format is chosen from the file extension unless -from
// gives a MIME type. A file name of "-" reads standard input.
//
// Flags in $GRALSTAT_FLAGS, split using shell quoting rules, are
// parsed before the command line flags.
//
// Most subcommands accept -filter, a Go boolean expression over the
// current row, row []float64, that selects the rows to use. For
// example,
//
//	gralstat stats -filter 'row[0] > 100 && !math.IsNaN(row[2])' data.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/aclements/go-gral/data"
	"github.com/aclements/go-gral/dataio"
	"github.com/aclements/go-gral/internal/config"
	"github.com/aclements/go-gral/internal/expr"
	"github.com/aclements/go-gral/internal/log"
)

// env is the environment a subcommand runs in.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	log            *logrus.Logger
	cfg            config.Config
	from           string
}

type subcommand struct {
	name, desc string
	run        func(e *env, args []string) error
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, run func(e *env, args []string) error) {
	subcommands[name] = &subcommand{name, desc, run}
}

// errUsage reports a command line error that has already been
// described to the user.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if extra := os.Getenv("GRALSTAT_FLAGS"); extra != "" {
		words, err := shellquote.Split(extra)
		if err != nil {
			fmt.Fprintf(stderr, "gralstat: parsing $GRALSTAT_FLAGS: %v\n", err)
			return 2
		}
		args = append(words, args...)
	}

	fs := flag.NewFlagSet("gralstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gralstat [flags] <subcommand> [flags] <file>\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nSubcommands:\n")
		var names []string
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(stderr, "  %-9s %s\n", name, subcommands[name].desc)
		}
	}
	verbose := fs.Bool("v", false, "enable debug logging")
	cfgPath := fs.String("config", "", "read configuration from `file`")
	from := fs.String("from", "", "input MIME `type`; default from the file extension")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}
	sc := subcommands[fs.Arg(0)]
	if sc == nil {
		fmt.Fprintf(stderr, "gralstat: unknown subcommand %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "gralstat: %v\n", err)
		return 1
	}
	level := cfg.Logger.Level
	if *verbose {
		level = "debug"
	}
	logger, err := log.NewLogger(level, cfg.Logger.Format, cfg.Logger.DisableTimestamp)
	if err != nil {
		fmt.Fprintf(stderr, "gralstat: %v\n", err)
		return 1
	}
	logger.Out = stderr

	if cfg.Aliases != "" {
		if err := loadAliases(cfg.Aliases, logger); err != nil {
			logger.WithError(err).Warn("ignoring format aliases")
		}
	}

	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, log: logger, cfg: cfg, from: *from}
	switch err := sc.run(e, fs.Args()[1:]); {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "gralstat %s: %v\n", sc.name, err)
		return 1
	}
}

func loadAliases(path string, logger *logrus.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := dataio.LoadAliases(f, logger)
	logger.WithField("count", n).Debug("loaded format aliases")
	return err
}

// newFlagSet returns a flag set for subcommand name whose usage
// message describes the positional arguments in argUsage.
func (e *env) newFlagSet(name, argUsage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: gralstat %s [flags] %s\n", name, argUsage)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses args and requires exactly nargs positional arguments.
func parse(fs *flag.FlagSet, args []string, nargs int) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != nargs {
		fs.Usage()
		return errUsage
	}
	return nil
}

// readTable reads the table in path, or standard input if path is "-".
func (e *env) readTable(path string) (*data.Table, error) {
	mime := e.from
	if mime == "" {
		if path == "-" {
			return nil, fmt.Errorf("reading standard input requires -from")
		}
		var err error
		if mime, err = dataio.Readers.ForExtension(filepath.Ext(path)); err != nil {
			return nil, err
		}
	}
	r, err := dataio.Readers.Get(mime)
	if err != nil {
		return nil, err
	}

	in := e.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	tab, err := r.Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.log.WithFields(logrus.Fields{
		"path":    path,
		"format":  mime,
		"rows":    tab.RowCount(),
		"columns": tab.ColumnCount(),
	}).Debug("read table")
	return tab, nil
}

// filter returns the rows of src accepted by the expression src, or
// src itself if the expression is empty.
func (e *env) filter(src data.Source, filter string) (data.Source, error) {
	if filter == "" {
		return src, nil
	}
	accept, err := expr.Compile(filter)
	if err != nil {
		return nil, err
	}
	sub := data.NewSubset(src, accept)
	e.log.WithFields(logrus.Fields{"filter": filter, "rows": sub.RowCount()}).Debug("filtered rows")
	return sub, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && os.Getenv("TERM") != "dumb" && terminal.IsTerminal(int(f.Fd()))
}
