// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log builds the loggers used by gralstat.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing to stderr at the given level
// ("debug", "info", ...) in the given format ("text" or "json").
func NewLogger(level, format string, disableTimestamp bool) (*logrus.Logger, error) {
	return newLogger(os.Stderr, level, format, disableTimestamp)
}

func newLogger(w io.Writer, level, format string, disableTimestamp bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.Out = w
	log.Level = lvl
	switch strings.ToLower(format) {
	case "", "text":
		log.Formatter = &logrus.TextFormatter{DisableTimestamp: disableTimestamp}
	case "json":
		log.Formatter = &logrus.JSONFormatter{DisableTimestamp: disableTimestamp}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}

// Or returns l, or the standard logger if l is nil.
func Or(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
