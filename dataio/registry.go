// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataio reads and writes data sources in various formats.
//
// Formats are identified by MIME type. Each format registers its
// Reader and/or Writer with the Readers and Writers registries from
// an init function.
package dataio

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/magiconair/properties"
	"github.com/sirupsen/logrus"

	"github.com/aclements/go-gral/data"
	"github.com/aclements/go-gral/internal/log"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Capabilities describes a format.
type Capabilities struct {
	// Format is a short name, such as "CSV".
	Format string
	// Name is a human-readable description.
	Name     string
	MimeType string
	// Extensions lists file name extensions, without the dot.
	Extensions []string
}

// A Reader decodes a table. If kinds is non-empty it gives the type
// of each column, otherwise the reader chooses them.
type Reader interface {
	Read(r io.Reader, kinds ...data.Kind) (*data.Table, error)
}

// A Writer encodes a data source.
type Writer interface {
	Write(w io.Writer, src data.Source) error
}

var (
	Readers = NewFactory[Reader]()
	Writers = NewFactory[Writer]()
)

// Factory is a registry of format implementations keyed by MIME
// type. It is safe for concurrent use.
type Factory[T any] struct {
	mu      sync.RWMutex
	formats map[string]format[T]
	aliases map[string]string
}

type format[T any] struct {
	caps Capabilities
	ctor func() T
}

func NewFactory[T any]() *Factory[T] {
	return &Factory[T]{
		formats: make(map[string]format[T]),
		aliases: make(map[string]string),
	}
}

// normalize lowercases mime and strips any parameters.
func normalize(mime string) string {
	mime, _, _ = strings.Cut(mime, ";")
	return strings.ToLower(strings.TrimSpace(mime))
}

// Register adds a format. ctor is called for every Get. Register
// panics if the MIME type is already registered.
func (f *Factory[T]) Register(caps Capabilities, ctor func() T) {
	caps.MimeType = normalize(caps.MimeType)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.formats[caps.MimeType]; dup {
		panic("dataio: Register called twice for " + caps.MimeType)
	}
	f.formats[caps.MimeType] = format[T]{caps, ctor}
}

// Alias makes alias another name for the registered type mime.
func (f *Factory[T]) Alias(alias, mime string) error {
	alias, mime = normalize(alias), normalize(mime)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.formats[alias]; ok {
		return fmt.Errorf("alias %s is a registered format", alias)
	}
	if _, ok := f.formats[mime]; !ok {
		return fmt.Errorf("%s: %w", mime, ErrUnsupportedFormat)
	}
	f.aliases[alias] = mime
	return nil
}

func (f *Factory[T]) lookup(mime string) (format[T], error) {
	mime = normalize(mime)
	f.mu.RLock()
	defer f.mu.RUnlock()
	if target, ok := f.aliases[mime]; ok {
		mime = target
	}
	if fm, ok := f.formats[mime]; ok {
		return fm, nil
	}
	var zero format[T]
	return zero, fmt.Errorf("%s: %w", mime, ErrUnsupportedFormat)
}

// Get returns a new implementation of the format mime.
func (f *Factory[T]) Get(mime string) (T, error) {
	fm, err := f.lookup(mime)
	if err != nil {
		var zero T
		return zero, err
	}
	return fm.ctor(), nil
}

func (f *Factory[T]) Capabilities(mime string) (Capabilities, error) {
	fm, err := f.lookup(mime)
	return fm.caps, err
}

// AllCapabilities returns every registered format, sorted by MIME
// type.
func (f *Factory[T]) AllCapabilities() []Capabilities {
	f.mu.RLock()
	defer f.mu.RUnlock()
	caps := make([]Capabilities, 0, len(f.formats))
	for _, fm := range f.formats {
		caps = append(caps, fm.caps)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i].MimeType < caps[j].MimeType })
	return caps
}

// SupportedFormats returns the registered MIME types, sorted.
func (f *Factory[T]) SupportedFormats() []string {
	var mimes []string
	for _, c := range f.AllCapabilities() {
		mimes = append(mimes, c.MimeType)
	}
	return mimes
}

func (f *Factory[T]) IsSupported(mime string) bool {
	_, err := f.lookup(mime)
	return err == nil
}

// ForExtension returns the MIME type of the format that uses the
// file name extension ext, with or without a leading dot.
func (f *Factory[T]) ForExtension(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, c := range f.AllCapabilities() {
		for _, e := range c.Extensions {
			if e == ext {
				return c.MimeType, nil
			}
		}
	}
	return "", fmt.Errorf("extension %q: %w", ext, ErrUnsupportedFormat)
}

// LoadAliases reads a properties file of alias=mimetype lines and
// adds each alias to every registry that supports its target.
// Entries whose target is unknown are logged and skipped. It returns
// the number of aliases added.
func LoadAliases(r io.Reader, logger logrus.FieldLogger) (int, error) {
	logger = log.Or(logger)
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	props, err := properties.Load(buf, properties.UTF8)
	if err != nil {
		return 0, fmt.Errorf("loading aliases: %w", err)
	}
	n := 0
	for _, alias := range props.Keys() {
		mime, _ := props.Get(alias)
		l := logger.WithFields(logrus.Fields{"alias": alias, "format": mime})
		rerr, werr := Readers.Alias(alias, mime), Writers.Alias(alias, mime)
		if rerr != nil && werr != nil {
			l.WithError(rerr).Warn("skipping format alias")
			continue
		}
		l.Debug("added format alias")
		n++
	}
	return n, nil
}
