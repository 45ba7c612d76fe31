// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend lays out a legend of labeled symbols, one per data
// source.
package legend

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/aclements/go-gg/gg/layout"

	"github.com/aclements/go-gral/data"
	"github.com/aclements/go-gral/points"
	"github.com/aclements/go-gral/settings"
)

// Setting keys.
const (
	KeyOrientation = "legend.orientation" // Orientation
	KeyGap         = "legend.gap"         // Size between items
	KeySymbolSize  = "legend.symbol.size" // Size
	KeySymbolGap   = "legend.symbol.gap"  // float64 between symbol and label
	KeyFontSize    = "legend.font.size"   // float64
	KeyBackground  = "legend.background"  // color.Color, or nil
	KeyBorder      = "legend.border"      // float64 stroke width
	KeyInsets      = "legend.insets"      // Insets
)

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

type Size struct {
	W, H float64
}

type Insets struct {
	Top, Left, Bottom, Right float64
}

// An Item is one entry of a legend.
type Item struct {
	Source data.Source
	Label  string

	symbol, label *box
}

// SymbolBounds returns the area reserved for the item's symbol.
func (it *Item) SymbolBounds() points.Rectangle { return it.symbol.bounds() }

// LabelBounds returns the area reserved for the item's label.
func (it *Item) LabelBounds() points.Rectangle { return it.label.bounds() }

// Bounds returns the area covered by the item's symbol and label.
func (it *Item) Bounds() points.Rectangle {
	s, l := it.SymbolBounds(), it.LabelBounds()
	return points.Rectangle{X: s.X, Y: s.Y, W: l.X + l.W - s.X, H: maxf(s.H, l.H)}
}

// Legend is a layout.Element that arranges one item per data source
// in a row or column.
//
// Legend.Remove removes an item. To remove a setting, use
// l.Settings.Remove.
type Legend struct {
	*settings.Settings

	items []*Item
	grid  *layout.Grid
	x, y  float64
	w, h  float64
}

var _ layout.Element = (*Legend)(nil)

func New() *Legend {
	l := &Legend{Settings: settings.New()}
	l.SetDefault(KeyOrientation, Vertical)
	l.SetDefault(KeyGap, Size{20, 5})
	l.SetDefault(KeySymbolSize, Size{20, 20})
	l.SetDefault(KeySymbolGap, 10.0)
	l.SetDefault(KeyFontSize, 12.0)
	l.SetDefault(KeyBackground, color.White)
	l.SetDefault(KeyBorder, 1.0)
	l.SetDefault(KeyInsets, Insets{10, 10, 10, 10})
	l.AddListener(l)
	l.rebuild()
	return l
}

// Add adds an entry for src. If label is empty, the name of src's
// first column is used. Adding a source twice replaces its label.
func (l *Legend) Add(src data.Source, label string) {
	if label == "" && src.ColumnCount() > 0 {
		label = src.ColumnName(0)
	}
	if it := l.find(src); it != nil {
		it.Label = label
	} else {
		l.items = append(l.items, &Item{Source: src, Label: label})
	}
	l.rebuild()
}

// Remove removes the entry for src, if any.
func (l *Legend) Remove(src data.Source) {
	for i, it := range l.items {
		if it.Source == src {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			l.rebuild()
			return
		}
	}
}

// Items returns the legend's entries in the order they were added.
func (l *Legend) Items() []*Item {
	return append([]*Item(nil), l.items...)
}

func (l *Legend) find(src data.Source) *Item {
	for _, it := range l.items {
		if it.Source == src {
			return it
		}
	}
	return nil
}

func (l *Legend) Orientation() Orientation {
	o, _ := l.Get(KeyOrientation).(Orientation)
	return o
}

func (l *Legend) Background() color.Color {
	c, _ := l.Get(KeyBackground).(color.Color)
	return c
}

func (l *Legend) size(key string) Size {
	s, _ := l.Get(key).(Size)
	return s
}

func (l *Legend) insets() Insets {
	in, _ := l.Get(KeyInsets).(Insets)
	return in
}

// SettingChanged rebuilds the layout after any setting changes.
func (l *Legend) SettingChanged(e settings.ChangeEvent) {
	l.rebuild()
}

func (l *Legend) rebuild() {
	var (
		orient   = l.Orientation()
		gap      = l.size(KeyGap)
		symSize  = l.size(KeySymbolSize)
		symGap   = l.GetFloat64(KeySymbolGap)
		fontSize = l.GetFloat64(KeyFontSize)
	)
	g := new(layout.Grid)
	for i, it := range l.items {
		it.symbol = &box{w: symSize.W, h: symSize.H}
		it.label = &box{w: labelWidth(it.Label, fontSize), h: fontSize}
		spacer := &box{w: symGap}
		if orient == Horizontal {
			g.Add(it.symbol, 4*i, 0, 1, 1)
			g.Add(spacer, 4*i+1, 0, 1, 1)
			g.Add(it.label, 4*i+2, 0, 1, 1)
			if i < len(l.items)-1 {
				g.Add(&box{w: gap.W}, 4*i+3, 0, 1, 1)
			}
		} else {
			g.Add(it.symbol, 0, 2*i, 1, 1)
			g.Add(spacer, 1, 2*i, 1, 1)
			g.Add(it.label, 2, 2*i, 1, 1)
			if i < len(l.items)-1 {
				g.Add(&box{h: gap.H}, 0, 2*i+1, 1, 1)
			}
		}
	}
	l.grid = g
	l.place()
}

// labelWidth estimates the width of s set in a font of the given size.
func labelWidth(s string, fontSize float64) float64 {
	return 0.5 * fontSize * float64(utf8.RuneCountInString(s))
}

// SizeHint returns the size needed to show every item at its
// preferred size. A legend never stretches.
func (l *Legend) SizeHint() (w, h float64, flexw, flexh bool) {
	in := l.insets()
	w, h, _, _ = l.grid.SizeHint()
	return w + in.Left + in.Right, h + in.Top + in.Bottom, false, false
}

// SetLayout places the legend at (x, y) with size (w, h) and lays
// out its items from the top left corner inside the insets.
func (l *Legend) SetLayout(x, y, w, h float64) {
	l.x, l.y, l.w, l.h = x, y, w, h
	l.place()
}

func (l *Legend) Layout() (x, y, w, h float64) {
	return l.x, l.y, l.w, l.h
}

func (l *Legend) place() {
	// Items keep their preferred size, so the grid gets no extra
	// space to distribute.
	l.grid.SetLayout(0, 0, 0, 0)
	in := l.insets()
	for _, e := range l.grid.Children() {
		e.(*box).offset(l.x+in.Left, l.y+in.Top)
	}
}

// box is a fixed-size grid cell.
type box struct {
	layout.Leaf
	w, h   float64
	dx, dy float64
}

func (b *box) SizeHint() (w, h float64, flexw, flexh bool) {
	return b.w, b.h, false, false
}

func (b *box) offset(dx, dy float64) {
	b.dx, b.dy = dx, dy
}

func (b *box) bounds() points.Rectangle {
	x, y, w, h := b.Layout()
	return points.Rectangle{X: x + b.dx, Y: y + b.dy, W: w, H: h}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
