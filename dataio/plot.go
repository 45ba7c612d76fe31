// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataio

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/go-gral/data"
)

const (
	MimeSVG = "image/svg+xml"
	MimePNG = "image/png"
	MimePDF = "application/pdf"
)

func init() {
	Writers.Register(Capabilities{"SVG", "Scalable Vector Graphics", MimeSVG, []string{"svg"}},
		func() Writer { return &SVGWriter{DefaultPlotOptions} })
	Writers.Register(Capabilities{"PNG", "Portable Network Graphics", MimePNG, []string{"png"}},
		func() Writer { return &ImageWriter{DefaultPlotOptions, "png"} })
	Writers.Register(Capabilities{"PDF", "Portable Document Format", MimePDF, []string{"pdf"}},
		func() Writer { return &ImageWriter{DefaultPlotOptions, "pdf"} })
}

// PlotOptions control how a writer plots a source as a scatter plot
// of column Y against column X.
type PlotOptions struct {
	// Width and Height are in inches.
	Width, Height float64
	X, Y          int
	Title         string
}

var DefaultPlotOptions = PlotOptions{Width: 6, Height: 4, X: 0, Y: 1}

// A PlotWriter is a Writer that draws a plot.
type PlotWriter interface {
	Writer
	SetPlotOptions(opts PlotOptions)
}

// points returns the finite (x, y) pairs of src.
func (o *PlotOptions) points(src data.Source) (xs, ys []float64, err error) {
	for _, col := range []int{o.X, o.Y} {
		if col < 0 || col >= src.ColumnCount() {
			return nil, nil, fmt.Errorf("plot column %d of %d: %w", col, src.ColumnCount(), data.ErrInvalidColumn)
		}
	}
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	for row := 0; row < src.RowCount(); row++ {
		x, y := src.Get(o.X, row), src.Get(o.Y, row)
		if finite(x) && finite(y) {
			xs, ys = append(xs, x), append(ys, y)
		}
	}
	return xs, ys, nil
}

// SVGWriter plots a source as SVG.
type SVGWriter struct {
	Options PlotOptions
}

func (sw *SVGWriter) SetPlotOptions(opts PlotOptions) { sw.Options = opts }

func (sw *SVGWriter) Write(w io.Writer, src data.Source) error {
	o := &sw.Options
	xs, ys, err := o.points(src)
	if err != nil {
		return err
	}
	xname, yname := src.ColumnName(o.X), src.ColumnName(o.Y)
	b := new(table.Builder).Add(xname, xs)
	if yname == xname {
		yname += " "
	}
	tab := b.Add(yname, ys).Done()

	p := gg.NewPlot(tab)
	p.Add(gg.LayerPoints{X: xname, Y: yname})
	if o.Title != "" {
		p.Add(gg.Title(o.Title))
	}
	const dpi = 96
	return p.WriteSVG(w, int(o.Width*dpi), int(o.Height*dpi))
}

// ImageWriter plots a source in a format supported by gonum/plot,
// such as "png" or "pdf".
type ImageWriter struct {
	Options PlotOptions
	Format  string
}

func (iw *ImageWriter) SetPlotOptions(opts PlotOptions) { iw.Options = opts }

func (iw *ImageWriter) Write(w io.Writer, src data.Source) error {
	o := &iw.Options
	xs, ys, err := o.points(src)
	if err != nil {
		return err
	}
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = src.ColumnName(o.X)
	p.Y.Label.Text = src.ColumnName(o.Y)
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	p.Add(sc)

	wt, err := p.WriterTo(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch, iw.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
