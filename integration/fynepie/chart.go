//go:build fyne

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynepie

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"github.com/gogpu/piechart"
	"github.com/gogpu/piechart/render/raster"
)

// Chart is a widget drawing a piechart.View.
//
// Chart is NOT safe for concurrent use; call it from the Fyne event loop.
type Chart struct {
	widget.BaseWidget

	// OnSelectionChanged, if set, is called after a tap changes the
	// selection of an interactive view.
	OnSelectionChanged func(piechart.Selection)

	view       *piechart.View
	background gg.RGBA
}

// New creates a Chart for v with a transparent background.
func New(v *piechart.View) *Chart {
	c := &Chart{view: v, background: gg.Transparent}
	c.ExtendBaseWidget(c)
	return c
}

// View returns the displayed view.
func (c *Chart) View() *piechart.View { return c.view }

// SetBackground sets the color behind the chart.
func (c *Chart) SetBackground(bg gg.RGBA) {
	c.background = bg
	c.Refresh()
}

// SetData replaces the chart items and redraws.
func (c *Chart) SetData(items []piechart.DataItem) error {
	prev := c.view.Selection()
	if err := c.view.SetData(items); err != nil {
		return err
	}
	c.notify(prev)
	c.Refresh()
	return nil
}

// Tapped maps the tap into chart coordinates and forwards it to the view.
func (c *Chart) Tapped(e *fyne.PointEvent) {
	x, y := c.toChart(e.Position)
	prev := c.view.Selection()
	if !c.view.TapAt(x, y) {
		return
	}
	c.notify(prev)
	c.Refresh()
}

func (c *Chart) notify(prev piechart.Selection) {
	if cur := c.view.Selection(); cur != prev && c.OnSelectionChanged != nil {
		c.OnSelectionChanged(cur)
	}
}

// toChart converts a widget position to chart canvas coordinates. The
// chart is stretched to the widget size.
func (c *Chart) toChart(pos fyne.Position) (x, y float64) {
	cfg := c.view.Config()
	size := c.Size()
	x, y = float64(pos.X), float64(pos.Y)
	if size.Width > 0 {
		x *= cfg.Width / float64(size.Width)
	}
	if size.Height > 0 {
		y *= cfg.Height / float64(size.Height)
	}
	return x, y
}

// CreateRenderer implements fyne.Widget.
func (c *Chart) CreateRenderer() fyne.WidgetRenderer {
	r := &chartRenderer{chart: c}
	r.raster = canvas.NewRaster(r.draw)
	r.objects = []fyne.CanvasObject{r.raster}
	return r
}

type chartRenderer struct {
	chart   *Chart
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *chartRenderer) Destroy()                     {}
func (r *chartRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *chartRenderer) Layout(size fyne.Size)        { r.raster.Resize(size) }
func (r *chartRenderer) Refresh()                     { canvas.Refresh(r.raster) }

func (r *chartRenderer) MinSize() fyne.Size {
	cfg := r.chart.view.Config()
	return fyne.NewSize(float32(cfg.Width), float32(cfg.Height))
}

// draw renders the scene at chart size; the raster scales it to w×h.
func (r *chartRenderer) draw(w, h int) image.Image {
	b := raster.NewBackend(raster.WithBackground(r.chart.background))
	if err := r.chart.view.Scene().Playback(b); err != nil {
		piechart.Logger().Warn("fynepie: render failed", "error", err)
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return b.Image()
}
