package piechart

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/piechart/render"
)

// DefaultFontSize is the label font size used when none is configured.
const DefaultFontSize = 12

// View owns the data, layout and label state of one chart and produces its
// scene. A View is not safe for concurrent use.
type View struct {
	items  []DataItem
	cfg    Config
	slices []SliceGeometry
	sel    Selection

	mode       Mode
	palette    Palette
	format     LabelFormat
	fontSize   float64
	labelColor gg.RGBA
}

// NewView lays out items with cfg and returns a view in the Idle state.
func NewView(items []DataItem, cfg Config, opts ...ViewOption) (*View, error) {
	v := &View{
		mode:       Static,
		palette:    Category10,
		format:     PlainLabel,
		fontSize:   DefaultFontSize,
		labelColor: gg.White,
	}
	for _, opt := range opts {
		opt(v)
	}
	if err := v.relayout(slices.Clone(items), cfg); err != nil {
		return nil, err
	}
	return v, nil
}

// SetData replaces the items and recomputes the layout. On error the view
// is left unchanged. A selection that no longer names a slice is reset.
func (v *View) SetData(items []DataItem) error {
	return v.relayout(slices.Clone(items), v.cfg)
}

// SetConfig replaces the configuration and recomputes the layout. On error
// the view is left unchanged.
func (v *View) SetConfig(cfg Config) error {
	return v.relayout(v.items, cfg)
}

func (v *View) relayout(items []DataItem, cfg Config) error {
	geoms, err := Layout(items, cfg)
	if err != nil {
		return err
	}
	v.items = items
	v.cfg = cfg
	v.slices = geoms
	if i, ok := v.sel.Active(); ok && (i >= len(geoms) || geoms[i].Degenerate()) {
		Logger().Debug("piechart: selection reset", "index", i)
		v.sel = Idle()
	}
	return nil
}

// Items returns a copy of the current items.
func (v *View) Items() []DataItem { return slices.Clone(v.items) }

// Config returns the current configuration.
func (v *View) Config() Config { return v.cfg }

// Mode returns the labelling mode.
func (v *View) Mode() Mode { return v.mode }

// Selection returns the current label state.
func (v *View) Selection() Selection { return v.sel }

// Slices returns a copy of the computed geometry.
func (v *View) Slices() []SliceGeometry { return slices.Clone(v.slices) }

// Tap applies a tap on slice i. It reports whether the tap was accepted:
// taps are ignored in Static mode, for out-of-range indices and for
// degenerate slices, which have no visible path to tap.
func (v *View) Tap(i int) bool {
	if v.mode != Interactive || i < 0 || i >= len(v.slices) || v.slices[i].Degenerate() {
		return false
	}
	prev := v.sel
	v.sel = v.sel.Tap(i)
	Logger().Debug("piechart: tap", "index", i, "from", prev.String(), "to", v.sel.String())
	return true
}

// HitTest returns the index of the slice drawn at canvas point (x, y).
func (v *View) HitTest(x, y float64) (int, bool) {
	cx, cy := v.cfg.Center()
	px, py := x-cx, y-cy
	for i := len(v.slices) - 1; i >= 0; i-- {
		s := v.slices[i]
		if !s.Degenerate() && s.Outline.Contains(px, py) {
			return i, true
		}
	}
	return -1, false
}

// TapAt applies a tap at canvas point (x, y). Taps outside every slice
// change nothing.
func (v *View) TapAt(x, y float64) bool {
	i, ok := v.HitTest(x, y)
	if !ok {
		return false
	}
	return v.Tap(i)
}

// ClearSelection returns the view to Idle.
func (v *View) ClearSelection() { v.sel = Idle() }

// VisibleLabels returns the indices of the labels currently shown, in
// ascending order. Static views label every slice, degenerate ones
// included, at its anchor.
func (v *View) VisibleLabels() []int {
	if v.mode == Interactive {
		if i, ok := v.sel.Active(); ok {
			return []int{i}
		}
		return nil
	}
	var out []int
	for i := range v.slices {
		out = append(out, i)
	}
	return out
}

// Color returns the fill of slice i.
func (v *View) Color(i int) gg.RGBA { return v.palette.Color(i) }

// Label returns the text of slice i.
func (v *View) Label(i int) string { return v.format(v.slices[i]) }

// Scene builds the drawable tree: one group centered on the canvas holding
// the slice shapes in input order followed by the visible labels.
func (v *View) Scene() *render.Canvas {
	cx, cy := v.cfg.Center()
	g := &render.Group{X: cx, Y: cy}
	for i, s := range v.slices {
		if s.Degenerate() {
			continue
		}
		g.Children = append(g.Children, &render.Shape{
			Key:     i,
			Outline: s.Outline,
			Fill:    v.palette.Color(i),
		})
	}
	for _, i := range v.VisibleLabels() {
		s := v.slices[i]
		g.Children = append(g.Children, &render.Label{
			Key:      i,
			X:        s.LabelAnchor.X,
			Y:        s.LabelAnchor.Y,
			Text:     v.format(s),
			FontSize: v.fontSize,
			Fill:     v.labelColor,
			Anchor:   render.AnchorMiddle,
		})
	}
	return &render.Canvas{
		Width:    v.cfg.Width,
		Height:   v.cfg.Height,
		Children: []render.Node{g},
	}
}
