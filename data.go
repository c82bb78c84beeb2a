package piechart

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/piechart/shape"
)

// DataItem is one labelled value. Label must not be empty. Position in the
// input sequence decides color and drawing order; items are never sorted.
type DataItem struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// SliceGeometry is the computed geometry of one data item. It is derived
// from the items and Config and never mutated after Layout returns.
type SliceGeometry struct {
	// Index is the position of the item in the input.
	Index int
	// Item is the input item, value as given.
	Item DataItem
	// Share is the item's fraction of the positive total, 0 when the total
	// is zero.
	Share float64

	// StartAngle and EndAngle bound the slot in radians, padding included.
	StartAngle float64
	EndAngle   float64
	// PadAngle is the gap cut out of the slot when building Outline.
	PadAngle float64

	// Outline is the closed slice boundary relative to the chart center,
	// nil when the slice is degenerate.
	Outline shape.Path

	// LabelAnchor is the centroid at the mean radius, relative to the chart
	// center.
	LabelAnchor gg.Point
}

// Span returns the angular extent of the slot, padding included.
func (s SliceGeometry) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// Degenerate reports whether the slice has nothing to draw.
func (s SliceGeometry) Degenerate() bool {
	return len(s.Outline) == 0
}

// OutlinePath returns the outline as SVG path data. The second result is
// false for degenerate slices.
func (s SliceGeometry) OutlinePath() (string, bool) {
	if s.Degenerate() {
		return "", false
	}
	return s.Outline.String(), true
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
