// Package piechart lays out and renders pie and donut charts.
//
// # Overview
//
// A chart is built in three steps: the caller supplies labelled values and
// a Config, Layout turns them into one SliceGeometry per item, and a View
// turns the geometry into a render.Canvas scene that any registered
// backend can draw.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/piechart"
//	    "github.com/gogpu/piechart/render"
//	    _ "github.com/gogpu/piechart/render/svg"
//	)
//
//	cfg, _ := piechart.NewConfig(400, 400, piechart.WithInnerRadius(80))
//	v, _ := piechart.NewView([]piechart.DataItem{
//	    {Label: "A", Value: 1},
//	    {Label: "B", Value: 1},
//	    {Label: "C", Value: 2},
//	}, cfg)
//	err := render.Encode(os.Stdout, v.Scene(), "svg")
//
// # Geometry
//
// Angles are in radians, measured clockwise from 12 o'clock. Slices keep
// input order and partition [StartAngle, EndAngle] in proportion to their
// values; items are never sorted. Outlines and label anchors are relative
// to the chart center, which is the center of the canvas.
//
// PadAngle narrows each outline inside its slot and never changes the
// proportions. A slice with nothing to draw (zero value, zero total, or a
// span eaten by padding) is degenerate: it keeps its index, slot and label
// anchor but has a nil Outline and cannot be tapped.
//
// # Labels
//
// In Static mode every slice shows its label, degenerate slices included. In Interactive
// mode the View holds a Selection, either Idle or Selected(i), and Tap
// toggles it:
//
//	Idle        --tap(i)--> Selected(i)
//	Selected(i) --tap(i)--> Idle
//	Selected(i) --tap(j)--> Selected(j)
//
// # Logging
//
// piechart is silent by default. Call SetLogger to receive debug records
// from layout and tap handling.
package piechart
