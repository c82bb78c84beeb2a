// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fynepie shows a piechart.View as a tappable Fyne widget.
//
// The widget rasterizes the view's scene through the render/raster backend
// and forwards taps to View.TapAt, so in Interactive mode tapping a slice
// toggles its label.
//
// The package is built only with the "fyne" tag:
//
//	go build -tags fyne ./...
//
// # Example
//
//	cfg, _ := piechart.NewConfig(300, 300)
//	v, _ := piechart.NewView(items, cfg, piechart.WithMode(piechart.Interactive))
//
//	chart := fynepie.New(v)
//	chart.OnSelectionChanged = func(s piechart.Selection) {
//	    log.Println("selection:", s)
//	}
//	w.SetContent(chart)
package fynepie
