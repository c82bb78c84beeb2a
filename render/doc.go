// Package render holds the vector scene tree produced by a chart view and
// the backends that turn it into output.
//
// # Scene
//
// A scene is a [Canvas] with nested [Group], [Shape] and [Label] nodes.
// Shapes carry their outline as a [shape.Path] relative to the enclosing
// group's origin, so a chart is typically a Canvas holding one Group
// translated to the canvas center.
//
// # Backends
//
// Backends receive the tree through [Canvas.Playback]. They are registered
// by name in init functions, following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/piechart/render/svg" // registers "svg"
//
//	var buf bytes.Buffer
//	if err := render.Encode(&buf, scene, "svg"); err != nil {
//	    return err
//	}
//
// Available backends:
//   - render/svg: SVG markup ("svg")
//   - render/raster: PNG through gg's software renderer ("png")
//   - render/pdf: single-page PDF through gofpdf ("pdf")
package render
