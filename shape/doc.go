// Package shape computes pie and arc geometry for circular charts.
//
// # Overview
//
// The package has two generators. [Pie] allocates angles to a sequence of
// weights, and [Arc] turns an allocated [ArcDatum] into a closed outline
// ([Path]) and a label anchor (centroid).
//
//	pie := shape.NewPie()
//	arcs := pie.Arcs([]float64{1, 1, 2})
//
//	gen := shape.Arc{InnerRadius: 50, OuterRadius: 100}
//	for _, a := range arcs {
//	    outline, ok := gen.Path(a)
//	    if !ok {
//	        continue // degenerate slice
//	    }
//	    fmt.Println(outline.String(), gen.Centroid(a))
//	}
//
// # Angles
//
// Chart angles are in radians, measured from 12 o'clock and increasing
// clockwise on a y-down canvas. Outlines are expressed relative to the chart
// center, so callers translate to the center before drawing.
//
// Angles stored in [Path] arc segments use the canvas convention instead:
// 0 points along +x and angles increase toward +y.
package shape
