package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// Arc generates slice outlines and centroids.
//
// An InnerRadius of zero produces wedges; a positive InnerRadius produces
// annulus sectors. PadRadius sets the radius at which the pad gap is a
// constant linear width; zero means sqrt(InnerRadius² + OuterRadius²).
type Arc struct {
	InnerRadius float64
	OuterRadius float64
	PadRadius   float64
}

// Path returns the closed outline of d relative to the chart center.
// It returns false when the slice has no drawable area: a zero outer
// radius, or an outer span that padding reduces to nothing.
func (g Arc) Path(d ArcDatum) (Path, bool) {
	r0, r1 := g.InnerRadius, g.OuterRadius
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	if !(r1 > epsilon) {
		return nil, false
	}

	a0 := d.StartAngle - halfPi
	a1 := d.EndAngle - halfPi
	da := math.Abs(a1 - a0)
	cw := a1 > a0

	var p Path

	// Full circle or annulus.
	if da > tauEpsilon {
		p.MoveTo(r1*math.Cos(a0), r1*math.Sin(a0))
		p.Arc(0, 0, r1, a0, a1, !cw)
		if r0 > epsilon {
			p.MoveTo(r0*math.Cos(a1), r0*math.Sin(a1))
			p.Arc(0, 0, r0, a1, a0, cw)
		}
		p.Close()
		return p, true
	}

	a01, a11 := a0, a1 // outer arc
	a00, a10 := a0, a1 // inner arc
	da0, da1 := da, da

	if ap := d.PadAngle / 2; ap > epsilon {
		rp := g.PadRadius
		if rp <= 0 {
			rp = math.Sqrt(r0*r0 + r1*r1)
		}
		if rp > epsilon {
			dir := 1.0
			if !cw {
				dir = -1
			}
			p0 := asin(rp / r0 * math.Sin(ap))
			if da0 -= 2 * p0; da0 > epsilon {
				a00 += dir * p0
				a10 -= dir * p0
			} else {
				da0 = 0
				a00 = (a0 + a1) / 2
				a10 = a00
			}
			p1 := asin(rp / r1 * math.Sin(ap))
			if da1 -= 2 * p1; da1 > epsilon {
				a01 += dir * p1
				a11 -= dir * p1
			} else {
				da1 = 0
				a01 = (a0 + a1) / 2
				a11 = a01
			}
		}
	}

	if !(da1 > epsilon) {
		return nil, false
	}

	p.MoveTo(r1*math.Cos(a01), r1*math.Sin(a01))
	p.Arc(0, 0, r1, a01, a11, !cw)

	if !(r0 > epsilon) || !(da0 > epsilon) {
		p.LineTo(r0*math.Cos(a10), r0*math.Sin(a10))
	} else {
		p.Arc(0, 0, r0, a10, a00, cw)
	}
	p.Close()
	return p, true
}

// Centroid returns the label anchor of d: the point at the mean radius on
// the bisector of the slot. Padding does not move it.
func (g Arc) Centroid(d ArcDatum) gg.Point {
	r := (g.InnerRadius + g.OuterRadius) / 2
	a := (d.StartAngle+d.EndAngle)/2 - halfPi
	return gg.Pt(math.Cos(a)*r, math.Sin(a)*r)
}

// asin clamps its argument so that divisions by a zero radius saturate at
// a quarter turn instead of producing NaN.
func asin(x float64) float64 {
	switch {
	case x >= 1:
		return halfPi
	case x <= -1:
		return -halfPi
	default:
		return math.Asin(x)
	}
}
