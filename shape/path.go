package shape

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

const (
	tau     = 2 * math.Pi
	halfPi  = math.Pi / 2
	epsilon = 1e-12

	tauEpsilon = tau - epsilon
)

// Op identifies the kind of a path segment.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpArc
	OpClose
)

// String returns the SVG command letter for the op.
func (o Op) String() string {
	switch o {
	case OpMoveTo:
		return "M"
	case OpLineTo:
		return "L"
	case OpArc:
		return "A"
	case OpClose:
		return "Z"
	default:
		return "?"
	}
}

// Segment is a single path command.
//
// For OpMoveTo and OpLineTo, (X, Y) is the target point. For OpArc, (X, Y)
// is the arc center, R the radius and A0..A1 the sweep in canvas angles;
// CCW reverses the sweep direction. OpClose ignores all fields.
type Segment struct {
	Op     Op
	X, Y   float64
	R      float64
	A0, A1 float64
	CCW    bool
}

// Path is an ordered list of segments describing one closed outline.
// The zero value is an empty path ready to use.
type Path []Segment

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Segment{Op: OpMoveTo, X: x, Y: y})
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Segment{Op: OpLineTo, X: x, Y: y})
}

// Arc adds a circular arc around (cx, cy). If the path has a current point
// that differs from the arc's start, a connecting line is implied.
func (p *Path) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	*p = append(*p, Segment{Op: OpArc, X: cx, Y: cy, R: r, A0: a0, A1: a1, CCW: ccw})
}

// Close closes the current subpath.
func (p *Path) Close() {
	*p = append(*p, Segment{Op: OpClose})
}

// Visitor receives a path flattened to lines and cubic Béziers.
// *gg.Context satisfies it directly.
type Visitor interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Walk replays the path into v. Arcs are split into cubic segments of at
// most 90 degrees each.
func (p Path) Walk(v Visitor) {
	var (
		cur, start gg.Point
		has        bool
	)
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			v.MoveTo(s.X, s.Y)
			cur, start, has = gg.Pt(s.X, s.Y), gg.Pt(s.X, s.Y), true
		case OpLineTo:
			v.LineTo(s.X, s.Y)
			cur, has = gg.Pt(s.X, s.Y), true
		case OpArc:
			p0 := arcPoint(s, s.A0)
			if !has {
				v.MoveTo(p0.X, p0.Y)
				start = p0
			} else if !near(cur, p0) {
				v.LineTo(p0.X, p0.Y)
			}
			cur, has = p0, true
			if s.R == 0 {
				continue
			}
			da, ok := sweep(s)
			if !ok {
				continue
			}
			if s.CCW {
				da = -da
			}
			cur = cubicArc(v, s.X, s.Y, s.R, s.A0, da)
		case OpClose:
			if has {
				v.ClosePath()
				cur = start
			}
		}
	}
}

// GG converts the path to a gg.Path, for filling or hit testing.
func (p Path) GG() *gg.Path {
	gp := gg.NewPath()
	p.Walk(ggPath{gp})
	return gp
}

// Contains reports whether (x, y) lies inside the outline (non-zero rule).
func (p Path) Contains(x, y float64) bool {
	if len(p) == 0 {
		return false
	}
	return p.GG().Contains(gg.Pt(x, y))
}

// String renders the path as SVG path data. Coordinates are rounded to six
// decimals.
func (p Path) String() string {
	var (
		b          strings.Builder
		cur, start gg.Point
		has        bool
	)
	cmd := func(op string, vals ...float64) {
		b.WriteString(op)
		for i, v := range vals {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatFloat(v))
		}
	}
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			cmd("M", s.X, s.Y)
			cur, start, has = gg.Pt(s.X, s.Y), gg.Pt(s.X, s.Y), true
		case OpLineTo:
			cmd("L", s.X, s.Y)
			cur, has = gg.Pt(s.X, s.Y), true
		case OpArc:
			p0 := arcPoint(s, s.A0)
			if !has {
				cmd("M", p0.X, p0.Y)
				start = p0
			} else if !near(cur, p0) {
				cmd("L", p0.X, p0.Y)
			}
			cur, has = p0, true
			if s.R == 0 {
				continue
			}
			da, ok := sweep(s)
			if !ok {
				continue
			}
			cw := 1.0
			if s.CCW {
				cw = 0
			}
			if da > tauEpsilon {
				// Two half circles; a single SVG arc cannot describe a full turn.
				opp := gg.Pt(2*s.X-p0.X, 2*s.Y-p0.Y)
				cmd("A", s.R, s.R, 0, 1, cw, opp.X, opp.Y)
				cmd("A", s.R, s.R, 0, 1, cw, p0.X, p0.Y)
				continue
			}
			large := 0.0
			if da >= math.Pi {
				large = 1
			}
			end := arcPoint(s, s.A1)
			cmd("A", s.R, s.R, 0, large, cw, end.X, end.Y)
			cur = end
		case OpClose:
			if has {
				b.WriteByte('Z')
				cur = start
			}
		}
	}
	return b.String()
}

type ggPath struct{ *gg.Path }

func (g ggPath) ClosePath() { g.Close() }

func arcPoint(s Segment, a float64) gg.Point {
	return gg.Pt(s.X+s.R*math.Cos(a), s.Y+s.R*math.Sin(a))
}

// sweep returns the positive angular extent of an arc segment in its own
// direction, normalized to (0, tau]. The second result is false when the
// arc is too short to draw.
func sweep(s Segment) (float64, bool) {
	da := s.A1 - s.A0
	if s.CCW {
		da = s.A0 - s.A1
	}
	if da < 0 {
		da = math.Mod(da, tau) + tau
	}
	if da > tauEpsilon {
		return tau, true
	}
	return da, da > epsilon
}

// cubicArc emits cubic Béziers for a signed sweep da starting at a0 and
// returns the end point.
func cubicArc(v Visitor, cx, cy, r, a0, da float64) gg.Point {
	n := int(math.Ceil(math.Abs(da) / halfPi))
	if n < 1 {
		n = 1
	}
	step := da / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	var end gg.Point
	for i := 0; i < n; i++ {
		t0 := a0 + float64(i)*step
		t1 := t0 + step
		s0, c0 := math.Sincos(t0)
		s1, c1 := math.Sincos(t1)
		end = gg.Pt(cx+r*c1, cy+r*s1)
		v.CubicTo(
			cx+r*(c0-k*s0), cy+r*(s0+k*c0),
			cx+r*(c1+k*s1), cy+r*(s1-k*c1),
			end.X, end.Y,
		)
	}
	return end
}

func near(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

func formatFloat(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
