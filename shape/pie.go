package shape

import "math"

// ArcDatum is the angular allocation of one input weight.
type ArcDatum struct {
	// Index is the position of the weight in the input sequence.
	Index int
	// Value is the input weight as given.
	Value float64
	// StartAngle and EndAngle bound the slot.
	StartAngle float64
	EndAngle   float64
	// PadAngle is the gap the arc generator cuts out of the slot. Pie
	// leaves it zero.
	PadAngle float64
}

// Span returns the angular extent of the slot, padding included.
func (d ArcDatum) Span() float64 {
	return d.EndAngle - d.StartAngle
}

// Pie allocates angles proportionally to a sequence of weights, in input
// order. Non-positive weights receive an empty slot.
type Pie struct {
	StartAngle float64
	EndAngle   float64
}

// NewPie returns a pie covering the full circle.
func NewPie() Pie {
	return Pie{EndAngle: tau}
}

// Arcs returns one ArcDatum per weight, indexed like values.
func (p Pie) Arcs(values []float64) []ArcDatum {
	arcs := make([]ArcDatum, len(values))
	if len(values) == 0 {
		return arcs
	}

	var sum float64
	for _, v := range values {
		if v > 0 {
			sum += v
		}
	}

	a0 := p.StartAngle
	da := math.Min(tau, math.Max(-tau, p.EndAngle-a0))
	var k float64
	if sum > 0 {
		k = da / sum
	}

	for i, v := range values {
		a1 := a0
		if v > 0 {
			a1 += v * k
		}
		arcs[i] = ArcDatum{Index: i, Value: v, StartAngle: a0, EndAngle: a1}
		a0 = a1
	}
	return arcs
}
