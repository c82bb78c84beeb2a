package piechart

import (
	"math"

	"github.com/gogpu/piechart/shape"
)

// Layout computes one SliceGeometry per item, in input order.
//
// Slots partition [cfg.StartAngle, cfg.EndAngle] proportionally to the
// values with no sorting. cfg.PadAngle only narrows each outline inside its
// slot; spans and label anchors ignore it. Zero-value items and items
// swallowed by padding keep their slot but get a nil Outline. When the total is zero every
// outline is nil and the result still has len(items) entries.
//
// Layout is pure: equal inputs produce equal outputs.
func Layout(items []DataItem, cfg Config) ([]SliceGeometry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	values, err := weights(items, cfg.NegativeValues)
	if err != nil {
		Logger().Warn("piechart: layout rejected", "error", err)
		return nil, err
	}

	var total float64
	for _, v := range values {
		total += v
	}

	pie := shape.Pie{
		StartAngle: cfg.StartAngle,
		EndAngle:   cfg.EndAngle,
	}
	arc := shape.Arc{
		InnerRadius: cfg.InnerRadius,
		OuterRadius: cfg.OuterRadius,
	}

	arcs := pie.Arcs(values)
	slices := make([]SliceGeometry, len(arcs))
	degenerate := 0
	for i, a := range arcs {
		a.PadAngle = cfg.PadAngle
		s := SliceGeometry{
			Index:       i,
			Item:        items[i],
			StartAngle:  a.StartAngle,
			EndAngle:    a.EndAngle,
			PadAngle:    a.PadAngle,
			LabelAnchor: arc.Centroid(a),
		}
		if total > 0 {
			s.Share = values[i] / total
			if outline, ok := arc.Path(a); ok {
				s.Outline = outline
			}
		}
		if s.Degenerate() {
			degenerate++
			Logger().Debug("piechart: degenerate slice", "index", i, "label", s.Item.Label, "value", s.Item.Value)
		}
		slices[i] = s
	}

	Logger().Debug("piechart: layout",
		"items", len(items),
		"total", total,
		"degenerate", degenerate,
		"inner", cfg.InnerRadius,
		"outer", cfg.OuterRadius)
	return slices, nil
}

// weights maps items to the non-negative values the pie is built from.
// Every item must carry a label.
func weights(items []DataItem, policy NegativePolicy) ([]float64, error) {
	values := make([]float64, len(items))
	for i, it := range items {
		v := it.Value
		switch {
		case it.Label == "":
			return nil, &ValueError{Index: i, Value: v, Err: ErrEmptyLabel}
		case math.IsNaN(v) || math.IsInf(v, 0):
			return nil, &ValueError{Index: i, Label: it.Label, Value: v, Err: ErrInvalidValue}
		case v < 0 && policy == ClampNegative:
			v = 0
		case v < 0:
			return nil, &ValueError{Index: i, Label: it.Label, Value: v, Err: ErrNegativeValue}
		}
		values[i] = v
	}
	return values, nil
}
