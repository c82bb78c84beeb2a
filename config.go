package piechart

import (
	"fmt"
	"math"
)

const fullTurn = 2 * math.Pi

// NegativePolicy selects how Layout treats negative item values.
type NegativePolicy uint8

const (
	// RejectNegative fails Layout with ErrNegativeValue.
	RejectNegative NegativePolicy = iota
	// ClampNegative lays the item out as zero.
	ClampNegative
)

// String returns the policy name.
func (p NegativePolicy) String() string {
	switch p {
	case RejectNegative:
		return "reject"
	case ClampNegative:
		return "clamp"
	default:
		return fmt.Sprintf("NegativePolicy(%d)", uint8(p))
	}
}

// ParseNegativePolicy parses "reject" or "clamp".
func ParseNegativePolicy(s string) (NegativePolicy, error) {
	switch s {
	case "", "reject":
		return RejectNegative, nil
	case "clamp":
		return ClampNegative, nil
	}
	return 0, fmt.Errorf("piechart: unknown negative value policy %q", s)
}

// Config holds the canvas size and the radii and angles of the chart.
// The chart is centered at (Width/2, Height/2).
type Config struct {
	Width       float64
	Height      float64
	InnerRadius float64
	OuterRadius float64
	PadAngle    float64
	StartAngle  float64
	EndAngle    float64

	NegativeValues NegativePolicy
}

// NewConfig returns a validated Config for a width×height canvas.
func NewConfig(width, height float64, opts ...Option) (Config, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Config{
		Width:          width,
		Height:         height,
		InnerRadius:    o.innerRadius,
		OuterRadius:    math.Min(width, height) / 2,
		PadAngle:       o.padAngle,
		StartAngle:     o.startAngle,
		EndAngle:       o.endAngle,
		NegativeValues: o.negative,
	}
	if o.hasOuter {
		cfg.OuterRadius = o.outerRadius
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first field that violates its precondition as a
// *ConfigError.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"innerRadius", c.InnerRadius},
		{"outerRadius", c.OuterRadius},
		{"padAngle", c.PadAngle},
		{"startAngle", c.StartAngle},
		{"endAngle", c.EndAngle},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigError{Field: f.name, Value: f.v, Reason: "is not finite"}
		}
	}

	switch {
	case c.Width <= 0:
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be positive"}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Value: c.Height, Reason: "must be positive"}
	case c.InnerRadius < 0:
		return &ConfigError{Field: "innerRadius", Value: c.InnerRadius, Reason: "must not be negative"}
	case c.OuterRadius <= 0:
		return &ConfigError{Field: "outerRadius", Value: c.OuterRadius, Reason: "must be positive"}
	case c.InnerRadius >= c.OuterRadius:
		return &ConfigError{
			Field:  "innerRadius",
			Value:  c.InnerRadius,
			Reason: fmt.Sprintf("must be less than outerRadius %v", c.OuterRadius),
		}
	case c.PadAngle < 0:
		return &ConfigError{Field: "padAngle", Value: c.PadAngle, Reason: "must not be negative"}
	case c.NegativeValues > ClampNegative:
		return &ConfigError{Field: "negativeValues", Value: float64(c.NegativeValues), Reason: "is not a known policy"}
	}
	return nil
}

// Center returns the chart center in canvas coordinates.
func (c Config) Center() (x, y float64) {
	return c.Width / 2, c.Height / 2
}
