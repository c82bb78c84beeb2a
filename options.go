package piechart

import "github.com/gogpu/gg"

// Option configures a Config during creation.
//
// Example:
//
//	// Full pie filling a 400×300 canvas
//	cfg, err := piechart.NewConfig(400, 300)
//
//	// Donut with 0.02 rad gaps
//	cfg, err := piechart.NewConfig(400, 300,
//	    piechart.WithInnerRadius(60),
//	    piechart.WithPadAngle(0.02))
type Option func(*configOptions)

// configOptions holds optional configuration for Config creation.
type configOptions struct {
	innerRadius float64
	outerRadius float64
	hasOuter    bool
	padAngle    float64
	startAngle  float64
	endAngle    float64
	negative    NegativePolicy
}

// defaultOptions returns the default config options.
func defaultOptions() configOptions {
	return configOptions{
		endAngle: fullTurn,
		negative: RejectNegative,
	}
}

// WithInnerRadius sets the inner radius. Zero draws a pie, positive values
// draw a donut.
func WithInnerRadius(r float64) Option {
	return func(o *configOptions) {
		o.innerRadius = r
	}
}

// WithOuterRadius sets the outer radius. Defaults to half the smaller
// canvas dimension.
func WithOuterRadius(r float64) Option {
	return func(o *configOptions) {
		o.outerRadius = r
		o.hasOuter = true
	}
}

// WithPadAngle sets the angular gap between adjacent slices in radians.
func WithPadAngle(a float64) Option {
	return func(o *configOptions) {
		o.padAngle = a
	}
}

// WithAngles sets the start and end angles in radians, measured clockwise
// from 12 o'clock. The default is a full turn starting at 12 o'clock.
func WithAngles(start, end float64) Option {
	return func(o *configOptions) {
		o.startAngle = start
		o.endAngle = end
	}
}

// WithNegativeValues selects how negative item values are treated.
func WithNegativeValues(p NegativePolicy) Option {
	return func(o *configOptions) {
		o.negative = p
	}
}

// ViewOption configures a View during creation.
//
// Example:
//
//	v, err := piechart.NewView(items, cfg,
//	    piechart.WithMode(piechart.Interactive),
//	    piechart.WithLabelFormat(piechart.PercentLabel(language.English)))
type ViewOption func(*View)

// WithMode selects static or interactive labelling. Default: Static.
func WithMode(m Mode) ViewOption {
	return func(v *View) {
		v.mode = m
	}
}

// WithPalette sets the slice colors. An empty palette selects Category10.
func WithPalette(p Palette) ViewOption {
	return func(v *View) {
		v.palette = p
	}
}

// WithLabelFormat sets the function producing label text.
// Default: PlainLabel.
func WithLabelFormat(f LabelFormat) ViewOption {
	return func(v *View) {
		if f != nil {
			v.format = f
		}
	}
}

// WithFontSize sets the label font size. Default: 12.
func WithFontSize(size float64) ViewOption {
	return func(v *View) {
		if size > 0 {
			v.fontSize = size
		}
	}
}

// WithLabelColor sets the label fill. Default: white.
func WithLabelColor(c gg.RGBA) ViewOption {
	return func(v *View) {
		v.labelColor = c
	}
}
