package piechart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrInvalidPalette is returned by ParsePalette for malformed colors.
var ErrInvalidPalette = errors.New("piechart: invalid palette")

// Palette is an ordered list of slice colors. Slice i is filled with
// Color(i), which wraps around when there are more slices than colors.
type Palette []gg.RGBA

// Category10 is the ten-color categorical scheme used by default.
var Category10 = Palette{
	gg.Hex("#1f77b4"),
	gg.Hex("#ff7f0e"),
	gg.Hex("#2ca02c"),
	gg.Hex("#d62728"),
	gg.Hex("#9467bd"),
	gg.Hex("#8c564b"),
	gg.Hex("#e377c2"),
	gg.Hex("#7f7f7f"),
	gg.Hex("#bcbd22"),
	gg.Hex("#17becf"),
}

// Color returns the color for slice i. An empty palette falls back to
// Category10.
func (p Palette) Color(i int) gg.RGBA {
	if len(p) == 0 {
		p = Category10
	}
	n := len(p)
	return p[((i%n)+n)%n]
}

// ParsePalette parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" colors.
// The leading '#' is optional.
func ParsePalette(colors ...string) (Palette, error) {
	p := make(Palette, 0, len(colors))
	for i, c := range colors {
		if !validHex(c) {
			return nil, fmt.Errorf("%w: color %d %q", ErrInvalidPalette, i, c)
		}
		p = append(p, gg.Hex(c))
	}
	return p, nil
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
