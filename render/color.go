package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// RGB8 returns the color channels scaled to 0..255.
func RGB8(c gg.RGBA) (r, g, b uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}

// Hex formats the color as #rrggbb, ignoring alpha.
func Hex(c gg.RGBA) string {
	r, g, b := RGB8(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
