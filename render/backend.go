package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/piechart/shape"
)

// TextStyle describes how a label is drawn.
type TextStyle struct {
	Size   float64
	Fill   gg.RGBA
	Anchor Anchor
}

// Backend is the interface that all output backends implement.
//
// A Backend keeps its own translation stack for PushTranslate/Pop. Errors
// raised while drawing are retained and reported by End.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using render.Register()
//  2. Accept every call between Begin and End, even if it ignores some
//  3. Report the first drawing failure from End
type Backend interface {
	// Begin prepares a drawing surface of the given size.
	Begin(width, height float64) error

	// End finalizes the output. Output methods may be used afterwards.
	End() error

	// PushTranslate offsets subsequent drawing by (x, y) until Pop.
	PushTranslate(x, y float64)

	// Pop restores the offset saved by the matching PushTranslate.
	// Without one it is a no-op.
	Pop()

	// FillPath fills the outline with a solid color.
	FillPath(p shape.Path, fill gg.RGBA)

	// DrawText draws s anchored at (x, y).
	DrawText(s string, x, y float64, style TextStyle)
}

// WriterBackend extends Backend with serialization of the finished output.
type WriterBackend interface {
	Backend

	// WriteTo writes the output. It must only be called after End.
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to rasterized pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End.
	Image() image.Image
}
