// Package raster provides a PNG backend for render scenes.
// It draws through gg.Context using gg's software renderer.
//
// Labels use the Go Regular font unless a font source is supplied with
// [WithFontSource].
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/piechart/render/raster"
//
//	// Create via registry
//	backend, _ := render.NewBackend("png")
//
//	// Or create directly
//	backend := raster.NewBackend(raster.WithBackground(gg.White))
//
//	scene.Playback(backend)
//	img := backend.Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/piechart/render"
	"github.com/gogpu/piechart/shape"
)

func init() {
	render.Register("png", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// defaultSource loads the embedded Go Regular font once per process.
var defaultSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Option configures a Backend.
type Option func(*Backend)

// WithBackground fills the canvas with c before drawing.
func WithBackground(c gg.RGBA) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// WithFontSource sets the font used for labels.
func WithFontSource(src *text.FontSource) Option {
	return func(b *Backend) {
		b.source = src
	}
}

// Backend renders scenes to pixels.
type Backend struct {
	dc         *gg.Context
	background gg.RGBA
	source     *text.FontSource
	faces      map[float64]text.Face
	offsets    []gg.Point
	err        error
}

var (
	_ render.WriterBackend = (*Backend)(nil)
	_ render.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{background: gg.Transparent}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates a pixel buffer covering width×height, rounded up.
func (b *Backend) Begin(width, height float64) error {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: invalid size %vx%v", width, height)
	}
	b.dc = gg.NewContext(w, h)
	b.offsets = b.offsets[:0]
	b.err = nil
	if b.background.A > 0 {
		b.dc.ClearWithColor(b.background)
	}
	return nil
}

// End reports the first drawing error, if any.
func (b *Backend) End() error {
	if b.dc == nil {
		return ErrNotStarted
	}
	for len(b.offsets) > 0 {
		b.Pop()
	}
	return b.err
}

// PushTranslate offsets subsequent drawing by (x, y).
func (b *Backend) PushTranslate(x, y float64) {
	b.dc.Push()
	b.dc.Translate(x, y)
	b.offsets = append(b.offsets, b.offset().Add(gg.Pt(x, y)))
}

// Pop restores the previous offset.
func (b *Backend) Pop() {
	if len(b.offsets) == 0 {
		return
	}
	b.dc.Pop()
	b.offsets = b.offsets[:len(b.offsets)-1]
}

// FillPath fills the outline with a solid color.
func (b *Backend) FillPath(p shape.Path, fill gg.RGBA) {
	b.dc.ClearPath()
	b.dc.SetColor(fill)
	p.Walk(b.dc)
	if err := b.dc.Fill(); err != nil && b.err == nil {
		b.err = fmt.Errorf("raster: fill: %w", err)
	}
}

// DrawText draws s anchored at (x, y) relative to the current offset.
func (b *Backend) DrawText(s string, x, y float64, style render.TextStyle) {
	face, err := b.face(style.Size)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return
	}

	// Labels are placed in device space with an identity matrix.
	at := b.offset().Add(gg.Pt(x, y))
	b.dc.Push()
	b.dc.Identity()
	b.dc.SetFont(face)
	b.dc.SetColor(style.Fill)
	b.dc.DrawStringAnchored(s, at.X, at.Y, style.Anchor.Fraction(), 0.5)
	b.dc.Pop()
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.dc == nil {
		return nil
	}
	return b.dc.Image()
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	img := b.Image()
	if img == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, img)
	return cw.n, err
}

// SavePNG writes the image to a PNG file.
func (b *Backend) SavePNG(path string) error {
	if b.dc == nil {
		return ErrNotStarted
	}
	return b.dc.SavePNG(path)
}

func (b *Backend) offset() gg.Point {
	if len(b.offsets) == 0 {
		return gg.Point{}
	}
	return b.offsets[len(b.offsets)-1]
}

func (b *Backend) face(size float64) (text.Face, error) {
	if f, ok := b.faces[size]; ok {
		return f, nil
	}
	if b.source == nil {
		src, err := defaultSource()
		if err != nil {
			return nil, fmt.Errorf("raster: load default font: %w", err)
		}
		b.source = src
	}
	if b.faces == nil {
		b.faces = make(map[float64]text.Face)
	}
	f := b.source.Face(size)
	b.faces[size] = f
	return f, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
