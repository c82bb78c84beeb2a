// Package svg provides an SVG backend for render scenes.
//
// The backend writes SVG 1.1 markup directly: one <g> per translated group,
// one <path> per filled outline and one <text> per label.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/piechart/render/svg"
//
//	var buf bytes.Buffer
//	err := render.Encode(&buf, scene, "svg")
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/gogpu/piechart/render"
	"github.com/gogpu/piechart/shape"
)

func init() {
	render.Register("svg", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotFinished is returned by WriteTo before End has been called.
var ErrNotFinished = errors.New("svg: output not finished")

// Backend renders scenes to SVG markup.
type Backend struct {
	buf    bytes.Buffer
	depth  int
	indent int
	done   bool
	err    error
}

var _ render.WriterBackend = (*Backend)(nil)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height float64) error {
	b.buf.Reset()
	b.depth, b.indent, b.done, b.err = 0, 0, false, nil

	w, h := num(width), num(height)
	b.line(`<svg xmlns="http://www.w3.org/2000/svg" width="` + w + `" height="` + h +
		`" viewBox="0 0 ` + w + ` ` + h + `">`)
	b.indent++
	return nil
}

// End closes any open groups and the document.
func (b *Backend) End() error {
	for b.depth > 0 {
		b.Pop()
	}
	b.indent = 0
	b.line("</svg>")
	b.done = true
	return b.err
}

// PushTranslate opens a translated group.
func (b *Backend) PushTranslate(x, y float64) {
	b.line(`<g transform="translate(` + num(x) + `,` + num(y) + `)">`)
	b.depth++
	b.indent++
}

// Pop closes the innermost group.
func (b *Backend) Pop() {
	if b.depth == 0 {
		return
	}
	b.depth--
	b.indent--
	b.line("</g>")
}

// FillPath writes a filled <path>.
func (b *Backend) FillPath(p shape.Path, fill gg.RGBA) {
	b.line(`<path d="` + p.String() + `"` + paint("fill", fill) + `/>`)
}

// DrawText writes a <text> element centered vertically on (x, y).
func (b *Backend) DrawText(s string, x, y float64, style render.TextStyle) {
	var esc bytes.Buffer
	if err := xml.EscapeText(&esc, []byte(s)); err != nil && b.err == nil {
		b.err = err
		return
	}
	b.line(`<text x="` + num(x) + `" y="` + num(y) +
		`" text-anchor="` + style.Anchor.String() +
		`" dominant-baseline="central" font-size="` + num(style.Size) + `"` +
		paint("fill", style.Fill) + `>` + esc.String() + `</text>`)
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// Bytes returns the finished document.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *Backend) line(s string) {
	for i := 0; i < b.indent; i++ {
		b.buf.WriteString("  ")
	}
	b.buf.WriteString(s)
	b.buf.WriteByte('\n')
}

func paint(attr string, c gg.RGBA) string {
	s := ` ` + attr + `="` + render.Hex(c) + `"`
	if c.A < 1 {
		s += ` ` + attr + `-opacity="` + num(c.A) + `"`
	}
	return s
}

func num(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
