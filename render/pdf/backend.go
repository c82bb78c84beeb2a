// Package pdf provides a single-page PDF backend for render scenes.
//
// Units are points; one scene unit maps to one point and the page matches
// the canvas size. Labels use the built-in Helvetica font so that no font
// embedding is needed.
//
// # Example
//
//	import _ "github.com/gogpu/piechart/render/pdf" // registers "pdf"
//
//	f, _ := os.Create("chart.pdf")
//	defer f.Close()
//	err := render.Encode(f, scene, "pdf")
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/gg"
	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/piechart/render"
	"github.com/gogpu/piechart/shape"
)

func init() {
	render.Register("pdf", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotFinished is returned by WriteTo before End has been called.
var ErrNotFinished = errors.New("pdf: output not finished")

// Backend renders scenes into a PDF document.
type Backend struct {
	doc     *gofpdf.Fpdf
	tr      func(string) string
	offsets []gg.Point
	out     bytes.Buffer
	done    bool
	created time.Time
}

var _ render.WriterBackend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithCreationDate fixes the document creation date, making output
// reproducible.
func WithCreationDate(t time.Time) Option {
	return func(b *Backend) {
		b.created = t
	}
}

// NewBackend creates a new PDF backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a document with one page of width×height points.
func (b *Backend) Begin(width, height float64) error {
	size := gofpdf.SizeType{Wd: width, Ht: height}
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    size,
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.SetCreator("piechart", false)
	if !b.created.IsZero() {
		doc.SetCreationDate(b.created)
		doc.SetCatalogSort(true)
	}
	doc.AddPageFormat("", size)
	doc.SetFont("Helvetica", "", 12)

	b.doc = doc
	b.tr = doc.UnicodeTranslatorFromDescriptor("")
	b.offsets = b.offsets[:0]
	b.out.Reset()
	b.done = false
	return doc.Error()
}

// End serializes the document.
func (b *Backend) End() error {
	if b.doc == nil {
		return errors.New("pdf: backend not started")
	}
	if err := b.doc.Output(&b.out); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	b.done = true
	return nil
}

// PushTranslate offsets subsequent drawing by (x, y).
func (b *Backend) PushTranslate(x, y float64) {
	b.offsets = append(b.offsets, b.offset().Add(gg.Pt(x, y)))
}

// Pop restores the previous offset.
func (b *Backend) Pop() {
	if len(b.offsets) == 0 {
		return
	}
	b.offsets = b.offsets[:len(b.offsets)-1]
}

// FillPath fills the outline with a solid color.
func (b *Backend) FillPath(p shape.Path, fill gg.RGBA) {
	r, g, bl := render.RGB8(fill)
	b.doc.SetFillColor(int(r), int(g), int(bl))
	if fill.A < 1 {
		b.doc.SetAlpha(fill.A, "Normal")
		defer b.doc.SetAlpha(1, "Normal")
	}
	p.Walk(&pathWriter{doc: b.doc, off: b.offset()})
	b.doc.DrawPath("F")
}

// DrawText draws s anchored at (x, y), vertically centered on the cap height.
func (b *Backend) DrawText(s string, x, y float64, style render.TextStyle) {
	r, g, bl := render.RGB8(style.Fill)
	b.doc.SetTextColor(int(r), int(g), int(bl))
	b.doc.SetFontSize(style.Size)

	s = b.tr(s)
	at := b.offset().Add(gg.Pt(x, y))
	w := b.doc.GetStringWidth(s)
	// Helvetica cap height is about 0.72 em.
	b.doc.Text(at.X-w*style.Anchor.Fraction(), at.Y+style.Size*0.36, s)
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.out.Bytes())
	return int64(n), err
}

func (b *Backend) offset() gg.Point {
	if len(b.offsets) == 0 {
		return gg.Point{}
	}
	return b.offsets[len(b.offsets)-1]
}

// pathWriter adapts gofpdf's path operators to shape.Visitor.
type pathWriter struct {
	doc *gofpdf.Fpdf
	off gg.Point
}

func (w *pathWriter) MoveTo(x, y float64) {
	w.doc.MoveTo(x+w.off.X, y+w.off.Y)
}

func (w *pathWriter) LineTo(x, y float64) {
	w.doc.LineTo(x+w.off.X, y+w.off.Y)
}

func (w *pathWriter) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	o := w.off
	w.doc.CurveBezierCubicTo(c1x+o.X, c1y+o.Y, c2x+o.X, c2y+o.Y, x+o.X, y+o.Y)
}

func (w *pathWriter) ClosePath() {
	w.doc.ClosePath()
}
