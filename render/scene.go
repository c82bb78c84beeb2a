package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/piechart/shape"
)

// ErrInvalidCanvas is returned when a canvas has non-positive dimensions.
var ErrInvalidCanvas = errors.New("render: invalid canvas dimensions")

// Node is an element of the scene tree: *Group, *Shape or *Label.
type Node interface {
	node()
}

// Anchor is the horizontal alignment of a label relative to its position.
type Anchor uint8

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "middle"
	}
}

// Fraction returns the share of the text width that lies left of the anchor.
func (a Anchor) Fraction() float64 {
	switch a {
	case AnchorStart:
		return 0
	case AnchorEnd:
		return 1
	default:
		return 0.5
	}
}

// Canvas is the root of a scene.
type Canvas struct {
	Width, Height float64
	Children      []Node
}

// Group offsets its children by (X, Y).
type Group struct {
	X, Y     float64
	Children []Node
}

// Shape is a filled outline. Key identifies the data item it represents.
type Shape struct {
	Key     int
	Outline shape.Path
	Fill    gg.RGBA
}

// Label is a single line of text whose baseline is vertically centered on
// (X, Y).
type Label struct {
	Key      int
	X, Y     float64
	Text     string
	FontSize float64
	Fill     gg.RGBA
	Anchor   Anchor
}

func (*Group) node() {}
func (*Shape) node() {}
func (*Label) node() {}

// Playback walks the tree into b, calling Begin first and End last.
func (c *Canvas) Playback(b Backend) error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidCanvas, c.Width, c.Height)
	}
	if err := b.Begin(c.Width, c.Height); err != nil {
		return err
	}
	playback(b, c.Children)
	return b.End()
}

func playback(b Backend, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Group:
			b.PushTranslate(n.X, n.Y)
			playback(b, n.Children)
			b.Pop()
		case *Shape:
			if len(n.Outline) == 0 {
				continue
			}
			b.FillPath(n.Outline, n.Fill)
		case *Label:
			if n.Text == "" {
				continue
			}
			b.DrawText(n.Text, n.X, n.Y, TextStyle{Size: n.FontSize, Fill: n.Fill, Anchor: n.Anchor})
		}
	}
}

// Walk calls fn for every node in depth-first order.
func (c *Canvas) Walk(fn func(Node)) {
	walk(c.Children, fn)
}

func walk(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		if g, ok := n.(*Group); ok {
			walk(g.Children, fn)
		}
	}
}

// Labels returns all labels in the scene in drawing order.
func (c *Canvas) Labels() []*Label {
	var out []*Label
	c.Walk(func(n Node) {
		if l, ok := n.(*Label); ok {
			out = append(out, l)
		}
	})
	return out
}

// Shapes returns all shapes in the scene in drawing order.
func (c *Canvas) Shapes() []*Shape {
	var out []*Shape
	c.Walk(func(n Node) {
		if s, ok := n.(*Shape); ok {
			out = append(out, s)
		}
	})
	return out
}
