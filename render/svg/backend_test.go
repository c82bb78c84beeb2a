package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/piechart/render"
	"github.com/gogpu/piechart/shape"
)

func testScene() *render.Canvas {
	var sq shape.Path
	sq.MoveTo(0, 0)
	sq.LineTo(1, 0)
	sq.LineTo(1, 1)
	sq.Close()

	return &render.Canvas{
		Width:  200,
		Height: 100,
		Children: []render.Node{
			&render.Group{X: 100, Y: 50, Children: []render.Node{
				&render.Shape{Outline: sq, Fill: gg.Hex("#1f77b4")},
				&render.Label{X: 3, Y: 4, Text: "A&B", FontSize: 12, Fill: gg.White},
			}},
		},
	}
}

func TestBackendRegistration(t *testing.T) {
	if !render.IsRegistered("svg") {
		t.Fatal("svg backend not registered")
	}
	b, err := render.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("backend is %T, want *svg.Backend", b)
	}
}

func TestBackendOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Encode(&buf, testScene(), "svg"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := strings.Join([]string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">`,
		`  <g transform="translate(100,50)">`,
		`    <path d="M0,0L1,0L1,1Z" fill="#1f77b4"/>`,
		`    <text x="3" y="4" text-anchor="middle" dominant-baseline="central" font-size="12" fill="#ffffff">A&amp;B</text>`,
		`  </g>`,
		`</svg>`,
		``,
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestBackendTranslucentFill(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(10, 10)
	var p shape.Path
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	b.FillPath(p, gg.RGBA2(1, 0, 0, 0.5))
	if err := b.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if !strings.Contains(string(b.Bytes()), `fill="#ff0000" fill-opacity="0.5"`) {
		t.Errorf("missing opacity attribute in %s", b.Bytes())
	}
}

func TestBackendClosesOpenGroups(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(10, 10)
	b.PushTranslate(1, 1)
	b.PushTranslate(2, 2)
	b.Pop()
	b.Pop()
	b.Pop() // unbalanced, ignored
	b.PushTranslate(3, 3)
	if err := b.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	out := string(b.Bytes())
	if open, closed := strings.Count(out, "<g "), strings.Count(out, "</g>"); open != closed {
		t.Errorf("unbalanced groups: %d open, %d closed\n%s", open, closed, out)
	}
}

func TestWriteToBeforeEnd(t *testing.T) {
	b := NewBackend()
	_ = b.Begin(10, 10)
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); !errors.Is(err, ErrNotFinished) {
		t.Errorf("WriteTo() error = %v, want ErrNotFinished", err)
	}
}
