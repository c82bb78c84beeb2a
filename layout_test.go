package piechart

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tol = 1e-9

func mustConfig(t *testing.T, w, h float64, opts ...Option) Config {
	t.Helper()
	cfg, err := NewConfig(w, h, opts...)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	return cfg
}

func TestLayoutConcreteSpans(t *testing.T) {
	items := []DataItem{{"A", 1}, {"B", 1}, {"C", 2}}
	slices, err := Layout(items, mustConfig(t, 200, 200))
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(slices) != 3 {
		t.Fatalf("len(slices) = %d, want 3", len(slices))
	}

	wantDeg := []float64{90, 90, 180}
	wantStart := []float64{0, 90, 180}
	var sum float64
	for i, s := range slices {
		if s.Index != i || s.Item != items[i] {
			t.Errorf("slice %d = {Index: %d, Item: %+v}, want input order", i, s.Index, s.Item)
		}
		if got := Degrees(s.Span()); math.Abs(got-wantDeg[i]) > tol {
			t.Errorf("slice %d span = %v°, want %v°", i, got, wantDeg[i])
		}
		if got := Degrees(s.StartAngle); math.Abs(got-wantStart[i]) > tol {
			t.Errorf("slice %d start = %v°, want %v°", i, got, wantStart[i])
		}
		sum += s.Span()
	}
	if math.Abs(sum-2*math.Pi) > tol {
		t.Errorf("spans sum to %v, want 2π", sum)
	}
	if got := slices[2].Share; got != 0.5 {
		t.Errorf("C share = %v, want 0.5", got)
	}
}

func TestLayoutSpansSumToSweep(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		opts   []Option
	}{
		{"single", []float64{5}, nil},
		{"uneven", []float64{3, 0.5, 7, 11, 0.25}, nil},
		{"padded", []float64{1, 2, 3, 4}, []Option{WithPadAngle(0.05)}},
		{"half turn", []float64{1, 2, 3}, []Option{WithAngles(-math.Pi/2, math.Pi/2)}},
		{"with zero", []float64{1, 0, 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustConfig(t, 300, 300, tt.opts...)
			items := make([]DataItem, len(tt.values))
			for i, v := range tt.values {
				items[i] = DataItem{Label: strconv.Itoa(i), Value: v}
			}
			slices, err := Layout(items, cfg)
			if err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			var sum float64
			for i, s := range slices {
				if s.Span() < 0 {
					t.Errorf("slice %d span = %v, want >= 0", i, s.Span())
				}
				if i > 0 && math.Abs(s.StartAngle-slices[i-1].EndAngle) > tol {
					t.Errorf("slice %d starts at %v, previous ends at %v", i, s.StartAngle, slices[i-1].EndAngle)
				}
				sum += s.Span()
			}
			if want := cfg.EndAngle - cfg.StartAngle; math.Abs(sum-want) > tol {
				t.Errorf("spans sum to %v, want %v", sum, want)
			}
		})
	}
}

func TestLayoutProportionalWithoutPadding(t *testing.T) {
	values := []float64{2, 3, 5}
	items := []DataItem{{"x", 2}, {"y", 3}, {"z", 5}}
	slices, err := Layout(items, mustConfig(t, 100, 100))
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range slices {
		want := values[i] / 10 * 2 * math.Pi
		if math.Abs(s.Span()-want) > tol {
			t.Errorf("slice %d span = %v, want %v", i, s.Span(), want)
		}
	}
}

func TestLayoutPaddedKeepsProportions(t *testing.T) {
	items := []DataItem{{"A", 1}, {"B", 3}}
	plain, err := Layout(items, mustConfig(t, 200, 200))
	if err != nil {
		t.Fatal(err)
	}
	padded, err := Layout(items, mustConfig(t, 200, 200, WithPadAngle(0.5)))
	if err != nil {
		t.Fatal(err)
	}

	wantSpan := []float64{math.Pi / 2, 3 * math.Pi / 2}
	wantStart := []float64{0, math.Pi / 2}
	for i, s := range padded {
		if math.Abs(s.Span()-wantSpan[i]) > tol || math.Abs(s.StartAngle-wantStart[i]) > tol {
			t.Errorf("slice %d slot = [%v, %v], want start %v span %v", i, s.StartAngle, s.EndAngle, wantStart[i], wantSpan[i])
		}
		if s.PadAngle != 0.5 {
			t.Errorf("slice %d PadAngle = %v, want 0.5", i, s.PadAngle)
		}
		if s.LabelAnchor != plain[i].LabelAnchor {
			t.Errorf("slice %d anchor = %v, want unpadded %v", i, s.LabelAnchor, plain[i].LabelAnchor)
		}
		if s.Degenerate() {
			t.Errorf("slice %d unexpectedly degenerate", i)
		}
		if s.Outline.String() == plain[i].Outline.String() {
			t.Errorf("slice %d outline not narrowed by padding", i)
		}
	}

	// A's anchor sits at 1:30 on the mean radius.
	a := padded[0].LabelAnchor
	if want := 50 / math.Sqrt2; math.Abs(a.X-want) > 1e-6 || math.Abs(a.Y+want) > 1e-6 {
		t.Errorf("A anchor = %v, want (%v, %v)", a, want, -want)
	}
	// The gap at A's leading edge belongs to A, not to B.
	x, y := 80*math.Sin(0.05), -80*math.Cos(0.05)
	if !plain[0].Outline.Contains(x, y) || padded[0].Outline.Contains(x, y) {
		t.Errorf("point (%v, %v) should be inside A only without padding", x, y)
	}
}

func TestLayoutDonutAnchors(t *testing.T) {
	cfg := mustConfig(t, 200, 200, WithInnerRadius(50), WithOuterRadius(100))
	slices, err := Layout([]DataItem{{"A", 1}, {"B", 1}, {"C", 2}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range slices {
		if r := math.Hypot(s.LabelAnchor.X, s.LabelAnchor.Y); math.Abs(r-75) > 1e-6 {
			t.Errorf("slice %d anchor radius = %v, want 75", i, r)
		}
		if s.Degenerate() {
			t.Errorf("slice %d unexpectedly degenerate", i)
		}
	}
	// A spans 12 to 3 o'clock; its anchor sits at 1:30.
	a := slices[0].LabelAnchor
	want := 75 / math.Sqrt2
	if math.Abs(a.X-want) > 1e-6 || math.Abs(a.Y+want) > 1e-6 {
		t.Errorf("A anchor = %v, want (%v, %v)", a, want, -want)
	}
	if d, ok := slices[0].OutlinePath(); !ok || d != "M0,-100A100,100,0,0,1,100,0L50,0A50,50,0,0,0,0,-50Z" {
		t.Errorf("A outline = %q, %v", d, ok)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	items := []DataItem{{"a", 3}, {"b", 1}, {"c", 4}, {"d", 1}, {"e", 5}}
	cfg := mustConfig(t, 320, 240, WithInnerRadius(30), WithPadAngle(0.03))
	first, err := Layout(items, cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Layout(items, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Layout() not deterministic (-first +second):\n%s", diff)
	}
}

func TestLayoutDegenerate(t *testing.T) {
	t.Run("zero value keeps slot", func(t *testing.T) {
		slices, err := Layout([]DataItem{{"A", 1}, {"B", 0}, {"C", 1}}, mustConfig(t, 100, 100))
		if err != nil {
			t.Fatal(err)
		}
		if len(slices) != 3 {
			t.Fatalf("len(slices) = %d, want 3", len(slices))
		}
		if !slices[1].Degenerate() {
			t.Error("zero-value slice should be degenerate")
		}
		if _, ok := slices[1].OutlinePath(); ok {
			t.Error("degenerate slice should have no outline path")
		}
		if slices[0].Degenerate() || slices[2].Degenerate() {
			t.Error("positive slices should have outlines")
		}
	})

	t.Run("zero total", func(t *testing.T) {
		for _, pad := range []float64{0, 0.1} {
			slices, err := Layout([]DataItem{{"A", 0}, {"B", 0}}, mustConfig(t, 100, 100, WithPadAngle(pad)))
			if err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			if len(slices) != 2 {
				t.Fatalf("len(slices) = %d, want 2", len(slices))
			}
			for i, s := range slices {
				if !s.Degenerate() || s.Share != 0 {
					t.Errorf("pad %v slice %d: degenerate=%v share=%v, want true/0", pad, i, s.Degenerate(), s.Share)
				}
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		slices, err := Layout(nil, mustConfig(t, 100, 100))
		if err != nil || len(slices) != 0 {
			t.Errorf("Layout(nil) = %v, %v; want empty, nil", slices, err)
		}
	})

	t.Run("pad swallows small slice", func(t *testing.T) {
		cfg := mustConfig(t, 100, 100, WithInnerRadius(30), WithPadAngle(0.2))
		slices, err := Layout([]DataItem{{"big", 1000}, {"tiny", 0.001}}, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if !slices[1].Degenerate() {
			t.Error("slice narrower than its padding should be degenerate")
		}
		if slices[0].Degenerate() {
			t.Error("big slice should not be degenerate")
		}
	})
}

func TestLayoutValueErrors(t *testing.T) {
	cfg := mustConfig(t, 100, 100)
	tests := []struct {
		name string
		v    float64
		want error
	}{
		{"negative", -1, ErrNegativeValue},
		{"NaN", math.NaN(), ErrInvalidValue},
		{"+Inf", math.Inf(1), ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Layout([]DataItem{{"ok", 1}, {"bad", tt.v}}, cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Layout() error = %v, want %v", err, tt.want)
			}
			var ve *ValueError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not *ValueError", err)
			}
			if ve.Index != 1 || ve.Label != "bad" {
				t.Errorf("ValueError = %+v, want index 1 label bad", ve)
			}
		})
	}
}

func TestLayoutEmptyLabel(t *testing.T) {
	_, err := Layout([]DataItem{{"A", 1}, {"", 2}}, mustConfig(t, 100, 100))
	if !errors.Is(err, ErrEmptyLabel) {
		t.Fatalf("Layout() error = %v, want ErrEmptyLabel", err)
	}
	var ve *ValueError
	if !errors.As(err, &ve) || ve.Index != 1 {
		t.Errorf("error = %#v, want *ValueError at index 1", err)
	}
}

func TestLayoutClampNegative(t *testing.T) {
	cfg := mustConfig(t, 100, 100, WithNegativeValues(ClampNegative))
	slices, err := Layout([]DataItem{{"A", 1}, {"B", -5}, {"C", 1}}, cfg)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if slices[1].Item.Value != -5 {
		t.Errorf("clamped item value = %v, want original -5", slices[1].Item.Value)
	}
	if !slices[1].Degenerate() || slices[1].Share != 0 {
		t.Error("clamped negative should lay out as zero")
	}
	if !cmp.Equal(slices[0].Span(), math.Pi, cmpopts.EquateApprox(0, tol)) {
		t.Errorf("A span = %v, want π", slices[0].Span())
	}
}

func TestLayoutInvalidConfig(t *testing.T) {
	_, err := Layout([]DataItem{{"A", 1}}, Config{Width: 10, Height: 10})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Layout() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLayoutFullCircleSingleItem(t *testing.T) {
	slices, err := Layout([]DataItem{{"all", 7}}, mustConfig(t, 200, 200))
	if err != nil {
		t.Fatal(err)
	}
	d, ok := slices[0].OutlinePath()
	if !ok {
		t.Fatal("single item should produce an outline")
	}
	if want := "M0,-100A100,100,0,1,1,0,100A100,100,0,1,1,0,-100Z"; d != want {
		t.Errorf("outline = %q, want %q", d, want)
	}
	if slices[0].Share != 1 {
		t.Errorf("share = %v, want 1", slices[0].Share)
	}
}
