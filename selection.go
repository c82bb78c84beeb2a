package piechart

import "fmt"

// Mode selects how a View shows labels.
type Mode uint8

const (
	// Static shows every non-degenerate label and ignores taps.
	Static Mode = iota
	// Interactive shows at most one label, chosen by tapping slices.
	Interactive
)

// String returns "static" or "interactive".
func (m Mode) String() string {
	switch m {
	case Static:
		return "static"
	case Interactive:
		return "interactive"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses a Mode name. The empty string selects Static.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "static":
		return Static, nil
	case "interactive":
		return Interactive, nil
	}
	return 0, fmt.Errorf("piechart: unknown mode %q", s)
}

// Selection is the label state of an interactive view: either Idle or
// Selected on one slice index. The zero value is Idle.
type Selection struct {
	index  int
	active bool
}

// Idle returns the selection with no label shown.
func Idle() Selection { return Selection{} }

// Selected returns the selection showing the label of slice i.
func Selected(i int) Selection { return Selection{index: i, active: true} }

// Tap returns the state after tapping slice i. Tapping the selected slice
// returns Idle; tapping any other slice selects it.
func (s Selection) Tap(i int) Selection {
	if s.active && s.index == i {
		return Idle()
	}
	return Selected(i)
}

// Active returns the selected index. ok is false when Idle.
func (s Selection) Active() (i int, ok bool) {
	return s.index, s.active
}

// IsIdle reports whether no slice is selected.
func (s Selection) IsIdle() bool { return !s.active }

func (s Selection) String() string {
	if !s.active {
		return "Idle"
	}
	return fmt.Sprintf("Selected(%d)", s.index)
}
