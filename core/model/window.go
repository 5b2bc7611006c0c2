package model

import "fmt"

// TimeWindow is a bitset over the named periods of the operating day. A day
// can hold any subset of the three windows, including none.
type TimeWindow uint8

const (
	Morning TimeWindow = 1 << iota
	Noon
	Afternoon
)

// WindowNone is the empty set: unavailable all day.
const WindowNone TimeWindow = 0

// Windows lists the named windows in day order.
var Windows = [...]TimeWindow{Morning, Noon, Afternoon}

// FormatError reports a day-code character outside the A/N/P alphabet.
type FormatError struct {
	Char rune
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time window character %q", e.Char)
}

// ParseDayCode decodes a per-day availability code. Each character sets one
// window bit: 'A' morning, 'N' noon, 'P' afternoon. Order does not matter
// and repeats are idempotent. The empty string is the empty set. Any other
// character fails the whole code with a *FormatError.
func ParseDayCode(code string) (TimeWindow, error) {
	var w TimeWindow
	for _, ch := range code {
		switch ch {
		case 'A':
			w |= Morning
		case 'N':
			w |= Noon
		case 'P':
			w |= Afternoon
		default:
			return WindowNone, &FormatError{Char: ch}
		}
	}
	return w, nil
}

// Name returns the window's display name. For sets that are not a single
// named window it falls back to the canonical day code.
func (w TimeWindow) Name() string {
	switch w {
	case Morning:
		return "Morning"
	case Noon:
		return "Noon"
	case Afternoon:
		return "Afternoon"
	case WindowNone:
		return "None"
	default:
		return w.String()
	}
}

// Has reports whether every window bit in other is set in w.
func (w TimeWindow) Has(other TimeWindow) bool {
	return w&other == other
}

// String renders the canonical day code for the set, in A, N, P order.
// Parsing the result yields the same bitset.
func (w TimeWindow) String() string {
	buf := make([]byte, 0, 3)
	if w.Has(Morning) {
		buf = append(buf, 'A')
	}
	if w.Has(Noon) {
		buf = append(buf, 'N')
	}
	if w.Has(Afternoon) {
		buf = append(buf, 'P')
	}
	return string(buf)
}
