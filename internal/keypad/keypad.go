// Package keypad models the buttons and keys that build an expression string
// on the calculator display.
//
// Nothing here evaluates anything. Apply turns the current display and a
// button press into the next display and tells the caller whether to
// evaluate, toggle the scientific pad, or show the history.
package keypad

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Button is the label of a calculator button. Labels that are not one of the
// named control buttons append themselves to the display.
type Button string

// Control, function and constant buttons. Digits and operators are
// buttons labelled with themselves.
const (
	Clear     Button = "C"
	Backspace Button = "⌫"
	Equals    Button = "="
	Mode      Button = "Mode"
	Hist      Button = "Hist"
	Root      Button = "√"
	Pi        Button = "π"
	E         Button = "e"
)

// Action tells the caller what to do after a button press.
type Action int

const (
	// Edit means the display text changed, or may have.
	Edit Action = iota
	// Evaluate means the display should be evaluated.
	Evaluate
	// ToggleMode means the scientific pad should be shown or hidden.
	ToggleMode
	// ShowHistory means the full history should be shown.
	ShowHistory
)

func (a Action) String() string {
	switch a {
	case Edit:
		return "edit"
	case Evaluate:
		return "evaluate"
	case ToggleMode:
		return "toggle-mode"
	case ShowHistory:
		return "show-history"
	default:
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
}

// Decimal expansions substituted for the constant buttons.
var (
	PiText = strconv.FormatFloat(math.Pi, 'g', -1, 64)
	EText  = strconv.FormatFloat(math.E, 'g', -1, 64)
)

// Apply returns the display after pressing b.
//
// √ replaces the display with "sqrt", since a square root must begin the
// expression. π and e append their decimal expansions. C clears and ⌫
// removes the last rune. Function buttons and everything else append their
// label.
func Apply(display string, b Button) (string, Action) {
	switch b {
	case Equals:
		return display, Evaluate
	case Mode:
		return display, ToggleMode
	case Hist:
		return display, ShowHistory
	case Clear:
		return "", Edit
	case Backspace:
		if display == "" {
			return "", Edit
		}
		_, sz := utf8.DecodeLastRuneInString(display)
		return display[:len(display)-sz], Edit
	case Root:
		return "sqrt", Edit
	case Pi:
		return display + PiText, Edit
	case E:
		return display + EText, Edit
	default:
		return display + string(b), Edit
	}
}

// ExpandConstants replaces the symbols π and e in free-typed input with their
// decimal expansions. A constant that touches a digit or a point is left
// alone, as is an e that touches another letter, as in exp. What is left
// alone is then rejected by the recognizer rather than misread as a
// different number: 2e+1 stays 2e+1.
func ExpandConstants(s string) string {
	r, _ := Expand(s)
	return r
}

// Expand is ExpandConstants that also reports where each rune of the result
// came from. cols[i] is the rune index in s of rune i of the result, and the
// final element is the rune length of s.
func Expand(s string) (string, []int) {
	var (
		b    strings.Builder
		cols []int
	)
	prev := rune(0)
	i := 0
	for off, r := range s {
		_, sz := utf8.DecodeRuneInString(s[off:])
		next, _ := utf8.DecodeRuneInString(s[off+sz:])
		var text string
		switch {
		case r == 'π' && !isnumeral(prev) && !isnumeral(next):
			text = PiText
		case r == 'e' && !isnumeral(prev) && !isnumeral(next) && !isletter(prev) && !isletter(next):
			text = EText
		default:
			text = string(r)
		}
		b.WriteString(text)
		for range utf8.RuneCountInString(text) {
			cols = append(cols, i)
		}
		prev = r
		i++
	}
	return b.String(), append(cols, i)
}

func isnumeral(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

func isletter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
