package keypad

// Basic is the button grid that is always shown, row by row.
var Basic = [][]Button{
	{"7", "8", "9", Clear, Backspace},
	{"4", "5", "6", "+", "-"},
	{"1", "2", "3", "*", "/"},
	{"0", ".", Equals, Mode, Hist},
}

// Scientific holds the extra rows shown in scientific mode.
var Scientific = [][]Button{
	{"sin", "cos", "tan", "log", "ln"},
	{"exp", Root, Pi, E, "^"},
	{"%"},
}

// Layout returns the rows to show.
func Layout(scientific bool) [][]Button {
	if !scientific {
		return Basic
	}
	rows := make([][]Button, 0, len(Basic)+len(Scientific))
	rows = append(rows, Basic...)
	return append(rows, Scientific...)
}

var keys = map[string]Button{
	"enter":     Equals,
	"=":         Equals,
	"backspace": Backspace,
	"esc":       Clear,
	".":         ".",
	"+":         "+",
	"-":         "-",
	"*":         "*",
	"/":         "/",
	"%":         "%",
	"^":         "^",
}

// FromKey maps a key name, as reported by the terminal library, to the button
// it presses. Letters are not buttons: "e" typed on a keyboard is usually
// part of "exp", so callers append typed letters to the display as text.
func FromKey(key string) (Button, bool) {
	if b, ok := keys[key]; ok {
		return b, true
	}
	if len(key) == 1 && '0' <= key[0] && key[0] <= '9' {
		return Button(key), true
	}
	return "", false
}

// Typable returns whether a key is a letter that may be typed into the
// display as part of a function name.
func Typable(key string) bool {
	return len(key) == 1 && 'a' <= key[0] && key[0] <= 'z'
}
