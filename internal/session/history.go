package session

// Entry is one successful evaluation.
type Entry struct {
	// Expr is the expression as it was on the display.
	Expr string
	// Result is the value it evaluated to.
	Result float64
	// Text is Result as it was displayed.
	Text string
}

func (e Entry) String() string {
	return e.Expr + " = " + e.Text
}

// History is an append-only log of successful evaluations. The zero value is
// an empty history.
type History struct {
	entries []Entry
}

// Append adds an entry at the end.
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns a copy of the n most recent entries, oldest first.
func (h *History) Last(n int) []Entry {
	if n <= 0 {
		return nil
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	return append([]Entry(nil), h.entries[len(h.entries)-n:]...)
}

// All returns a copy of every entry, oldest first.
func (h *History) All() []Entry {
	return append([]Entry(nil), h.entries...)
}

// Lines formats the n most recent entries, or all of them if n is negative.
func (h *History) Lines(n int) []string {
	var v []Entry
	if n < 0 {
		v = h.entries
	} else {
		v = h.Last(n)
	}
	lines := make([]string, len(v))
	for i, e := range v {
		lines[i] = e.String()
	}
	return lines
}
