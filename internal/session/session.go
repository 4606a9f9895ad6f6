// Package session holds the state of one calculator run: the display string
// and the history of results. It is the only caller of the recognizer.
//
// A Session is driven by one goroutine; it has no locks.
package session

import (
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/keypad"
	"github.com/zephyrtronium/deskcalc/internal/logging"
	"github.com/zephyrtronium/deskcalc/internal/metrics"
)

// Options configure a Session. The zero value is usable.
type Options struct {
	// Evaluator defaults to deskcalc.Standard.
	Evaluator deskcalc.Evaluator
	Format    deskcalc.Format
	// Recent is the number of entries Recent returns.
	Recent  int
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Session is the display and history of one calculator run.
type Session struct {
	ev         deskcalc.Evaluator
	format     deskcalc.Format
	recent     int
	log        *slog.Logger
	metrics    *metrics.Recorder
	display    string
	scientific bool
	history    History
}

// New creates an empty session.
func New(opts Options) *Session {
	s := &Session{
		ev:      opts.Evaluator,
		format:  opts.Format,
		recent:  opts.Recent,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
	if s.ev == nil {
		s.ev = deskcalc.Standard
	}
	if s.log == nil {
		s.log = logging.NewNop()
	}
	return s
}

// Outcome reports the effect of a button press or submission.
type Outcome struct {
	Action keypad.Action
	// Entry is the new history entry after a successful evaluation.
	Entry *Entry
	// Err is the evaluation failure, if any. Message is its user-facing form.
	Err     error
	Message string
}

// Display returns the current display text.
func (s *Session) Display() string {
	return s.display
}

// SetDisplay replaces the display text, e.g. with a line typed in full.
func (s *Session) SetDisplay(text string) {
	s.display = text
}

// Type appends literal text to the display.
func (s *Session) Type(text string) {
	s.display += text
}

// Scientific returns whether the scientific pad is shown.
func (s *Session) Scientific() bool {
	return s.scientific
}

// Press applies a button to the display. Pressing = evaluates.
func (s *Session) Press(b keypad.Button) Outcome {
	display, action := keypad.Apply(s.display, b)
	s.display = display
	switch action {
	case keypad.Evaluate:
		return s.Submit()
	case keypad.ToggleMode:
		s.scientific = !s.scientific
	}
	return Outcome{Action: action}
}

// Submit evaluates the display. Constants typed as π or e are expanded first;
// errors still quote the display as typed.
// On success, the expression and result are appended to the history and the
// display shows the result. On failure, the display and history are left as
// they were.
func (s *Session) Submit() Outcome {
	expr := s.display
	start := time.Now()
	var r float64
	expanded, cols := keypad.Expand(expr)
	call, err := deskcalc.Parse(expanded)
	var ue *deskcalc.UnrecognizedError
	if errors.As(err, &ue) {
		err = &deskcalc.UnrecognizedError{Text: expr, Col: sourceCol(expr, ue.Col, cols)}
	}
	if err == nil {
		r, err = call.Eval(s.ev)
	}
	elapsed := time.Since(start)
	op := ""
	if call.Op.Valid() {
		op = call.Op.String()
	}

	if err != nil {
		kind := deskcalc.KindOf(err)
		s.metrics.Observe(op, string(kind), elapsed)
		if kind == deskcalc.KindInternal {
			s.log.Error("eval.internal", "expr", expr, "op", op, "error", err)
		} else {
			s.log.Info("eval.failed", "expr", expr, "kind", kind, "error", err)
		}
		return Outcome{Action: keypad.Evaluate, Err: err, Message: Message(err)}
	}

	e := Entry{Expr: expr, Result: r, Text: s.format.Render(r)}
	s.history.Append(e)
	s.display = e.Text
	s.metrics.Observe(op, "ok", elapsed)
	s.metrics.SetHistory(s.history.Len())
	s.log.Debug("eval.ok", "expr", expr, "op", op, "result", r, "elapsed", elapsed)
	return Outcome{Action: keypad.Evaluate, Entry: &e}
}

// sourceCol maps a column of the trimmed expansion of expr back to a column of
// trimmed expr. Expansion never touches whitespace, so both have the same
// leading space.
func sourceCol(expr string, col int, cols []int) int {
	lead := utf8.RuneCountInString(expr) - utf8.RuneCountInString(strings.TrimLeftFunc(expr, unicode.IsSpace))
	i := min(lead+col-1, len(cols)-1)
	if i < 0 {
		return col
	}
	return cols[i] - lead + 1
}

// Recent returns the most recent history entries, as many as configured.
func (s *Session) Recent() []Entry {
	return s.history.Last(s.recent)
}

// History returns a copy of the full session history, oldest first.
func (s *Session) History() []Entry {
	return s.history.All()
}

// Message converts an evaluation error into the text shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	switch deskcalc.KindOf(err) {
	case deskcalc.KindUnrecognized:
		return "Invalid operation: " + err.Error()
	case deskcalc.KindDomain:
		return "Math error: " + err.Error()
	default:
		return "Internal error: " + err.Error()
	}
}
