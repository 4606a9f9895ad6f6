package deskcalc

import (
	"fmt"
	"math"
	"strconv"
)

// Calculator recognizes expressions and evaluates them with an Evaluator. A
// Calculator holds no state between evaluations, so evaluating the same
// expression twice gives the same result.
type Calculator struct {
	ev Evaluator
}

// New creates a calculator that dispatches to ev. If ev is nil, the
// calculator uses Standard.
func New(ev Evaluator) *Calculator {
	if ev == nil {
		ev = Standard
	}
	return &Calculator{ev: ev}
}

// Evaluator returns the evaluator the calculator dispatches to.
func (c *Calculator) Evaluator() Evaluator {
	return c.ev
}

// Evaluate recognizes expr and evaluates it. The error is an
// *UnrecognizedError if expr matches neither the unary nor the binary form,
// or whatever the evaluator returns, typically a *DomainError. Results that
// are NaN or infinite are reported as a *DomainError even if the evaluator
// does not reject them.
func (c *Calculator) Evaluate(expr string) (float64, error) {
	call, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return call.Eval(c.ev)
}

var std = New(Standard)

// Evaluate is a shortcut to evaluate an expression with the Standard
// evaluator.
func Evaluate(expr string) (float64, error) {
	return std.Evaluate(expr)
}

// Format selects how results are written.
type Format uint8

const (
	// FormatAuto writes plain decimals for ordinary magnitudes and switches
	// to exponent notation for very large or very small ones.
	FormatAuto Format = iota
	// FormatFixed always writes plain decimals.
	FormatFixed
	// FormatExponent always writes exponent notation.
	FormatExponent
)

var formatnames = [...]string{
	FormatAuto:     "auto",
	FormatFixed:    "fixed",
	FormatExponent: "exponent",
}

// ParseFormat parses a format name as used in configuration.
func ParseFormat(s string) (Format, error) {
	for i, n := range formatnames {
		if s == n {
			return Format(i), nil
		}
	}
	return FormatAuto, fmt.Errorf("unknown result format %q", s)
}

func (f Format) String() string {
	if int(f) < len(formatnames) {
		return formatnames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Render writes v in the format f, using the fewest digits that identify v
// exactly. Plain decimal output of a result can be fed back to the
// recognizer as an operand.
func (f Format) Render(v float64) string {
	switch f {
	case FormatFixed:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case FormatExponent:
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	if a := math.Abs(v); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatResult writes v with FormatAuto.
func FormatResult(v float64) string {
	return FormatAuto.Render(v)
}
