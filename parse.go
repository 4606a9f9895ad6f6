package deskcalc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Expr = Unary | Binary
// Unary = name num
// Binary = num op num
// name = "sin" | "cos" | "tan" | "sqrt" | "log" | "ln" | "exp"
// op = "+" | "-" | "*" | "/" | "%" | "^"
// num = ["-"] digit {digit} ["." digit {digit}]
//
// The whole trimmed input must match. The two alternatives cannot both match:
// Unary starts with a letter and Binary with a sign or digit.

// Call is a recognized operation together with its operands as written. For
// unary operations, Y is zero.
type Call struct {
	Op   Op
	X, Y float64
}

// Args returns the operands the call dispatches to an evaluator. Operands of
// trigonometric functions are converted from degrees to radians, and the
// second operand of a unary operation is the placeholder 0.
func (c Call) Args() (a, b float64) {
	switch {
	case c.Op.Trig():
		return Radians(c.X), 0
	case c.Op.Arity() == 1:
		return c.X, 0
	default:
		return c.X, c.Y
	}
}

// Eval dispatches the call to ev.
func (c Call) Eval(ev Evaluator) (float64, error) {
	a, b := c.Args()
	r, err := ev.Compute(c.Op, a, b)
	if err != nil {
		return 0, err
	}
	return r, checkResult(c.Op, r)
}

func (c Call) String() string {
	x := strconv.FormatFloat(c.X, 'g', -1, 64)
	if c.Op.Arity() == 1 {
		return c.Op.String() + x
	}
	return x + c.Op.String() + strconv.FormatFloat(c.Y, 'g', -1, 64)
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Parse recognizes an expression without evaluating it. Leading and trailing
// whitespace is ignored. If the expression is neither a unary nor a binary
// operation, the error is an *UnrecognizedError. If a numeral is too large to
// represent, the error is a *DomainError and the returned Call holds only the
// recognized Op.
func Parse(expr string) (Call, error) {
	src := strings.TrimSpace(expr)
	op, nums, ustop, ok := parseUnary(src)
	if !ok {
		var bstop int
		op, nums, bstop, ok = parseBinary(src)
		if !ok {
			return Call{}, &UnrecognizedError{Text: expr, Col: max(ustop, bstop)}
		}
	}
	var c Call
	c.Op = op
	for i, s := range nums {
		if s == "" {
			break
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Call{Op: op}, &DomainError{Op: op, Arg: i + 1, X: v, Reason: "operand out of range"}
			}
			// The scanner only accepts valid decimal numerals.
			panic("deskcalc: invalid numeral " + strconv.Quote(s) + ": " + err.Error())
		}
		if i == 0 {
			c.X = v
		} else {
			c.Y = v
		}
	}
	return c, nil
}

// parseUnary recognizes name num. If it fails, stop is the column at which
// recognition stopped.
func parseUnary(src string) (op Op, nums [2]string, stop int, ok bool) {
	s := scan(src)
	name := s.scanName()
	op, found := LookupOp(name)
	if !found || op.Arity() != 1 {
		return OpNone, nums, 1, false
	}
	num, found := s.scanNum()
	if !found || !s.done() {
		return OpNone, nums, s.col, false
	}
	nums[0] = num
	return op, nums, 0, true
}

// parseBinary recognizes num op num. If it fails, stop is the column at which
// recognition stopped.
func parseBinary(src string) (op Op, nums [2]string, stop int, ok bool) {
	s := scan(src)
	x, found := s.scanNum()
	if !found {
		return OpNone, nums, s.col, false
	}
	sym, found := s.scanOp()
	if !found {
		return OpNone, nums, s.col, false
	}
	y, found := s.scanNum()
	if !found || !s.done() {
		return OpNone, nums, s.col, false
	}
	op, _ = LookupOp(sym)
	nums[0], nums[1] = x, y
	return op, nums, 0, true
}
