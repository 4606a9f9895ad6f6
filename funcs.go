package deskcalc

import (
	"fmt"
	"math"
)

// Evaluator computes the result of an operation. For unary operations, b is
// a placeholder and must be ignored. Compute should return a *DomainError for
// operands outside the operation's domain and an *UnknownOpError for an
// operation it does not implement.
type Evaluator interface {
	Compute(op Op, a, b float64) (float64, error)
}

// EvaluatorFunc adapts an ordinary function to an Evaluator.
type EvaluatorFunc func(op Op, a, b float64) (float64, error)

// Compute calls f.
func (f EvaluatorFunc) Compute(op Op, a, b float64) (float64, error) {
	return f(op, a, b)
}

// Standard is the float64 evaluator. It is a pure function of its arguments.
//
// log is the base-10 logarithm and ln the natural logarithm. % is the
// truncated remainder, which has the sign of a, as with math.Mod. ^ follows
// math.Pow, so 0^0 is 1. Division or remainder by zero, square roots of
// negative numbers, logarithms of non-positive numbers, and any result that
// is NaN or infinite are domain errors.
var Standard Evaluator = EvaluatorFunc(compute)

func compute(op Op, a, b float64) (float64, error) {
	var r float64
	switch op {
	case OpSin:
		r = math.Sin(a)
	case OpCos:
		r = math.Cos(a)
	case OpTan:
		r = math.Tan(a)
	case OpSqrt:
		if a < 0 {
			return 0, &DomainError{Op: op, Arg: 1, X: a, Reason: "square root of negative number"}
		}
		r = math.Sqrt(a)
	case OpLog:
		if a <= 0 {
			return 0, &DomainError{Op: op, Arg: 1, X: a, Reason: "logarithm of non-positive number"}
		}
		r = math.Log10(a)
	case OpLn:
		if a <= 0 {
			return 0, &DomainError{Op: op, Arg: 1, X: a, Reason: "logarithm of non-positive number"}
		}
		r = math.Log(a)
	case OpExp:
		r = math.Exp(a)
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMul:
		r = a * b
	case OpDiv:
		if b == 0 {
			return 0, &DomainError{Op: op, Arg: 2, X: b, Reason: "division by zero"}
		}
		r = a / b
	case OpMod:
		if b == 0 {
			return 0, &DomainError{Op: op, Arg: 2, X: b, Reason: "modulo by zero"}
		}
		r = math.Mod(a, b)
	case OpPow:
		r = math.Pow(a, b)
	default:
		return 0, &UnknownOpError{Op: op}
	}
	return r, checkResult(op, r)
}

// checkResult rejects results that cannot be displayed as numbers.
func checkResult(op Op, r float64) error {
	switch {
	case math.IsNaN(r):
		return &DomainError{Op: op, X: r, Reason: "result is not a number"}
	case math.IsInf(r, 0):
		return &DomainError{Op: op, X: r, Reason: "result out of range"}
	}
	return nil
}

// ComputeName looks up an operation by name or symbol and computes it with
// ev. Unknown names produce an *UnknownOpError.
func ComputeName(ev Evaluator, name string, a, b float64) (float64, error) {
	op, ok := LookupOp(name)
	if !ok {
		return 0, &UnknownOpError{Name: name}
	}
	return ev.Compute(op, a, b)
}

// probes is a table of exact or well-conditioned calls covering every
// operation.
var probes = []struct {
	op      Op
	a, b, r float64
}{
	{OpSin, 0, 0, 0},
	{OpCos, 0, 0, 1},
	{OpTan, 0, 0, 0},
	{OpSqrt, 16, 0, 4},
	{OpLog, 1000, 0, 3},
	{OpLn, 1, 0, 0},
	{OpExp, 0, 0, 1},
	{OpAdd, 12, 7, 19},
	{OpSub, 12, 7, 5},
	{OpMul, 4, 2.5, 10},
	{OpDiv, 9, 3, 3},
	{OpMod, 10, 3, 1},
	{OpPow, 2, 10, 1024},
}

// CheckEvaluator runs a fixed set of calls through ev, covering every
// operation, and reports the first one that fails or gives a wrong answer.
// Programs call it at start-up so that a broken evaluator stops the process
// before any input is accepted.
func CheckEvaluator(ev Evaluator) error {
	if ev == nil {
		return fmt.Errorf("deskcalc: no evaluator")
	}
	seen := make(map[Op]bool, len(probes))
	for _, p := range probes {
		seen[p.op] = true
		r, err := ev.Compute(p.op, p.a, p.b)
		if err != nil {
			return fmt.Errorf("deskcalc: evaluator probe %v(%g, %g): %w", p.op, p.a, p.b, err)
		}
		if math.Abs(r-p.r) > 1e-12 {
			return fmt.Errorf("deskcalc: evaluator probe %v(%g, %g) = %g, want %g", p.op, p.a, p.b, r, p.r)
		}
	}
	for _, op := range Ops() {
		if !seen[op] {
			panic("deskcalc: no evaluator probe for " + op.String())
		}
	}
	return nil
}
