package deskcalc

import "strconv"

// Op is an operation the evaluator understands. The set of operations is
// closed; the zero value is not a valid operation.
type Op int8

const (
	OpNone Op = iota

	// Unary operations. The second operand is ignored.
	OpSin  // sine, argument in radians at the evaluator
	OpCos  // cosine
	OpTan  // tangent
	OpSqrt // square root
	OpLog  // base-10 logarithm
	OpLn   // natural logarithm
	OpExp  // e to the power

	// Binary operations.
	OpAdd // a + b
	OpSub // a - b
	OpMul // a * b
	OpDiv // a / b
	OpMod // truncated remainder, sign of a
	OpPow // a to the power b

	opCount
)

var opnames = [opCount]string{
	OpNone: "",
	OpSin:  "sin",
	OpCos:  "cos",
	OpTan:  "tan",
	OpSqrt: "sqrt",
	OpLog:  "log",
	OpLn:   "ln",
	OpExp:  "exp",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpMod:  "%",
	OpPow:  "^",
}

var opbyname = func() map[string]Op {
	m := make(map[string]Op, opCount-1)
	for op := OpNone + 1; op < opCount; op++ {
		m[opnames[op]] = op
	}
	return m
}()

// Operators contains the runes which are binary operators.
const Operators = "+-*/%^"

// LookupOp returns the operation with the given name or symbol.
func LookupOp(name string) (Op, bool) {
	op, ok := opbyname[name]
	return op, ok
}

// Ops returns every valid operation, unary operations first.
func Ops() []Op {
	v := make([]Op, 0, opCount-1)
	for op := OpNone + 1; op < opCount; op++ {
		v = append(v, op)
	}
	return v
}

// Valid returns whether op is a member of the closed operation set.
func (op Op) Valid() bool {
	return OpNone < op && op < opCount
}

// Arity returns the number of operands op consumes, or 0 for an invalid op.
func (op Op) Arity() int {
	switch {
	case OpSin <= op && op <= OpExp:
		return 1
	case OpAdd <= op && op <= OpPow:
		return 2
	default:
		return 0
	}
}

// Trig returns whether op is a trigonometric function. The recognizer converts
// the operands of trigonometric functions from degrees to radians.
func (op Op) Trig() bool {
	return op == OpSin || op == OpCos || op == OpTan
}

func (op Op) String() string {
	if !op.Valid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opnames[op]
}
