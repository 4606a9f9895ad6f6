package deskcalc

import (
	"errors"
	"strconv"
)

// UnrecognizedError is an error indicating input that is neither a unary nor
// a binary operation. It implements InputError.
type UnrecognizedError struct {
	// Text is the expression as given, before trimming.
	Text string
	// Col is the 1-based rune position in the trimmed expression at which
	// recognition stopped.
	Col int
}

func (err *UnrecognizedError) Error() string {
	return "unsupported expression " + strconv.Quote(err.Text) + " (stopped at column " + strconv.Itoa(err.Col) + ")"
}

func (err *UnrecognizedError) Pos() int {
	return err.Col
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the 1-based rune position at which the input was rejected.
	Pos() int
}

var _ InputError = (*UnrecognizedError)(nil)

// DomainError is an error indicating an operand outside an operation's domain
// or a result that is not a finite number.
type DomainError struct {
	// Op is the operation.
	Op Op
	// Arg is the 1-based index of the offending operand, or 0 if the result
	// was the problem.
	Arg int
	// X is the offending operand or result.
	X float64
	// Reason describes the failure, e.g. "division by zero".
	Reason string
}

func (err *DomainError) Error() string {
	r := err.Op.String() + ": " + err.Reason
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + " is " + strconv.FormatFloat(err.X, 'g', -1, 64) + ")"
	}
	return r
}

// UnknownOpError is an error indicating an operation the evaluator does not
// implement. Since the recognizer only produces operations from the closed
// set, seeing one means the evaluator and recognizer disagree.
type UnknownOpError struct {
	// Op is the operation, if it was given as an Op.
	Op Op
	// Name is the operation name, if it was given by name.
	Name string
}

func (err *UnknownOpError) Error() string {
	if err.Name != "" {
		return "unknown operation " + strconv.Quote(err.Name)
	}
	return "unknown operation " + err.Op.String()
}

// ErrorKind is a coarse classification of evaluation errors.
type ErrorKind string

const (
	// KindUnrecognized is input that matches neither grammar. The user can
	// edit it and try again.
	KindUnrecognized ErrorKind = "unrecognized"
	// KindDomain is a mathematically invalid operation.
	KindDomain ErrorKind = "domain"
	// KindInternal is anything else, including unknown operations. These
	// indicate a bug rather than bad input.
	KindInternal ErrorKind = "internal"
)

// KindOf classifies err. It returns the empty string for a nil error.
func KindOf(err error) ErrorKind {
	var (
		ue *UnrecognizedError
		de *DomainError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ue):
		return KindUnrecognized
	case errors.As(err, &de):
		return KindDomain
	default:
		return KindInternal
	}
}
