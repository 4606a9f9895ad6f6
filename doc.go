// Package deskcalc implements the core of a desk calculator: a recognizer for
// single-operation expressions and the evaluator it dispatches to.
//
// The recognizer accepts exactly two shapes of input, after trimming
// surrounding whitespace. A unary operation is a function name immediately
// followed by a numeral, as in "sin45", "sqrt16" or "ln2.5". A binary
// operation is a numeral, an operator and another numeral, as in "12+7",
// "2^10" or "5--3". Numerals are an optional leading minus sign, decimal
// digits, and optionally a point followed by more digits. There are no
// brackets, no precedence and no chains of operators.
//
// Arguments to sin, cos and tan are in degrees.
//
// Symbolic constants such as π and e are not part of the grammar. Callers that
// offer them should substitute their decimal expansions before calling
// Evaluate.
//
package deskcalc
