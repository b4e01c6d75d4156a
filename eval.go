// eval.go: precedence-aware reduction of a finalized token sequence
//
// What this file does
// -------------------
// `Evaluate` takes a committed token sequence (no pending buffer, no
// trailing operator; the session prepares both) and reduces it to a single
// float64 using two cooperating stacks. '*' and '/' bind tighter than '+'
// and '-'; operators of equal precedence associate left to right.
//
// Error discipline
// ----------------
// Internally the reducer signals failure by panicking with an *EvalError
// and recovering at the public boundary, so the stack plumbing stays free
// of error threading. Nothing panics past Evaluate; callers always see a
// plain (float64, error) pair. Kinds are defined in errors.go.
//
// Numeric semantics are standard IEEE double precision. No arbitrary
// precision, no parentheses, no unary operators: the input grammar is
// strictly number (operator number)*.
package calc

import (
	"math"
	"strconv"
)

/* ===========================
   PUBLIC API
   =========================== */

// Evaluate reduces toks to a single value or returns an *EvalError.
// The caller must pass a non-empty sequence with no trailing operator.
func Evaluate(toks []Token) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*EvalError); ok {
				result, err = 0, e
				return
			}
			panic(r)
		}
	}()

	var vals []float64
	var ops []OpKind

	for _, t := range toks {
		switch t.Type {
		case NumberTok:
			vals = append(vals, parseOperand(t.Text))
		case OperatorTok:
			cur := t.Text[0]
			for len(ops) > 0 && precedence(ops[len(ops)-1]) >= precedence(cur) {
				vals, ops = applyTop(vals, ops)
			}
			ops = append(ops, cur)
		}
	}
	for len(ops) > 0 {
		vals, ops = applyTop(vals, ops)
	}

	if len(vals) != 1 {
		failEval(ErrMalformed, "expression did not reduce to a single value")
	}
	if math.IsNaN(vals[0]) || math.IsInf(vals[0], 0) {
		failEval(ErrOverflow, "result is not a finite number")
	}
	return vals[0], nil
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: stack machinery
   =========================== */

// failEval aborts the current evaluation. Recovered in Evaluate.
func failEval(kind EvalErrKind, msg string) {
	panic(&EvalError{Kind: kind, Msg: msg})
}

func precedence(op OpKind) int {
	switch op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// parseOperand converts a number token's text, rejecting anything that is
// not a finite double. Input accumulation should make that impossible, but
// backspace-mangled tokens are guarded here rather than trusted.
func parseOperand(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		failEval(ErrInvalidNumber, strconv.Quote(text)+" is not a finite number")
	}
	return v
}

// applyTop pops the top operator and its two operands (a below, b above)
// and pushes a op b.
func applyTop(vals []float64, ops []OpKind) ([]float64, []OpKind) {
	if len(vals) < 2 {
		failEval(ErrMalformed, "operator is missing an operand")
	}
	op := ops[len(ops)-1]
	ops = ops[:len(ops)-1]
	b := vals[len(vals)-1]
	a := vals[len(vals)-2]
	vals = vals[:len(vals)-2]

	var r float64
	switch op {
	case '+':
		r = a + b
	case '-':
		r = a - b
	case '*':
		r = a * b
	case '/':
		if b == 0 {
			failEval(ErrDivisionByZero, "divisor is zero")
		}
		r = a / b
	}
	return append(vals, r), ops
}
