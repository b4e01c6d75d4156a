// errors.go: the evaluator's failure taxonomy and user-facing wrapping
//
// What this file does
// -------------------
// Every way an expression can fail to evaluate is one of four kinds, carried
// by a single `*EvalError` returned from eval.go. The session (session.go)
// treats all four identically (the screen shows the literal word "Error"
// with no distinguishing detail), but the kinds stay distinct so tests and
// host shells can assert on the exact failure.
//
// Behavior guarantees
// -------------------
//   - `*EvalError` is the only error type the evaluator returns; nothing
//     panics past the evaluator's boundary.
//   - `WrapEvalError` recognizes `*EvalError` and formats it with a labeled
//     header; any other error is returned unchanged.
package calc

import "fmt"

// ErrorDisplay is the literal result-line text shown for any failed
// evaluation, regardless of kind.
const ErrorDisplay = "Error"

// EvalErrKind tags the four evaluation failure classes.
type EvalErrKind int

const (
	// ErrMalformed: the token sequence is structurally invalid (an operator
	// with fewer than two operands, or leftover operands after reduction).
	ErrMalformed EvalErrKind = iota
	// ErrInvalidNumber: a number token does not parse to a finite double.
	ErrInvalidNumber
	// ErrDivisionByZero: a '/' whose divisor evaluates to exactly zero.
	ErrDivisionByZero
	// ErrOverflow: the final value is non-finite.
	ErrOverflow
)

func (k EvalErrKind) String() string {
	switch k {
	case ErrMalformed:
		return "malformed expression"
	case ErrInvalidNumber:
		return "invalid number"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// EvalError is the tagged failure produced by Evaluate.
type EvalError struct {
	Kind EvalErrKind
	Msg  string
}

func (e *EvalError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// WrapEvalError returns an error whose message carries a labeled header
// suitable for terminals and logs. Non-EvalError errors pass through
// untouched.
func WrapEvalError(err error) error {
	if e, ok := err.(*EvalError); ok {
		return fmt.Errorf("EVAL ERROR: %s", e.Error())
	}
	return err
}
