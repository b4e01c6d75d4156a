// token.go: tokens and the key-driven input stream
//
// What this file does
// -------------------
// A calculator expression is a flat sequence of committed tokens (numbers and
// binary operators) plus one "pending" number buffer that the user is still
// typing. This file owns both: the `Token` sum type and the `TokenStream`
// that accumulates key events into it.
//
// All the physical-calculator entry rules live here:
//   - leading-zero suppression ("0" then "5" becomes "5", not "05"),
//   - at most one decimal point per number ("." on empty pending seeds "0."),
//   - sign toggling on the pending buffer,
//   - backspace that re-opens the last committed number for editing,
//   - duplicate-operator collapse ("5 + -" becomes "5 -"),
//   - unary-minus seeding so an expression may start with a negative number.
//
// These guards are preventive: an input that would break an invariant is
// silently refused, never reported as an error. Error states belong to the
// session (session.go); the stream itself is oblivious to them.
//
// Dependencies (other files)
// --------------------------
//   - format.go: percent.go writes RoundSmart output back through the
//     stream's rewrite helpers defined at the bottom of this file.
package calc

import "strings"

/* ===========================
   TOKENS
   =========================== */

// TokenType discriminates the two token variants.
type TokenType int

const (
	NumberTok TokenType = iota
	OperatorTok
)

// OpKind identifies one of the four binary operators by its glyph:
// '+', '-', '*' or '/'.
type OpKind = byte

// Token is a committed element of the expression: either a number carried as
// its minimal decimal text, or a single binary operator.
type Token struct {
	Type TokenType
	Text string // decimal literal for numbers, operator glyph otherwise
}

// Num builds a number token from its decimal text.
func Num(text string) Token { return Token{Type: NumberTok, Text: text} }

// Op builds an operator token from its glyph.
func Op(kind OpKind) Token { return Token{Type: OperatorTok, Text: string(kind)} }

// IsNumber reports whether t is a number token.
func (t Token) IsNumber() bool { return t.Type == NumberTok }

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool { return t.Type == OperatorTok }

// IsOpKind reports whether b is one of the four operator glyphs.
func IsOpKind(b byte) bool {
	return b == '+' || b == '-' || b == '*' || b == '/'
}

/* ===========================
   TOKEN STREAM
   =========================== */

// TokenStream holds the committed token sequence and the pending number
// buffer being typed. The zero value is an empty stream ready for use.
//
// Invariants maintained by the mutators below:
//   - the committed sequence never holds two consecutive operators,
//   - no operator other than a seeded unary minus may start an expression.
type TokenStream struct {
	toks    []Token
	pending string
}

// Tokens returns the committed tokens. The slice is the stream's own backing
// store; callers must not mutate it.
func (ts *TokenStream) Tokens() []Token { return ts.toks }

// Pending returns the in-progress number buffer ("" when nothing is typed).
func (ts *TokenStream) Pending() string { return ts.pending }

// Empty reports whether the stream holds neither committed tokens nor a
// pending buffer.
func (ts *TokenStream) Empty() bool { return len(ts.toks) == 0 && ts.pending == "" }

// Expression renders the committed tokens joined by single spaces. The
// pending buffer is deliberately not part of the expression line.
func (ts *TokenStream) Expression() string {
	var b strings.Builder
	for i, t := range ts.toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// Reset clears the stream back to empty.
func (ts *TokenStream) Reset() {
	ts.toks = nil
	ts.pending = ""
}

// ClearPending drops only the pending buffer, leaving committed tokens alone.
func (ts *TokenStream) ClearPending() { ts.pending = "" }

/* ===========================
   INPUT ACCUMULATION
   =========================== */

// AppendDigit feeds one digit key ('0'..'9') into the pending buffer. A lone
// "0" is replaced rather than extended, so "007" can never be typed.
func (ts *TokenStream) AppendDigit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	if ts.pending == "0" {
		ts.pending = string(d)
		return
	}
	ts.pending += string(d)
}

// AppendDot feeds the decimal-point key. A second dot in the same number is
// refused; a dot on an empty buffer seeds "0.".
func (ts *TokenStream) AppendDot() {
	if strings.Contains(ts.pending, ".") {
		return
	}
	if ts.pending == "" {
		ts.pending = "0."
		return
	}
	ts.pending += "."
}

// ToggleSign flips a leading '-' on the pending buffer. It does nothing when
// the buffer is empty; negating an idle result is a session concern.
func (ts *TokenStream) ToggleSign() {
	if ts.pending == "" {
		return
	}
	if strings.HasPrefix(ts.pending, "-") {
		ts.pending = ts.pending[1:]
	} else {
		ts.pending = "-" + ts.pending
	}
}

// CommitPending pushes a non-empty pending buffer onto the committed
// sequence as a number token and clears the buffer.
func (ts *TokenStream) CommitPending() {
	if ts.pending == "" {
		return
	}
	ts.toks = append(ts.toks, Num(ts.pending))
	ts.pending = ""
}

// Backspace undoes the most recent keystroke-level edit. A non-empty pending
// buffer loses its last character. Otherwise the last committed token is
// inspected: a number moves back into pending with its last character
// removed (re-enabling edits), an operator is dropped outright.
func (ts *TokenStream) Backspace() {
	if ts.pending != "" {
		ts.pending = ts.pending[:len(ts.pending)-1]
		return
	}
	if len(ts.toks) == 0 {
		return
	}
	last := ts.toks[len(ts.toks)-1]
	ts.toks = ts.toks[:len(ts.toks)-1]
	if last.IsNumber() {
		ts.pending = last.Text[:len(last.Text)-1]
	}
}

// PushOperator commits the pending number (if any) and appends op, subject
// to two guards: on a fully empty stream only '-' is accepted, seeding the
// pending buffer for a leading negative number; and an operator arriving
// directly after another operator overwrites it instead of appending.
func (ts *TokenStream) PushOperator(op OpKind) {
	if !IsOpKind(op) {
		return
	}
	if ts.Empty() {
		if op == '-' {
			ts.pending = "-"
		}
		return
	}
	ts.CommitPending()
	if n := len(ts.toks); n > 0 && ts.toks[n-1].IsOperator() {
		ts.toks[n-1] = Op(op)
		return
	}
	ts.toks = append(ts.toks, Op(op))
}

/* ===========================
   PRIVATE: rewrite helpers (used by percent.go)
   =========================== */

// rewritePending replaces the pending buffer wholesale.
func (ts *TokenStream) rewritePending(text string) { ts.pending = text }

// rewriteLast replaces the text of the last committed token. Only called
// when the tail is known to be a number.
func (ts *TokenStream) rewriteLast(text string) {
	if len(ts.toks) == 0 {
		return
	}
	ts.toks[len(ts.toks)-1] = Num(text)
}

// stripTrailingOperator drops a dangling operator from the committed tail so
// the sequence can be evaluated. Called by the session before equals.
func (ts *TokenStream) stripTrailingOperator() {
	if n := len(ts.toks); n > 0 && ts.toks[n-1].IsOperator() {
		ts.toks = ts.toks[:n-1]
	}
}
