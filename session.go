// session.go: the calculator's event-handling state machine
//
// What this file does
// -------------------
// Session is the orchestrator the I/O shell talks to. It owns exactly one
// TokenStream, the last computed result, and the error flag, and exposes
// one method per key event (Digit, Dot, Operator, Percent, Equals,
// ClearAll, ClearEntry, Backspace, ToggleSign). Every method mutates
// internal state and returns the full render payload; the session never
// touches a display surface itself, which keeps it unit-testable without
// any rendering environment.
//
// State machine
// -------------
// Two states: Ready and Error. Any evaluation failure enters Error and
// discards the last result. While in Error, every mutating event is a
// no-op except ClearAll, which is the only recovery path. There is no
// partial recovery and no per-kind handling; all four failure kinds in
// errors.go render identically.
//
// Concurrency: a Session is not safe for concurrent use. Shells are
// expected to serialize events (one handler invocation at a time), which
// every mainstream UI event loop already does.
package calc

/* ===========================
   RENDER PAYLOAD
   =========================== */

// Display is what the shell paints after every handled event.
type Display struct {
	// Expression is the committed tokens joined by single spaces. The
	// pending buffer is not shown here.
	Expression string
	// Result is, in priority order: "Error" in the error state, the raw
	// pending buffer if non-empty, the formatted last result, or "0".
	Result string
	// Err is set in the error state so the shell can style the screen.
	Err bool
}

/* ===========================
   SESSION
   =========================== */

// Session holds one calculator's complete state. The zero value is a
// cleared, ready-to-use session; NewSession exists for symmetry and clarity
// at call sites.
type Session struct {
	stream     TokenStream
	lastResult float64
	hasResult  bool
	errState   bool
}

// NewSession returns a session in the cleared Ready state.
func NewSession() *Session { return &Session{} }

// Render builds the current display without mutating anything.
func (s *Session) Render() Display {
	d := Display{Expression: s.stream.Expression()}
	switch {
	case s.errState:
		d.Result = ErrorDisplay
		d.Err = true
	case s.stream.Pending() != "":
		d.Result = s.stream.Pending()
	case s.hasResult:
		d.Result = RoundSmart(s.lastResult)
	default:
		d.Result = "0"
	}
	return d
}

// Stream exposes the underlying token stream for tests and inspection.
func (s *Session) Stream() *TokenStream { return &s.stream }

// InError reports whether the session is in the Error state.
func (s *Session) InError() bool { return s.errState }

/* ===========================
   EVENT HANDLERS
   =========================== */

// Digit handles a digit key ('0'..'9').
func (s *Session) Digit(d byte) Display {
	if !s.errState {
		s.stream.AppendDigit(d)
	}
	return s.Render()
}

// Dot handles the decimal-point key.
func (s *Session) Dot() Display {
	if !s.errState {
		s.stream.AppendDot()
	}
	return s.Render()
}

// Operator handles one of '+', '-', '*', '/'.
func (s *Session) Operator(op OpKind) Display {
	if !s.errState {
		s.stream.PushOperator(op)
	}
	return s.Render()
}

// Percent handles the percent key (see percent.go for the transform).
func (s *Session) Percent() Display {
	if !s.errState {
		ResolvePercent(&s.stream)
	}
	return s.Render()
}

// Backspace handles the delete-last-keystroke key.
func (s *Session) Backspace() Display {
	if !s.errState {
		s.stream.Backspace()
	}
	return s.Render()
}

// ToggleSign flips the sign of the pending number. With nothing pending it
// negates the stored last result instead. That negation is a display-only
// preview: the result is not re-inserted as an editable token, so it only
// changes what the idle screen shows. Deliberately kept that way.
func (s *Session) ToggleSign() Display {
	if s.errState {
		return s.Render()
	}
	if s.stream.Pending() != "" {
		s.stream.ToggleSign()
	} else if s.hasResult {
		s.lastResult = -s.lastResult
	}
	return s.Render()
}

// ClearEntry clears only the pending buffer, leaving committed tokens
// intact. No-op in the Error state.
func (s *Session) ClearEntry() Display {
	if !s.errState {
		s.stream.ClearPending()
	}
	return s.Render()
}

// ClearAll resets the session to the cleared Ready state. This is the only
// event honored in the Error state. Idempotent.
func (s *Session) ClearAll() Display {
	s.stream.Reset()
	s.lastResult = 0
	s.hasResult = false
	s.errState = false
	return s.Render()
}

// Equals finalizes and evaluates the expression. The pending buffer is
// committed and a dangling operator stripped first. An empty sequence
// leaves the last result untouched. On success the whole committed
// sequence collapses to the single formatted result, so "5 = + 3 =" chains
// from the prior answer. On failure the session enters Error and the last
// result is discarded.
func (s *Session) Equals() Display {
	if s.errState {
		return s.Render()
	}
	s.stream.CommitPending()
	s.stream.stripTrailingOperator()
	if len(s.stream.Tokens()) == 0 {
		return s.Render()
	}

	v, err := Evaluate(s.stream.Tokens())
	if err != nil {
		s.errState = true
		s.hasResult = false
		s.lastResult = 0
		return s.Render()
	}

	s.lastResult = v
	s.hasResult = true
	s.stream.Reset()
	s.stream.toks = []Token{Num(RoundSmart(v))}
	return s.Render()
}
