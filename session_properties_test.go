// session_properties_test.go
//
// Property tests for session-level invariants, driven by pgregory.net/rapid.
package calc

import (
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_Digit_Sequences_Echo_Into_Pending proves that typing digits
// (no operators) leaves the pending buffer equal to the typed sequence,
// modulo the two entry guards: leading-zero replacement and single decimal
// point.
func TestProperty_Digit_Sequences_Echo_Into_Pending(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.StringMatching(`[1-9][0-9]{0,10}(\.[0-9]{0,6})?`).Draw(rt, "keys")

		s := NewSession()
		for i := 0; i < len(keys); i++ {
			if keys[i] == '.' {
				s.Dot()
			} else {
				s.Digit(keys[i])
			}
		}
		if got := s.Stream().Pending(); got != keys {
			rt.Fatalf("typed %q, pending %q", keys, got)
		}
	})
}

// TestProperty_Backspace_Always_Terminates_At_Cleared proves that whatever
// was typed, pressing backspace enough times lands on the cleared Ready
// state without panicking.
func TestProperty_Backspace_Always_Terminates_At_Cleared(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.StringMatching(`[0-9.+\-*/%~]{0,24}`).Draw(rt, "keys")

		s := NewSession()
		feedRaw(s, keys)
		if s.InError() {
			rt.Skip("error states only clear via clear-all")
		}

		for i := 0; i < 1024; i++ {
			if s.Stream().Empty() {
				break
			}
			s.Backspace()
		}
		if !s.Stream().Empty() {
			rt.Fatalf("backspace never emptied the stream for input %q", keys)
		}
		d := s.Render()
		if d.Err || d.Expression != "" {
			rt.Fatalf("expected cleared screen after input %q, got %+v", keys, d)
		}
	})
}

// TestProperty_ClearAll_Is_Idempotent proves clear-all twice equals clear-all
// once, from any reachable state.
func TestProperty_ClearAll_Is_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.StringMatching(`[0-9.+\-*/%=~<ce]{0,32}`).Draw(rt, "keys")

		s := NewSession()
		feedRaw(s, keys)
		once := s.ClearAll()
		twice := s.ClearAll()
		if once != twice {
			rt.Fatalf("clear-all not idempotent after %q: %+v vs %+v", keys, once, twice)
		}
	})
}

// TestProperty_Handlers_Never_Panic drives random key soup through every
// handler; the engine must refuse bad input silently rather than crash.
func TestProperty_Handlers_Never_Panic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.StringMatching(`[0-9.+\-*/%=~<ce]{0,64}`).Draw(rt, "keys")

		s := NewSession()
		feedRaw(s, keys)
		d := s.Render()
		if !d.Err && d.Result == ErrorDisplay {
			rt.Fatalf("error text without error flag after %q", keys)
		}
	})
}

// TestProperty_Committed_Never_Holds_Adjacent_Operators proves the stream
// invariant that drives duplicate-operator collapse.
func TestProperty_Committed_Never_Holds_Adjacent_Operators(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.StringMatching(`[0-9.+\-*/%=~ce]{0,48}`).Draw(rt, "keys")

		s := NewSession()
		feedRaw(s, keys)
		toks := s.Stream().Tokens()
		for i := 1; i < len(toks); i++ {
			if toks[i-1].IsOperator() && toks[i].IsOperator() {
				rt.Fatalf("adjacent operators after %q: %v", keys, toks)
			}
		}
	})
}

// feedRaw is the test-only key router (no *testing.T, usable under rapid).
func feedRaw(s *Session, keys string) {
	for i := 0; i < len(keys); i++ {
		switch k := keys[i]; {
		case k >= '0' && k <= '9':
			s.Digit(k)
		case k == '.':
			s.Dot()
		case IsOpKind(k):
			s.Operator(k)
		case k == '%':
			s.Percent()
		case k == '=':
			s.Equals()
		case k == 'c':
			s.ClearAll()
		case k == 'e':
			s.ClearEntry()
		case k == '<':
			s.Backspace()
		case k == '~':
			s.ToggleSign()
		}
	}
}
